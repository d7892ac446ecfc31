// Package memory implementa los repositorios sobre un único estado en
// proceso. No hay persistencia: todo se siembra al arrancar. El Store es el
// objeto de estado explícito que se inyecta; no hay singleton.
package memory

import (
	"context"
	"sync"

	"github.com/ariefstwn/hotelstock-api/internal/application/ports"
	"github.com/ariefstwn/hotelstock-api/internal/domain/entity"
)

// Store estado compartido de la propiedad: catálogos, libros de movimientos,
// sesiones de opname y solicitudes de reposición. Un solo RWMutex protege
// todo; Run toma exclusión total para las mutaciones multi-paso.
type Store struct {
	mu sync.RWMutex

	roomItems    []*entity.InventoryItem
	laundryItems []*entity.InventoryItem

	incomingDocs []*entity.MovementDocument
	outgoingDocs []*entity.MovementDocument

	opnameSessions []*entity.StockOpnameSession
	opnameLines    map[string][]*entity.StockOpnameLine

	replenishments []*entity.ReplenishmentRequest
	users          []*entity.User

	nextRoomItem    int
	nextLaundryItem int
	nextOpname      int
	nextRepl        int
}

// NewStore construye un Store vacío.
func NewStore() *Store {
	return &Store{
		opnameLines:     map[string][]*entity.StockOpnameLine{},
		nextRoomItem:    1,
		nextLaundryItem: 1,
		nextOpname:      1,
		nextRepl:        1,
	}
}

// Repos devuelve vistas con bloqueo propio, para lecturas y mutaciones de un
// solo paso. Las vistas no-tx devuelven copias para que el llamador nunca
// lea un puntero que otra transacción esté mutando.
func (s *Store) Repos() ports.RepoSet {
	return ports.RepoSet{
		Items:          &ItemRepository{store: s},
		Movements:      &MovementRepository{store: s},
		Opname:         &OpnameRepository{store: s},
		Replenishments: &ReplenishmentRepository{store: s},
	}
}

// Run ejecuta fn con exclusión total sobre el estado, pasando vistas atadas a
// la sección crítica. Dentro de fn los repositorios devuelven los punteros
// vivos para que las mutaciones queden en el Store.
func (s *Store) Run(_ context.Context, fn func(r ports.RepoSet) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(ports.RepoSet{
		Items:          &ItemRepository{store: s, inTx: true},
		Movements:      &MovementRepository{store: s, inTx: true},
		Opname:         &OpnameRepository{store: s, inTx: true},
		Replenishments: &ReplenishmentRepository{store: s, inTx: true},
	})
}

// rlock toma el lock de lectura salvo dentro de una transacción.
func (s *Store) rlock(inTx bool) func() {
	if inTx {
		return func() {}
	}
	s.mu.RLock()
	return s.mu.RUnlock
}

// wlock toma el lock de escritura salvo dentro de una transacción.
func (s *Store) wlock(inTx bool) func() {
	if inTx {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}
