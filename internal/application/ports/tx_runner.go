package ports

import (
	"context"

	"github.com/ariefstwn/hotelstock-api/internal/domain/repository"
)

// RepoSet repositorios atados a una misma transacción.
type RepoSet struct {
	Items          repository.InventoryItemRepository
	Movements      repository.MovementRepository
	Opname         repository.OpnameRepository
	Replenishments repository.ReplenishmentRepository
}

// TxRunner ejecuta fn como una unidad atómica sobre el estado compartido.
// Las mutaciones multi-paso del libro (reversar/reaplicar en modify y revert)
// y el avance de la cadena de aprobación deben parecer atómicas frente a
// lectores concurrentes; fn corre con exclusión total.
type TxRunner interface {
	Run(ctx context.Context, fn func(r RepoSet) error) error
}
