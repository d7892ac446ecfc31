package repository

import "github.com/ariefstwn/hotelstock-api/internal/domain/entity"

// InventoryItemRepository puerto de persistencia del catálogo (DIP).
// El catálogo son dos colecciones disjuntas: todo acceso lleva id + tipo.
type InventoryItemRepository interface {
	Create(item *entity.InventoryItem) error
	// GetByID busca por id dentro de la colección del tipo indicado.
	GetByID(id, itemType string) (*entity.InventoryItem, error)
	Update(item *entity.InventoryItem) error
	// List devuelve los ítems de un tipo; itemType vacío devuelve ambos
	// (room primero, laundry después).
	List(itemType string) ([]*entity.InventoryItem, error)
	// NextID genera el siguiente id secuencial del tipo (R1, R2... / L1, L2...).
	NextID(itemType string) (string, error)
}
