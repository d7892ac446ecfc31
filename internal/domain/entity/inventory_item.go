package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipo de ítem: el catálogo se divide en dos colecciones disjuntas (room y laundry).
const (
	ItemTypeRoom    = "ROOM"
	ItemTypeLaundry = "LAUNDRY"
)

// Estados del ítem. Nunca se borra un ítem: solo se archiva.
const (
	ItemStatusActive   = "ACTIVE"
	ItemStatusArchived = "ARCHIVED"
)

// InventoryItem representa un ítem del catálogo de la propiedad (room o laundry).
// OnHand nunca es negativo: toda mutación lo recorta a 0 como mínimo.
type InventoryItem struct {
	ID         string
	Type       string // ROOM | LAUNDRY
	Name       string
	Category   string
	Size       string // solo laundry (ej. "160x200")
	Unit       string // código UOM: PCS, BOX, SET, KG...
	Mandatory  bool
	ParPerRoom int
	MinStock   decimal.Decimal
	MaxStock   *decimal.Decimal // opcional; laundry no lo define
	OnHand     decimal.Decimal
	Status     string // ACTIVE | ARCHIVED
	Vendor     string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// IsActive indica si el ítem participa en alertas y opname.
func (i *InventoryItem) IsActive() bool { return i.Status == ItemStatusActive }

// AdjustOnHand suma delta al stock disponible recortando en 0.
func (i *InventoryItem) AdjustOnHand(delta decimal.Decimal) {
	next := i.OnHand.Add(delta)
	if next.IsNegative() {
		next = decimal.Zero
	}
	i.OnHand = next
}
