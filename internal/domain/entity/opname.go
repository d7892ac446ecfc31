package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Cobertura de una sesión de opname.
const (
	OpnameCoverageRoom    = "ROOM"
	OpnameCoverageLaundry = "LAUNDRY"
	OpnameCoverageBoth    = "BOTH"
)

// Estados de la sesión. La máquina solo avanza:
// IN_PROGRESS → PENDING_APPROVAL → POSTED (sin retrocesos ni rechazo).
const (
	OpnameStatusInProgress      = "IN_PROGRESS"
	OpnameStatusPendingApproval = "PENDING_APPROVAL"
	OpnameStatusPosted          = "POSTED"
)

// StockOpnameSession sesión de conteo físico de stock.
type StockOpnameSession struct {
	ID            string
	Name          string
	Coverage      string // ROOM | LAUNDRY | BOTH
	ScheduledDate time.Time
	Status        string
	CreatedBy     string // nombre del usuario creador
	ApprovedBy    string // nombre del aprobador, vacío hasta POSTED
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// StockOpnameLine línea de conteo. SystemQty es una copia congelada del OnHand
// al crear la sesión; VarianceQty = CountedQty - SystemQty.
type StockOpnameLine struct {
	ID          string
	SessionID   string
	ItemID      string
	ItemName    string
	ItemType    string // ROOM | LAUNDRY
	SystemQty   decimal.Decimal
	CountedQty  decimal.Decimal
	VarianceQty decimal.Decimal
	Notes       string
}

// Recount fija la cantidad contada y recalcula la varianza.
func (l *StockOpnameLine) Recount(counted decimal.Decimal) {
	l.CountedQty = counted
	l.VarianceQty = counted.Sub(l.SystemQty)
}
