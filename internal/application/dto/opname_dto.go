package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateOpnameRequest body para POST /api/opname.
type CreateOpnameRequest struct {
	Name          string `json:"name"`
	Coverage      string `json:"coverage"` // ROOM | LAUNDRY | BOTH
	ScheduledDate string `json:"scheduled_date,omitempty"`
}

// UpdateOpnameLineRequest body para PUT /api/opname/:id/lines/:lineId.
type UpdateOpnameLineRequest struct {
	CountedQty *decimal.Decimal `json:"counted_qty,omitempty"`
	Notes      *string          `json:"notes,omitempty"`
}

// OpnameLineResponse línea de conteo.
type OpnameLineResponse struct {
	ID          string          `json:"id"`
	ItemID      string          `json:"item_id"`
	ItemName    string          `json:"item_name"`
	ItemType    string          `json:"item_type"`
	SystemQty   decimal.Decimal `json:"system_qty"`
	CountedQty  decimal.Decimal `json:"counted_qty"`
	VarianceQty decimal.Decimal `json:"variance_qty"`
	Notes       string          `json:"notes,omitempty"`
}

// OpnameSessionResponse sesión con (opcionalmente) sus líneas.
type OpnameSessionResponse struct {
	ID            string               `json:"id"`
	Name          string               `json:"name"`
	Coverage      string               `json:"coverage"`
	ScheduledDate time.Time            `json:"scheduled_date"`
	Status        string               `json:"status"`
	CreatedBy     string               `json:"created_by"`
	ApprovedBy    string               `json:"approved_by,omitempty"`
	CreatedAt     time.Time            `json:"created_at"`
	UpdatedAt     time.Time            `json:"updated_at"`
	Lines         []OpnameLineResponse `json:"lines,omitempty"`
}

// OpnameListResponse listado de sesiones.
type OpnameListResponse struct {
	Items []OpnameSessionResponse `json:"items"`
	Total int                     `json:"total"`
}
