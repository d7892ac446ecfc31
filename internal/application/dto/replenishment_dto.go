package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReplenishmentLinePayload línea manual de una solicitud.
type ReplenishmentLinePayload struct {
	ItemID     string          `json:"item_id"`
	ItemType   string          `json:"item_type"` // ROOM | LAUNDRY
	Qty        decimal.Decimal `json:"qty"`
	Department string          `json:"department,omitempty"`
	Notes      string          `json:"notes,omitempty"`
}

// AlertSelection referencia a una fila de alerta (id + tipo) para sembrar líneas.
type AlertSelection struct {
	ItemID   string `json:"item_id"`
	ItemType string `json:"item_type"`
}

// CreateReplenishmentRequest body para POST /api/replenishment. Lines y
// FromAlerts pueden combinarse; con FromAlerts las cantidades sugeridas de la
// alerta se toman como solicitadas.
type CreateReplenishmentRequest struct {
	NeededDate string                     `json:"needed_date,omitempty"`
	Notes      string                     `json:"notes,omitempty"`
	Lines      []ReplenishmentLinePayload `json:"lines,omitempty"`
	FromAlerts []AlertSelection           `json:"from_alerts,omitempty"`
}

// UpdateReplenishmentRequest body para PUT /api/replenishment/:id.
type UpdateReplenishmentRequest struct {
	NeededDate *string                    `json:"needed_date,omitempty"`
	Notes      *string                    `json:"notes,omitempty"`
	Lines      []ReplenishmentLinePayload `json:"lines,omitempty"`
}

// ApprovalResponse una entrada de la cadena.
type ApprovalResponse struct {
	Name   string     `json:"name"`
	Role   string     `json:"role"`
	Status string     `json:"status"`
	At     *time.Time `json:"at,omitempty"`
}

// ReplenishmentItemResponse línea de la solicitud.
type ReplenishmentItemResponse struct {
	ID            string          `json:"id"`
	ItemID        string          `json:"item_id"`
	ItemName      string          `json:"item_name"`
	ItemType      string          `json:"item_type"`
	Unit          string          `json:"unit"`
	CurrentStock  decimal.Decimal `json:"current_stock"`
	MinStock      decimal.Decimal `json:"min_stock"`
	SuggestedQty  decimal.Decimal `json:"suggested_qty"`
	RequestedQty  decimal.Decimal `json:"requested_qty"`
	Last7DayUsage decimal.Decimal `json:"last_7day_usage"`
	Department    string          `json:"department,omitempty"`
	Mandatory     bool            `json:"mandatory"`
	Notes         string          `json:"notes,omitempty"`
}

// ReplenishmentResponse proyección completa de la solicitud.
type ReplenishmentResponse struct {
	ID            string                      `json:"id"`
	Property      string                      `json:"property"`
	RequestorName string                      `json:"requestor_name"`
	RequestorRole string                      `json:"requestor_role"`
	NeededDate    *time.Time                  `json:"needed_date,omitempty"`
	Notes         string                      `json:"notes,omitempty"`
	Status        string                      `json:"status"`
	Approvals     []ApprovalResponse          `json:"approvals"`
	Items         []ReplenishmentItemResponse `json:"items"`
	CreatedAt     time.Time                   `json:"created_at"`
	UpdatedAt     time.Time                   `json:"updated_at"`
}

// ReplenishmentListResponse listado de solicitudes.
type ReplenishmentListResponse struct {
	Items []ReplenishmentResponse `json:"items"`
	Total int                     `json:"total"`
}
