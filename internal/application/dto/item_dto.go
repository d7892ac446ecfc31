package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateItemRequest body para POST /api/items.
type CreateItemRequest struct {
	Type       string           `json:"type"` // ROOM | LAUNDRY
	Name       string           `json:"name"`
	Category   string           `json:"category"`
	Size       string           `json:"size,omitempty"`
	Unit       string           `json:"unit"`
	Mandatory  bool             `json:"mandatory"`
	ParPerRoom int              `json:"par_per_room"`
	MinStock   decimal.Decimal  `json:"min_stock"`
	MaxStock   *decimal.Decimal `json:"max_stock,omitempty"`
	OnHand     decimal.Decimal  `json:"on_hand"`
	Vendor     string           `json:"vendor"`
}

// UpdateItemRequest body para PUT /api/items/:id. Campos nil no se tocan.
type UpdateItemRequest struct {
	Name       *string          `json:"name,omitempty"`
	Category   *string          `json:"category,omitempty"`
	Size       *string          `json:"size,omitempty"`
	Unit       *string          `json:"unit,omitempty"`
	Mandatory  *bool            `json:"mandatory,omitempty"`
	ParPerRoom *int             `json:"par_per_room,omitempty"`
	MinStock   *decimal.Decimal `json:"min_stock,omitempty"`
	MaxStock   *decimal.Decimal `json:"max_stock,omitempty"`
	OnHand     *decimal.Decimal `json:"on_hand,omitempty"`
	Vendor     *string          `json:"vendor,omitempty"`
}

// ItemResponse proyección de un ítem del catálogo.
type ItemResponse struct {
	ID         string           `json:"id"`
	Type       string           `json:"type"`
	Name       string           `json:"name"`
	Category   string           `json:"category"`
	Size       string           `json:"size,omitempty"`
	Unit       string           `json:"unit"`
	Mandatory  bool             `json:"mandatory"`
	ParPerRoom int              `json:"par_per_room"`
	MinStock   decimal.Decimal  `json:"min_stock"`
	MaxStock   *decimal.Decimal `json:"max_stock,omitempty"`
	OnHand     decimal.Decimal  `json:"on_hand"`
	Status     string           `json:"status"`
	Vendor     string           `json:"vendor"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at"`
}

// ItemListResponse listado del catálogo.
type ItemListResponse struct {
	Items []ItemResponse `json:"items"`
	Total int            `json:"total"`
}
