package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// AttachmentPayload metadatos de un adjunto (no se reciben binarios).
type AttachmentPayload struct {
	Name string `json:"name"`
	Size int64  `json:"size"`
	Type string `json:"type"`
}

// MovementLinePayload una línea de movimiento.
type MovementLinePayload struct {
	ItemID   string          `json:"item_id"`
	ItemType string          `json:"item_type"` // ROOM | LAUNDRY
	Qty      decimal.Decimal `json:"qty"`
}

// PostMovementRequest body para POST /api/movements. Direction decide qué
// campos aplican: source_type/po_number/adjuntos para IN, dest_type/dest_ref
// para OUT.
type PostMovementRequest struct {
	Direction     string                `json:"direction"` // IN | OUT
	Date          string                `json:"date,omitempty"`
	Property      string                `json:"property,omitempty"`
	SourceType    string                `json:"source_type,omitempty"`
	PONumber      string                `json:"po_number,omitempty"`
	Bast          *AttachmentPayload    `json:"bast,omitempty"`
	DeliveryProof *AttachmentPayload    `json:"delivery_proof,omitempty"`
	DestType      string                `json:"dest_type,omitempty"`
	DestRef       string                `json:"dest_ref,omitempty"`
	Note          string                `json:"note,omitempty"`
	Lines         []MovementLinePayload `json:"lines"`
}

// ModifyMovementRequest body para PUT /api/movements/:id. Mismos campos que el
// alta salvo la dirección, que nunca cambia.
type ModifyMovementRequest struct {
	Date          string                `json:"date,omitempty"`
	Property      string                `json:"property,omitempty"`
	SourceType    string                `json:"source_type,omitempty"`
	PONumber      string                `json:"po_number,omitempty"`
	Bast          *AttachmentPayload    `json:"bast,omitempty"`
	DeliveryProof *AttachmentPayload    `json:"delivery_proof,omitempty"`
	DestType      string                `json:"dest_type,omitempty"`
	DestRef       string                `json:"dest_ref,omitempty"`
	Note          string                `json:"note,omitempty"`
	Lines         []MovementLinePayload `json:"lines"`
}

// MovementLineResponse línea con los datos resueltos del ítem.
type MovementLineResponse struct {
	ItemID   string          `json:"item_id"`
	ItemName string          `json:"item_name"`
	ItemType string          `json:"item_type"`
	UOM      string          `json:"uom"`
	Qty      decimal.Decimal `json:"qty"`
}

// AttachmentResponse metadatos de un adjunto guardado.
type AttachmentResponse struct {
	Name       string    `json:"name"`
	Size       int64     `json:"size"`
	Type       string    `json:"type"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// MovementHistoryResponse entrada del historial (sin el snapshot completo).
type MovementHistoryResponse struct {
	TS     time.Time `json:"ts"`
	Action string    `json:"action"`
	Detail string    `json:"detail"`
}

// MovementResponse proyección de un documento de movimiento.
type MovementResponse struct {
	ID            string                    `json:"id"`
	Direction     string                    `json:"direction"`
	Date          time.Time                 `json:"date"`
	Property      string                    `json:"property"`
	SourceType    string                    `json:"source_type,omitempty"`
	PONumber      string                    `json:"po_number,omitempty"`
	Bast          *AttachmentResponse       `json:"bast,omitempty"`
	DeliveryProof *AttachmentResponse       `json:"delivery_proof,omitempty"`
	DestType      string                    `json:"dest_type,omitempty"`
	DestRef       string                    `json:"dest_ref,omitempty"`
	Note          string                    `json:"note,omitempty"`
	Status        string                    `json:"status"`
	Lines         []MovementLineResponse    `json:"lines"`
	History       []MovementHistoryResponse `json:"history,omitempty"`
}

// MovementListResponse listado de un libro.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Total int                `json:"total"`
}
