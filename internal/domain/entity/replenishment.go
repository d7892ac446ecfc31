package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de la solicitud de reposición.
// DRAFT ⇄ REJECTED → IN_REVIEW → (APPROVED | REJECTED).
// Solo DRAFT y REJECTED son editables por el solicitante.
const (
	ReplenishmentStatusDraft    = "DRAFT"
	ReplenishmentStatusInReview = "IN_REVIEW"
	ReplenishmentStatusApproved = "APPROVED"
	ReplenishmentStatusRejected = "REJECTED"
)

// Estados de cada entrada de la cadena de aprobación.
const (
	ApprovalStatusPending  = "PENDING"
	ApprovalStatusApproved = "APPROVED"
	ApprovalStatusRejected = "REJECTED"
)

// Approval una entrada de la cadena. La cadena es fija y estrictamente
// secuencial: la primera entrada PENDING es el "siguiente aprobador".
type Approval struct {
	Name   string
	Role   string
	Status string // PENDING | APPROVED | REJECTED
	At     *time.Time
}

// ReplenishmentItem línea de la solicitud. Last7DayUsage es un valor derivado
// del libro de salidas, recalculado al enviar; no es autoritativo.
type ReplenishmentItem struct {
	ID            string
	ItemID        string
	ItemName      string
	ItemType      string // ROOM | LAUNDRY
	Unit          string
	CurrentStock  decimal.Decimal
	MinStock      decimal.Decimal
	SuggestedQty  decimal.Decimal
	RequestedQty  decimal.Decimal
	Last7DayUsage decimal.Decimal
	Department    string
	Mandatory     bool
	Notes         string
}

// ReplenishmentRequest solicitud de reposición con cadena de aprobación.
type ReplenishmentRequest struct {
	ID            string
	Property      string
	RequestorName string
	RequestorRole string
	NeededDate    *time.Time
	Notes         string
	Status        string
	Approvals     []Approval
	Items         []ReplenishmentItem
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NextPendingApprover devuelve la primera entrada PENDING, o nil si no queda.
func (r *ReplenishmentRequest) NextPendingApprover() *Approval {
	for i := range r.Approvals {
		if r.Approvals[i].Status == ApprovalStatusPending {
			return &r.Approvals[i]
		}
	}
	return nil
}

// ResetApprovals vuelve toda la cadena a PENDING (reenvío tras rechazo).
func (r *ReplenishmentRequest) ResetApprovals() {
	for i := range r.Approvals {
		r.Approvals[i].Status = ApprovalStatusPending
		r.Approvals[i].At = nil
	}
}

// Editable indica si el solicitante puede modificar la solicitud.
func (r *ReplenishmentRequest) Editable() bool {
	return r.Status == ReplenishmentStatusDraft || r.Status == ReplenishmentStatusRejected
}
