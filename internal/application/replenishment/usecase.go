// Package replenishment implementa las solicitudes de reposición y su cadena
// de aprobación secuencial.
package replenishment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ariefstwn/hotelstock-api/internal/application/dto"
	"github.com/ariefstwn/hotelstock-api/internal/application/inventory"
	"github.com/ariefstwn/hotelstock-api/internal/application/ports"
	"github.com/ariefstwn/hotelstock-api/internal/domain"
	"github.com/ariefstwn/hotelstock-api/internal/domain/entity"
	"github.com/ariefstwn/hotelstock-api/internal/domain/repository"
)

// chainRoles orden fijo de la cadena de aprobación.
var chainRoles = []string{
	entity.RoleOperationalManager,
	entity.RoleOperationLead,
	entity.RolePropertyHead,
}

// UseCase ciclo de vida de una solicitud:
// DRAFT → IN_REVIEW → (APPROVED | REJECTED), con reenvío desde REJECTED.
type UseCase struct {
	tx        ports.TxRunner
	users     repository.UserRepository
	alerts    *inventory.AlertUseCase
	generator RequestPDFGenerator
	property  string
}

// NewUseCase construye el caso de uso inyectando todas sus dependencias.
func NewUseCase(tx ports.TxRunner, users repository.UserRepository, alerts *inventory.AlertUseCase, generator RequestPDFGenerator, property string) *UseCase {
	return &UseCase{tx: tx, users: users, alerts: alerts, generator: generator, property: property}
}

// buildChain arma la cadena con el primer usuario de cada rol, en orden.
// Un rol sin usuario asignado simplemente no aparece en la cadena.
func (uc *UseCase) buildChain() ([]entity.Approval, error) {
	profiles, err := uc.users.List()
	if err != nil {
		return nil, err
	}
	chain := make([]entity.Approval, 0, len(chainRoles))
	for _, role := range chainRoles {
		for _, p := range profiles {
			if p.Role == role {
				chain = append(chain, entity.Approval{
					Name:   p.Name,
					Role:   role,
					Status: entity.ApprovalStatusPending,
				})
				break
			}
		}
	}
	return chain, nil
}

// suggestedFor cantidad sugerida para una línea manual: max(minStock*2 - onHand, 0).
func suggestedFor(item *entity.InventoryItem) decimal.Decimal {
	q := item.MinStock.Mul(decimal.NewFromInt(2)).Sub(item.OnHand)
	if q.IsNegative() {
		return decimal.Zero
	}
	return q
}

// buildItems arma las líneas de la solicitud: las selecciones de alertas toman
// la cantidad sugerida como solicitada; las líneas manuales exigen un ítem de
// catálogo existente y cantidad positiva. Selecciones que ya no alertan se
// omiten en silencio.
func (uc *UseCase) buildItems(r ports.RepoSet, lines []dto.ReplenishmentLinePayload, fromAlerts []dto.AlertSelection, now time.Time) ([]entity.ReplenishmentItem, error) {
	items := make([]entity.ReplenishmentItem, 0, len(lines)+len(fromAlerts))

	if len(fromAlerts) > 0 {
		rows, err := uc.alerts.Rows(r, now)
		if err != nil {
			return nil, err
		}
		for _, sel := range fromAlerts {
			for _, row := range rows {
				if row.ItemID != sel.ItemID || row.ItemType != sel.ItemType {
					continue
				}
				items = append(items, entity.ReplenishmentItem{
					ID:            uuid.New().String(),
					ItemID:        row.ItemID,
					ItemName:      row.ItemName,
					ItemType:      row.ItemType,
					Unit:          row.Unit,
					CurrentStock:  row.OnHand,
					MinStock:      row.MinStock,
					SuggestedQty:  row.SuggestedQty,
					RequestedQty:  row.SuggestedQty,
					Last7DayUsage: row.Last7DayUsage,
					Mandatory:     row.Mandatory,
				})
				break
			}
		}
	}

	for _, ln := range lines {
		if !ln.Qty.IsPositive() {
			continue
		}
		item, err := r.Items.GetByID(ln.ItemID, ln.ItemType)
		if err != nil {
			return nil, err
		}
		items = append(items, entity.ReplenishmentItem{
			ID:           uuid.New().String(),
			ItemID:       item.ID,
			ItemName:     item.Name,
			ItemType:     item.Type,
			Unit:         item.Unit,
			CurrentStock: item.OnHand,
			MinStock:     item.MinStock,
			SuggestedQty: suggestedFor(item),
			RequestedQty: ln.Qty,
			Mandatory:    item.Mandatory,
			Department:   ln.Department,
			Notes:        ln.Notes,
		})
	}

	if len(items) == 0 {
		return nil, domain.ErrNoLines
	}
	return items, nil
}

// recomputeUsage refresca el consumo de 7 días de cada línea desde el libro
// de salidas. Se llama al crear y al enviar; el valor nunca es autoritativo.
func recomputeUsage(r ports.RepoSet, req *entity.ReplenishmentRequest, now time.Time) error {
	outgoing, err := r.Movements.List(entity.DirectionOut)
	if err != nil {
		return err
	}
	for i := range req.Items {
		req.Items[i].Last7DayUsage = inventory.Last7DayUsage(outgoing, req.Items[i].ItemID, req.Items[i].ItemType, now)
	}
	return nil
}

func neededDateFor(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	return &t, nil
}

// Create guarda un borrador nuevo con la cadena de aprobación ya armada.
func (uc *UseCase) Create(ctx context.Context, actorName, actorRole string, in dto.CreateReplenishmentRequest) (*dto.ReplenishmentResponse, error) {
	neededDate, err := neededDateFor(in.NeededDate)
	if err != nil {
		return nil, err
	}
	chain, err := uc.buildChain()
	if err != nil {
		return nil, err
	}
	now := time.Now()

	var out *dto.ReplenishmentResponse
	err = uc.tx.Run(ctx, func(r ports.RepoSet) error {
		items, err := uc.buildItems(r, in.Lines, in.FromAlerts, now)
		if err != nil {
			return err
		}
		id, err := r.Replenishments.NextID()
		if err != nil {
			return err
		}
		req := &entity.ReplenishmentRequest{
			ID:            id,
			Property:      uc.property,
			RequestorName: actorName,
			RequestorRole: actorRole,
			NeededDate:    neededDate,
			Notes:         in.Notes,
			Status:        entity.ReplenishmentStatusDraft,
			Approvals:     chain,
			Items:         items,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		if err := r.Replenishments.Create(req); err != nil {
			return err
		}
		out = toReplenishmentResponse(req)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Update reemplaza campos (y líneas, si vienen) de un borrador o rechazo.
// Solo el solicitante puede editar; IN_REVIEW y APPROVED son inmutables.
func (uc *UseCase) Update(ctx context.Context, id, actorName string, in dto.UpdateReplenishmentRequest) (*dto.ReplenishmentResponse, error) {
	now := time.Now()
	var out *dto.ReplenishmentResponse
	err := uc.tx.Run(ctx, func(r ports.RepoSet) error {
		req, err := r.Replenishments.GetByID(id)
		if err != nil {
			return err
		}
		if req.RequestorName != actorName {
			return domain.ErrNotRequestor
		}
		if !req.Editable() {
			return domain.ErrAlreadySubmitted
		}
		if in.NeededDate != nil {
			neededDate, err := neededDateFor(*in.NeededDate)
			if err != nil {
				return err
			}
			req.NeededDate = neededDate
		}
		if in.Notes != nil {
			req.Notes = *in.Notes
		}
		if in.Lines != nil {
			items, err := uc.buildItems(r, in.Lines, nil, now)
			if err != nil {
				return err
			}
			req.Items = items
		}
		req.UpdatedAt = now
		if err := r.Replenishments.Update(req); err != nil {
			return err
		}
		out = toReplenishmentResponse(req)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Submit envía la solicitud a revisión. Un reenvío tras rechazo vuelve toda
// la cadena a PENDING; el consumo de 7 días se recongela al enviar.
func (uc *UseCase) Submit(ctx context.Context, id, actorName string) (*dto.ReplenishmentResponse, error) {
	now := time.Now()
	var out *dto.ReplenishmentResponse
	err := uc.tx.Run(ctx, func(r ports.RepoSet) error {
		req, err := r.Replenishments.GetByID(id)
		if err != nil {
			return err
		}
		if req.RequestorName != actorName {
			return domain.ErrNotRequestor
		}
		if !req.Editable() {
			return domain.ErrAlreadySubmitted
		}
		if len(req.Items) == 0 {
			return domain.ErrNoLines
		}
		if req.Status == entity.ReplenishmentStatusRejected {
			req.ResetApprovals()
		}
		if err := recomputeUsage(r, req, now); err != nil {
			return err
		}
		req.Status = entity.ReplenishmentStatusInReview
		req.UpdatedAt = now
		if err := r.Replenishments.Update(req); err != nil {
			return err
		}
		out = toReplenishmentResponse(req)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Approve registra la aprobación del aprobador en turno. Cuando la última
// entrada de la cadena aprueba, la solicitud queda APPROVED.
func (uc *UseCase) Approve(ctx context.Context, id, actorName string) (*dto.ReplenishmentResponse, error) {
	return uc.decide(ctx, id, actorName, true)
}

// Reject rechaza la solicitud: la cadena se corta de inmediato sin importar
// cuántas entradas ya habían aprobado.
func (uc *UseCase) Reject(ctx context.Context, id, actorName string) (*dto.ReplenishmentResponse, error) {
	return uc.decide(ctx, id, actorName, false)
}

func (uc *UseCase) decide(ctx context.Context, id, actorName string, approve bool) (*dto.ReplenishmentResponse, error) {
	now := time.Now()
	var out *dto.ReplenishmentResponse
	err := uc.tx.Run(ctx, func(r ports.RepoSet) error {
		req, err := r.Replenishments.GetByID(id)
		if err != nil {
			return err
		}
		if req.Status != entity.ReplenishmentStatusInReview {
			return domain.ErrWrongState
		}
		pending := req.NextPendingApprover()
		if pending == nil || pending.Name != actorName {
			return domain.ErrNotCurrentApprover
		}
		at := now
		pending.At = &at
		if approve {
			pending.Status = entity.ApprovalStatusApproved
			if req.NextPendingApprover() == nil {
				req.Status = entity.ReplenishmentStatusApproved
			}
		} else {
			pending.Status = entity.ApprovalStatusRejected
			req.Status = entity.ReplenishmentStatusRejected
		}
		req.UpdatedAt = now
		if err := r.Replenishments.Update(req); err != nil {
			return err
		}
		out = toReplenishmentResponse(req)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Delete elimina un borrador del solicitante. Cualquier otro estado se
// conserva como registro del trámite.
func (uc *UseCase) Delete(ctx context.Context, id, actorName string) error {
	return uc.tx.Run(ctx, func(r ports.RepoSet) error {
		req, err := r.Replenishments.GetByID(id)
		if err != nil {
			return err
		}
		if req.Status != entity.ReplenishmentStatusDraft {
			return domain.ErrOnlyDraftDeletable
		}
		if req.RequestorName != actorName {
			return domain.ErrNotRequestor
		}
		return r.Replenishments.Delete(id)
	})
}

// GetByID devuelve la solicitud completa.
func (uc *UseCase) GetByID(ctx context.Context, id string) (*dto.ReplenishmentResponse, error) {
	var out *dto.ReplenishmentResponse
	err := uc.tx.Run(ctx, func(r ports.RepoSet) error {
		req, err := r.Replenishments.GetByID(id)
		if err != nil {
			return err
		}
		out = toReplenishmentResponse(req)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// List devuelve todas las solicitudes de la propiedad.
func (uc *UseCase) List(ctx context.Context) (*dto.ReplenishmentListResponse, error) {
	var out *dto.ReplenishmentListResponse
	err := uc.tx.Run(ctx, func(r ports.RepoSet) error {
		reqs, err := r.Replenishments.List()
		if err != nil {
			return err
		}
		items := make([]dto.ReplenishmentResponse, 0, len(reqs))
		for _, req := range reqs {
			items = append(items, *toReplenishmentResponse(req))
		}
		out = &dto.ReplenishmentListResponse{Items: items, Total: len(items)}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// DownloadRequestPDF genera el impreso de la solicitud.
//
// Retorna:
//   - (pdfBytes, filename, nil)  si todo sale bien.
//   - domain.ErrNotFound         si la solicitud no existe.
func (uc *UseCase) DownloadRequestPDF(ctx context.Context, id string) (pdfBytes []byte, filename string, err error) {
	var req *entity.ReplenishmentRequest
	err = uc.tx.Run(ctx, func(r ports.RepoSet) error {
		found, err := r.Replenishments.GetByID(id)
		if err != nil {
			return err
		}
		req = found
		return nil
	})
	if err != nil {
		return nil, "", err
	}
	pdfBytes, err = uc.generator.GenerateRequestPDF(ctx, req)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}
	filename = fmt.Sprintf("reposicion_%s.pdf", req.ID)
	return pdfBytes, filename, nil
}

func toReplenishmentResponse(req *entity.ReplenishmentRequest) *dto.ReplenishmentResponse {
	approvals := make([]dto.ApprovalResponse, 0, len(req.Approvals))
	for _, a := range req.Approvals {
		approvals = append(approvals, dto.ApprovalResponse{
			Name:   a.Name,
			Role:   a.Role,
			Status: a.Status,
			At:     a.At,
		})
	}
	items := make([]dto.ReplenishmentItemResponse, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, dto.ReplenishmentItemResponse{
			ID:            it.ID,
			ItemID:        it.ItemID,
			ItemName:      it.ItemName,
			ItemType:      it.ItemType,
			Unit:          it.Unit,
			CurrentStock:  it.CurrentStock,
			MinStock:      it.MinStock,
			SuggestedQty:  it.SuggestedQty,
			RequestedQty:  it.RequestedQty,
			Last7DayUsage: it.Last7DayUsage,
			Department:    it.Department,
			Mandatory:     it.Mandatory,
			Notes:         it.Notes,
		})
	}
	return &dto.ReplenishmentResponse{
		ID:            req.ID,
		Property:      req.Property,
		RequestorName: req.RequestorName,
		RequestorRole: req.RequestorRole,
		NeededDate:    req.NeededDate,
		Notes:         req.Notes,
		Status:        req.Status,
		Approvals:     approvals,
		Items:         items,
		CreatedAt:     req.CreatedAt,
		UpdatedAt:     req.UpdatedAt,
	}
}
