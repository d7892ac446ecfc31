// Package opname implementa las sesiones de conteo físico de stock y su
// reconciliación contra el libro de movimientos.
package opname

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ariefstwn/hotelstock-api/internal/application/dto"
	"github.com/ariefstwn/hotelstock-api/internal/application/inventory"
	"github.com/ariefstwn/hotelstock-api/internal/application/ports"
	"github.com/ariefstwn/hotelstock-api/internal/domain"
	"github.com/ariefstwn/hotelstock-api/internal/domain/entity"
)

// UseCase ciclo de vida de una sesión de opname:
// IN_PROGRESS → PENDING_APPROVAL → POSTED, sin retrocesos.
type UseCase struct {
	tx       ports.TxRunner
	property string
}

// NewUseCase construye el caso de uso.
func NewUseCase(tx ports.TxRunner, property string) *UseCase {
	return &UseCase{tx: tx, property: property}
}

// Create abre una sesión sembrando una línea por ítem de la cobertura.
// SystemQty congela el OnHand actual; CountedQty arranca igual.
func (uc *UseCase) Create(ctx context.Context, actorName string, in dto.CreateOpnameRequest) (*dto.OpnameSessionResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	switch in.Coverage {
	case entity.OpnameCoverageRoom, entity.OpnameCoverageLaundry, entity.OpnameCoverageBoth:
	default:
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()

	var out *dto.OpnameSessionResponse
	err := uc.tx.Run(ctx, func(r ports.RepoSet) error {
		id, err := r.Opname.NextSessionID()
		if err != nil {
			return err
		}
		session := &entity.StockOpnameSession{
			ID:            id,
			Name:          in.Name,
			Coverage:      in.Coverage,
			ScheduledDate: scheduleFor(in.ScheduledDate, now),
			Status:        entity.OpnameStatusInProgress,
			CreatedBy:     actorName,
			CreatedAt:     now,
			UpdatedAt:     now,
		}

		var types []string
		switch in.Coverage {
		case entity.OpnameCoverageRoom:
			types = []string{entity.ItemTypeRoom}
		case entity.OpnameCoverageLaundry:
			types = []string{entity.ItemTypeLaundry}
		case entity.OpnameCoverageBoth:
			types = []string{entity.ItemTypeRoom, entity.ItemTypeLaundry}
		}
		var lines []*entity.StockOpnameLine
		for _, t := range types {
			items, err := r.Items.List(t)
			if err != nil {
				return err
			}
			for _, item := range items {
				lines = append(lines, &entity.StockOpnameLine{
					ID:         "SL-" + item.ID,
					SessionID:  id,
					ItemID:     item.ID,
					ItemName:   item.Name,
					ItemType:   t,
					SystemQty:  item.OnHand,
					CountedQty: item.OnHand,
				})
			}
		}
		if err := r.Opname.CreateSession(session, lines); err != nil {
			return err
		}
		out = toSessionResponse(session, lines)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// List devuelve las sesiones sin líneas.
func (uc *UseCase) List(ctx context.Context) (*dto.OpnameListResponse, error) {
	var out *dto.OpnameListResponse
	err := uc.tx.Run(ctx, func(r ports.RepoSet) error {
		sessions, err := r.Opname.ListSessions()
		if err != nil {
			return err
		}
		items := make([]dto.OpnameSessionResponse, 0, len(sessions))
		for _, s := range sessions {
			items = append(items, *toSessionResponse(s, nil))
		}
		out = &dto.OpnameListResponse{Items: items, Total: len(items)}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID devuelve la sesión con líneas. Un borrador en curso solo es visible
// para quien lo creó.
func (uc *UseCase) GetByID(ctx context.Context, id, actorName string) (*dto.OpnameSessionResponse, error) {
	var out *dto.OpnameSessionResponse
	err := uc.tx.Run(ctx, func(r ports.RepoSet) error {
		session, err := r.Opname.GetSession(id)
		if err != nil {
			return err
		}
		if session.Status == entity.OpnameStatusInProgress && session.CreatedBy != actorName {
			return domain.ErrForbidden
		}
		lines, err := r.Opname.Lines(id)
		if err != nil {
			return err
		}
		out = toSessionResponse(session, lines)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateLine edita el conteo o las notas de una línea. Solo mientras la
// sesión sigue IN_PROGRESS y solo para su creador; la varianza se recalcula.
func (uc *UseCase) UpdateLine(ctx context.Context, sessionID, lineID, actorName string, in dto.UpdateOpnameLineRequest) (*dto.OpnameLineResponse, error) {
	var out *dto.OpnameLineResponse
	err := uc.tx.Run(ctx, func(r ports.RepoSet) error {
		session, err := r.Opname.GetSession(sessionID)
		if err != nil {
			return err
		}
		if session.CreatedBy != actorName {
			return domain.ErrForbidden
		}
		if session.Status != entity.OpnameStatusInProgress {
			return domain.ErrWrongState
		}
		line, err := r.Opname.GetLine(sessionID, lineID)
		if err != nil {
			return err
		}
		if in.CountedQty != nil {
			if in.CountedQty.IsNegative() {
				return domain.ErrInvalidInput
			}
			line.Recount(*in.CountedQty)
		}
		if in.Notes != nil {
			line.Notes = *in.Notes
		}
		if err := r.Opname.UpdateLine(line); err != nil {
			return err
		}
		session.UpdatedAt = time.Now()
		if err := r.Opname.UpdateSession(session); err != nil {
			return err
		}
		resp := toLineResponse(line)
		out = &resp
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Submit pasa la sesión a PENDING_APPROVAL y bloquea la edición de líneas.
func (uc *UseCase) Submit(ctx context.Context, id, actorName string) (*dto.OpnameSessionResponse, error) {
	var out *dto.OpnameSessionResponse
	err := uc.tx.Run(ctx, func(r ports.RepoSet) error {
		session, err := r.Opname.GetSession(id)
		if err != nil {
			return err
		}
		if session.CreatedBy != actorName {
			return domain.ErrForbidden
		}
		if session.Status != entity.OpnameStatusInProgress {
			return domain.ErrWrongState
		}
		session.Status = entity.OpnameStatusPendingApproval
		session.UpdatedAt = time.Now()
		if err := r.Opname.UpdateSession(session); err != nil {
			return err
		}
		lines, _ := r.Opname.Lines(id)
		out = toSessionResponse(session, lines)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Approve contabiliza la sesión: agrega las varianzas no nulas en a lo sumo un
// documento entrante y uno saliente (OPNAME_ADJUSTMENT), los contabiliza por
// el libro (el OnHand converge al conteo) y congela SystemQty = CountedQty.
// Solo el Operational Manager aprueba, y solo desde PENDING_APPROVAL.
func (uc *UseCase) Approve(ctx context.Context, id, actorName, actorRole string) (*dto.OpnameSessionResponse, error) {
	if actorRole != entity.RoleOperationalManager {
		return nil, domain.ErrForbidden
	}
	now := time.Now()

	var out *dto.OpnameSessionResponse
	err := uc.tx.Run(ctx, func(r ports.RepoSet) error {
		session, err := r.Opname.GetSession(id)
		if err != nil {
			return err
		}
		if session.Status != entity.OpnameStatusPendingApproval {
			return domain.ErrWrongState
		}
		lines, err := r.Opname.Lines(id)
		if err != nil {
			return err
		}

		var incomingLines, outgoingLines []entity.MovementLine
		for _, line := range lines {
			diff := line.CountedQty.Sub(line.SystemQty)
			uom := inventory.DefaultUOM
			if item, err := r.Items.GetByID(line.ItemID, line.ItemType); err == nil {
				uom = item.Unit
			}
			switch {
			case diff.IsPositive():
				incomingLines = append(incomingLines, entity.MovementLine{
					ItemID: line.ItemID, ItemName: line.ItemName, ItemType: line.ItemType, UOM: uom, Qty: diff,
				})
			case diff.IsNegative():
				outgoingLines = append(outgoingLines, entity.MovementLine{
					ItemID: line.ItemID, ItemName: line.ItemName, ItemType: line.ItemType, UOM: uom, Qty: diff.Abs(),
				})
			}
			line.SystemQty = line.CountedQty
			line.VarianceQty = decimal.Zero
			if err := r.Opname.UpdateLine(line); err != nil {
				return err
			}
		}

		session.Status = entity.OpnameStatusPosted
		session.ApprovedBy = actorName
		session.UpdatedAt = now
		if err := r.Opname.UpdateSession(session); err != nil {
			return err
		}

		if len(incomingLines) > 0 {
			doc := &entity.MovementDocument{
				Direction:      entity.DirectionIn,
				Date:           now,
				Property:       uc.property,
				SourceType:     entity.SourceTypeOpnameAdjustment,
				PONumber:       "-",
				BastAttachment: &entity.Attachment{Name: "Opname", Size: 0, Type: "AUTO", UploadedAt: now},
				Note:           session.Name,
				Lines:          incomingLines,
			}
			if err := inventory.PostPrepared(r, doc, now); err != nil {
				return err
			}
		}
		if len(outgoingLines) > 0 {
			doc := &entity.MovementDocument{
				Direction: entity.DirectionOut,
				Date:      now,
				Property:  uc.property,
				DestType:  entity.DestTypeOpnameAdjustment,
				DestRef:   session.Name,
				Note:      session.Name,
				Lines:     outgoingLines,
			}
			if err := inventory.PostPrepared(r, doc, now); err != nil {
				return err
			}
		}
		out = toSessionResponse(session, lines)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func scheduleFor(s string, fallback time.Time) time.Time {
	if s == "" {
		return fallback
	}
	if d, err := time.Parse("2006-01-02", s); err == nil {
		return d
	}
	return fallback
}

func toLineResponse(l *entity.StockOpnameLine) dto.OpnameLineResponse {
	return dto.OpnameLineResponse{
		ID:          l.ID,
		ItemID:      l.ItemID,
		ItemName:    l.ItemName,
		ItemType:    l.ItemType,
		SystemQty:   l.SystemQty,
		CountedQty:  l.CountedQty,
		VarianceQty: l.VarianceQty,
		Notes:       l.Notes,
	}
}

func toSessionResponse(s *entity.StockOpnameSession, lines []*entity.StockOpnameLine) *dto.OpnameSessionResponse {
	resp := &dto.OpnameSessionResponse{
		ID:            s.ID,
		Name:          s.Name,
		Coverage:      s.Coverage,
		ScheduledDate: s.ScheduledDate,
		Status:        s.Status,
		CreatedBy:     s.CreatedBy,
		ApprovedBy:    s.ApprovedBy,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
	for _, l := range lines {
		resp.Lines = append(resp.Lines, toLineResponse(l))
	}
	return resp
}
