package inventory

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ariefstwn/hotelstock-api/internal/application/dto"
	"github.com/ariefstwn/hotelstock-api/internal/application/ports"
	"github.com/ariefstwn/hotelstock-api/internal/domain"
	"github.com/ariefstwn/hotelstock-api/internal/domain/entity"
	"github.com/ariefstwn/hotelstock-api/internal/domain/repository"
)

// DefaultUOM unidad por defecto cuando la línea no resuelve ítem de catálogo.
const DefaultUOM = "PCS"

// LedgerUseCase opera los libros de movimientos manteniendo el OnHand del
// catálogo consistente con la suma de líneas no descartadas. Los pares
// reversar/reaplicar de modify y revert corren dentro del TxRunner para
// parecer atómicos ante lectores concurrentes.
type LedgerUseCase struct {
	tx       ports.TxRunner
	property string
}

// NewLedgerUseCase construye el caso de uso.
func NewLedgerUseCase(tx ports.TxRunner, property string) *LedgerUseCase {
	return &LedgerUseCase{tx: tx, property: property}
}

// applyQuantityEffect aplica el efecto de cantidad del documento al catálogo.
// sign=+1 aplica, sign=-1 reversa. Una línea cuyo ítem no está en el catálogo
// se salta en silencio: aplicación parcial antes que abortar el documento.
func applyQuantityEffect(items repository.InventoryItemRepository, doc *entity.MovementDocument, sign int64) {
	dir := decimal.NewFromInt(1)
	if doc.Direction == entity.DirectionOut {
		dir = decimal.NewFromInt(-1)
	}
	for _, ln := range doc.Lines {
		item, err := items.GetByID(ln.ItemID, ln.ItemType)
		if err != nil {
			continue
		}
		delta := ln.Qty.Mul(dir).Mul(decimal.NewFromInt(sign))
		item.AdjustOnHand(delta)
		_ = items.Update(item)
	}
}

// resolveLines arma las líneas del documento resolviendo nombre y UOM desde el
// catálogo; los ítems desconocidos se marcan pero no invalidan el documento.
func resolveLines(items repository.InventoryItemRepository, payload []dto.MovementLinePayload) ([]entity.MovementLine, error) {
	lines := make([]entity.MovementLine, 0, len(payload))
	for _, ln := range payload {
		if !ln.Qty.IsPositive() {
			continue
		}
		name, uom := "Unknown", DefaultUOM
		if item, err := items.GetByID(ln.ItemID, ln.ItemType); err == nil {
			name, uom = item.Name, item.Unit
		}
		lines = append(lines, entity.MovementLine{
			ItemID:   ln.ItemID,
			ItemName: name,
			ItemType: ln.ItemType,
			UOM:      uom,
			Qty:      ln.Qty,
		})
	}
	if len(lines) == 0 {
		return nil, domain.ErrNoLines
	}
	return lines, nil
}

func validateIncoming(sourceType, poNumber, note string, bast, delivery *entity.Attachment) error {
	switch sourceType {
	case entity.SourceTypeWithPO:
		if poNumber == "" || poNumber == "-" {
			return domain.ErrPONumberRequired
		}
		if bast == nil || delivery == nil {
			return domain.ErrAttachmentRequired
		}
	case entity.SourceTypeAdjustment:
		if !strings.Contains(strings.ToLower(note), "inter") {
			return domain.ErrAdjustmentNote
		}
	case entity.SourceTypeOpnameAdjustment:
	default:
		return domain.ErrInvalidInput
	}
	return nil
}

func validateOutgoing(destType, note string) error {
	switch destType {
	case entity.DestTypeDepartment:
	case entity.DestTypeAdjustment:
		if !strings.Contains(strings.ToLower(note), "inter") {
			return domain.ErrAdjustmentNote
		}
	case entity.DestTypeOpnameAdjustment:
	default:
		return domain.ErrInvalidInput
	}
	return nil
}

func parseDate(s string, fallback time.Time) time.Time {
	if s == "" {
		return fallback
	}
	if d, err := time.Parse("2006-01-02", s); err == nil {
		return d
	}
	return fallback
}

func attachment(p *dto.AttachmentPayload, now time.Time) *entity.Attachment {
	if p == nil {
		return nil
	}
	return &entity.Attachment{Name: p.Name, Size: p.Size, Type: p.Type, UploadedAt: now}
}

// Post valida y contabiliza un documento nuevo: status POSTED, entrada
// "Posted" en el historial, efecto de cantidad aplicado, documento agregado a
// su libro.
func (uc *LedgerUseCase) Post(ctx context.Context, in dto.PostMovementRequest) (*dto.MovementResponse, error) {
	now := time.Now()

	var out *dto.MovementResponse
	err := uc.tx.Run(ctx, func(r ports.RepoSet) error {
		lines, err := resolveLines(r.Items, in.Lines)
		if err != nil {
			return err
		}

		doc := &entity.MovementDocument{
			Direction: in.Direction,
			Date:      parseDate(in.Date, now),
			Property:  in.Property,
			Note:      in.Note,
			Lines:     lines,
		}
		if doc.Property == "" {
			doc.Property = uc.property
		}

		switch in.Direction {
		case entity.DirectionIn:
			doc.SourceType = in.SourceType
			if doc.SourceType == "" {
				doc.SourceType = entity.SourceTypeWithPO
			}
			doc.PONumber = in.PONumber
			if doc.PONumber == "" {
				doc.PONumber = "-"
			}
			doc.BastAttachment = attachment(in.Bast, now)
			doc.DeliveryProofAttachment = attachment(in.DeliveryProof, now)
			if err := validateIncoming(doc.SourceType, in.PONumber, doc.Note, doc.BastAttachment, doc.DeliveryProofAttachment); err != nil {
				return err
			}
		case entity.DirectionOut:
			doc.DestType = in.DestType
			if doc.DestType == "" {
				doc.DestType = entity.DestTypeDepartment
			}
			doc.DestRef = in.DestRef
			if err := validateOutgoing(doc.DestType, doc.Note); err != nil {
				return err
			}
		default:
			return domain.ErrInvalidInput
		}

		doc.ID, err = r.Movements.NextID(in.Direction)
		if err != nil {
			return err
		}
		doc.Status = entity.MovementStatusPosted
		doc.AppendHistory(now, entity.MovementActionPosted, "New movement recorded")
		applyQuantityEffect(r.Items, doc, 1)
		if err := r.Movements.Append(doc); err != nil {
			return err
		}
		out = toMovementResponse(doc, true)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Discard descarta un documento reversando su efecto. Descartar es
// unidireccional; sobre un documento ya descartado es un no-op.
func (uc *LedgerUseCase) Discard(ctx context.Context, id string) (*dto.MovementResponse, error) {
	now := time.Now()
	var out *dto.MovementResponse
	err := uc.tx.Run(ctx, func(r ports.RepoSet) error {
		doc, err := r.Movements.GetByID(id)
		if err != nil {
			return err
		}
		if doc.Status == entity.MovementStatusDiscarded {
			out = toMovementResponse(doc, true)
			return nil
		}
		applyQuantityEffect(r.Items, doc, -1)
		doc.Status = entity.MovementStatusDiscarded
		doc.AppendHistory(now, entity.MovementActionDiscarded, "Movement discarded and stock reverted")
		out = toMovementResponse(doc, true)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Modify reemplaza los datos del documento: reversa el efecto anterior,
// aplica los datos nuevos forzando POSTED y reaplica. Falla sobre descartados.
func (uc *LedgerUseCase) Modify(ctx context.Context, id string, in dto.ModifyMovementRequest) (*dto.MovementResponse, error) {
	now := time.Now()
	var out *dto.MovementResponse
	err := uc.tx.Run(ctx, func(r ports.RepoSet) error {
		doc, err := r.Movements.GetByID(id)
		if err != nil {
			return err
		}
		if doc.Status == entity.MovementStatusDiscarded {
			return domain.ErrMovementDiscarded
		}
		lines, err := resolveLines(r.Items, in.Lines)
		if err != nil {
			return err
		}

		switch doc.Direction {
		case entity.DirectionIn:
			sourceType := in.SourceType
			if sourceType == "" {
				sourceType = doc.SourceType
			}
			poNumber := in.PONumber
			if poNumber == "" {
				poNumber = doc.PONumber
			}
			note := in.Note
			bast := doc.BastAttachment
			if in.Bast != nil {
				bast = attachment(in.Bast, now)
			}
			delivery := doc.DeliveryProofAttachment
			if in.DeliveryProof != nil {
				delivery = attachment(in.DeliveryProof, now)
			}
			if err := validateIncoming(sourceType, poNumber, note, bast, delivery); err != nil {
				return err
			}
			applyQuantityEffect(r.Items, doc, -1)
			doc.SourceType = sourceType
			doc.PONumber = poNumber
			doc.BastAttachment = bast
			doc.DeliveryProofAttachment = delivery
		case entity.DirectionOut:
			destType := in.DestType
			if destType == "" {
				destType = doc.DestType
			}
			if err := validateOutgoing(destType, in.Note); err != nil {
				return err
			}
			applyQuantityEffect(r.Items, doc, -1)
			doc.DestType = destType
			if in.DestRef != "" {
				doc.DestRef = in.DestRef
			}
		}

		doc.Date = parseDate(in.Date, doc.Date)
		if in.Property != "" {
			doc.Property = in.Property
		}
		doc.Note = in.Note
		doc.Lines = lines
		doc.Status = entity.MovementStatusPosted
		doc.AppendHistory(now, entity.MovementActionModified, "Movement modified by Property PIC")
		applyQuantityEffect(r.Items, doc, 1)
		out = toMovementResponse(doc, true)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Revert restaura el snapshot de dos acciones atrás: history[len-2]. Reversa
// el efecto vigente, restaura todos los campos salvo History, registra
// "Reverted" y reaplica el efecto restaurado. Con menos de dos entradas no hay
// versión anterior y la operación falla sin mutar.
func (uc *LedgerUseCase) Revert(ctx context.Context, id string) (*dto.MovementResponse, error) {
	now := time.Now()
	var out *dto.MovementResponse
	err := uc.tx.Run(ctx, func(r ports.RepoSet) error {
		doc, err := r.Movements.GetByID(id)
		if err != nil {
			return err
		}
		if len(doc.History) < 2 {
			return domain.ErrNoPreviousVersion
		}
		target := doc.History[len(doc.History)-2].Snapshot
		applyQuantityEffect(r.Items, doc, -1)
		doc.Restore(target)
		doc.AppendHistory(now, entity.MovementActionReverted, "Reverted to previous version")
		applyQuantityEffect(r.Items, doc, 1)
		out = toMovementResponse(doc, true)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID devuelve un documento con su historial.
func (uc *LedgerUseCase) GetByID(ctx context.Context, id string) (*dto.MovementResponse, error) {
	var out *dto.MovementResponse
	err := uc.tx.Run(ctx, func(r ports.RepoSet) error {
		doc, err := r.Movements.GetByID(id)
		if err != nil {
			return err
		}
		out = toMovementResponse(doc, true)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// List devuelve un libro completo (sin historial por documento).
func (uc *LedgerUseCase) List(ctx context.Context, direction string) (*dto.MovementListResponse, error) {
	var out *dto.MovementListResponse
	err := uc.tx.Run(ctx, func(r ports.RepoSet) error {
		docs, err := r.Movements.List(direction)
		if err != nil {
			return err
		}
		items := make([]dto.MovementResponse, 0, len(docs))
		for _, d := range docs {
			items = append(items, *toMovementResponse(d, false))
		}
		out = &dto.MovementListResponse{Items: items, Total: len(items)}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// PostPrepared contabiliza un documento ya armado usando los repositorios de
// la transacción del caller (misma sección crítica). Lo usa la aprobación de
// opname para emitir sus documentos compensatorios.
func PostPrepared(r ports.RepoSet, doc *entity.MovementDocument, now time.Time) error {
	id, err := r.Movements.NextID(doc.Direction)
	if err != nil {
		return err
	}
	doc.ID = id
	doc.Status = entity.MovementStatusPosted
	doc.AppendHistory(now, entity.MovementActionPosted, "New movement recorded")
	applyQuantityEffect(r.Items, doc, 1)
	return r.Movements.Append(doc)
}

func toAttachmentResponse(a *entity.Attachment) *dto.AttachmentResponse {
	if a == nil {
		return nil
	}
	return &dto.AttachmentResponse{Name: a.Name, Size: a.Size, Type: a.Type, UploadedAt: a.UploadedAt}
}

func toMovementResponse(d *entity.MovementDocument, withHistory bool) *dto.MovementResponse {
	lines := make([]dto.MovementLineResponse, 0, len(d.Lines))
	for _, ln := range d.Lines {
		lines = append(lines, dto.MovementLineResponse{
			ItemID:   ln.ItemID,
			ItemName: ln.ItemName,
			ItemType: ln.ItemType,
			UOM:      ln.UOM,
			Qty:      ln.Qty,
		})
	}
	resp := &dto.MovementResponse{
		ID:            d.ID,
		Direction:     d.Direction,
		Date:          d.Date,
		Property:      d.Property,
		SourceType:    d.SourceType,
		PONumber:      d.PONumber,
		Bast:          toAttachmentResponse(d.BastAttachment),
		DeliveryProof: toAttachmentResponse(d.DeliveryProofAttachment),
		DestType:      d.DestType,
		DestRef:       d.DestRef,
		Note:          d.Note,
		Status:        d.Status,
		Lines:         lines,
	}
	if withHistory {
		resp.History = make([]dto.MovementHistoryResponse, 0, len(d.History))
		for _, h := range d.History {
			resp.History = append(resp.History, dto.MovementHistoryResponse{TS: h.TS, Action: h.Action, Detail: h.Detail})
		}
	}
	return resp
}
