package inventory

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ariefstwn/hotelstock-api/internal/application/dto"
	"github.com/ariefstwn/hotelstock-api/internal/application/ports"
	"github.com/ariefstwn/hotelstock-api/internal/domain/entity"
)

// criticalBuffer margen sobre el mínimo que clasifica como crítico (110%).
var criticalBuffer = decimal.NewFromFloat(1.1)

// AlertUseCase proyección pura del catálogo: clasifica ítems bajo mínimo y
// sugiere cantidades de reposición. Sin estado propio ni efectos.
type AlertUseCase struct {
	tx ports.TxRunner
}

// NewAlertUseCase construye el caso de uso.
func NewAlertUseCase(tx ports.TxRunner) *AlertUseCase {
	return &AlertUseCase{tx: tx}
}

// classify devuelve below/critical, o "" si el ítem no alerta.
func classify(item *entity.InventoryItem) string {
	if !item.IsActive() || !item.MinStock.IsPositive() {
		return ""
	}
	switch {
	case item.OnHand.LessThan(item.MinStock):
		return dto.AlertStatusBelow
	case item.OnHand.LessThanOrEqual(item.MinStock.Mul(criticalBuffer)):
		return dto.AlertStatusCritical
	}
	return ""
}

// suggestedQty cantidad sugerida: max(minStock*2 - onHand, 0).
func suggestedQty(item *entity.InventoryItem) decimal.Decimal {
	q := item.MinStock.Mul(decimal.NewFromInt(2)).Sub(item.OnHand)
	if q.IsNegative() {
		return decimal.Zero
	}
	return q
}

// buildRows arma las filas de alerta dentro de una transacción (catálogo y
// libro de salidas leídos consistentes entre sí).
func (uc *AlertUseCase) buildRows(r ports.RepoSet, now time.Time) ([]dto.StockAlertRow, error) {
	items, err := r.Items.List("")
	if err != nil {
		return nil, err
	}
	outgoing, err := r.Movements.List(entity.DirectionOut)
	if err != nil {
		return nil, err
	}
	rows := make([]dto.StockAlertRow, 0)
	for _, item := range items {
		status := classify(item)
		if status == "" {
			continue
		}
		rows = append(rows, dto.StockAlertRow{
			ItemID:        item.ID,
			ItemName:      item.Name,
			ItemType:      item.Type,
			Unit:          item.Unit,
			OnHand:        item.OnHand,
			MinStock:      item.MinStock,
			Mandatory:     item.Mandatory,
			Status:        status,
			SuggestedQty:  suggestedQty(item),
			Last7DayUsage: Last7DayUsage(outgoing, item.ID, item.Type, now),
		})
	}
	return rows, nil
}

// List devuelve las filas de alerta, opcionalmente filtradas por estado.
func (uc *AlertUseCase) List(ctx context.Context, statusFilter string) (*dto.StockAlertListResponse, error) {
	now := time.Now()
	var out *dto.StockAlertListResponse
	err := uc.tx.Run(ctx, func(r ports.RepoSet) error {
		rows, err := uc.buildRows(r, now)
		if err != nil {
			return err
		}
		if statusFilter != "" {
			filtered := rows[:0]
			for _, row := range rows {
				if row.Status == statusFilter {
					filtered = append(filtered, row)
				}
			}
			rows = filtered
		}
		out = &dto.StockAlertListResponse{Items: rows, Total: len(rows)}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Rows devuelve las filas sin filtrar; lo usa reposición para sembrar líneas.
func (uc *AlertUseCase) Rows(r ports.RepoSet, now time.Time) ([]dto.StockAlertRow, error) {
	return uc.buildRows(r, now)
}

// Overview KPIs del tablero: ítems críticos, obligatorios bajo mínimo y
// faltante total (suma de max(minStock - onHand, 0) sobre las filas alertadas).
func (uc *AlertUseCase) Overview(ctx context.Context) (*dto.AlertOverviewResponse, error) {
	now := time.Now()
	var out *dto.AlertOverviewResponse
	err := uc.tx.Run(ctx, func(r ports.RepoSet) error {
		rows, err := uc.buildRows(r, now)
		if err != nil {
			return err
		}
		overview := &dto.AlertOverviewResponse{TotalShortage: decimal.Zero}
		for _, row := range rows {
			if row.Status == dto.AlertStatusCritical {
				overview.CriticalItems++
			}
			if row.Mandatory {
				overview.MandatoryBelow++
			}
			if shortage := row.MinStock.Sub(row.OnHand); shortage.IsPositive() {
				overview.TotalShortage = overview.TotalShortage.Add(shortage)
			}
		}
		out = overview
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
