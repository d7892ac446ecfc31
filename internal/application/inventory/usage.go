package inventory

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ariefstwn/hotelstock-api/internal/domain/entity"
)

// Last7DayUsage suma las cantidades de las líneas de documentos salientes
// POSTED con destino DEPARTMENT fechados dentro de los últimos 7 días. Es un
// valor derivado, recalculado en cada lectura; nunca se guarda como
// autoritativo.
func Last7DayUsage(outgoing []*entity.MovementDocument, itemID, itemType string, now time.Time) decimal.Decimal {
	cutoff := now.AddDate(0, 0, -7)
	sum := decimal.Zero
	for _, doc := range outgoing {
		if doc.Direction != entity.DirectionOut || doc.Status != entity.MovementStatusPosted {
			continue
		}
		if doc.DestType != entity.DestTypeDepartment {
			continue
		}
		if doc.Date.Before(cutoff) {
			continue
		}
		for _, ln := range doc.Lines {
			if ln.ItemID == itemID && ln.ItemType == itemType {
				sum = sum.Add(ln.Qty)
			}
		}
	}
	return sum
}
