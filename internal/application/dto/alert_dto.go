package dto

import "github.com/shopspring/decimal"

// Clasificación de una fila de alerta.
const (
	AlertStatusBelow    = "below"
	AlertStatusCritical = "critical"
)

// StockAlertRow fila derivada del catálogo: no se persiste nunca.
type StockAlertRow struct {
	ItemID        string          `json:"item_id"`
	ItemName      string          `json:"item_name"`
	ItemType      string          `json:"item_type"`
	Unit          string          `json:"unit"`
	OnHand        decimal.Decimal `json:"on_hand"`
	MinStock      decimal.Decimal `json:"min_stock"`
	Mandatory     bool            `json:"mandatory"`
	Status        string          `json:"status"` // below | critical
	SuggestedQty  decimal.Decimal `json:"suggested_qty"`
	Last7DayUsage decimal.Decimal `json:"last_7day_usage"`
}

// StockAlertListResponse listado de alertas.
type StockAlertListResponse struct {
	Items []StockAlertRow `json:"items"`
	Total int             `json:"total"`
}

// AlertOverviewResponse KPIs del tablero de procurement: todo derivado, nada
// persistido.
type AlertOverviewResponse struct {
	CriticalItems  int             `json:"critical_items"`
	MandatoryBelow int             `json:"mandatory_below"`
	TotalShortage  decimal.Decimal `json:"total_shortage"`
}
