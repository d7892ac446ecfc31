package inventory_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ariefstwn/hotelstock-api/internal/application/dto"
	"github.com/ariefstwn/hotelstock-api/internal/application/inventory"
	"github.com/ariefstwn/hotelstock-api/internal/domain/entity"
	"github.com/ariefstwn/hotelstock-api/internal/infrastructure/memory"
)

// alertCatalog siembra ítems con stocks elegidos para cada clasificación.
func alertCatalog(t *testing.T, rows ...*entity.InventoryItem) *memory.Store {
	t.Helper()
	store := memory.NewStore()
	items := store.Repos().Items
	now := time.Now()
	for _, it := range rows {
		id, err := items.NextID(it.Type)
		require.NoError(t, err)
		it.ID = id
		if it.Status == "" {
			it.Status = entity.ItemStatusActive
		}
		it.CreatedAt = now
		it.UpdatedAt = now
		require.NoError(t, items.Create(it))
	}
	return store
}

func room(name string, minStock, onHand int64) *entity.InventoryItem {
	return &entity.InventoryItem{
		Type: entity.ItemTypeRoom, Name: name, Unit: "PCS",
		MinStock: decimal.NewFromInt(minStock), OnHand: decimal.NewFromInt(onHand),
	}
}

func TestAlertas_Clasificacion(t *testing.T) {
	store := alertCatalog(t,
		room("Bajo mínimo", 100, 95),      // onHand < min → below
		room("En el mínimo", 100, 100),    // min <= onHand <= 110 → critical
		room("En el borde", 100, 110),     // 110 == min*1.1 → critical
		room("Con holgura", 100, 150),     // > min*1.1 → excluido
		room("Sin mínimo", 0, 5),          // minStock 0 → excluido
	)
	uc := inventory.NewAlertUseCase(store)

	out, err := uc.List(context.Background(), "")
	require.NoError(t, err)

	require.Equal(t, 3, out.Total)
	byName := map[string]dto.StockAlertRow{}
	for _, r := range out.Items {
		byName[r.ItemName] = r
	}
	assert.Equal(t, dto.AlertStatusBelow, byName["Bajo mínimo"].Status)
	assert.Equal(t, dto.AlertStatusCritical, byName["En el mínimo"].Status)
	assert.Equal(t, dto.AlertStatusCritical, byName["En el borde"].Status)
	assert.NotContains(t, byName, "Con holgura")
	assert.NotContains(t, byName, "Sin mínimo")
}

func TestAlertas_ItemArchivadoNoAlerta(t *testing.T) {
	archived := room("Archivado", 100, 10)
	archived.Status = entity.ItemStatusArchived
	store := alertCatalog(t, archived)
	uc := inventory.NewAlertUseCase(store)

	out, err := uc.List(context.Background(), "")
	require.NoError(t, err)
	assert.Zero(t, out.Total)
}

func TestAlertas_CantidadSugerida(t *testing.T) {
	store := alertCatalog(t,
		room("Faltante", 100, 95),   // 100*2 - 95 = 105
		room("Al mínimo", 50, 50),   // 50*2 - 50 = 50
	)
	uc := inventory.NewAlertUseCase(store)

	out, err := uc.List(context.Background(), "")
	require.NoError(t, err)
	require.Equal(t, 2, out.Total)
	for _, r := range out.Items {
		switch r.ItemName {
		case "Faltante":
			assert.True(t, r.SuggestedQty.Equal(decimal.NewFromInt(105)))
		case "Al mínimo":
			assert.True(t, r.SuggestedQty.Equal(decimal.NewFromInt(50)))
		}
	}
}

func TestAlertas_FiltroPorEstado(t *testing.T) {
	store := alertCatalog(t,
		room("Bajo mínimo", 100, 95),
		room("Crítico", 100, 105),
	)
	uc := inventory.NewAlertUseCase(store)

	below, err := uc.List(context.Background(), dto.AlertStatusBelow)
	require.NoError(t, err)
	critical, err := uc.List(context.Background(), dto.AlertStatusCritical)
	require.NoError(t, err)

	assert.Equal(t, 1, below.Total)
	assert.Equal(t, "Bajo mínimo", below.Items[0].ItemName)
	assert.Equal(t, 1, critical.Total)
	assert.Equal(t, "Crítico", critical.Items[0].ItemName)
}

func TestAlertas_Overview(t *testing.T) {
	mandatory := room("Obligatorio bajo", 100, 95) // faltante 5
	mandatory.Mandatory = true
	store := alertCatalog(t,
		mandatory,
		room("Crítico", 100, 105), // faltante 0 (sobre el mínimo)
	)
	uc := inventory.NewAlertUseCase(store)

	out, err := uc.Overview(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, out.CriticalItems)
	assert.Equal(t, 1, out.MandatoryBelow)
	assert.True(t, out.TotalShortage.Equal(decimal.NewFromInt(5)),
		"solo los ítems bajo el mínimo aportan faltante")
}

// ──────────────────────────────────────────────────────────────────────────────
// Last7DayUsage
// ──────────────────────────────────────────────────────────────────────────────

func TestUso7Dias_SoloSalidasPosteadasADepartamento(t *testing.T) {
	now := time.Now()
	line := func(qty int64) []entity.MovementLine {
		return []entity.MovementLine{{ItemID: "R1", ItemType: entity.ItemTypeRoom, Qty: decimal.NewFromInt(qty)}}
	}
	outgoing := []*entity.MovementDocument{
		{Direction: entity.DirectionOut, Status: entity.MovementStatusPosted, DestType: entity.DestTypeDepartment, Date: now.AddDate(0, 0, -2), Lines: line(10)},
		{Direction: entity.DirectionOut, Status: entity.MovementStatusPosted, DestType: entity.DestTypeDepartment, Date: now.AddDate(0, 0, -6), Lines: line(5)},
		// fuera de ventana
		{Direction: entity.DirectionOut, Status: entity.MovementStatusPosted, DestType: entity.DestTypeDepartment, Date: now.AddDate(0, 0, -10), Lines: line(99)},
		// descartado
		{Direction: entity.DirectionOut, Status: entity.MovementStatusDiscarded, DestType: entity.DestTypeDepartment, Date: now.AddDate(0, 0, -1), Lines: line(99)},
		// ajuste, no consumo de departamento
		{Direction: entity.DirectionOut, Status: entity.MovementStatusPosted, DestType: entity.DestTypeAdjustment, Date: now.AddDate(0, 0, -1), Lines: line(99)},
	}

	usage := inventory.Last7DayUsage(outgoing, "R1", entity.ItemTypeRoom, now)
	assert.True(t, usage.Equal(decimal.NewFromInt(15)), "10 + 5 dentro de la ventana")
}
