package replenishment_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ariefstwn/hotelstock-api/internal/application/dto"
	"github.com/ariefstwn/hotelstock-api/internal/application/inventory"
	"github.com/ariefstwn/hotelstock-api/internal/application/replenishment"
	"github.com/ariefstwn/hotelstock-api/internal/domain"
	"github.com/ariefstwn/hotelstock-api/internal/domain/entity"
	"github.com/ariefstwn/hotelstock-api/internal/infrastructure/memory"
)

const (
	testProperty = "Urbanview Test"
	requestor    = "Arief"
	omName       = "Zahran"
	olName       = "Audy"
	phName       = "Leon"
)

// newFixture arma el Store con catálogo, perfiles y el caso de uso listo.
func newFixture(t *testing.T) (*memory.Store, *replenishment.UseCase) {
	t.Helper()
	store := memory.NewStore()
	now := time.Now()

	items := store.Repos().Items
	seed := []*entity.InventoryItem{
		// 100/60: no alerta. 10/20: below.
		{Type: entity.ItemTypeRoom, Name: "Bath Towel", Unit: "PCS", MinStock: decimal.NewFromInt(60), OnHand: decimal.NewFromInt(100)},
		{Type: entity.ItemTypeRoom, Name: "Slippers", Unit: "PAIR", MinStock: decimal.NewFromInt(20), OnHand: decimal.NewFromInt(10)},
	}
	for _, it := range seed {
		id, err := items.NextID(it.Type)
		require.NoError(t, err)
		it.ID = id
		it.Status = entity.ItemStatusActive
		it.CreatedAt = now
		it.UpdatedAt = now
		require.NoError(t, items.Create(it))
	}

	users := memory.NewUserRepository(store)
	profiles := []*entity.User{
		{ID: "u1", Email: "arief@test.example", Name: requestor, Role: entity.RolePropertyPIC},
		{ID: "u2", Email: "zahran@test.example", Name: omName, Role: entity.RoleOperationalManager},
		{ID: "u3", Email: "audy@test.example", Name: olName, Role: entity.RoleOperationLead},
		{ID: "u4", Email: "leon@test.example", Name: phName, Role: entity.RolePropertyHead},
	}
	for _, u := range profiles {
		u.CreatedAt = now
		u.UpdatedAt = now
		require.NoError(t, users.Create(u))
	}

	alerts := inventory.NewAlertUseCase(store)
	uc := replenishment.NewUseCase(store, users, alerts, nil, testProperty)
	return store, uc
}

func manualLine(qty int64) dto.ReplenishmentLinePayload {
	return dto.ReplenishmentLinePayload{
		ItemID:     "R1",
		ItemType:   entity.ItemTypeRoom,
		Qty:        decimal.NewFromInt(qty),
		Department: "Housekeeping",
	}
}

func draftInReview(t *testing.T, uc *replenishment.UseCase) *dto.ReplenishmentResponse {
	t.Helper()
	draft, err := uc.Create(context.Background(), requestor, entity.RolePropertyPIC, dto.CreateReplenishmentRequest{
		Lines: []dto.ReplenishmentLinePayload{manualLine(30)},
	})
	require.NoError(t, err)
	out, err := uc.Submit(context.Background(), draft.ID, requestor)
	require.NoError(t, err)
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Crear
// ──────────────────────────────────────────────────────────────────────────────

func TestCrear_ArmaLaCadenaDeAprobacionEnOrden(t *testing.T) {
	_, uc := newFixture(t)

	out, err := uc.Create(context.Background(), requestor, entity.RolePropertyPIC, dto.CreateReplenishmentRequest{
		Lines: []dto.ReplenishmentLinePayload{manualLine(30)},
	})
	require.NoError(t, err)

	assert.Equal(t, "PR-001", out.ID)
	assert.Equal(t, entity.ReplenishmentStatusDraft, out.Status)
	require.Len(t, out.Approvals, 3)
	assert.Equal(t, omName, out.Approvals[0].Name)
	assert.Equal(t, olName, out.Approvals[1].Name)
	assert.Equal(t, phName, out.Approvals[2].Name)
	for _, a := range out.Approvals {
		assert.Equal(t, entity.ApprovalStatusPending, a.Status)
	}
}

func TestCrear_DesdeAlertas_SiembraConCantidadSugerida(t *testing.T) {
	_, uc := newFixture(t)

	out, err := uc.Create(context.Background(), requestor, entity.RolePropertyPIC, dto.CreateReplenishmentRequest{
		FromAlerts: []dto.AlertSelection{{ItemID: "R2", ItemType: entity.ItemTypeRoom}},
	})
	require.NoError(t, err)

	require.Len(t, out.Items, 1)
	assert.Equal(t, "Slippers", out.Items[0].ItemName)
	// suggested = 20*2 - 10 = 30, tomada como solicitada
	assert.True(t, out.Items[0].SuggestedQty.Equal(decimal.NewFromInt(30)))
	assert.True(t, out.Items[0].RequestedQty.Equal(decimal.NewFromInt(30)))
}

func TestCrear_SeleccionQueYaNoAlerta_SeOmite(t *testing.T) {
	_, uc := newFixture(t)

	// R1 tiene holgura (100/60): no hay fila de alerta que sembrar.
	_, err := uc.Create(context.Background(), requestor, entity.RolePropertyPIC, dto.CreateReplenishmentRequest{
		FromAlerts: []dto.AlertSelection{{ItemID: "R1", ItemType: entity.ItemTypeRoom}},
	})
	assert.ErrorIs(t, err, domain.ErrNoLines, "sin líneas válidas el borrador no se crea")
}

func TestCrear_SinLineas_Falla(t *testing.T) {
	_, uc := newFixture(t)
	_, err := uc.Create(context.Background(), requestor, entity.RolePropertyPIC, dto.CreateReplenishmentRequest{})
	assert.ErrorIs(t, err, domain.ErrNoLines)
}

// ──────────────────────────────────────────────────────────────────────────────
// Enviar / editar
// ──────────────────────────────────────────────────────────────────────────────

func TestEnviar_SoloElSolicitante(t *testing.T) {
	_, uc := newFixture(t)
	draft, err := uc.Create(context.Background(), requestor, entity.RolePropertyPIC, dto.CreateReplenishmentRequest{
		Lines: []dto.ReplenishmentLinePayload{manualLine(30)},
	})
	require.NoError(t, err)

	_, err = uc.Submit(context.Background(), draft.ID, omName)
	assert.ErrorIs(t, err, domain.ErrNotRequestor)

	out, err := uc.Submit(context.Background(), draft.ID, requestor)
	require.NoError(t, err)
	assert.Equal(t, entity.ReplenishmentStatusInReview, out.Status)
}

func TestEnviar_DosVeces_Falla(t *testing.T) {
	_, uc := newFixture(t)
	req := draftInReview(t, uc)

	_, err := uc.Submit(context.Background(), req.ID, requestor)
	assert.ErrorIs(t, err, domain.ErrAlreadySubmitted)
}

func TestEnviar_RecalculaElConsumoDe7Dias(t *testing.T) {
	store, uc := newFixture(t)

	// Consumo reciente de R1: 12 hace dos días.
	ledger := inventory.NewLedgerUseCase(store, testProperty)
	_, err := ledger.Post(context.Background(), dto.PostMovementRequest{
		Direction: entity.DirectionOut,
		DestType:  entity.DestTypeDepartment,
		DestRef:   "Housekeeping",
		Date:      time.Now().AddDate(0, 0, -2).Format("2006-01-02"),
		Lines: []dto.MovementLinePayload{
			{ItemID: "R1", ItemType: entity.ItemTypeRoom, Qty: decimal.NewFromInt(12)},
		},
	})
	require.NoError(t, err)

	req := draftInReview(t, uc)
	require.Len(t, req.Items, 1)
	assert.True(t, req.Items[0].Last7DayUsage.Equal(decimal.NewFromInt(12)),
		"el consumo se recongela al enviar")
}

func TestEditar_EnRevision_Falla(t *testing.T) {
	_, uc := newFixture(t)
	req := draftInReview(t, uc)

	notes := "cambio tardío"
	_, err := uc.Update(context.Background(), req.ID, requestor, dto.UpdateReplenishmentRequest{Notes: &notes})
	assert.ErrorIs(t, err, domain.ErrAlreadySubmitted)
}

// ──────────────────────────────────────────────────────────────────────────────
// Cadena de aprobación
// ──────────────────────────────────────────────────────────────────────────────

func TestAprobar_EstrictamenteEnOrden(t *testing.T) {
	_, uc := newFixture(t)
	req := draftInReview(t, uc)

	// Leon (tercero) no puede saltarse la cola.
	_, err := uc.Approve(context.Background(), req.ID, phName)
	assert.ErrorIs(t, err, domain.ErrNotCurrentApprover)

	out, err := uc.Approve(context.Background(), req.ID, omName)
	require.NoError(t, err)
	assert.Equal(t, entity.ReplenishmentStatusInReview, out.Status)
	assert.Equal(t, entity.ApprovalStatusApproved, out.Approvals[0].Status)
	require.NotNil(t, out.Approvals[0].At)

	_, err = uc.Approve(context.Background(), req.ID, olName)
	require.NoError(t, err)
	out, err = uc.Approve(context.Background(), req.ID, phName)
	require.NoError(t, err)

	assert.Equal(t, entity.ReplenishmentStatusApproved, out.Status,
		"la última aprobación cierra la solicitud")
}

func TestRechazar_CortaLaCadenaDeInmediato(t *testing.T) {
	_, uc := newFixture(t)
	req := draftInReview(t, uc)

	_, err := uc.Approve(context.Background(), req.ID, omName)
	require.NoError(t, err)

	out, err := uc.Reject(context.Background(), req.ID, olName)
	require.NoError(t, err)

	assert.Equal(t, entity.ReplenishmentStatusRejected, out.Status)
	assert.Equal(t, entity.ApprovalStatusApproved, out.Approvals[0].Status,
		"la aprobación previa queda registrada")
	assert.Equal(t, entity.ApprovalStatusRejected, out.Approvals[1].Status)
	assert.Equal(t, entity.ApprovalStatusPending, out.Approvals[2].Status,
		"el tercer aprobador nunca llegó a actuar")
}

func TestReenviarTrasRechazo_ReiniciaTodaLaCadena(t *testing.T) {
	_, uc := newFixture(t)
	req := draftInReview(t, uc)

	_, err := uc.Approve(context.Background(), req.ID, omName)
	require.NoError(t, err)
	_, err = uc.Reject(context.Background(), req.ID, olName)
	require.NoError(t, err)

	out, err := uc.Submit(context.Background(), req.ID, requestor)
	require.NoError(t, err)

	assert.Equal(t, entity.ReplenishmentStatusInReview, out.Status)
	for i, a := range out.Approvals {
		assert.Equal(t, entity.ApprovalStatusPending, a.Status, "entrada %d debe volver a PENDING", i)
		assert.Nil(t, a.At)
	}
}

func TestDecidir_FueraDeRevision_Falla(t *testing.T) {
	_, uc := newFixture(t)
	draft, err := uc.Create(context.Background(), requestor, entity.RolePropertyPIC, dto.CreateReplenishmentRequest{
		Lines: []dto.ReplenishmentLinePayload{manualLine(30)},
	})
	require.NoError(t, err)

	_, err = uc.Approve(context.Background(), draft.ID, omName)
	assert.ErrorIs(t, err, domain.ErrWrongState, "un borrador no tiene turno de aprobación")
}

// ──────────────────────────────────────────────────────────────────────────────
// Eliminar
// ──────────────────────────────────────────────────────────────────────────────

func TestEliminar_SoloBorradoresDelSolicitante(t *testing.T) {
	_, uc := newFixture(t)
	draft, err := uc.Create(context.Background(), requestor, entity.RolePropertyPIC, dto.CreateReplenishmentRequest{
		Lines: []dto.ReplenishmentLinePayload{manualLine(30)},
	})
	require.NoError(t, err)

	err = uc.Delete(context.Background(), draft.ID, omName)
	assert.ErrorIs(t, err, domain.ErrNotRequestor)

	require.NoError(t, uc.Delete(context.Background(), draft.ID, requestor))
	_, err = uc.GetByID(context.Background(), draft.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEliminar_EnRevision_Falla(t *testing.T) {
	_, uc := newFixture(t)
	req := draftInReview(t, uc)

	err := uc.Delete(context.Background(), req.ID, requestor)
	assert.ErrorIs(t, err, domain.ErrOnlyDraftDeletable)
}
