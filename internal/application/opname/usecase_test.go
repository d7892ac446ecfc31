package opname_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ariefstwn/hotelstock-api/internal/application/dto"
	"github.com/ariefstwn/hotelstock-api/internal/application/opname"
	"github.com/ariefstwn/hotelstock-api/internal/domain"
	"github.com/ariefstwn/hotelstock-api/internal/domain/entity"
	"github.com/ariefstwn/hotelstock-api/internal/infrastructure/memory"
)

const (
	testProperty = "Urbanview Test"
	creatorName  = "Arief"
	approverName = "Zahran"
)

// newCatalog siembra un ítem room con 100 y un ítem laundry con 40.
func newCatalog(t *testing.T) *memory.Store {
	t.Helper()
	store := memory.NewStore()
	items := store.Repos().Items
	now := time.Now()
	seed := []*entity.InventoryItem{
		{Type: entity.ItemTypeRoom, Name: "Bath Towel", Unit: "PCS", MinStock: decimal.NewFromInt(60), OnHand: decimal.NewFromInt(100)},
		{Type: entity.ItemTypeLaundry, Name: "Duvet Cover", Unit: "PCS", MinStock: decimal.NewFromInt(30), OnHand: decimal.NewFromInt(40)},
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
	return store
}

func countedSession(t *testing.T, uc *opname.UseCase, counted int64) *dto.OpnameSessionResponse {
	t.Helper()
	session, err := uc.Create(context.Background(), creatorName, dto.CreateOpnameRequest{
		Name:     "Conteo mensual",
		Coverage: entity.OpnameCoverageRoom,
	})
	require.NoError(t, err)
	require.Len(t, session.Lines, 1)

	qty := decimal.NewFromInt(counted)
	_, err = uc.UpdateLine(context.Background(), session.ID, session.Lines[0].ID, creatorName, dto.UpdateOpnameLineRequest{
		CountedQty: &qty,
	})
	require.NoError(t, err)
	out, err := uc.Submit(context.Background(), session.ID, creatorName)
	require.NoError(t, err)
	return out
}

func TestCrearSesion_SiembraUnaLineaPorItem(t *testing.T) {
	store := newCatalog(t)
	uc := opname.NewUseCase(store, testProperty)

	out, err := uc.Create(context.Background(), creatorName, dto.CreateOpnameRequest{
		Name:     "Conteo mensual",
		Coverage: entity.OpnameCoverageBoth,
	})
	require.NoError(t, err)

	assert.Equal(t, "OP-001", out.ID)
	assert.Equal(t, entity.OpnameStatusInProgress, out.Status)
	require.Len(t, out.Lines, 2, "BOTH cubre room y laundry")
	assert.Equal(t, "SL-R1", out.Lines[0].ID)
	assert.True(t, out.Lines[0].SystemQty.Equal(decimal.NewFromInt(100)),
		"SystemQty congela el OnHand al abrir")
	assert.True(t, out.Lines[0].CountedQty.Equal(out.Lines[0].SystemQty))
}

func TestCrearSesion_CoberturaInvalida_Falla(t *testing.T) {
	store := newCatalog(t)
	uc := opname.NewUseCase(store, testProperty)

	_, err := uc.Create(context.Background(), creatorName, dto.CreateOpnameRequest{
		Name: "Conteo", Coverage: "WAREHOUSE",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestVerSesionEnCurso_SoloElCreador(t *testing.T) {
	store := newCatalog(t)
	uc := opname.NewUseCase(store, testProperty)

	session, err := uc.Create(context.Background(), creatorName, dto.CreateOpnameRequest{
		Name: "Conteo", Coverage: entity.OpnameCoverageRoom,
	})
	require.NoError(t, err)

	_, err = uc.GetByID(context.Background(), session.ID, "Otro Usuario")
	assert.ErrorIs(t, err, domain.ErrForbidden)

	out, err := uc.GetByID(context.Background(), session.ID, creatorName)
	require.NoError(t, err)
	assert.Len(t, out.Lines, 1)
}

func TestContarLinea_RecalculaVarianza(t *testing.T) {
	store := newCatalog(t)
	uc := opname.NewUseCase(store, testProperty)

	session, err := uc.Create(context.Background(), creatorName, dto.CreateOpnameRequest{
		Name: "Conteo", Coverage: entity.OpnameCoverageRoom,
	})
	require.NoError(t, err)

	qty := decimal.NewFromInt(130)
	line, err := uc.UpdateLine(context.Background(), session.ID, session.Lines[0].ID, creatorName, dto.UpdateOpnameLineRequest{
		CountedQty: &qty,
	})
	require.NoError(t, err)

	assert.True(t, line.CountedQty.Equal(decimal.NewFromInt(130)))
	assert.True(t, line.VarianceQty.Equal(decimal.NewFromInt(30)), "130 - 100 = 30")
}

func TestContarLinea_NegativaORolAjeno_Falla(t *testing.T) {
	store := newCatalog(t)
	uc := opname.NewUseCase(store, testProperty)

	session, err := uc.Create(context.Background(), creatorName, dto.CreateOpnameRequest{
		Name: "Conteo", Coverage: entity.OpnameCoverageRoom,
	})
	require.NoError(t, err)
	lineID := session.Lines[0].ID

	negative := decimal.NewFromInt(-3)
	_, err = uc.UpdateLine(context.Background(), session.ID, lineID, creatorName, dto.UpdateOpnameLineRequest{CountedQty: &negative})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	qty := decimal.NewFromInt(90)
	_, err = uc.UpdateLine(context.Background(), session.ID, lineID, "Otro Usuario", dto.UpdateOpnameLineRequest{CountedQty: &qty})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestEnviarSesion_BloqueaLaEdicion(t *testing.T) {
	store := newCatalog(t)
	uc := opname.NewUseCase(store, testProperty)
	session := countedSession(t, uc, 130)

	assert.Equal(t, entity.OpnameStatusPendingApproval, session.Status)

	qty := decimal.NewFromInt(90)
	_, err := uc.UpdateLine(context.Background(), session.ID, session.Lines[0].ID, creatorName, dto.UpdateOpnameLineRequest{CountedQty: &qty})
	assert.ErrorIs(t, err, domain.ErrWrongState)
}

func TestAprobar_SobranteGeneraEntradaDeAjuste(t *testing.T) {
	store := newCatalog(t)
	uc := opname.NewUseCase(store, testProperty)
	session := countedSession(t, uc, 130) // system 100, counted 130

	out, err := uc.Approve(context.Background(), session.ID, approverName, entity.RoleOperationalManager)
	require.NoError(t, err)

	assert.Equal(t, entity.OpnameStatusPosted, out.Status)
	assert.Equal(t, approverName, out.ApprovedBy)
	assert.True(t, out.Lines[0].SystemQty.Equal(decimal.NewFromInt(130)),
		"SystemQty queda congelado en el conteo")
	assert.True(t, out.Lines[0].VarianceQty.IsZero())

	// El stock converge al conteo vía un documento entrante OPNAME_ADJUSTMENT.
	item, err := store.Repos().Items.GetByID("R1", entity.ItemTypeRoom)
	require.NoError(t, err)
	assert.True(t, item.OnHand.Equal(decimal.NewFromInt(130)))

	docs, err := store.Repos().Movements.List(entity.DirectionIn)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, entity.SourceTypeOpnameAdjustment, docs[0].SourceType)
	assert.True(t, docs[0].Lines[0].Qty.Equal(decimal.NewFromInt(30)), "una línea por los 30 de sobrante")

	outDocs, err := store.Repos().Movements.List(entity.DirectionOut)
	require.NoError(t, err)
	assert.Empty(t, outDocs, "sin faltantes no se emite documento saliente")
}

func TestAprobar_FaltanteGeneraSalidaDeAjuste(t *testing.T) {
	store := newCatalog(t)
	uc := opname.NewUseCase(store, testProperty)
	session := countedSession(t, uc, 80) // system 100, counted 80

	_, err := uc.Approve(context.Background(), session.ID, approverName, entity.RoleOperationalManager)
	require.NoError(t, err)

	item, err := store.Repos().Items.GetByID("R1", entity.ItemTypeRoom)
	require.NoError(t, err)
	assert.True(t, item.OnHand.Equal(decimal.NewFromInt(80)))

	outDocs, err := store.Repos().Movements.List(entity.DirectionOut)
	require.NoError(t, err)
	require.Len(t, outDocs, 1)
	assert.Equal(t, entity.DestTypeOpnameAdjustment, outDocs[0].DestType)
	assert.True(t, outDocs[0].Lines[0].Qty.Equal(decimal.NewFromInt(20)))
}

func TestAprobar_SinVarianza_NoEmiteDocumentos(t *testing.T) {
	store := newCatalog(t)
	uc := opname.NewUseCase(store, testProperty)
	session := countedSession(t, uc, 100) // conteo igual al sistema

	_, err := uc.Approve(context.Background(), session.ID, approverName, entity.RoleOperationalManager)
	require.NoError(t, err)

	inDocs, err := store.Repos().Movements.List(entity.DirectionIn)
	require.NoError(t, err)
	outDocs, err := store.Repos().Movements.List(entity.DirectionOut)
	require.NoError(t, err)
	assert.Empty(t, inDocs)
	assert.Empty(t, outDocs)
}

func TestAprobar_RequiereOperationalManagerYEstadoPendiente(t *testing.T) {
	store := newCatalog(t)
	uc := opname.NewUseCase(store, testProperty)
	session := countedSession(t, uc, 130)

	_, err := uc.Approve(context.Background(), session.ID, creatorName, entity.RolePropertyPIC)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = uc.Approve(context.Background(), session.ID, approverName, entity.RoleOperationalManager)
	require.NoError(t, err)

	// Segunda aprobación: la sesión ya está POSTED.
	_, err = uc.Approve(context.Background(), session.ID, approverName, entity.RoleOperationalManager)
	assert.ErrorIs(t, err, domain.ErrWrongState)
}
