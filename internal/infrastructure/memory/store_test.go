package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ariefstwn/hotelstock-api/internal/application/ports"
	"github.com/ariefstwn/hotelstock-api/internal/domain/entity"
	"github.com/ariefstwn/hotelstock-api/internal/infrastructure/memory"
)

func newItem(t *testing.T, store *memory.Store, itemType, name string) *entity.InventoryItem {
	t.Helper()
	items := store.Repos().Items
	id, err := items.NextID(itemType)
	require.NoError(t, err)
	it := &entity.InventoryItem{
		ID:        id,
		Type:      itemType,
		Name:      name,
		Unit:      "PCS",
		MinStock:  decimal.NewFromInt(10),
		OnHand:    decimal.NewFromInt(50),
		Status:    entity.ItemStatusActive,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	require.NoError(t, items.Create(it))
	return it
}

// ──────────────────────────────────────────────────────────────────────────────
// Formato de IDs
// ──────────────────────────────────────────────────────────────────────────────

func TestNextID_PrefijosPorCatalogo(t *testing.T) {
	store := memory.NewStore()

	r := newItem(t, store, entity.ItemTypeRoom, "Bath Towel")
	l := newItem(t, store, entity.ItemTypeLaundry, "Duvet Cover")
	r2 := newItem(t, store, entity.ItemTypeRoom, "Slippers")

	assert.Equal(t, "R1", r.ID)
	assert.Equal(t, "L1", l.ID)
	assert.Equal(t, "R2", r2.ID, "los consecutivos son independientes por catálogo")
}

func TestNextID_LibrosYSecuencias(t *testing.T) {
	store := memory.NewStore()
	repos := store.Repos()

	in, err := repos.Movements.NextID(entity.DirectionIn)
	require.NoError(t, err)
	out, err := repos.Movements.NextID(entity.DirectionOut)
	require.NoError(t, err)
	op, err := repos.Opname.NextSessionID()
	require.NoError(t, err)
	pr, err := repos.Replenishments.NextID()
	require.NoError(t, err)

	assert.Equal(t, "IN-0001", in)
	assert.Equal(t, "OUT-0001", out)
	assert.Equal(t, "OP-001", op)
	assert.Equal(t, "PR-001", pr)
}

// ──────────────────────────────────────────────────────────────────────────────
// Aislamiento de lecturas fuera de transacción
// ──────────────────────────────────────────────────────────────────────────────

func TestRepos_LecturaDevuelveCopias(t *testing.T) {
	store := memory.NewStore()
	it := newItem(t, store, entity.ItemTypeRoom, "Bath Towel")

	read, err := store.Repos().Items.GetByID(it.ID, entity.ItemTypeRoom)
	require.NoError(t, err)
	read.OnHand = decimal.NewFromInt(999) // mutar la copia no toca el Store

	again, err := store.Repos().Items.GetByID(it.ID, entity.ItemTypeRoom)
	require.NoError(t, err)
	assert.True(t, again.OnHand.Equal(decimal.NewFromInt(50)),
		"mutar el resultado de una lectura no debe alterar el estado")
}

func TestRun_EscribeSobrePunterosVivos(t *testing.T) {
	store := memory.NewStore()
	it := newItem(t, store, entity.ItemTypeRoom, "Bath Towel")

	err := store.Run(context.Background(), func(r ports.RepoSet) error {
		live, err := r.Items.GetByID(it.ID, entity.ItemTypeRoom)
		if err != nil {
			return err
		}
		live.OnHand = decimal.NewFromInt(75)
		return r.Items.Update(live)
	})
	require.NoError(t, err)

	after, err := store.Repos().Items.GetByID(it.ID, entity.ItemTypeRoom)
	require.NoError(t, err)
	assert.True(t, after.OnHand.Equal(decimal.NewFromInt(75)))
}

// ──────────────────────────────────────────────────────────────────────────────
// Siembra demo
// ──────────────────────────────────────────────────────────────────────────────

func TestSeed_EsIdempotente(t *testing.T) {
	store := memory.NewStore()
	opts := memory.SeedOptions{UserPassword: "demo1234"}

	require.NoError(t, memory.Seed(store, opts))
	require.NoError(t, memory.Seed(store, opts), "la segunda siembra es un no-op")

	users := memory.NewUserRepository(store)
	all, err := users.List()
	require.NoError(t, err)
	assert.Len(t, all, 4, "un perfil por rol, sin duplicados")

	room, err := store.Repos().Items.List(entity.ItemTypeRoom)
	require.NoError(t, err)
	assert.Len(t, room, 3)
}

func TestSeed_GuardaSoloElHashDeLaContrasena(t *testing.T) {
	store := memory.NewStore()
	require.NoError(t, memory.Seed(store, memory.SeedOptions{UserPassword: "demo1234"}))

	users := memory.NewUserRepository(store)
	u, err := users.GetByEmail("arief@urbanview.example")
	require.NoError(t, err)
	assert.NotEqual(t, "demo1234", u.PasswordHash)
	assert.NotEmpty(t, u.PasswordHash)
}
