package memory

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/ariefstwn/hotelstock-api/internal/domain/entity"
)

// DefaultProperty propiedad demo de la siembra.
const DefaultProperty = "Urbanview Jakarta Sudirman"

// SeedOptions opciones de la siembra inicial.
type SeedOptions struct {
	// UserPassword contraseña en claro para todos los perfiles demo; se
	// guarda solo el hash bcrypt.
	UserPassword string
}

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func decPtr(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

// Seed puebla el Store con el catálogo, perfiles, una sesión de opname en
// curso y una solicitud de reposición en borrador. Idempotente: no hace nada
// si ya hay datos.
func Seed(store *Store, opts SeedOptions) error {
	store.mu.Lock()
	defer store.mu.Unlock()
	if len(store.roomItems) > 0 || len(store.users) > 0 {
		return nil
	}

	now := time.Now()
	hash, err := bcrypt.GenerateFromPassword([]byte(opts.UserPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	profiles := []struct {
		name, email, role string
	}{
		{"Arief Setiawan", "arief@urbanview.example", entity.RolePropertyPIC},
		{"Zahran", "zahran@urbanview.example", entity.RoleOperationalManager},
		{"Audy", "audy@urbanview.example", entity.RoleOperationLead},
		{"Leon", "leon@urbanview.example", entity.RolePropertyHead},
	}
	for _, p := range profiles {
		store.users = append(store.users, &entity.User{
			ID:           uuid.New().String(),
			Email:        p.email,
			PasswordHash: string(hash),
			Name:         p.name,
			Role:         p.role,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
	}

	room := []*entity.InventoryItem{
		{Type: entity.ItemTypeRoom, Name: "Amenity Kit - Standard", Category: "Amenities", Unit: "PCS", Mandatory: true, ParPerRoom: 1, MinStock: dec(200), MaxStock: decPtr(600), OnHand: dec(150), Status: entity.ItemStatusActive, Vendor: "PT Tirta Investama"},
		{Type: entity.ItemTypeRoom, Name: "600ml Mineral Water", Category: "Beverage", Unit: "PCS", Mandatory: true, ParPerRoom: 2, MinStock: dec(400), MaxStock: decPtr(1000), OnHand: dec(380), Status: entity.ItemStatusActive, Vendor: "PT Tirta Investama"},
		{Type: entity.ItemTypeRoom, Name: "Facial Tissue Box", Category: "Disposable", Unit: "BOX", Mandatory: false, ParPerRoom: 1, MinStock: dec(120), MaxStock: decPtr(400), OnHand: dec(60), Status: entity.ItemStatusActive, Vendor: "PT Tisu Nusantara"},
	}
	laundry := []*entity.InventoryItem{
		{Type: entity.ItemTypeLaundry, Name: "Bedsheet Queen 300TC", Category: "Bedsheet", Size: "160x200", Unit: "PCS", Mandatory: true, ParPerRoom: 2, MinStock: dec(200), OnHand: dec(180), Status: entity.ItemStatusActive, Vendor: "PT Linen Bersama"},
		{Type: entity.ItemTypeLaundry, Name: "Bath Towel 500gsm", Category: "Bath Towel", Size: "70x140", Unit: "PCS", Mandatory: true, ParPerRoom: 2, MinStock: dec(300), OnHand: dec(120), Status: entity.ItemStatusActive, Vendor: "PT Tekstil Sejahtera"},
	}

	// El primer ítem queda apenas sobre su mínimo para aparecer como
	// crítico en las alertas (105% del minStock).
	room[0].OnHand = room[0].MinStock.Mul(decimal.NewFromFloat(1.05)).Ceil()

	itemRepo := &ItemRepository{store: store, inTx: true}
	for _, i := range room {
		i.ID, _ = itemRepo.NextID(entity.ItemTypeRoom)
		i.CreatedAt, i.UpdatedAt = now, now
		store.roomItems = append(store.roomItems, i)
	}
	for _, i := range laundry {
		i.ID, _ = itemRepo.NextID(entity.ItemTypeLaundry)
		i.CreatedAt, i.UpdatedAt = now, now
		store.laundryItems = append(store.laundryItems, i)
	}

	// Sesión de opname mensual en curso sobre el catálogo room.
	opnameRepo := &OpnameRepository{store: store, inTx: true}
	sid, _ := opnameRepo.NextSessionID()
	session := &entity.StockOpnameSession{
		ID:            sid,
		Name:          "Monthly Room Check",
		Coverage:      entity.OpnameCoverageRoom,
		ScheduledDate: now.AddDate(0, 0, 30),
		Status:        entity.OpnameStatusInProgress,
		CreatedBy:     profiles[0].name,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	var lines []*entity.StockOpnameLine
	for _, i := range store.roomItems {
		lines = append(lines, &entity.StockOpnameLine{
			ID:         "SL-" + i.ID,
			SessionID:  sid,
			ItemID:     i.ID,
			ItemName:   i.Name,
			ItemType:   entity.ItemTypeRoom,
			SystemQty:  i.OnHand,
			CountedQty: i.OnHand,
		})
	}
	store.opnameSessions = append(store.opnameSessions, session)
	store.opnameLines[sid] = lines

	// Borrador inicial de reposición del primer ítem room.
	replRepo := &ReplenishmentRepository{store: store, inTx: true}
	rid, _ := replRepo.NextID()
	first := store.roomItems[0]
	store.replenishments = append(store.replenishments, &entity.ReplenishmentRequest{
		ID:            rid,
		Property:      DefaultProperty,
		RequestorName: profiles[0].name,
		RequestorRole: profiles[0].role,
		Notes:         "Initial",
		Status:        entity.ReplenishmentStatusDraft,
		Approvals: []entity.Approval{
			{Name: "Zahran", Role: entity.RoleOperationalManager, Status: entity.ApprovalStatusPending},
			{Name: "Audy", Role: entity.RoleOperationLead, Status: entity.ApprovalStatusPending},
			{Name: "Leon", Role: entity.RolePropertyHead, Status: entity.ApprovalStatusPending},
		},
		Items: []entity.ReplenishmentItem{{
			ID:            uuid.New().String(),
			ItemID:        first.ID,
			ItemName:      first.Name,
			ItemType:      entity.ItemTypeRoom,
			Unit:          first.Unit,
			CurrentStock:  first.OnHand,
			MinStock:      first.MinStock,
			SuggestedQty:  dec(100),
			RequestedQty:  dec(100),
			Last7DayUsage: dec(80),
			Department:    "Housekeeping",
			Mandatory:     first.Mandatory,
		}},
		CreatedAt: now,
		UpdatedAt: now,
	})

	return nil
}
