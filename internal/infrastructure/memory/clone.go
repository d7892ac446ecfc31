package memory

import "github.com/ariefstwn/hotelstock-api/internal/domain/entity"

// Copias por valor para las vistas de lectura. Los snapshots del historial
// son inmutables una vez creados, así que se comparten.

func cloneItem(i *entity.InventoryItem) *entity.InventoryItem {
	c := *i
	if i.MaxStock != nil {
		m := *i.MaxStock
		c.MaxStock = &m
	}
	return &c
}

func cloneDoc(d *entity.MovementDocument) *entity.MovementDocument {
	c := &entity.MovementDocument{}
	c.Restore(d.Snapshot())
	c.History = make([]entity.MovementHistoryEntry, len(d.History))
	copy(c.History, d.History)
	return c
}

func cloneSession(s *entity.StockOpnameSession) *entity.StockOpnameSession {
	c := *s
	return &c
}

func cloneLine(l *entity.StockOpnameLine) *entity.StockOpnameLine {
	c := *l
	return &c
}

func cloneRequest(r *entity.ReplenishmentRequest) *entity.ReplenishmentRequest {
	c := *r
	c.Approvals = make([]entity.Approval, len(r.Approvals))
	for i, ap := range r.Approvals {
		if ap.At != nil {
			at := *ap.At
			ap.At = &at
		}
		c.Approvals[i] = ap
	}
	c.Items = make([]entity.ReplenishmentItem, len(r.Items))
	copy(c.Items, r.Items)
	if r.NeededDate != nil {
		nd := *r.NeededDate
		c.NeededDate = &nd
	}
	return &c
}

func cloneUser(u *entity.User) *entity.User {
	c := *u
	return &c
}
