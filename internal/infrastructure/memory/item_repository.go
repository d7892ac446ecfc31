package memory

import (
	"fmt"

	"github.com/ariefstwn/hotelstock-api/internal/domain"
	"github.com/ariefstwn/hotelstock-api/internal/domain/entity"
	"github.com/ariefstwn/hotelstock-api/internal/domain/repository"
)

// ItemRepository catálogo en memoria: dos listas disjuntas (room / laundry)
// con orden de inserción estable.
type ItemRepository struct {
	store *Store
	inTx  bool
}

var _ repository.InventoryItemRepository = (*ItemRepository)(nil)

func (r *ItemRepository) collection(itemType string) *[]*entity.InventoryItem {
	if itemType == entity.ItemTypeLaundry {
		return &r.store.laundryItems
	}
	return &r.store.roomItems
}

// Create agrega el ítem a la colección de su tipo.
func (r *ItemRepository) Create(item *entity.InventoryItem) error {
	defer r.store.wlock(r.inTx)()
	switch item.Type {
	case entity.ItemTypeRoom, entity.ItemTypeLaundry:
	default:
		return domain.ErrInvalidInput
	}
	list := r.collection(item.Type)
	for _, existing := range *list {
		if existing.ID == item.ID {
			return domain.ErrConflict
		}
	}
	*list = append(*list, item)
	return nil
}

// GetByID busca dentro de la colección del tipo. Devuelve ErrNotFound si no existe.
func (r *ItemRepository) GetByID(id, itemType string) (*entity.InventoryItem, error) {
	defer r.store.rlock(r.inTx)()
	for _, item := range *r.collection(itemType) {
		if item.ID == id {
			if r.inTx {
				return item, nil
			}
			return cloneItem(item), nil
		}
	}
	return nil, domain.ErrNotFound
}

// Update reemplaza el ítem almacenado con el mismo id y tipo.
func (r *ItemRepository) Update(item *entity.InventoryItem) error {
	defer r.store.wlock(r.inTx)()
	list := *r.collection(item.Type)
	for i, existing := range list {
		if existing.ID == item.ID {
			list[i] = item
			return nil
		}
	}
	return domain.ErrNotFound
}

// List devuelve los ítems de un tipo; vacío devuelve room seguido de laundry.
func (r *ItemRepository) List(itemType string) ([]*entity.InventoryItem, error) {
	defer r.store.rlock(r.inTx)()
	var src []*entity.InventoryItem
	switch itemType {
	case entity.ItemTypeRoom:
		src = r.store.roomItems
	case entity.ItemTypeLaundry:
		src = r.store.laundryItems
	case "":
		src = append(append([]*entity.InventoryItem{}, r.store.roomItems...), r.store.laundryItems...)
	default:
		return nil, domain.ErrInvalidInput
	}
	out := make([]*entity.InventoryItem, 0, len(src))
	for _, item := range src {
		if r.inTx {
			out = append(out, item)
		} else {
			out = append(out, cloneItem(item))
		}
	}
	return out, nil
}

// NextID genera el siguiente id secuencial por tipo (R1, R2... / L1, L2...).
func (r *ItemRepository) NextID(itemType string) (string, error) {
	defer r.store.wlock(r.inTx)()
	switch itemType {
	case entity.ItemTypeRoom:
		id := fmt.Sprintf("R%d", r.store.nextRoomItem)
		r.store.nextRoomItem++
		return id, nil
	case entity.ItemTypeLaundry:
		id := fmt.Sprintf("L%d", r.store.nextLaundryItem)
		r.store.nextLaundryItem++
		return id, nil
	}
	return "", domain.ErrInvalidInput
}
