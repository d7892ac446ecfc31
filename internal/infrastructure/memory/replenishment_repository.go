package memory

import (
	"fmt"

	"github.com/ariefstwn/hotelstock-api/internal/domain"
	"github.com/ariefstwn/hotelstock-api/internal/domain/entity"
	"github.com/ariefstwn/hotelstock-api/internal/domain/repository"
)

// ReplenishmentRepository solicitudes de reposición en memoria.
type ReplenishmentRepository struct {
	store *Store
	inTx  bool
}

var _ repository.ReplenishmentRepository = (*ReplenishmentRepository)(nil)

// Create agrega la solicitud.
func (r *ReplenishmentRepository) Create(req *entity.ReplenishmentRequest) error {
	defer r.store.wlock(r.inTx)()
	for _, existing := range r.store.replenishments {
		if existing.ID == req.ID {
			return domain.ErrConflict
		}
	}
	r.store.replenishments = append(r.store.replenishments, req)
	return nil
}

// GetByID devuelve la solicitud o ErrNotFound.
func (r *ReplenishmentRepository) GetByID(id string) (*entity.ReplenishmentRequest, error) {
	defer r.store.rlock(r.inTx)()
	for _, req := range r.store.replenishments {
		if req.ID == id {
			if r.inTx {
				return req, nil
			}
			return cloneRequest(req), nil
		}
	}
	return nil, domain.ErrNotFound
}

// Update reemplaza la solicitud almacenada.
func (r *ReplenishmentRepository) Update(req *entity.ReplenishmentRequest) error {
	defer r.store.wlock(r.inTx)()
	for i, existing := range r.store.replenishments {
		if existing.ID == req.ID {
			r.store.replenishments[i] = req
			return nil
		}
	}
	return domain.ErrNotFound
}

// Delete elimina la solicitud (solo borradores llegan aquí; la regla vive en el caso de uso).
func (r *ReplenishmentRepository) Delete(id string) error {
	defer r.store.wlock(r.inTx)()
	for i, existing := range r.store.replenishments {
		if existing.ID == id {
			r.store.replenishments = append(r.store.replenishments[:i], r.store.replenishments[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

// List devuelve todas las solicitudes en orden de creación.
func (r *ReplenishmentRepository) List() ([]*entity.ReplenishmentRequest, error) {
	defer r.store.rlock(r.inTx)()
	out := make([]*entity.ReplenishmentRequest, 0, len(r.store.replenishments))
	for _, req := range r.store.replenishments {
		if r.inTx {
			out = append(out, req)
		} else {
			out = append(out, cloneRequest(req))
		}
	}
	return out, nil
}

// NextID genera el siguiente id de solicitud (PR-001).
func (r *ReplenishmentRepository) NextID() (string, error) {
	defer r.store.wlock(r.inTx)()
	id := fmt.Sprintf("PR-%03d", r.store.nextRepl)
	r.store.nextRepl++
	return id, nil
}
