package repository

import "github.com/ariefstwn/hotelstock-api/internal/domain/entity"

// ReplenishmentRepository puerto de persistencia de solicitudes de reposición.
type ReplenishmentRepository interface {
	Create(req *entity.ReplenishmentRequest) error
	GetByID(id string) (*entity.ReplenishmentRequest, error)
	Update(req *entity.ReplenishmentRequest) error
	Delete(id string) error
	List() ([]*entity.ReplenishmentRequest, error)
	NextID() (string, error)
}
