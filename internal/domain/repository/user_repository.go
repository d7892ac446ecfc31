package repository

import "github.com/ariefstwn/hotelstock-api/internal/domain/entity"

// UserRepository puerto de persistencia de perfiles de usuario.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	List() ([]*entity.User, error)
}
