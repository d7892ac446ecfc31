package memory

import (
	"strings"

	"github.com/ariefstwn/hotelstock-api/internal/domain"
	"github.com/ariefstwn/hotelstock-api/internal/domain/entity"
	"github.com/ariefstwn/hotelstock-api/internal/domain/repository"
)

// UserRepository perfiles de usuario en memoria. Los usuarios no participan
// de las transacciones del Store: sus mutaciones son de un solo paso.
type UserRepository struct {
	store *Store
}

// NewUserRepository construye el repositorio sobre el Store.
func NewUserRepository(store *Store) *UserRepository {
	return &UserRepository{store: store}
}

var _ repository.UserRepository = (*UserRepository)(nil)

// Create agrega el usuario; el email es único (case-insensitive).
func (r *UserRepository) Create(user *entity.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, existing := range r.store.users {
		if strings.EqualFold(existing.Email, user.Email) {
			return domain.ErrConflict
		}
	}
	r.store.users = append(r.store.users, user)
	return nil
}

// GetByID devuelve el usuario o ErrUserNotFound.
func (r *UserRepository) GetByID(id string) (*entity.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, u := range r.store.users {
		if u.ID == id {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

// GetByEmail devuelve el usuario o ErrUserNotFound.
func (r *UserRepository) GetByEmail(email string) (*entity.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, u := range r.store.users {
		if strings.EqualFold(u.Email, email) {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

// List devuelve todos los perfiles.
func (r *UserRepository) List() ([]*entity.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := make([]*entity.User, 0, len(r.store.users))
	for _, u := range r.store.users {
		out = append(out, cloneUser(u))
	}
	return out, nil
}
