package memoria

import (
	"sync"

	"github.com/tu-usuario/inventario-lite/internal/domain/entity"
	"github.com/tu-usuario/inventario-lite/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación en memoria de la lista estática de usuarios de la demo.
// Solo lectura después del seed.
type UserRepo struct {
	mu    sync.RWMutex
	items []entity.User
}

// NewUserRepository construye el adaptador con los usuarios dados.
func NewUserRepository(users []entity.User) *UserRepo {
	return &UserRepo{items: users}
}

// FindByUsername devuelve una copia del usuario o (nil, nil) si no existe.
func (r *UserRepo) FindByUsername(username string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.items {
		if r.items[i].Username == username {
			u := r.items[i]
			return &u, nil
		}
	}
	return nil, nil
}

// List devuelve copias de todos los usuarios.
func (r *UserRepo) List() ([]*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.User, 0, len(r.items))
	for i := range r.items {
		u := r.items[i]
		out = append(out, &u)
	}
	return out, nil
}
