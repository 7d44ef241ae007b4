package memoria

import (
	"strings"
	"sync"

	"github.com/tu-usuario/inventario-lite/internal/domain"
	"github.com/tu-usuario/inventario-lite/internal/domain/entity"
	"github.com/tu-usuario/inventario-lite/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación en memoria del puerto CategoryRepository.
type CategoryRepo struct {
	mu    sync.RWMutex
	items []entity.Category // en orden de creación
}

// NewCategoryRepository construye el adaptador vacío.
func NewCategoryRepository() *CategoryRepo { return &CategoryRepo{} }

// Create agrega la categoría al final (las categorías se listan en orden de alta).
func (r *CategoryRepo) Create(category *entity.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, *category)
	return nil
}

// GetByID devuelve una copia de la categoría o (nil, nil) si no existe.
func (r *CategoryRepo) GetByID(id string) (*entity.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.items {
		if r.items[i].ID == id {
			c := r.items[i]
			return &c, nil
		}
	}
	return nil, nil
}

// GetByNameFold busca por nombre sin distinguir mayúsculas.
func (r *CategoryRepo) GetByNameFold(name string) (*entity.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.items {
		if strings.EqualFold(r.items[i].Name, name) {
			c := r.items[i]
			return &c, nil
		}
	}
	return nil, nil
}

// List devuelve copias de todas las categorías en orden de alta.
func (r *CategoryRepo) List() ([]*entity.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Category, 0, len(r.items))
	for i := range r.items {
		c := r.items[i]
		out = append(out, &c)
	}
	return out, nil
}

// Delete elimina la categoría por ID. La verificación de uso es del caso de uso.
func (r *CategoryRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}
