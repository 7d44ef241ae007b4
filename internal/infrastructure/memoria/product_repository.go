// Package memoria implementa los puertos de repository sobre colecciones en
// memoria protegidas con RWMutex. Es el único almacenamiento de la aplicación:
// el estado vive lo que dura la sesión y se descarta al terminar el proceso.
package memoria

import (
	"sync"

	"github.com/tu-usuario/inventario-lite/internal/domain"
	"github.com/tu-usuario/inventario-lite/internal/domain/entity"
	"github.com/tu-usuario/inventario-lite/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación en memoria del puerto ProductRepository.
// Guarda valores, no punteros: los callers reciben copias y solo mutan vía Update.
type ProductRepo struct {
	mu    sync.RWMutex
	items []entity.Product // la más reciente primero
}

// NewProductRepository construye el adaptador vacío.
func NewProductRepository() *ProductRepo { return &ProductRepo{} }

// Create antepone el producto (la lista se presenta con el más nuevo primero).
func (r *ProductRepo) Create(product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append([]entity.Product{*product}, r.items...)
	return nil
}

// GetByID devuelve una copia del producto o (nil, nil) si no existe.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.items {
		if r.items[i].ID == id {
			p := r.items[i]
			return &p, nil
		}
	}
	return nil, nil
}

// GetBySKU devuelve una copia del producto con ese SKU o (nil, nil) si no existe.
func (r *ProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.items {
		if r.items[i].SKU == sku {
			p := r.items[i]
			return &p, nil
		}
	}
	return nil, nil
}

// Update reemplaza el producto con el mismo ID preservando su posición.
func (r *ProductRepo) Update(product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == product.ID {
			r.items[i] = *product
			return nil
		}
	}
	return domain.ErrNotFound
}

// List devuelve copias de todos los productos, el más nuevo primero.
func (r *ProductRepo) List() ([]*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Product, 0, len(r.items))
	for i := range r.items {
		p := r.items[i]
		out = append(out, &p)
	}
	return out, nil
}

// Delete elimina el producto por ID.
func (r *ProductRepo) Delete(id string) error {
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

// CountByCategory cuenta los productos que referencian la categoría.
func (r *ProductRepo) CountByCategory(categoryID string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	count := 0
	for i := range r.items {
		if r.items[i].CategoryID == categoryID {
			count++
		}
	}
	return count, nil
}
