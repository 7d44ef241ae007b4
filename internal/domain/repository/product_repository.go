package repository

import "github.com/tu-usuario/inventario-lite/internal/domain/entity"

// ProductRepository define el puerto de almacenamiento para Product (DIP).
// GetByID y GetBySKU devuelven (nil, nil) si el producto no existe.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetBySKU(sku string) (*entity.Product, error)
	Update(product *entity.Product) error
	List() ([]*entity.Product, error)
	Delete(id string) error
	// CountByCategory cuenta los productos que referencian la categoría.
	CountByCategory(categoryID string) (int, error)
}
