package repository

import "github.com/tu-usuario/inventario-lite/internal/domain/entity"

// CategoryRepository define el puerto de almacenamiento para Category (DIP).
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id string) (*entity.Category, error)
	// GetByNameFold busca por nombre sin distinguir mayúsculas; (nil, nil) si no existe.
	GetByNameFold(name string) (*entity.Category, error)
	List() ([]*entity.Category, error)
	Delete(id string) error
}
