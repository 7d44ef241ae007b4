package usecase

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/tu-usuario/inventario-lite/internal/application/auth"
	"github.com/tu-usuario/inventario-lite/internal/domain"
	"github.com/tu-usuario/inventario-lite/internal/domain/entity"
	"github.com/tu-usuario/inventario-lite/internal/domain/repository"
	"github.com/tu-usuario/inventario-lite/pkg/logger"
)

// CategoryUseCase alta, listado y baja de categorías.
type CategoryUseCase struct {
	categories repository.CategoryRepository
	products   repository.ProductRepository
	session    *auth.Session
	log        *logger.Logger
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(
	categories repository.CategoryRepository,
	products repository.ProductRepository,
	session *auth.Session,
	log *logger.Logger,
) *CategoryUseCase {
	return &CategoryUseCase{categories: categories, products: products, session: session, log: log}
}

// CategoryWithUsage categoría más la cuenta de productos que la referencian.
type CategoryWithUsage struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	UsageCount int    `json:"usage_count"`
}

// Add crea una categoría. Rechaza nombres vacíos (solo espacios) y duplicados
// sin distinguir mayúsculas.
func (uc *CategoryUseCase) Add(name string) (*entity.Category, error) {
	if !uc.session.Can(auth.ActionManageCategories) {
		return nil, domain.ErrForbidden
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: el nombre no puede estar vacío", domain.ErrInvalidInput)
	}
	existing, err := uc.categories.GetByNameFold(name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	category := &entity.Category{ID: uuid.New().String(), Name: name}
	if err := uc.categories.Create(category); err != nil {
		return nil, err
	}
	uc.log.Info().Str("name", name).Msg("categoría creada")
	return category, nil
}

// Delete elimina una categoría solo si ningún producto la usa.
// Con uso > 0 devuelve ErrCategoryInUse y no muta nada.
func (uc *CategoryUseCase) Delete(id string) error {
	if !uc.session.Can(auth.ActionManageCategories) {
		return domain.ErrForbidden
	}
	category, err := uc.categories.GetByID(id)
	if err != nil {
		return err
	}
	if category == nil {
		return domain.ErrNotFound
	}
	usage, err := uc.products.CountByCategory(id)
	if err != nil {
		return err
	}
	if usage > 0 {
		return domain.ErrCategoryInUse
	}
	if err := uc.categories.Delete(id); err != nil {
		return err
	}
	uc.log.Info().Str("name", category.Name).Msg("categoría eliminada")
	return nil
}

// List devuelve las categorías con su cuenta de uso, en orden de alta.
func (uc *CategoryUseCase) List() ([]CategoryWithUsage, error) {
	categories, err := uc.categories.List()
	if err != nil {
		return nil, err
	}
	out := make([]CategoryWithUsage, 0, len(categories))
	for _, c := range categories {
		usage, err := uc.products.CountByCategory(c.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, CategoryWithUsage{ID: c.ID, Name: c.Name, UsageCount: usage})
	}
	return out, nil
}
