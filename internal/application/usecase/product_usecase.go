package usecase

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/inventario-lite/internal/application/audit"
	"github.com/tu-usuario/inventario-lite/internal/application/auth"
	"github.com/tu-usuario/inventario-lite/internal/application/dto"
	"github.com/tu-usuario/inventario-lite/internal/domain"
	"github.com/tu-usuario/inventario-lite/internal/domain/entity"
	"github.com/tu-usuario/inventario-lite/internal/domain/repository"
	"github.com/tu-usuario/inventario-lite/pkg/logger"
)

// ProductUseCase casos de uso CRUD para productos. La cantidad solo cambia por
// acá en alta y edición; los ajustes de stock van por inventory.AdjustUseCase.
type ProductUseCase struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
	session    *auth.Session
	recorder   *audit.Recorder
	log        *logger.Logger

	// Eliminación en dos fases: RequestDelete captura el objetivo y
	// ConfirmDelete lo ejecuta; CancelDelete no muta nada.
	mu            sync.Mutex
	pendingDelete string
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(
	products repository.ProductRepository,
	categories repository.CategoryRepository,
	session *auth.Session,
	recorder *audit.Recorder,
	log *logger.Logger,
) *ProductUseCase {
	return &ProductUseCase{
		products:   products,
		categories: categories,
		session:    session,
		recorder:   recorder,
		log:        log,
	}
}

// Create crea un producto con ID nuevo y LastUpdated inicial.
// Audita nombre y SKU del alta.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if !uc.session.Can(auth.ActionManageProducts) {
		return nil, domain.ErrForbidden
	}
	if err := uc.validate(in.Name, in.SKU, in.CategoryID, in.Quantity, in.Price); err != nil {
		return nil, err
	}
	existing, err := uc.products.GetBySKU(in.SKU)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	product := &entity.Product{
		ID:           uuid.New().String(),
		Name:         in.Name,
		SKU:          in.SKU,
		CategoryID:   in.CategoryID,
		Quantity:     in.Quantity,
		Price:        in.Price,
		SupplierName: in.SupplierName,
		LastUpdated:  time.Now(),
	}
	if err := uc.products.Create(product); err != nil {
		return nil, err
	}

	uc.recorder.Record(entity.AuditActionProductAdded,
		fmt.Sprintf("Added new product: %q (SKU: %s).", product.Name, product.SKU))
	uc.log.Info().Str("sku", product.SKU).Msg("producto creado")
	return toProductResponse(product), nil
}

// Update edita un producto. Calcula el diff de todos los campos salvo
// LastUpdated; si algo cambió audita cada `campo: from 'viejo' to 'nuevo'`.
// Sin cambios no se audita, pero LastUpdated se refresca igual.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if !uc.session.Can(auth.ActionManageProducts) {
		return nil, domain.ErrForbidden
	}
	if err := uc.validate(in.Name, in.SKU, in.CategoryID, in.Quantity, in.Price); err != nil {
		return nil, err
	}
	product, err := uc.products.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	changes := diffProduct(product, in)

	product.Name = in.Name
	product.SKU = in.SKU
	product.CategoryID = in.CategoryID
	product.Quantity = in.Quantity
	product.Price = in.Price
	product.SupplierName = in.SupplierName
	product.LastUpdated = time.Now()
	if err := uc.products.Update(product); err != nil {
		return nil, err
	}

	if len(changes) > 0 {
		uc.recorder.Record(entity.AuditActionProductEdited,
			fmt.Sprintf("Edited %q: %s.", product.Name, strings.Join(changes, ", ")))
	}
	uc.log.Info().Str("sku", product.SKU).Int("changed_fields", len(changes)).Msg("producto editado")
	return toProductResponse(product), nil
}

// RequestDelete captura el producto a eliminar y devuelve sus datos para el
// diálogo de confirmación. No muta nada todavía.
func (uc *ProductUseCase) RequestDelete(id string) (*dto.ProductResponse, error) {
	if !uc.session.Can(auth.ActionManageProducts) {
		return nil, domain.ErrForbidden
	}
	product, err := uc.products.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	uc.mu.Lock()
	uc.pendingDelete = id
	uc.mu.Unlock()
	return toProductResponse(product), nil
}

// ConfirmDelete ejecuta la eliminación pendiente y la audita.
func (uc *ProductUseCase) ConfirmDelete() error {
	uc.mu.Lock()
	id := uc.pendingDelete
	uc.pendingDelete = ""
	uc.mu.Unlock()
	if id == "" {
		return domain.ErrConflict
	}
	product, err := uc.products.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	if err := uc.products.Delete(id); err != nil {
		return err
	}
	uc.recorder.Record(entity.AuditActionProductDeleted,
		fmt.Sprintf("Deleted product: %q (SKU: %s).", product.Name, product.SKU))
	uc.log.Info().Str("sku", product.SKU).Msg("producto eliminado")
	return nil
}

// CancelDelete descarta la eliminación pendiente sin mutar nada.
func (uc *ProductUseCase) CancelDelete() {
	uc.mu.Lock()
	uc.pendingDelete = ""
	uc.mu.Unlock()
}

// GetByID obtiene un producto por ID, o (nil, nil) si no existe.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.products.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// List devuelve los productos que cumplen todos los criterios del filtro.
func (uc *ProductUseCase) List(filter dto.ProductFilter) ([]dto.ProductResponse, error) {
	products, err := uc.products.List()
	if err != nil {
		return nil, err
	}

	minPrice, hasMin := parsePriceBound(filter.MinPrice)
	maxPrice, hasMax := parsePriceBound(filter.MaxPrice)
	search := strings.ToLower(strings.TrimSpace(filter.Search))

	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.SKU), search) &&
			!strings.Contains(strings.ToLower(p.SupplierName), search) {
			continue
		}
		if filter.CategoryID != "" && filter.CategoryID != dto.FilterAll && p.CategoryID != filter.CategoryID {
			continue
		}
		if filter.StockStatus != "" && filter.StockStatus != dto.FilterAll && p.StockStatus() != filter.StockStatus {
			continue
		}
		if hasMin && p.Price.LessThan(minPrice) {
			continue
		}
		if hasMax && p.Price.GreaterThan(maxPrice) {
			continue
		}
		out = append(out, *toProductResponse(p))
	}
	return out, nil
}

// validate aplica las reglas comunes de alta y edición.
func (uc *ProductUseCase) validate(name, sku, categoryID string, quantity int, price decimal.Decimal) error {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(sku) == "" {
		return domain.ErrInvalidInput
	}
	if quantity < 0 || price.IsNegative() {
		return domain.ErrInvalidInput
	}
	if categoryID == "" {
		return domain.ErrInvalidInput
	}
	category, err := uc.categories.GetByID(categoryID)
	if err != nil {
		return err
	}
	if category == nil {
		return domain.ErrInvalidInput
	}
	return nil
}

// diffProduct enumera los campos distintos entre el producto actual y la
// edición, con las etiquetas del formulario de edición.
func diffProduct(old *entity.Product, in dto.UpdateProductRequest) []string {
	var changes []string
	appendChange := func(field, oldVal, newVal string) {
		changes = append(changes, fmt.Sprintf("%s: from '%s' to '%s'", field, oldVal, newVal))
	}
	if old.Name != in.Name {
		appendChange("name", old.Name, in.Name)
	}
	if old.SKU != in.SKU {
		appendChange("sku", old.SKU, in.SKU)
	}
	if old.CategoryID != in.CategoryID {
		appendChange("categoryId", old.CategoryID, in.CategoryID)
	}
	if old.Quantity != in.Quantity {
		appendChange("quantity", fmt.Sprint(old.Quantity), fmt.Sprint(in.Quantity))
	}
	if !old.Price.Equal(in.Price) {
		appendChange("price", old.Price.String(), in.Price.String())
	}
	if old.SupplierName != in.SupplierName {
		appendChange("supplierName", old.SupplierName, in.SupplierName)
	}
	return changes
}

// parsePriceBound interpreta un límite de precio; no parseable = sin límite.
func parsePriceBound(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		SKU:          p.SKU,
		CategoryID:   p.CategoryID,
		Quantity:     p.Quantity,
		Price:        p.Price,
		SupplierName: p.SupplierName,
		StockStatus:  p.StockStatus(),
		LastUpdated:  p.LastUpdated,
	}
}
