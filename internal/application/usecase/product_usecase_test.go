package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/inventario-lite/internal/application/audit"
	"github.com/tu-usuario/inventario-lite/internal/application/auth"
	"github.com/tu-usuario/inventario-lite/internal/application/dto"
	"github.com/tu-usuario/inventario-lite/internal/application/usecase"
	"github.com/tu-usuario/inventario-lite/internal/domain"
	"github.com/tu-usuario/inventario-lite/internal/domain/entity"
	"github.com/tu-usuario/inventario-lite/internal/infrastructure/memoria"
	"github.com/tu-usuario/inventario-lite/pkg/logger"
)

type fixture struct {
	store    *memoria.Store
	session  *auth.Session
	products *usecase.ProductUseCase
	catUC    *usecase.CategoryUseCase
	catID    string
}

// newFixture arma un store con una categoría y sesión iniciada con el rol dado.
func newFixture(t *testing.T, role string) *fixture {
	t.Helper()
	store := memoria.NewEmptyStore()
	hash, err := bcrypt.GenerateFromPassword([]byte("clave"), bcrypt.MinCost)
	require.NoError(t, err)
	store.Users = memoria.NewUserRepository([]entity.User{{
		ID:           uuid.New().String(),
		Username:     "alguien",
		Role:         role,
		PasswordHash: string(hash),
	}})

	session := auth.NewSession(store.Notifications)
	log := logger.Nop()
	authUC := auth.NewUseCase(store.Users, session, 0, log)
	_, err = authUC.Login(context.Background(), dto.LoginRequest{Username: "alguien", Password: "clave"})
	require.NoError(t, err)

	recorder := audit.NewRecorder(store.Audit, session, log)
	cat := &entity.Category{ID: uuid.New().String(), Name: "Groceries"}
	require.NoError(t, store.Categories.Create(cat))

	return &fixture{
		store:    store,
		session:  session,
		products: usecase.NewProductUseCase(store.Products, store.Categories, session, recorder, log),
		catUC:    usecase.NewCategoryUseCase(store.Categories, store.Products, session, log),
		catID:    cat.ID,
	}
}

func (f *fixture) createRequest() dto.CreateProductRequest {
	return dto.CreateProductRequest{
		Name:         "Organic Matcha",
		SKU:          "GRO-OMT-002",
		CategoryID:   f.catID,
		Quantity:     45,
		Price:        decimal.RequireFromString("24.99"),
		SupplierName: "Green Leaf Traders",
	}
}

func (f *fixture) auditEntries(t *testing.T) []*entity.AuditEntry {
	t.Helper()
	entries, err := f.store.Audit.List()
	require.NoError(t, err)
	return entries
}

// ──────────────────────────────────────────────────────────────────────────────
// Alta
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_AltaValidaYAuditada(t *testing.T) {
	f := newFixture(t, entity.RoleAdmin)

	resp, err := f.products.Create(f.createRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID, "el ID se genera en el alta")
	assert.Equal(t, "In Stock", resp.StockStatus)
	assert.False(t, resp.LastUpdated.IsZero())

	entries := f.auditEntries(t)
	require.Len(t, entries, 1)
	assert.Equal(t, entity.AuditActionProductAdded, entries[0].Action)
	assert.Equal(t, `Added new product: "Organic Matcha" (SKU: GRO-OMT-002).`, entries[0].Details)
}

func TestCreate_SKUDuplicadoRechazado(t *testing.T) {
	f := newFixture(t, entity.RoleAdmin)
	_, err := f.products.Create(f.createRequest())
	require.NoError(t, err)

	dup := f.createRequest()
	dup.Name = "Otro producto"
	_, err = f.products.Create(dup)
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	list, err := f.products.List(dto.ProductFilter{})
	require.NoError(t, err)
	assert.Len(t, list, 1, "el duplicado no debe persistirse")
}

func TestCreate_ValidacionDeCampos(t *testing.T) {
	f := newFixture(t, entity.RoleAdmin)

	casos := map[string]func(*dto.CreateProductRequest){
		"nombre vacío":          func(r *dto.CreateProductRequest) { r.Name = "   " },
		"sku vacío":             func(r *dto.CreateProductRequest) { r.SKU = "" },
		"cantidad negativa":     func(r *dto.CreateProductRequest) { r.Quantity = -1 },
		"precio negativo":       func(r *dto.CreateProductRequest) { r.Price = decimal.NewFromInt(-1) },
		"categoría vacía":       func(r *dto.CreateProductRequest) { r.CategoryID = "" },
		"categoría inexistente": func(r *dto.CreateProductRequest) { r.CategoryID = uuid.New().String() },
	}
	for nombre, mutar := range casos {
		t.Run(nombre, func(t *testing.T) {
			req := f.createRequest()
			mutar(&req)
			_, err := f.products.Create(req)
			assert.ErrorIs(t, err, domain.ErrInvalidInput, nombre)
		})
	}
}

func TestCreate_StaffRechazado(t *testing.T) {
	f := newFixture(t, entity.RoleStaff)

	_, err := f.products.Create(f.createRequest())
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// ──────────────────────────────────────────────────────────────────────────────
// Edición
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdate_DiffDeUnCampoAuditado(t *testing.T) {
	f := newFixture(t, entity.RoleAdmin)
	created, err := f.products.Create(f.createRequest())
	require.NoError(t, err)

	req := f.createRequest()
	edit := dto.UpdateProductRequest{
		Name:         req.Name,
		SKU:          req.SKU,
		CategoryID:   req.CategoryID,
		Quantity:     req.Quantity,
		Price:        decimal.RequireFromString("25.99"),
		SupplierName: req.SupplierName,
	}
	_, err = f.products.Update(created.ID, edit)
	require.NoError(t, err)

	entries := f.auditEntries(t)
	require.Len(t, entries, 2, "alta + edición")
	assert.Equal(t, entity.AuditActionProductEdited, entries[0].Action)
	assert.Equal(t, `Edited "Organic Matcha": price: from '24.99' to '25.99'.`, entries[0].Details)
}

func TestUpdate_SinCambiosNoAuditaPeroRefrescaLastUpdated(t *testing.T) {
	f := newFixture(t, entity.RoleAdmin)
	created, err := f.products.Create(f.createRequest())
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)
	req := f.createRequest()
	same := dto.UpdateProductRequest{
		Name:         req.Name,
		SKU:          req.SKU,
		CategoryID:   req.CategoryID,
		Quantity:     req.Quantity,
		Price:        req.Price,
		SupplierName: req.SupplierName,
	}
	updated, err := f.products.Update(created.ID, same)
	require.NoError(t, err)

	assert.True(t, updated.LastUpdated.After(created.LastUpdated),
		"LastUpdated se refresca aunque no haya cambios")
	assert.Len(t, f.auditEntries(t), 1, "solo la entrada del alta")
}

func TestUpdate_ProductoInexistente(t *testing.T) {
	f := newFixture(t, entity.RoleAdmin)
	req := f.createRequest()

	_, err := f.products.Update(uuid.New().String(), dto.UpdateProductRequest{
		Name: req.Name, SKU: req.SKU, CategoryID: req.CategoryID,
		Quantity: req.Quantity, Price: req.Price, SupplierName: req.SupplierName,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Eliminación en dos fases
// ──────────────────────────────────────────────────────────────────────────────

func TestDelete_ConfirmarEliminaYAudita(t *testing.T) {
	f := newFixture(t, entity.RoleAdmin)
	created, err := f.products.Create(f.createRequest())
	require.NoError(t, err)

	pending, err := f.products.RequestDelete(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, pending.ID)

	require.NoError(t, f.products.ConfirmDelete())

	got, err := f.products.GetByID(created.ID)
	require.NoError(t, err)
	assert.Nil(t, got, "el producto ya no debe existir")

	entries := f.auditEntries(t)
	require.Len(t, entries, 2)
	assert.Equal(t, `Deleted product: "Organic Matcha" (SKU: GRO-OMT-002).`, entries[0].Details)
}

func TestDelete_CancelarNoMutaNada(t *testing.T) {
	f := newFixture(t, entity.RoleAdmin)
	created, err := f.products.Create(f.createRequest())
	require.NoError(t, err)

	_, err = f.products.RequestDelete(created.ID)
	require.NoError(t, err)
	f.products.CancelDelete()

	got, err := f.products.GetByID(created.ID)
	require.NoError(t, err)
	assert.NotNil(t, got, "cancelar no elimina")

	assert.ErrorIs(t, f.products.ConfirmDelete(), domain.ErrConflict,
		"confirmar sin pendiente es un conflicto")
}

// ──────────────────────────────────────────────────────────────────────────────
// Listado y filtros
// ──────────────────────────────────────────────────────────────────────────────

func TestList_BusquedaPorSKURoundTrip(t *testing.T) {
	f := newFixture(t, entity.RoleAdmin)
	created, err := f.products.Create(f.createRequest())
	require.NoError(t, err)

	list, err := f.products.List(dto.ProductFilter{Search: "gro-omt-002"})
	require.NoError(t, err)
	require.Len(t, list, 1, "la búsqueda por SKU es case-insensitive")
	assert.Equal(t, created.ID, list[0].ID)
}

func TestList_FiltrosConjuntivos(t *testing.T) {
	f := newFixture(t, entity.RoleAdmin)
	_, err := f.products.Create(f.createRequest())
	require.NoError(t, err)

	otro := f.createRequest()
	otro.Name = "Sea Salt Crackers"
	otro.SKU = "SNK-SSC-007"
	otro.Quantity = 5
	otro.Price = decimal.RequireFromString("3.20")
	otro.SupplierName = "Crunch Works"
	_, err = f.products.Create(otro)
	require.NoError(t, err)

	list, err := f.products.List(dto.ProductFilter{StockStatus: "Low Stock"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Sea Salt Crackers", list[0].Name)

	list, err = f.products.List(dto.ProductFilter{MinPrice: "10", MaxPrice: "30"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Organic Matcha", list[0].Name)

	// Todos los criterios a la vez, incluido el comodín.
	list, err = f.products.List(dto.ProductFilter{
		Search:      "crackers",
		CategoryID:  dto.FilterAll,
		StockStatus: "Low Stock",
		MaxPrice:    "5",
	})
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestList_LimiteDePrecioNoParseableSeIgnora(t *testing.T) {
	f := newFixture(t, entity.RoleAdmin)
	_, err := f.products.Create(f.createRequest())
	require.NoError(t, err)

	list, err := f.products.List(dto.ProductFilter{MinPrice: "abc"})
	require.NoError(t, err)
	assert.Len(t, list, 1, "un límite no parseable equivale a sin límite")
}

func TestList_OrdenMasRecientePrimero(t *testing.T) {
	f := newFixture(t, entity.RoleAdmin)
	_, err := f.products.Create(f.createRequest())
	require.NoError(t, err)

	segundo := f.createRequest()
	segundo.Name = "Sourdough Loaf"
	segundo.SKU = "BAK-SDL-003"
	_, err = f.products.Create(segundo)
	require.NoError(t, err)

	list, err := f.products.List(dto.ProductFilter{})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Sourdough Loaf", list[0].Name, "el alta más reciente encabeza la lista")
}
