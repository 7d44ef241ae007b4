package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Name         string          `json:"name"`
	SKU          string          `json:"sku"`
	CategoryID   string          `json:"category_id"`
	Quantity     int             `json:"quantity"`
	Price        decimal.Decimal `json:"price"`
	SupplierName string          `json:"supplier_name"`
}

// UpdateProductRequest entrada para editar un producto. El formulario envía
// todos los campos; el caso de uso calcula el diff contra el estado anterior.
type UpdateProductRequest struct {
	Name         string          `json:"name"`
	SKU          string          `json:"sku"`
	CategoryID   string          `json:"category_id"`
	Quantity     int             `json:"quantity"`
	Price        decimal.Decimal `json:"price"`
	SupplierName string          `json:"supplier_name"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	SKU          string          `json:"sku"`
	CategoryID   string          `json:"category_id"`
	Quantity     int             `json:"quantity"`
	Price        decimal.Decimal `json:"price"`
	SupplierName string          `json:"supplier_name"`
	StockStatus  string          `json:"stock_status"`
	LastUpdated  time.Time       `json:"last_updated"`
}

// FilterAll valor comodín de los filtros de lista ("todas las categorías",
// "todos los estados de stock").
const FilterAll = "All"

// ProductFilter criterios conjuntivos del listado de productos.
// Un límite de precio no parseable se trata como sin límite.
type ProductFilter struct {
	Search      string `json:"search"`       // substring sobre nombre, SKU o proveedor
	CategoryID  string `json:"category_id"`  // vacío o "All" = todas
	StockStatus string `json:"stock_status"` // vacío o "All" = todos
	MinPrice    string `json:"min_price"`
	MaxPrice    string `json:"max_price"`
}
