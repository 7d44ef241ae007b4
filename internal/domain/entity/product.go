package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// LowStockThreshold umbral inclusivo de stock bajo (0 < cantidad <= 10).
const LowStockThreshold = 10

// Estados de stock derivados de Quantity.
const (
	StockStatusIn  = "In Stock"
	StockStatusLow = "Low Stock"
	StockStatusOut = "Out of Stock"
)

// Product representa un producto del inventario.
// Quantity nunca es negativa; los cambios de stock pasan por el caso de uso de ajuste.
// LastUpdated se refresca en cada mutación; ID se asigna al crear y es inmutable.
type Product struct {
	ID           string
	Name         string
	SKU          string
	CategoryID   string
	Quantity     int
	Price        decimal.Decimal
	SupplierName string
	LastUpdated  time.Time
}

// StockStatus clasifica el producto según su cantidad actual.
func (p *Product) StockStatus() string {
	switch {
	case p.Quantity == 0:
		return StockStatusOut
	case p.Quantity <= LowStockThreshold:
		return StockStatusLow
	default:
		return StockStatusIn
	}
}

// TotalValue devuelve cantidad × precio.
func (p *Product) TotalValue() decimal.Decimal {
	return p.Price.Mul(decimal.NewFromInt(int64(p.Quantity)))
}
