package dto

import "github.com/shopspring/decimal"

// DashboardSummary KPIs del inventario, recalculados sobre el estado actual.
type DashboardSummary struct {
	TotalProducts   int             `json:"total_products"`
	TotalStockValue decimal.Decimal `json:"total_stock_value"` // Σ cantidad × precio
	// TotalStockValueDisplay valor formateado con separador de miles ($12,345.67).
	TotalStockValueDisplay string             `json:"total_stock_value_display"`
	LowStockCount          int                `json:"low_stock_count"`
	OutOfStockCount        int                `json:"out_of_stock_count"`
	QuantityByCategory     []CategoryQuantity `json:"quantity_by_category"`
	// RecentlyUpdated los 5 productos con LastUpdated más reciente.
	RecentlyUpdated []ProductResponse `json:"recently_updated"`
}

// CategoryQuantity suma de cantidades por categoría para el gráfico de barras.
type CategoryQuantity struct {
	Name     string `json:"name"` // "Unknown" si la categoría ya no existe
	Quantity int    `json:"quantity"`
}
