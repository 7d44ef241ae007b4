// Package analytics contiene las vistas derivadas de agregación: funciones
// puras del estado actual, recalculadas en cada consulta, sin resultados
// almacenados.
package analytics

import (
	"sort"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/tu-usuario/inventario-lite/internal/application/dto"
	"github.com/tu-usuario/inventario-lite/internal/domain/entity"
	"github.com/tu-usuario/inventario-lite/internal/domain/repository"
)

const dashboardRecentProducts = 5 // productos en el widget "recién actualizados"

// DashboardUseCase calcula los KPIs del inventario.
type DashboardUseCase struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
	printer    *message.Printer
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(products repository.ProductRepository, categories repository.CategoryRepository) *DashboardUseCase {
	return &DashboardUseCase{
		products:   products,
		categories: categories,
		// Formato en-US con separador de miles para el KPI de valor total.
		printer: message.NewPrinter(language.English),
	}
}

// GetSummary recalcula el resumen completo sobre el estado actual:
// total de productos, valor del inventario (Σ cantidad × precio), cuentas de
// stock bajo y agotado, sumas de cantidad por categoría y el top 5 por
// LastUpdated descendente.
func (uc *DashboardUseCase) GetSummary() (*dto.DashboardSummary, error) {
	products, err := uc.products.List()
	if err != nil {
		return nil, err
	}
	categories, err := uc.categories.List()
	if err != nil {
		return nil, err
	}

	summary := &dto.DashboardSummary{
		TotalProducts:   len(products),
		TotalStockValue: decimal.Zero,
	}

	qtyByCategory := make(map[string]int)
	for _, p := range products {
		summary.TotalStockValue = summary.TotalStockValue.Add(p.TotalValue())
		switch p.StockStatus() {
		case entity.StockStatusLow:
			summary.LowStockCount++
		case entity.StockStatusOut:
			summary.OutOfStockCount++
		}
		qtyByCategory[p.CategoryID] += p.Quantity
	}

	value, _ := summary.TotalStockValue.Round(2).Float64()
	summary.TotalStockValueDisplay = "$" + uc.printer.Sprint(
		number.Decimal(value, number.MinFractionDigits(2), number.MaxFractionDigits(2)))

	// Solo categorías con al menos un producto, en orden de alta; las
	// referencias huérfanas se agrupan bajo "Unknown".
	known := make(map[string]bool, len(categories))
	for _, c := range categories {
		known[c.ID] = true
		if qty, ok := qtyByCategory[c.ID]; ok {
			summary.QuantityByCategory = append(summary.QuantityByCategory, dto.CategoryQuantity{
				Name:     c.Name,
				Quantity: qty,
			})
		}
	}
	unknown := 0
	orphaned := false
	for id, qty := range qtyByCategory {
		if !known[id] {
			unknown += qty
			orphaned = true
		}
	}
	if orphaned {
		summary.QuantityByCategory = append(summary.QuantityByCategory, dto.CategoryQuantity{
			Name:     "Unknown",
			Quantity: unknown,
		})
	}

	sort.SliceStable(products, func(i, j int) bool {
		return products[i].LastUpdated.After(products[j].LastUpdated)
	})
	top := products
	if len(top) > dashboardRecentProducts {
		top = top[:dashboardRecentProducts]
	}
	for _, p := range top {
		summary.RecentlyUpdated = append(summary.RecentlyUpdated, dto.ProductResponse{
			ID:           p.ID,
			Name:         p.Name,
			SKU:          p.SKU,
			CategoryID:   p.CategoryID,
			Quantity:     p.Quantity,
			Price:        p.Price,
			SupplierName: p.SupplierName,
			StockStatus:  p.StockStatus(),
			LastUpdated:  p.LastUpdated,
		})
	}

	return summary, nil
}
