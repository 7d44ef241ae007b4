// Package reports proyecta productos y transacciones en los cuatro reportes
// tabulares fijos, listos para exportar o imprimir.
package reports

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/inventario-lite/internal/application/dto"
	"github.com/tu-usuario/inventario-lite/internal/domain"
	"github.com/tu-usuario/inventario-lite/internal/domain/entity"
	"github.com/tu-usuario/inventario-lite/internal/domain/repository"
)

// Formato de fecha de las filas, estilo en-US con reloj de 12 horas.
const rowDateLayout = "1/2/2006, 3:04:05 PM"

// placeholder para referencias rotas (p. ej. transacción de un producto borrado).
const placeholder = "N/A"

// Títulos de cada reporte.
var reportTitles = map[dto.ReportType]string{
	dto.ReportAvailable: "Available Stock Report",
	dto.ReportLowStock:  "Low Stock Report",
	dto.ReportPurchases: "Purchase History Report",
	dto.ReportSales:     "Sales History Report",
}

// UseCase genera los reportes como funciones puras del estado actual.
type UseCase struct {
	products     repository.ProductRepository
	categories   repository.CategoryRepository
	transactions repository.TransactionRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	products repository.ProductRepository,
	categories repository.CategoryRepository,
	transactions repository.TransactionRepository,
) *UseCase {
	return &UseCase{products: products, categories: categories, transactions: transactions}
}

// Generate construye el reporte del tipo indicado.
func (uc *UseCase) Generate(reportType dto.ReportType) (*dto.ReportDocument, error) {
	switch reportType {
	case dto.ReportAvailable:
		return uc.availableStock()
	case dto.ReportLowStock:
		return uc.lowStock()
	case dto.ReportPurchases:
		return uc.transactionHistory(dto.ReportPurchases, entity.TransactionTypePurchase,
			"Quantity Purchased", "Total Cost")
	case dto.ReportSales:
		return uc.transactionHistory(dto.ReportSales, entity.TransactionTypeSale,
			"Quantity Sold", "Total Revenue")
	default:
		return nil, domain.ErrInvalidInput
	}
}

// availableStock: productos con cantidad > 0, con valor total por fila.
func (uc *UseCase) availableStock() (*dto.ReportDocument, error) {
	products, categoryName, err := uc.loadProducts()
	if err != nil {
		return nil, err
	}
	doc := &dto.ReportDocument{
		Type:    dto.ReportAvailable,
		Title:   reportTitles[dto.ReportAvailable],
		Headers: []string{"Product Name", "SKU", "Category", "Supplier", "Quantity", "Price", "Total Value"},
	}
	for _, p := range products {
		if p.Quantity == 0 {
			continue
		}
		doc.Rows = append(doc.Rows, []string{
			p.Name,
			p.SKU,
			categoryName(p.CategoryID),
			p.SupplierName,
			fmt.Sprint(p.Quantity),
			money(p.Price),
			money(p.TotalValue()),
		})
	}
	return doc, nil
}

// lowStock: productos con 0 < cantidad <= umbral.
func (uc *UseCase) lowStock() (*dto.ReportDocument, error) {
	products, categoryName, err := uc.loadProducts()
	if err != nil {
		return nil, err
	}
	doc := &dto.ReportDocument{
		Type:    dto.ReportLowStock,
		Title:   reportTitles[dto.ReportLowStock],
		Headers: []string{"Product Name", "SKU", "Category", "Supplier", "Quantity", "Price"},
	}
	for _, p := range products {
		if p.Quantity == 0 || p.Quantity > entity.LowStockThreshold {
			continue
		}
		doc.Rows = append(doc.Rows, []string{
			p.Name,
			p.SKU,
			categoryName(p.CategoryID),
			p.SupplierName,
			fmt.Sprint(p.Quantity),
			money(p.Price),
		})
	}
	return doc, nil
}

// transactionHistory: proyección de las transacciones del tipo dado.
// Un producto ya eliminado se muestra con el placeholder, no rompe la vista.
func (uc *UseCase) transactionHistory(reportType dto.ReportType, txType, qtyHeader, totalHeader string) (*dto.ReportDocument, error) {
	txs, err := uc.transactions.ListByType(txType)
	if err != nil {
		return nil, err
	}
	products, err := uc.products.List()
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*entity.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	doc := &dto.ReportDocument{
		Type:    reportType,
		Title:   reportTitles[reportType],
		Headers: []string{"Date", "Product Name", "SKU", qtyHeader, "Price per Item", totalHeader},
	}
	for _, tx := range txs {
		name, sku := placeholder, placeholder
		if p, ok := byID[tx.ProductID]; ok {
			name, sku = p.Name, p.SKU
		}
		doc.Rows = append(doc.Rows, []string{
			tx.Date.Format(rowDateLayout),
			name,
			sku,
			fmt.Sprint(tx.Quantity),
			money(tx.PricePerItem),
			money(tx.Total()),
		})
	}
	return doc, nil
}

// loadProducts carga productos y un resolvedor de nombre de categoría.
func (uc *UseCase) loadProducts() ([]*entity.Product, func(string) string, error) {
	products, err := uc.products.List()
	if err != nil {
		return nil, nil, err
	}
	categories, err := uc.categories.List()
	if err != nil {
		return nil, nil, err
	}
	names := make(map[string]string, len(categories))
	for _, c := range categories {
		names[c.ID] = c.Name
	}
	resolve := func(id string) string {
		if name, ok := names[id]; ok {
			return name
		}
		return placeholder
	}
	return products, resolve, nil
}

func money(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}
