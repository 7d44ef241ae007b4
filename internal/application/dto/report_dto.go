package dto

// ReportType identifica uno de los cuatro reportes fijos.
type ReportType string

// Reportes disponibles.
const (
	ReportAvailable ReportType = "available"
	ReportLowStock  ReportType = "lowStock"
	ReportPurchases ReportType = "purchases"
	ReportSales     ReportType = "sales"
)

// ReportDocument reporte tabular listo para mostrar, exportar a CSV o imprimir.
// Headers fija el orden de las columnas; cada fila tiene len(Headers) celdas.
type ReportDocument struct {
	Type    ReportType `json:"type"`
	Title   string     `json:"title"`
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}
