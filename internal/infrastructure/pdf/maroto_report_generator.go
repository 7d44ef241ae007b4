// Package pdf genera la versión imprimible de un reporte: título más tabla.
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/tu-usuario/inventario-lite/internal/application/dto"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

const gridColumns = 12

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator renderiza un ReportDocument como PDF usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateReportPDF genera el PDF del reporte y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateReportPDF(doc *dto.ReportDocument) ([]byte, error) {
	if doc == nil || len(doc.Headers) == 0 {
		return nil, fmt.Errorf("pdf: reporte vacío")
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle(doc.Title, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(titleRow(doc.Title))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow(doc.Headers))
	for _, r := range doc.Rows {
		m.AddRows(tableDetailRow(doc.Headers, r))
	}
	if len(doc.Rows) == 0 {
		m.AddRows(row.New(10).Add(
			col.New(gridColumns).Add(
				text.New("No data available for this report.", props.Text{
					Size: 9, Top: 3, Color: colorGray,
				}),
			),
		))
	}

	generated, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return generated.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func titleRow(title string) core.Row {
	return row.New(12).Add(
		col.New(gridColumns).Add(
			text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
	)
}

func tableHeaderRow(headers []string) core.Row {
	cols := make([]core.Col, 0, len(headers))
	for _, h := range headers {
		cols = append(cols, col.New(columnWidth(len(headers))).Add(
			text.New(h, props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
		))
	}
	return row.New(8).Add(cols...)
}

func tableDetailRow(headers, cells []string) core.Row {
	cols := make([]core.Col, 0, len(headers))
	for i := range headers {
		value := ""
		if i < len(cells) {
			value = cells[i]
		}
		cols = append(cols, col.New(columnWidth(len(headers))).Add(
			text.New(value, props.Text{Size: 8, Top: 1, Color: colorGray}),
		))
	}
	return row.New(6).Add(cols...)
}

// columnWidth reparte la grilla de 12 entre las columnas del reporte.
// Los cuatro reportes fijos tienen 6 o 7 columnas; el resto de la grilla
// queda sin usar cuando la división no es exacta.
func columnWidth(count int) int {
	if count <= 0 {
		return gridColumns
	}
	w := gridColumns / count
	if w < 1 {
		w = 1
	}
	return w
}
