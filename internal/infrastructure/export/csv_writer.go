// Package export serializa reportes al formato de texto delimitado de la
// descarga de reportes.
//
// No es CSV RFC 4180: la fila de cabecera va sin comillas, cada celda de datos
// se entrecomilla siempre, las comillas internas se duplican y las comas
// internas se eliminan.
package export

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/tu-usuario/inventario-lite/internal/application/dto"
)

const separator = ","

// CSVWriter serializa un ReportDocument a texto delimitado.
type CSVWriter struct{}

// NewCSVWriter construye el writer.
func NewCSVWriter() *CSVWriter { return &CSVWriter{} }

// Marshal devuelve el contenido: cabecera con los nombres de columna y una
// línea por fila, celdas entrecomilladas y unidas por comas.
func (w *CSVWriter) Marshal(doc *dto.ReportDocument) []byte {
	if doc == nil || len(doc.Rows) == 0 {
		return nil
	}
	var b strings.Builder
	b.WriteString(strings.Join(doc.Headers, separator))
	for _, row := range doc.Rows {
		b.WriteString("\n")
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = escapeCell(cell)
		}
		b.WriteString(strings.Join(cells, separator))
	}
	return []byte(b.String())
}

// Filename devuelve el nombre sugerido del archivo: el título con extensión .csv.
func (w *CSVWriter) Filename(doc *dto.ReportDocument) string {
	return doc.Title + ".csv"
}

// WriteFile serializa el reporte y lo escribe en dir con el nombre sugerido.
// Devuelve la ruta escrita; con un reporte vacío no escribe nada.
func (w *CSVWriter) WriteFile(dir string, doc *dto.ReportDocument) (string, error) {
	content := w.Marshal(doc)
	if content == nil {
		return "", nil
	}
	path := filepath.Join(dir, w.Filename(doc))
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return "", err
	}
	return path, nil
}

// escapeCell duplica las comillas internas, elimina las comas incrustadas y
// entrecomilla la celda. El orden importa: comillas primero, comas después.
func escapeCell(cell string) string {
	escaped := strings.ReplaceAll(cell, `"`, `""`)
	escaped = strings.ReplaceAll(escaped, separator, "")
	return `"` + escaped + `"`
}
