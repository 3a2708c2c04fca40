package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/Wayams/comite-agua/internal/domain"
)

// ReportDataset es el resultado tabular de una consulta de reporte:
// encabezados ordenados y filas alineadas 1:1 con ellos. El motor de
// documentos nunca ordena, filtra ni deduplica las filas.
type ReportDataset struct {
	Title   string
	Headers []string
	Rows    [][]any
}

// Validate verifica el invariante de forma: encabezados no vacíos y cada
// fila con exactamente len(Headers) celdas.
func (d *ReportDataset) Validate() error {
	if len(d.Headers) == 0 {
		return fmt.Errorf("%w: reporte sin encabezados", domain.ErrInvalidInput)
	}
	for i, row := range d.Rows {
		if len(row) != len(d.Headers) {
			return fmt.Errorf("%w: fila %d tiene %d celdas, se esperaban %d",
				domain.ErrInvalidInput, i, len(row), len(d.Headers))
		}
	}
	return nil
}

// BaseFilename devuelve el nombre base de los archivos derivados del
// reporte: título con espacios reemplazados por guiones bajos más la fecha.
func (d *ReportDataset) BaseFilename(today time.Time) string {
	return strings.ReplaceAll(d.Title, " ", "_") + "_" + today.Format("2006-01-02")
}

// Document es el artefacto producido por el motor: la ruta escrita.
// Se escribe una sola vez y el motor nunca lo vuelve a leer.
type Document struct {
	Path string
}
