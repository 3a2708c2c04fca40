// Package excel exporta los reportes tabulares a hojas de cálculo .xlsx.
package excel

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/Wayams/comite-agua/internal/domain"
	"github.com/Wayams/comite-agua/internal/domain/entity"
	"github.com/Wayams/comite-agua/internal/domain/format"
)

// Los formatos de hoja de cálculo comunes limitan el título de una hoja a
// 31 caracteres.
const maxSheetTitle = 31

// Exporter escribe un ReportDataset en un libro de una sola hoja. Las
// celdas string con forma de monto ("Q 1,234.56") se convierten a celdas
// numéricas para que las columnas exportadas se puedan ordenar y sumar;
// las que no parsean se conservan tal cual, nunca se descartan.
type Exporter struct{}

// NewExporter construye el exportador.
func NewExporter() *Exporter { return &Exporter{} }

// Export escribe el dataset en destPath. Las fallas de destino o escritura
// se reportan como una única *domain.ExportTargetError.
func (e *Exporter) Export(dataset *entity.ReportDataset, destPath string) error {
	if err := dataset.Validate(); err != nil {
		return err
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := sheetTitle(dataset.Title)
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return &domain.ExportTargetError{Path: destPath, Err: err}
	}

	// Fila 1: encabezados tal cual
	for i, header := range dataset.Headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return &domain.ExportTargetError{Path: destPath, Err: err}
		}
	}

	// Filas de datos con una sola pasada de coerción de montos
	for r, row := range dataset.Rows {
		for c, value := range row {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			if err := f.SetCellValue(sheet, cell, coerce(value)); err != nil {
				return &domain.ExportTargetError{Path: destPath, Err: err}
			}
		}
	}

	styleHeader(f, sheet, len(dataset.Headers))

	if err := f.SaveAs(destPath); err != nil {
		return &domain.ExportTargetError{Path: destPath, Err: err}
	}
	return nil
}

// DefaultFilename es el nombre sugerido en el diálogo de guardado:
// {título_con_guiones_bajos}_{YYYY-MM-DD}.xlsx.
func DefaultFilename(title string, today time.Time) string {
	return strings.ReplaceAll(title, " ", "_") + "_" + today.Format("2006-01-02") + ".xlsx"
}

// coerce convierte las celdas a tipos que la hoja guarda como números:
// los json.Number del decodificador se desenvuelven (excelize los
// escribiría como texto) y los strings con forma de monto recuperan su
// valor numérico. Todo lo demás pasa sin cambios.
func coerce(v any) any {
	switch n := v.(type) {
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return i
		}
		if f, err := n.Float64(); err == nil {
			return f
		}
		return n.String()
	case string:
		if f, parsed := format.ParseCurrency(n); parsed {
			return f
		}
	}
	return v
}

// sheetTitle trunca el título del reporte al límite del formato.
func sheetTitle(title string) string {
	runes := []rune(title)
	if len(runes) > maxSheetTitle {
		return string(runes[:maxSheetTitle])
	}
	return title
}

// styleHeader pone la fila de encabezados en negrita con fondo gris claro.
// Un error de estilo no invalida la exportación.
func styleHeader(f *excelize.File, sheet string, cols int) {
	style, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
	})
	if err != nil {
		return
	}
	last, _ := excelize.CoordinatesToCellName(cols, 1)
	_ = f.SetCellStyle(sheet, "A1", last, style)

	for i := 0; i < cols; i++ {
		col, _ := excelize.ColumnNumberToName(i + 1)
		_ = f.SetColWidth(sheet, col, col, 18)
	}
}
