package excel_test

import (
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/Wayams/comite-agua/internal/domain"
	"github.com/Wayams/comite-agua/internal/domain/entity"
	"github.com/Wayams/comite-agua/internal/infrastructure/excel"
)

// TestExport_MontosComoNumeros valida la razón de ser del exportador: las
// celdas "Q 150.00" terminan como números reales en la hoja, no como texto.
func TestExport_MontosComoNumeros(t *testing.T) {
	ds := &entity.ReportDataset{
		Title:   "Ingresos por Mes",
		Headers: []string{"ID", "Total (Q)"},
		Rows: [][]any{
			{1, "Q 150.00"},
			{2, "Q 75.50"},
		},
	}
	dest := filepath.Join(t.TempDir(), "ingresos.xlsx")

	require.NoError(t, excel.NewExporter().Export(ds, dest))

	f, err := excelize.OpenFile(dest)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	sheet := "Ingresos por Mes"
	for _, tc := range []struct{ cell, want string }{
		{"A1", "ID"},
		{"B1", "Total (Q)"},
		{"A2", "1"},
		{"B2", "150"},
		{"A3", "2"},
		{"B3", "75.5"},
	} {
		got, err := f.GetCellValue(sheet, tc.cell)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "celda %s", tc.cell)
	}
}

// TestExport_CeldasJSONNumberComoNumeros cubre el camino de datos real:
// el cliente decodifica con UseNumber, así que IDs y conteos llegan como
// json.Number y deben terminar como celdas numéricas, no como texto.
func TestExport_CeldasJSONNumberComoNumeros(t *testing.T) {
	ds := &entity.ReportDataset{
		Title:   "Ingresos por Mes",
		Headers: []string{"ID", "Total Pagos", "Monto Total (Q)"},
		Rows: [][]any{
			{json.Number("1"), json.Number("14"), "Q 700.00"},
			{json.Number("2"), json.Number("12.5"), "Q 600.00"},
		},
	}
	dest := filepath.Join(t.TempDir(), "ingresos.xlsx")

	require.NoError(t, excel.NewExporter().Export(ds, dest))

	f, err := excelize.OpenFile(dest)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	sheet := "Ingresos por Mes"
	for _, tc := range []struct{ cell, want string }{
		{"A2", "1"},
		{"B2", "14"},
		{"C2", "700"},
		{"A3", "2"},
		{"B3", "12.5"},
	} {
		got, err := f.GetCellValue(sheet, tc.cell)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "celda %s", tc.cell)

		ct, err := f.GetCellType(sheet, tc.cell)
		require.NoError(t, err)
		assert.NotEqual(t, excelize.CellTypeSharedString, ct, "celda %s no debe ser texto", tc.cell)
		assert.NotEqual(t, excelize.CellTypeInlineString, ct, "celda %s no debe ser texto", tc.cell)
	}
}

func TestExport_CeldasNoParseablesSeConservan(t *testing.T) {
	ds := &entity.ReportDataset{
		Title:   "Morosos",
		Headers: []string{"Nombre", "Último Pago"},
		Rows: [][]any{
			{"Ana López", "Sin pagos"},
			{"Juan Pérez", "Q sin monto"},
		},
	}
	dest := filepath.Join(t.TempDir(), "morosos.xlsx")

	require.NoError(t, excel.NewExporter().Export(ds, dest))

	f, err := excelize.OpenFile(dest)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	got, err := f.GetCellValue("Morosos", "B2")
	require.NoError(t, err)
	assert.Equal(t, "Sin pagos", got, "una celda que no parsea nunca se pierde")

	got, err = f.GetCellValue("Morosos", "B3")
	require.NoError(t, err)
	assert.Equal(t, "Q sin monto", got)
}

func TestExport_TituloDeHojaTruncadoA31(t *testing.T) {
	longTitle := "Detalle de Pagos por Usuario del Año Completo"
	ds := &entity.ReportDataset{
		Title:   longTitle,
		Headers: []string{"ID"},
		Rows:    [][]any{{1}},
	}
	dest := filepath.Join(t.TempDir(), "detalle.xlsx")

	require.NoError(t, excel.NewExporter().Export(ds, dest))

	f, err := excelize.OpenFile(dest)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	require.Len(t, sheets, 1)
	assert.Equal(t, string([]rune(longTitle)[:31]), sheets[0])
	assert.LessOrEqual(t, len([]rune(sheets[0])), 31)
}

func TestExport_DestinoInvalidoComoExportTargetError(t *testing.T) {
	ds := &entity.ReportDataset{
		Title:   "Ingresos",
		Headers: []string{"ID"},
		Rows:    [][]any{{1}},
	}
	dest := filepath.Join(t.TempDir(), "no-existe", "sub", "ingresos.xlsx")

	err := excel.NewExporter().Export(ds, dest)
	require.Error(t, err)

	var exportErr *domain.ExportTargetError
	assert.True(t, errors.As(err, &exportErr))
}

func TestExport_DatasetInvalido(t *testing.T) {
	ds := &entity.ReportDataset{
		Title:   "Malformado",
		Headers: []string{"A", "B"},
		Rows:    [][]any{{1}},
	}
	err := excel.NewExporter().Export(ds, filepath.Join(t.TempDir(), "x.xlsx"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDefaultFilename(t *testing.T) {
	today := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
	got := excel.DefaultFilename("Ingresos por Mes", today)

	assert.Equal(t, "Ingresos_por_Mes_2025-03-10.xlsx", got)
	assert.False(t, strings.Contains(got, " "))
}
