package pdf

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Wayams/comite-agua/internal/domain"
	"github.com/Wayams/comite-agua/internal/domain/entity"
)

func testDataset() *entity.ReportDataset {
	return &entity.ReportDataset{
		Title:   "Ingresos por Mes",
		Headers: []string{"Mes", "Total Pagos", "Monto Total (Q)"},
		Rows: [][]any{
			{"Enero 2025", 14, "Q 700.00"},
			{"Febrero 2025", 12, "Q 600.00"},
			{"Marzo 2025", 17, "Q 850.00"},
		},
	}
}

// ── Bandeado ──────────────────────────────────────────────────────────────────

// El bandeado arranca apagado y alterna fila por fila sin mirar el
// contenido: con 3 filas, la 1 y la 3 van sin fondo y la 2 con fondo.
func TestRowShaded_AlternaDesdeApagado(t *testing.T) {
	assert.False(t, rowShaded(0), "fila 1 sin fondo")
	assert.True(t, rowShaded(1), "fila 2 con fondo")
	assert.False(t, rowShaded(2), "fila 3 sin fondo")
	assert.True(t, rowShaded(3))
}

// ── Alineación heurística ─────────────────────────────────────────────────────

func TestCellAlign_SoloUltimaCeldaConAspectoNumerico(t *testing.T) {
	tests := []struct {
		name   string
		index  int
		rowLen int
		text   string
		want   align.Type
	}{
		{"última con moneda", 2, 3, "Q 850.00", align.Right},
		{"última puramente numérica", 2, 3, "17", align.Right},
		{"última textual", 2, 3, "Efectivo", align.Left},
		{"última numérica con decimales", 2, 3, "850.00", align.Left},
		{"no última con moneda", 1, 3, "Q 850.00", align.Left},
		{"no última numérica", 0, 3, "17", align.Left},
		{"última vacía", 2, 3, "", align.Left},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, cellAlign(tc.index, tc.rowLen, tc.text))
		})
	}
}

func TestIsDigits(t *testing.T) {
	assert.True(t, isDigits("123"))
	assert.True(t, isDigits("0"))
	assert.False(t, isDigits(""))
	assert.False(t, isDigits("12.5"))
	assert.False(t, isDigits("-3"))
	assert.False(t, isDigits("12a"))
}

func TestCellText(t *testing.T) {
	assert.Equal(t, "", cellText(nil))
	assert.Equal(t, "Enero 2025", cellText("Enero 2025"))
	assert.Equal(t, "14", cellText(14))
	assert.Equal(t, "14", cellText(json.Number("14")), "los conteos del backend llegan como json.Number")
}

// ── Generación ────────────────────────────────────────────────────────────────

func TestReportGenerate_NombreDeArchivo(t *testing.T) {
	dir := t.TempDir()
	gen := NewReportGenerator(dir).WithClock(fixedClock)

	path, err := gen.Generate(testDataset())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "Ingresos_por_Mes_2025-03-10.pdf"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestReportGenerate_PreservaElOrdenSinTocarFilas(t *testing.T) {
	// El generador no ordena ni filtra: el dataset entra y sale igual.
	ds := testDataset()
	gen := NewReportGenerator(t.TempDir()).WithClock(fixedClock)

	_, err := gen.Generate(ds)
	require.NoError(t, err)
	assert.Equal(t, testDataset().Rows, ds.Rows)
}

func TestReportGenerate_FilaDesalineadaEsInvalida(t *testing.T) {
	ds := testDataset()
	ds.Rows = append(ds.Rows, []any{"sobra una celda", 1, "Q 1.00", "extra"})

	gen := NewReportGenerator(t.TempDir()).WithClock(fixedClock)
	_, err := gen.Generate(ds)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestReportGenerate_SinEncabezadosEsInvalido(t *testing.T) {
	ds := &entity.ReportDataset{Title: "Vacío"}
	gen := NewReportGenerator(t.TempDir()).WithClock(fixedClock)

	_, err := gen.Generate(ds)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestReportGenerate_SinFilasAunAsiGenera(t *testing.T) {
	ds := testDataset()
	ds.Rows = nil

	gen := NewReportGenerator(t.TempDir()).WithClock(fixedClock)
	path, err := gen.Generate(ds)
	require.NoError(t, err)
	assert.FileExists(t, path)
}

func TestReportGenerate_FallaDeEscrituraComoLayoutIOError(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "ocupado")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	gen := NewReportGenerator(blocker).WithClock(fixedClock)
	_, err := gen.Generate(testDataset())

	require.Error(t, err)
	var ioErr *domain.LayoutIOError
	assert.True(t, errors.As(err, &ioErr))
}

func TestBaseFilename(t *testing.T) {
	ds := &entity.ReportDataset{Title: "Detalle de Pagos por Usuario"}
	today := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "Detalle_de_Pagos_por_Usuario_2025-03-10", ds.BaseFilename(today))
}
