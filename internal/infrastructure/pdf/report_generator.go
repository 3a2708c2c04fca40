package pdf

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/Wayams/comite-agua/internal/domain"
	"github.com/Wayams/comite-agua/internal/domain/entity"
)

// ── ReportGenerator ───────────────────────────────────────────────────────────

// ReportGenerator produce el PDF apaisado de un reporte tabular y lo
// persiste bajo el directorio de reportes como
// {título_con_guiones_bajos}_{YYYY-MM-DD}.pdf. El ancho de página se
// reparte en partes iguales entre las columnas y todas las filas tienen la
// misma altura.
type ReportGenerator struct {
	outputDir string
	now       func() time.Time
}

// NewReportGenerator construye el generador de reportes.
func NewReportGenerator(outputDir string) *ReportGenerator {
	return &ReportGenerator{outputDir: outputDir, now: time.Now}
}

// WithClock fija el reloj usado para el nombre del archivo y la línea de
// fecha de generación.
func (g *ReportGenerator) WithClock(now func() time.Time) *ReportGenerator {
	g.now = now
	return g
}

// Generate renderiza el dataset y escribe el PDF, devolviendo la ruta.
// Las fallas de layout o escritura se reportan como una única
// *domain.LayoutIOError.
func (g *ReportGenerator) Generate(dataset *entity.ReportDataset) (string, error) {
	if err := dataset.Validate(); err != nil {
		return "", err
	}

	path := filepath.Join(g.outputDir, dataset.BaseFilename(g.now())+".pdf")

	doc, err := g.build(dataset).Generate()
	if err != nil {
		return "", &domain.LayoutIOError{Path: path, Err: err}
	}
	if err := os.MkdirAll(g.outputDir, 0o755); err != nil {
		return "", &domain.LayoutIOError{Path: g.outputDir, Err: err}
	}
	if err := os.WriteFile(path, doc.GetBytes(), 0o644); err != nil {
		return "", &domain.LayoutIOError{Path: path, Err: err}
	}
	return path, nil
}

func (g *ReportGenerator) build(dataset *entity.ReportDataset) core.Maroto {
	grid := len(dataset.Headers)

	// La grilla tiene una columna por encabezado, de modo que col.New(1)
	// reparte el ancho de página en partes iguales.
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithOrientation(orientation.Horizontal).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithMaxGridSize(grid).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(dataset.Title, true).
		Build()

	m := maroto.New(cfg)

	// Título centrado + fecha de generación a la derecha
	m.AddRows(
		row.New(10).Add(text.NewCol(grid, dataset.Title, props.Text{
			Style: fontstyle.Bold, Size: 16, Align: align.Center,
		})),
		row.New(6).Add(text.NewCol(grid,
			"Fecha de generación: "+g.now().Format("2006-01-02 15:04"),
			props.Text{Size: 10, Align: align.Right, Color: colorGray},
		)),
		row.New(4),
	)

	m.AddRows(headerRow(dataset.Headers))
	for i, cells := range dataset.Rows {
		m.AddRows(dataRow(cells, rowShaded(i)))
	}

	return m
}

// ── Filas de la tabla ─────────────────────────────────────────────────────────

// headerRow: encabezados en negrita sobre fondo azul claro.
func headerRow(headers []string) core.Row {
	cols := make([]core.Col, 0, len(headers))
	for _, h := range headers {
		cols = append(cols, col.New(1).Add(text.New(h, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Center, Top: 2,
		})).WithStyle(&props.Cell{BackgroundColor: colorHeaderFill}))
	}
	return row.New(8).Add(cols...)
}

// dataRow: una fila de datos con altura uniforme y bandeado opcional.
func dataRow(cells []any, shaded bool) core.Row {
	cols := make([]core.Col, 0, len(cells))
	for i, cell := range cells {
		s := cellText(cell)
		c := col.New(1).Add(text.New(s, props.Text{
			Size: 9, Align: cellAlign(i, len(cells), s), Top: 1, Left: 1, Right: 1,
		}))
		if shaded {
			c = c.WithStyle(&props.Cell{BackgroundColor: colorBandFill})
		}
		cols = append(cols, c)
	}
	return row.New(7).Add(cols...)
}

// rowShaded decide el bandeado: arranca apagado y alterna en cada fila,
// sin importar el contenido (filas 1 y 3 sin fondo, fila 2 con fondo).
func rowShaded(index int) bool {
	return index%2 == 1
}

// cellAlign alinea a la derecha únicamente la última celda de la fila, y
// solo cuando su texto contiene el marcador de moneda o es puramente
// numérico. La última columna de estos reportes suele ser un total; la
// heurística inspecciona solo esa celda y no se generaliza por columna.
func cellAlign(index, rowLen int, s string) align.Type {
	if index == rowLen-1 && (containsCurrency(s) || isDigits(s)) {
		return align.Right
	}
	return align.Left
}

func containsCurrency(s string) bool {
	for _, r := range s {
		if r == 'Q' {
			return true
		}
	}
	return false
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// cellText convierte una celda a su texto de despliegue.
func cellText(v any) string {
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}
