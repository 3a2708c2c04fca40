// Package pdf genera los documentos imprimibles del comité de agua usando
// Maroto v2: el recibo oficial de pago (carta A4 vertical) y los reportes
// tabulares (A4 horizontal).
//
// Layout del recibo (orden de bloques fijo; los usuarios comparan recibos
// visualmente, así que el orden no debe cambiar):
//
//	┌─────────────────────────────────────────────┐
//	│        COMITÉ DE AGUA - <organización>      │
//	│    Recibo Oficial de Pago de Servicio...    │
//	│  N° DE RECIBO: REC-00042    Fecha: 05/03/25 │
//	│  ─────────────────────────────────────────  │
//	│  DATOS DEL SUSCRIPTOR: nombre, paja, dir.   │
//	│  DETALLES DEL PAGO: mes, fecha, método      │
//	│  Observaciones (opcional, wrap a 80)        │
//	│  MONTO RECIBIDO:                 Q 125.00   │
//	│        Gracias por contribuir...            │
//	└─────────────────────────────────────────────┘
package pdf

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
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
	"github.com/Wayams/comite-agua/internal/domain/format"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorGray       = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorHeaderFill = &props.Color{Red: 200, Green: 220, Blue: 255}
	colorBandFill   = &props.Color{Red: 240, Green: 240, Blue: 240}
)

// Ancho máximo en caracteres de una línea de observaciones antes de aplicar
// word-wrap. Es un conteo de caracteres, no una medida tipográfica.
const noteWrapWidth = 80

// ── ReceiptGenerator ──────────────────────────────────────────────────────────

// ReceiptGenerator produce el recibo oficial de un pago y lo persiste bajo
// el directorio de recibos como {REC-#####}.pdf. Regenerar el recibo del
// mismo pago sobrescribe el archivo en silencio: la numeración es
// determinista y "reimprimir" es la semántica esperada.
type ReceiptGenerator struct {
	outputDir string
	orgName   string
	now       func() time.Time
}

// NewReceiptGenerator construye el generador. orgName es el encabezado del
// recibo (nombre del comité).
func NewReceiptGenerator(outputDir, orgName string) *ReceiptGenerator {
	return &ReceiptGenerator{
		outputDir: outputDir,
		orgName:   orgName,
		now:       time.Now,
	}
}

// WithClock fija el reloj usado para la fecha de emisión impresa en el
// recibo.
func (g *ReceiptGenerator) WithClock(now func() time.Time) *ReceiptGenerator {
	g.now = now
	return g
}

// Generate renderiza el recibo y lo escribe a disco, devolviendo la ruta.
// Cualquier falla de layout o de escritura se reporta como una única
// *domain.LayoutIOError; no se garantiza limpiar archivos parciales.
func (g *ReceiptGenerator) Generate(payment *entity.Payment, subscriber *entity.Subscriber) (string, error) {
	number := entity.ReceiptNumber(payment.ID)
	path := filepath.Join(g.outputDir, number+".pdf")

	doc, err := g.build(payment, subscriber, number).Generate()
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

func (g *ReceiptGenerator) build(payment *entity.Payment, subscriber *entity.Subscriber, number string) core.Maroto {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithOrientation(orientation.Vertical).
		WithLeftMargin(15).WithRightMargin(15).
		WithTopMargin(15).WithBottomMargin(15).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 10}).
		WithTitle("Recibo "+number, true).
		Build()

	m := maroto.New(cfg)

	// 1. Encabezado centrado de dos líneas
	m.AddRows(
		row.New(10).Add(text.NewCol(12, g.orgName, props.Text{
			Style: fontstyle.Bold, Size: 18, Align: align.Center,
		})),
		row.New(12).Add(text.NewCol(12, "Recibo Oficial de Pago de Servicio de Agua", props.Text{
			Style: fontstyle.Bold, Size: 12, Align: align.Center,
		})),
	)

	// 2. Número de recibo (izq) + fecha de emisión (der) + regla horizontal
	m.AddRows(
		row.New(10).Add(
			col.New(6).Add(text.New("NÚMERO DE RECIBO: "+number, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 2,
			})),
			col.New(6).Add(text.New("Fecha de Emisión: "+g.now().Format("02/01/2006"), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 2,
			})),
		),
		line.NewRow(4, props.Line{Thickness: 0.4}),
	)

	// 3. Datos del suscriptor
	m.AddRows(subscriberRows(subscriber)...)

	// 4. Detalles del pago
	m.AddRows(paymentRows(payment)...)

	// 5. Observaciones (solo si la nota no está en blanco)
	if strings.TrimSpace(payment.Note) != "" {
		m.AddRows(noteRows(payment.Note)...)
	}

	// 6. Monto total destacado
	m.AddRows(
		row.New(14).Add(
			col.New(7).Add(text.New("MONTO RECIBIDO:", props.Text{
				Style: fontstyle.Bold, Size: 14, Top: 4,
			})),
			col.New(5).Add(text.New(format.CurrencyOrRaw(payment.Amount), props.Text{
				Style: fontstyle.Bold, Size: 14, Top: 4,
			})),
		),
	)

	// 7. Pie de página centrado cerca del margen inferior
	m.AddRows(
		row.New(footerSpacer(payment.Note)),
		row.New(8).Add(text.NewCol(12,
			"Gracias por contribuir al mantenimiento del servicio de agua potable.",
			props.Text{Style: fontstyle.Italic, Size: 9, Align: align.Center, Color: colorGray},
		)),
	)

	return m
}

// ── Bloques del recibo ────────────────────────────────────────────────────────

func subscriberRows(s *entity.Subscriber) []core.Row {
	return []core.Row{
		row.New(8).Add(text.NewCol(12, "DATOS DEL SUSCRIPTOR:", props.Text{
			Style: fontstyle.Bold, Size: 11, Top: 2,
		})),
		detailRow("Nombre Completo: " + s.FullName()),
		detailRow("N° de Paja/Conexión: " + s.ConnectionNumber),
		detailRow("Dirección: " + s.Address),
	}
}

func paymentRows(p *entity.Payment) []core.Row {
	return []core.Row{
		row.New(10).Add(text.NewCol(12, "DETALLES DEL PAGO:", props.Text{
			Style: fontstyle.Bold, Size: 11, Top: 4,
		})),
		detailRow("Mes Pagado: " + p.MonthPaid),
		detailRow("Fecha de Pago: " + format.Date(p.PaymentDate)),
		detailRow("Método de Pago: " + p.Method),
	}
}

// noteRows emite el bloque opcional de observaciones. Notas de más de 80
// caracteres se cortan con word-wrap; cada línea va más indentada que la
// etiqueta del bloque.
func noteRows(note string) []core.Row {
	rows := []core.Row{
		row.New(7).Add(text.NewCol(12, "Observaciones:", props.Text{
			Style: fontstyle.Bold, Size: 10, Left: 5, Top: 2,
		})),
	}
	if len(note) > noteWrapWidth {
		for _, ln := range format.WrapText(note, noteWrapWidth) {
			rows = append(rows, row.New(5).Add(text.NewCol(12, ln, props.Text{
				Size: 9, Left: 10,
			})))
		}
	} else {
		rows = append(rows, row.New(6).Add(text.NewCol(12, note, props.Text{
			Size: 9, Left: 10,
		})))
	}
	return rows
}

// footerSpacer calcula la altura del espaciador previo al pie de página.
// El espaciador cede la altura que ocupa el bloque de observaciones, con
// un piso que mantiene el pie separado del monto; así el recibo sigue
// cabiendo en una sola página aunque la nota se envuelva en varias líneas.
func footerSpacer(note string) float64 {
	const base, floor = 90.0, 15.0

	note = strings.TrimSpace(note)
	if note == "" {
		return base
	}
	lines := 1
	if len(note) > noteWrapWidth {
		lines = len(format.WrapText(note, noteWrapWidth))
	}

	// 7 de la etiqueta "Observaciones:" más la altura de cada línea.
	h := base - 7 - 5*float64(lines)
	if h < floor {
		return floor
	}
	return h
}

// detailRow es una línea indentada de 10pt dentro de un bloque etiquetado.
func detailRow(s string) core.Row {
	return row.New(6).Add(text.NewCol(12, s, props.Text{Size: 10, Left: 5, Top: 1}))
}
