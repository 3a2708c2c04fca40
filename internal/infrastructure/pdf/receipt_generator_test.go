package pdf

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Wayams/comite-agua/internal/domain"
	"github.com/Wayams/comite-agua/internal/domain/entity"
)

const testOrgName = "COMITÉ DE AGUA - ALDEA PANCHO DE LEÓN"

func fixedClock() time.Time {
	return time.Date(2025, time.March, 10, 9, 30, 0, 0, time.UTC)
}

func testPayment() *entity.Payment {
	return &entity.Payment{
		ID:          42,
		Amount:      decimal.NewFromFloat(125.00),
		MonthPaid:   "Marzo 2025",
		PaymentDate: "2025-03-05",
		Method:      "Efectivo",
		Note:        "",
	}
}

func testSubscriber() *entity.Subscriber {
	return &entity.Subscriber{
		FirstName:        "Ana",
		LastName:         "López",
		Address:          "Calle 1",
		ConnectionNumber: "12",
	}
}

// ── Nombre y ruta ─────────────────────────────────────────────────────────────

func TestReceiptNumber_CincoDigitosConPrefijo(t *testing.T) {
	assert.Equal(t, "REC-00007", entity.ReceiptNumber(7))
	assert.Equal(t, "REC-00042", entity.ReceiptNumber(42))
	assert.Equal(t, "REC-00000", entity.ReceiptNumber(0))
	assert.Equal(t, "REC-12345", entity.ReceiptNumber(12345))
}

func TestGenerate_EscribeElArchivoEsperado(t *testing.T) {
	dir := t.TempDir()
	gen := NewReceiptGenerator(dir, testOrgName).WithClock(fixedClock)

	path, err := gen.Generate(testPayment(), testSubscriber())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "REC-00042.pdf"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]), "el archivo debe ser un PDF")
}

func TestGenerate_CreaElDirectorioSiNoExiste(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "Recibos_Generados")
	gen := NewReceiptGenerator(dir, testOrgName).WithClock(fixedClock)

	_, err := gen.Generate(testPayment(), testSubscriber())
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

// TestGenerate_RegenerarEsIdempotente: el mismo pago produce el mismo
// nombre de archivo y regenerar sobrescribe en silencio. No se comparan
// bytes: el PDF lleva metadatos de creación fuera de nuestro reloj.
func TestGenerate_RegenerarEsIdempotente(t *testing.T) {
	dir := t.TempDir()
	gen := NewReceiptGenerator(dir, testOrgName).WithClock(fixedClock)

	path1, err := gen.Generate(testPayment(), testSubscriber())
	require.NoError(t, err)
	first, err := os.ReadFile(path1)
	require.NoError(t, err)

	path2, err := gen.Generate(testPayment(), testSubscriber())
	require.NoError(t, err)
	second, err := os.ReadFile(path2)
	require.NoError(t, err)

	assert.Equal(t, path1, path2, "regenerar no debe cambiar la ruta")
	assert.Equal(t, len(first), len(second), "mismo contenido visible, mismo tamaño")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "la regeneración sobrescribe, no acumula archivos")
}

// ── Degradaciones ─────────────────────────────────────────────────────────────

func TestGenerate_MontoNoCoercibleNoAbortaElRecibo(t *testing.T) {
	p := testPayment()
	p.Amount = "pendiente de confirmación"

	gen := NewReceiptGenerator(t.TempDir(), testOrgName).WithClock(fixedClock)
	_, err := gen.Generate(p, testSubscriber())
	assert.NoError(t, err, "un monto raro degrada a texto, no falla el documento")
}

func TestGenerate_FechaComoStringNoISO(t *testing.T) {
	p := testPayment()
	p.PaymentDate = "principios de marzo"

	gen := NewReceiptGenerator(t.TempDir(), testOrgName).WithClock(fixedClock)
	_, err := gen.Generate(p, testSubscriber())
	assert.NoError(t, err)
}

func TestGenerate_ObservacionLargaSeEnvuelve(t *testing.T) {
	p := testPayment()
	p.Note = "El suscriptor realizó el pago de dos meses adelantados según acuerdo de la " +
		"asamblea general del comité celebrada el cinco de marzo, con recargo condonado."

	gen := NewReceiptGenerator(t.TempDir(), testOrgName).WithClock(fixedClock)
	path, err := gen.Generate(p, testSubscriber())
	require.NoError(t, err)
	assert.FileExists(t, path)
}

// Una observación de varias líneas no debe empujar el pie de página a una
// segunda hoja: el espaciador cede altura y el recibo sigue en una página.
func TestGenerate_ObservacionMuyLargaSigueEnUnaPagina(t *testing.T) {
	p := testPayment()
	p.Note = strings.Repeat("pago adelantado según acuerdo de asamblea general con recargo condonado ", 20)

	gen := NewReceiptGenerator(t.TempDir(), testOrgName).WithClock(fixedClock)
	path, err := gen.Generate(p, testSubscriber())
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "/Count 1", "el recibo debe caber en una sola página")
}

func TestFooterSpacer_CedeAlturaSegunLaNota(t *testing.T) {
	assert.InDelta(t, 90, footerSpacer(""), 0.01, "sin nota el espaciador queda completo")
	assert.InDelta(t, 90, footerSpacer("   "), 0.01)

	short := footerSpacer("pago adelantado")
	assert.Less(t, short, 90.0, "con nota el espaciador cede altura")

	long := footerSpacer(strings.Repeat("recargo condonado por acuerdo de asamblea ", 4))
	assert.Less(t, long, short, "más líneas, menos espaciador")

	huge := footerSpacer(strings.Repeat("nota ", 400))
	assert.InDelta(t, 15, huge, 0.01, "el espaciador nunca baja del piso")
}

// ── Fallas de escritura ───────────────────────────────────────────────────────

func TestGenerate_FallaDeEscrituraComoLayoutIOError(t *testing.T) {
	// Un archivo regular en el lugar del directorio destino hace fallar MkdirAll.
	blocker := filepath.Join(t.TempDir(), "ocupado")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	gen := NewReceiptGenerator(blocker, testOrgName).WithClock(fixedClock)
	_, err := gen.Generate(testPayment(), testSubscriber())

	require.Error(t, err)
	var ioErr *domain.LayoutIOError
	assert.True(t, errors.As(err, &ioErr), "la falla debe reportarse como *domain.LayoutIOError")
}
