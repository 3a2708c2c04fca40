// Package format contiene las utilidades puras de formato del motor de
// documentos: moneda, fechas con reparseo tolerante y word-wrap de ancho
// fijo. Ninguna función toca estado externo.
package format

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Wayams/comite-agua/internal/domain"
)

// CurrencyPrefix es el marcador de moneda (Quetzal) con el que se imprimen
// y se reconocen los montos en todos los documentos.
const CurrencyPrefix = "Q "

// Currency formatea un monto como "Q 125.00" (siempre dos decimales).
// Falla con *domain.FormatError únicamente si el valor no es coercible a
// float64; el llamador degrada a "Q " + valor crudo en lugar de abortar.
func Currency(v any) (string, error) {
	f, ok := toFloat(v)
	if !ok {
		return "", &domain.FormatError{Value: v}
	}
	return fmt.Sprintf("%s%.2f", CurrencyPrefix, f), nil
}

// CurrencyOrRaw formatea el monto y, si no es coercible, devuelve el
// marcador de moneda seguido del valor crudo. Nunca falla.
func CurrencyOrRaw(v any) string {
	if s, err := Currency(v); err == nil {
		return s
	}
	return CurrencyPrefix + fmt.Sprint(v)
}

// ParseCurrency recupera el valor numérico de un monto mostrado como
// "Q 1,234.56". Devuelve false (sin error) para cualquier otra forma: la
// exportación deja la celda original intacta en vez de perder datos.
func ParseCurrency(display string) (float64, bool) {
	if !strings.HasPrefix(display, CurrencyPrefix) {
		return 0, false
	}
	raw := strings.ReplaceAll(display[len(CurrencyPrefix):], ",", "")
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// Date formatea una fecha como DD/MM/YYYY. Acepta time.Time o string:
// los strings YYYY-MM-DD se reparsean y reformatean; cualquier otro string
// se devuelve sin cambios (degradación sin pérdida).
func Date(v any) string {
	switch d := v.(type) {
	case time.Time:
		return d.Format("02/01/2006")
	case *time.Time:
		if d == nil {
			return ""
		}
		return d.Format("02/01/2006")
	case string:
		if t, err := time.Parse("2006-01-02", d); err == nil {
			return t.Format("02/01/2006")
		}
		return d
	default:
		return fmt.Sprint(v)
	}
}

// WrapText corta un texto en líneas de a lo sumo maxWidth caracteres con
// word-wrap codicioso: acumula palabras mientras len(línea)+len(palabra)
// quede por debajo del límite y cierra la línea con la palabra que lo
// excedería. Una palabra más larga que maxWidth queda intacta en su propia
// línea. maxWidth cuenta caracteres, no píxeles. Texto vacío → nil.
func WrapText(text string, maxWidth int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	line := ""
	for _, word := range words {
		if len(line)+len(word) < maxWidth {
			line += word + " "
			continue
		}
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
		line = word + " "
	}
	if trimmed := strings.TrimSpace(line); trimmed != "" {
		lines = append(lines, trimmed)
	}
	return lines
}

// toFloat coerciona los tipos de monto que la API puede entregar.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case decimal.Decimal:
		return n.InexactFloat64(), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	default:
		return 0, false
	}
}
