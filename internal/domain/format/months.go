package format

import (
	"strings"
	"time"
)

// Tabla inmutable inglés → español para los nombres de mes. Los conjuntos
// origen y destino son disjuntos, así que los reemplazos son independientes
// entre sí y el orden no afecta el resultado.
var monthTranslations = [...]struct{ en, es string }{
	{"January", "Enero"},
	{"February", "Febrero"},
	{"March", "Marzo"},
	{"April", "Abril"},
	{"May", "Mayo"},
	{"June", "Junio"},
	{"July", "Julio"},
	{"August", "Agosto"},
	{"September", "Septiembre"},
	{"October", "Octubre"},
	{"November", "Noviembre"},
	{"December", "Diciembre"},
}

// TranslateMonth reemplaza cada nombre de mes en inglés que aparezca en la
// etiqueta por su equivalente en español; el resto del texto pasa intacto.
func TranslateMonth(label string) string {
	for _, m := range monthTranslations {
		label = strings.ReplaceAll(label, m.en, m.es)
	}
	return label
}

// MonthOptions genera las etiquetas de "Mes Pagado" seleccionables al
// registrar un pago: desde 6 meses atrás hasta 12 meses adelante (pasos de
// 30 días), traducidas al español y sin duplicados.
func MonthOptions(now time.Time) []string {
	var options []string
	seen := make(map[string]bool)
	for i := -6; i <= 12; i++ {
		d := now.AddDate(0, 0, 30*i)
		label := TranslateMonth(d.Format("January 2006"))
		if !seen[label] {
			seen[label] = true
			options = append(options, label)
		}
	}
	return options
}
