package entity

import "fmt"

// Métodos de pago aceptados por la oficina.
const (
	MetodoEfectivo      = "Efectivo"
	MetodoTransferencia = "Transferencia"
	MetodoDeposito      = "Depósito"
)

// Payment representa un pago de servicio de agua tal como llega de la API.
//
// Amount y PaymentDate conservan el valor crudo recibido: Amount suele ser
// un decimal.Decimal pero puede quedar como string si la API devolvió algo
// no numérico; PaymentDate puede ser time.Time o un string ISO. El motor de
// documentos degrada al valor crudo en vez de rechazar el pago.
type Payment struct {
	ID          int
	Amount      any
	MonthPaid   string
	PaymentDate any
	Method      string
	Note        string
}

// ReceiptNumber deriva el número de recibo de un ID de pago: 5 dígitos con
// ceros a la izquierda y prefijo REC-. El mismo ID produce siempre el mismo
// número, por lo que regenerar un recibo sobrescribe el archivo anterior.
func ReceiptNumber(paymentID int) string {
	return fmt.Sprintf("REC-%05d", paymentID)
}
