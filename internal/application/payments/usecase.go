// Package payments implementa el registro de pagos y la emisión de recibos.
package payments

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Wayams/comite-agua/internal/domain"
	"github.com/Wayams/comite-agua/internal/domain/entity"
	"github.com/Wayams/comite-agua/internal/domain/format"
	"github.com/Wayams/comite-agua/internal/infrastructure/api"
	"github.com/Wayams/comite-agua/pkg/logger"
)

// Service orquesta el flujo de pagos: valida la captura, registra el pago
// en el backend, genera el recibo y lo entrega al visor del sistema.
type Service struct {
	api      BackendAPI
	receipts ReceiptGenerator
	viewer   Viewer
	log      *logger.Logger
}

// NewService construye el caso de uso inyectando sus dependencias.
func NewService(backend BackendAPI, receipts ReceiptGenerator, viewer Viewer, log *logger.Logger) *Service {
	return &Service{api: backend, receipts: receipts, viewer: viewer, log: log}
}

// RegisterInput es la captura del formulario de pago, tal como la escribe
// el operador (montos y fechas como texto).
type RegisterInput struct {
	UserID    int
	Amount    string
	MonthPaid string
	Date      string // YYYY-MM-DD
	Method    string
	Note      string
}

// RegisterResult es el pago creado junto con el recibo emitido.
type RegisterResult struct {
	Payment *entity.Payment
	Receipt entity.Document
}

// Register valida la captura, crea el pago vía API y emite el recibo. El
// recibo se abre con el visor del sistema; una falla del visor no invalida
// el recibo ya escrito, solo se registra en el log.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*RegisterResult, error) {
	req, err := buildRequest(input)
	if err != nil {
		return nil, err
	}

	created, err := s.api.CreatePayment(ctx, *req)
	if err != nil {
		return nil, err
	}
	s.log.Info().Int("id_pago", created.ID).Str("mes", input.MonthPaid).Msg("pago registrado")

	path, err := s.emitReceipt(ctx, created.ID)
	if err != nil {
		return nil, err
	}
	return &RegisterResult{Payment: created.ToPayment(), Receipt: entity.Document{Path: path}}, nil
}

// RegenerateReceipt vuelve a emitir el recibo de un pago existente. La
// numeración es determinista, así que el archivo anterior se sobrescribe.
func (s *Service) RegenerateReceipt(ctx context.Context, paymentID int) (string, error) {
	return s.emitReceipt(ctx, paymentID)
}

func (s *Service) emitReceipt(ctx context.Context, paymentID int) (string, error) {
	detail, err := s.api.GetPayment(ctx, paymentID)
	if err != nil {
		return "", err
	}

	path, err := s.receipts.Generate(detail.ToPayment(), detail.ToSubscriber())
	if err != nil {
		return "", err
	}

	if err := s.viewer.Open(path); err != nil {
		s.log.Warn().Err(err).Str("ruta", path).Msg("no se pudo abrir el visor")
	}
	return path, nil
}

// Row es una fila del listado de pagos ya formateada para mostrar.
type Row struct {
	ID         int
	Subscriber string
	Connection string
	Date       string
	Amount     string
	Month      string
	Method     string
	Note       string
}

// List devuelve los pagos con el formato de despliegue de la oficina:
// monto como "Q 125.00" y fecha recortada a YYYY-MM-DD.
func (s *Service) List(ctx context.Context, search string) ([]Row, error) {
	details, err := s.api.GetPayments(ctx, search)
	if err != nil {
		return nil, err
	}

	rows := make([]Row, 0, len(details))
	for _, d := range details {
		p := d.ToPayment()
		rows = append(rows, Row{
			ID:         d.ID,
			Subscriber: d.FirstName + " " + d.LastName,
			Connection: strconv.Itoa(d.ConnectionNumber),
			Date:       displayDate(d.PaymentDate),
			Amount:     format.CurrencyOrRaw(p.Amount),
			Month:      d.MonthPaid,
			Method:     d.Method,
			Note:       d.Note,
		})
	}
	return rows, nil
}

// ActiveSubscribers lista los suscriptores con paja activa, para elegir a
// quién se le registra el pago.
func (s *Service) ActiveSubscribers(ctx context.Context) ([]*entity.Subscriber, error) {
	users, err := s.api.GetUsers(ctx, true)
	if err != nil {
		return nil, err
	}
	subscribers := make([]*entity.Subscriber, 0, len(users))
	for i := range users {
		subscribers = append(subscribers, users[i].ToSubscriber())
	}
	return subscribers, nil
}

// ── Validación de captura ─────────────────────────────────────────────────────

func buildRequest(input RegisterInput) (*api.CreatePaymentRequest, error) {
	if input.UserID <= 0 {
		return nil, fmt.Errorf("%w: debe seleccionar un suscriptor válido", domain.ErrInvalidInput)
	}

	amount, err := strconv.ParseFloat(strings.TrimSpace(input.Amount), 64)
	if err != nil {
		return nil, fmt.Errorf("%w: el monto debe ser un número válido", domain.ErrInvalidInput)
	}
	if amount <= 0 {
		return nil, fmt.Errorf("%w: el monto debe ser mayor que cero", domain.ErrInvalidInput)
	}

	month := strings.TrimSpace(input.MonthPaid)
	method := strings.TrimSpace(input.Method)
	if month == "" || method == "" {
		return nil, fmt.Errorf("%w: mes pagado y método de pago son obligatorios", domain.ErrInvalidInput)
	}

	date, err := time.Parse("2006-01-02", strings.TrimSpace(input.Date))
	if err != nil {
		return nil, fmt.Errorf("%w: el formato de fecha debe ser YYYY-MM-DD", domain.ErrInvalidInput)
	}

	req := &api.CreatePaymentRequest{
		UserID:      input.UserID,
		PaymentDate: date.Format("2006-01-02"),
		Amount:      amount,
		MonthPaid:   month,
		Method:      method,
	}
	if note := strings.TrimSpace(input.Note); note != "" {
		req.Note = &note
	}
	return req, nil
}

// displayDate recorta un timestamp ISO a su porción de fecha.
func displayDate(s string) string {
	if len(s) >= 10 {
		return s[:10]
	}
	return s
}
