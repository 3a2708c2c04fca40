// Package api implementa el cliente REST hacia el backend del comité de
// agua. Toda la comunicación de red de la aplicación pasa por aquí; el
// motor de documentos solo recibe registros estructurados ya decodificados.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-retryablehttp"

	"github.com/Wayams/comite-agua/internal/domain"
	"github.com/Wayams/comite-agua/pkg/logger"
)

// Config opciones del cliente.
type Config struct {
	BaseURL    string
	Timeout    time.Duration
	MaxRetries int
}

// Client es el cliente autenticado del backend. No es seguro para uso
// concurrente; la aplicación que lo consume es de un solo hilo.
type Client struct {
	baseURL string
	http    *retryablehttp.Client
	log     *logger.Logger
	session session
}

// NewClient construye el cliente con reintentos exponenciales para fallas
// transitorias de red.
func NewClient(cfg Config, log *logger.Logger) *Client {
	rc := retryablehttp.NewClient()
	rc.RetryMax = cfg.MaxRetries
	rc.HTTPClient.Timeout = cfg.Timeout
	rc.Logger = nil

	return &Client{
		baseURL: trimSlash(cfg.BaseURL),
		http:    rc,
		log:     log,
	}
}

// ── Autenticación ─────────────────────────────────────────────────────────────

type loginRequest struct {
	User     string `json:"usuario"`
	Password string `json:"clave"`
}

type loginResponse struct {
	AccessToken string         `json:"access_token"`
	UserData    map[string]any `json:"user_data"`
}

// Login inicia sesión y guarda el token para las llamadas siguientes.
func (c *Client) Login(ctx context.Context, user, password string) error {
	var resp loginResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", loginRequest{User: user, Password: password}, &resp); err != nil {
		return fmt.Errorf("login: %w", err)
	}
	if err := c.session.start(resp.AccessToken, resp.UserData); err != nil {
		return fmt.Errorf("login: %w", err)
	}
	c.log.Info().Str("usuario", user).Time("expira", c.session.expiresAt).Msg("sesión iniciada")
	return nil
}

// Logout descarta el token de la sesión.
func (c *Client) Logout() { c.session = session{} }

// Authenticated indica si hay una sesión con token aún vigente.
func (c *Client) Authenticated() bool { return c.session.valid(time.Now()) }

// SessionExpiry devuelve el vencimiento del token actual.
func (c *Client) SessionExpiry() (time.Time, bool) {
	if c.session.token == "" {
		return time.Time{}, false
	}
	return c.session.expiresAt, true
}

// ── Usuarios ──────────────────────────────────────────────────────────────────

// GetUsers lista los suscriptores; activeOnly limita a pajas activas.
func (c *Client) GetUsers(ctx context.Context, activeOnly bool) ([]User, error) {
	path := "/users/?active_only=" + strconv.FormatBool(activeOnly)
	var users []User
	if err := c.do(ctx, http.MethodGet, path, nil, &users); err != nil {
		return nil, fmt.Errorf("obtener usuarios: %w", err)
	}
	return users, nil
}

// GetUser obtiene un suscriptor por ID.
func (c *Client) GetUser(ctx context.Context, id int) (*User, error) {
	var user User
	if err := c.do(ctx, http.MethodGet, "/users/"+strconv.Itoa(id), nil, &user); err != nil {
		return nil, fmt.Errorf("obtener usuario %d: %w", id, err)
	}
	return &user, nil
}

// ── Pagos ─────────────────────────────────────────────────────────────────────

// GetPayments lista los pagos, opcionalmente filtrados por término de
// búsqueda (ID o mes).
func (c *Client) GetPayments(ctx context.Context, search string) ([]PaymentDetail, error) {
	path := "/payments/"
	if search != "" {
		path += "?search=" + url.QueryEscape(search)
	}
	var payments []PaymentDetail
	if err := c.do(ctx, http.MethodGet, path, nil, &payments); err != nil {
		return nil, fmt.Errorf("obtener pagos: %w", err)
	}
	return payments, nil
}

// GetPayment obtiene el detalle de un pago (incluye los datos del
// suscriptor, como los necesita el recibo).
func (c *Client) GetPayment(ctx context.Context, id int) (*PaymentDetail, error) {
	var payment PaymentDetail
	if err := c.do(ctx, http.MethodGet, "/payments/"+strconv.Itoa(id), nil, &payment); err != nil {
		return nil, fmt.Errorf("obtener pago %d: %w", id, err)
	}
	return &payment, nil
}

// CreatePayment registra un pago nuevo y devuelve el registro creado.
func (c *Client) CreatePayment(ctx context.Context, req CreatePaymentRequest) (*PaymentDetail, error) {
	var payment PaymentDetail
	if err := c.do(ctx, http.MethodPost, "/payments/", req, &payment); err != nil {
		return nil, fmt.Errorf("crear pago: %w", err)
	}
	return &payment, nil
}

// ── Reportes ──────────────────────────────────────────────────────────────────

// ReportResult es el contrato de entrada de los reportes: encabezados
// ordenados y filas alineadas 1:1 con ellos, usados tal cual por el motor
// de documentos.
type ReportResult struct {
	Headers []string `json:"encabezados"`
	Rows    [][]any  `json:"datos"`
}

// MorososReport consulta los suscriptores con más de 35 días sin pagar.
func (c *Client) MorososReport(ctx context.Context) (*ReportResult, error) {
	return c.report(ctx, "/reports/morosos")
}

// IngresosReport consulta los ingresos agrupados por mes de pago.
func (c *Client) IngresosReport(ctx context.Context) (*ReportResult, error) {
	return c.report(ctx, "/reports/ingresos")
}

// PagosUsuarioReport consulta el detalle de pagos por suscriptor.
func (c *Client) PagosUsuarioReport(ctx context.Context) (*ReportResult, error) {
	return c.report(ctx, "/reports/pagos-usuario")
}

func (c *Client) report(ctx context.Context, path string) (*ReportResult, error) {
	var result ReportResult
	if err := c.do(ctx, http.MethodGet, path, nil, &result); err != nil {
		return nil, fmt.Errorf("reporte %s: %w", path, err)
	}
	return &result, nil
}

// ── Transporte ────────────────────────────────────────────────────────────────

type apiError struct {
	Detail string `json:"detail"`
}

// do arma la petición, adjunta el token y decodifica la respuesta JSON. Los
// montos se decodifican como json.Number para no perder precisión antes de
// convertirlos a decimal.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var payload []byte
	if body != nil {
		var err error
		if payload, err = json.Marshal(body); err != nil {
			return fmt.Errorf("serializar petición: %w", err)
		}
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("construir petición: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if c.session.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.session.token)
	}

	c.log.Debug().Str("method", method).Str("path", path).Msg("petición al backend")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("conexión con el servidor: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return c.statusError(resp)
	}
	if out == nil {
		return nil
	}

	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("decodificar respuesta: %w", err)
	}
	return nil
}

// statusError traduce los códigos HTTP del backend a errores de dominio.
func (c *Client) statusError(resp *http.Response) error {
	var detail apiError
	_ = json.NewDecoder(resp.Body).Decode(&detail)

	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: %s", domain.ErrUnauthorized, detail.Detail)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", domain.ErrNotFound, detail.Detail)
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", domain.ErrDuplicate, detail.Detail)
	default:
		return fmt.Errorf("servidor respondió %d: %s", resp.StatusCode, detail.Detail)
	}
}

func trimSlash(s string) string {
	for len(s) > 0 && s[len(s)-1] == '/' {
		s = s[:len(s)-1]
	}
	return s
}
