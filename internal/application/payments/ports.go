package payments

import (
	"context"

	"github.com/Wayams/comite-agua/internal/domain/entity"
	"github.com/Wayams/comite-agua/internal/infrastructure/api"
)

// BackendAPI es la porción del cliente REST que necesita este caso de uso.
type BackendAPI interface {
	GetUsers(ctx context.Context, activeOnly bool) ([]api.User, error)
	GetPayments(ctx context.Context, search string) ([]api.PaymentDetail, error)
	GetPayment(ctx context.Context, id int) (*api.PaymentDetail, error)
	CreatePayment(ctx context.Context, req api.CreatePaymentRequest) (*api.PaymentDetail, error)
}

// ReceiptGenerator produce el PDF del recibo y devuelve su ruta.
type ReceiptGenerator interface {
	Generate(payment *entity.Payment, subscriber *entity.Subscriber) (string, error)
}

// Viewer abre un documento con el manejador por defecto del sistema.
type Viewer interface {
	Open(path string) error
}
