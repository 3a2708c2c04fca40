package api

import (
	"encoding/json"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/Wayams/comite-agua/internal/domain/entity"
)

// User es el suscriptor tal como lo devuelve el backend.
type User struct {
	ID               int    `json:"id_usuario"`
	FirstName        string `json:"nombre"`
	LastName         string `json:"apellido"`
	Address          string `json:"direccion"`
	ConnectionNumber int    `json:"numero_paja"`
	Phone            string `json:"telefono"`
	Active           bool   `json:"activo"`
}

// ToSubscriber convierte el registro del backend a la entidad de dominio.
func (u *User) ToSubscriber() *entity.Subscriber {
	return &entity.Subscriber{
		ID:               u.ID,
		FirstName:        u.FirstName,
		LastName:         u.LastName,
		Address:          u.Address,
		ConnectionNumber: strconv.Itoa(u.ConnectionNumber),
		Phone:            u.Phone,
		Active:           u.Active,
	}
}

// PaymentDetail es un pago con los datos del suscriptor incluidos, como lo
// devuelve el backend para listados y recibos.
type PaymentDetail struct {
	ID               int         `json:"id_pago"`
	UserID           int         `json:"id_usuario"`
	Amount           json.Number `json:"monto"`
	MonthPaid        string      `json:"mes_pagado"`
	PaymentDate      string      `json:"fecha_pago"`
	Method           string      `json:"metodo_pago"`
	Note             string      `json:"observacion"`
	FirstName        string      `json:"nombre"`
	LastName         string      `json:"apellido"`
	Address          string      `json:"direccion"`
	ConnectionNumber int         `json:"numero_paja"`
}

// ToPayment convierte a la entidad de dominio. El monto queda como
// decimal.Decimal cuando es numérico; si no, conserva el valor crudo para
// que el motor de documentos degrade en vez de fallar.
func (d *PaymentDetail) ToPayment() *entity.Payment {
	var amount any
	if dec, err := decimal.NewFromString(d.Amount.String()); err == nil {
		amount = dec
	} else {
		amount = d.Amount.String()
	}
	return &entity.Payment{
		ID:          d.ID,
		Amount:      amount,
		MonthPaid:   d.MonthPaid,
		PaymentDate: d.PaymentDate,
		Method:      d.Method,
		Note:        d.Note,
	}
}

// ToSubscriber extrae los datos del suscriptor embebidos en el detalle.
func (d *PaymentDetail) ToSubscriber() *entity.Subscriber {
	return &entity.Subscriber{
		ID:               d.UserID,
		FirstName:        d.FirstName,
		LastName:         d.LastName,
		Address:          d.Address,
		ConnectionNumber: strconv.Itoa(d.ConnectionNumber),
	}
}

// CreatePaymentRequest es el cuerpo de POST /payments/.
type CreatePaymentRequest struct {
	UserID      int     `json:"id_usuario"`
	PaymentDate string  `json:"fecha_pago"`
	Amount      float64 `json:"monto"`
	MonthPaid   string  `json:"mes_pagado"`
	Method      string  `json:"metodo_pago"`
	Note        *string `json:"observacion"`
}
