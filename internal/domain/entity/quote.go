package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// QuoteStatus estado del ciclo de vida de un orçamento.
type QuoteStatus string

const (
	QuoteStatusPending  QuoteStatus = "pending"
	QuoteStatusApproved QuoteStatus = "approved"
	QuoteStatusRejected QuoteStatus = "rejected"
)

// Valid indica si s es un estado conocido.
func (s QuoteStatus) Valid() bool {
	switch s {
	case QuoteStatusPending, QuoteStatusApproved, QuoteStatusRejected:
		return true
	}
	return false
}

// Label etiqueta en portugués para listados y documentos.
func (s QuoteStatus) Label() string {
	switch s {
	case QuoteStatusPending:
		return "Pendente"
	case QuoteStatusApproved:
		return "Aprovado"
	case QuoteStatusRejected:
		return "Rejeitado"
	}
	return string(s)
}

// Quote propuesta de servicio con precio (orçamento).
// ClientName/ClientDocument son copia desnormalizada; ClientID y ServiceID son opcionales.
// RejectionJustification sólo tiene valor cuando Status = rejected.
type Quote struct {
	ID                     string          `db:"id"`
	Number                 int64           `db:"number"`
	ClientID               string          `db:"client_id"`
	ServiceID              string          `db:"service_id"`
	ClientName             string          `db:"client_name"`
	ClientDocument         string          `db:"client_document"`
	ServiceDescription     string          `db:"service_description"`
	Observations           string          `db:"observations"`
	Value                  decimal.Decimal `db:"value"`
	PaymentMethod          string          `db:"payment_method"`
	Status                 QuoteStatus     `db:"status"`
	RejectionJustification string          `db:"rejection_justification"`
	UserID                 string          `db:"user_id"`
	CreatedAt              time.Time       `db:"created_at"`
	UpdatedAt              time.Time       `db:"updated_at"`
}

// IsPending indica si el orçamento todavía admite aprobación o rechazo.
func (q *Quote) IsPending() bool {
	return q.Status == QuoteStatusPending
}
