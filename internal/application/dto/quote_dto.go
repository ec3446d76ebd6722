package dto

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/labora-api/pkg/brdoc"
)

// CreateQuoteRequest alta de un orçamento.
// Si ClientID viene informado se copian nombre y documento del cliente;
// si ServiceID viene informado, descripción y valor vacíos se precargan desde el catálogo.
type CreateQuoteRequest struct {
	ClientID           string          `json:"client_id" validate:"omitempty,uuid"`
	ServiceID          string          `json:"service_id" validate:"omitempty,uuid"`
	ClientName         string          `json:"client_name" validate:"required,max=100,person_name"`
	ClientDocument     string          `json:"client_document" validate:"required,taxid"`
	ServiceDescription string          `json:"service_description" validate:"required,max=1000"`
	Observations       string          `json:"observations" validate:"max=500"`
	Value              decimal.Decimal `json:"value" validate:"gt=0,lte=999999999999.99"` // NUMERIC(14,2)
	PaymentMethod      string          `json:"payment_method" validate:"required"`
}

// Normalize recorta espacios, aplica la máscara del documento y redondea el valor
// a centavos antes de validar.
func (r *CreateQuoteRequest) Normalize() {
	r.ClientID = strings.TrimSpace(r.ClientID)
	r.ServiceID = strings.TrimSpace(r.ServiceID)
	r.ClientName = strings.TrimSpace(r.ClientName)
	if strings.TrimSpace(r.ClientDocument) != "" {
		r.ClientDocument = brdoc.FormatTaxID(r.ClientDocument)
	}
	r.ServiceDescription = strings.TrimSpace(r.ServiceDescription)
	r.Observations = strings.TrimSpace(r.Observations)
	r.PaymentMethod = strings.TrimSpace(r.PaymentMethod)
	r.Value = r.Value.Round(2)
}

// RejectQuoteRequest cuerpo del rechazo.
type RejectQuoteRequest struct {
	Justification string `json:"justification"`
}

// QuoteListRequest filtros del listado de orçamentos.
type QuoteListRequest struct {
	PageRequest
	Status string `query:"status"`
	Search string `query:"q"`
}

// QuoteResponse salida de un orçamento.
type QuoteResponse struct {
	ID                     string          `json:"id"`
	Number                 int64           `json:"number"`
	ClientID               string          `json:"client_id,omitempty"`
	ServiceID              string          `json:"service_id,omitempty"`
	ClientName             string          `json:"client_name"`
	ClientDocument         string          `json:"client_document"`
	ServiceDescription     string          `json:"service_description"`
	Observations           string          `json:"observations,omitempty"`
	Value                  decimal.Decimal `json:"value"`
	PaymentMethod          string          `json:"payment_method"`
	Status                 string          `json:"status"`
	StatusLabel            string          `json:"status_label"`
	RejectionJustification string          `json:"rejection_justification,omitempty"`
	UserID                 string          `json:"user_id"`
	CreatedAt              time.Time       `json:"created_at"`
}

// TransitionResponse resultado de aprobar o rechazar. Changed=false si ya estaba en el estado pedido.
type TransitionResponse struct {
	Quote   QuoteResponse `json:"quote"`
	Changed bool          `json:"changed"`
}

// ContractPDFRequest texto editado del contrato; vacío = plantilla sin editar.
type ContractPDFRequest struct {
	Content string `json:"content"`
}

// ContractDraftResponse borrador editable del contrato.
type ContractDraftResponse struct {
	QuoteID  string `json:"quote_id"`
	Number   int64  `json:"number"`
	Title    string `json:"title"`
	FileName string `json:"file_name"`
	Content  string `json:"content"`
}
