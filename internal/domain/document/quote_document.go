package document

import (
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/labora-api/internal/domain/entity"
	"github.com/jhoicas/labora-api/pkg/money"
)

// SectionKind identifica cada sección del orçamento.
type SectionKind string

const (
	SectionCompany      SectionKind = "company"
	SectionClient       SectionKind = "client"
	SectionService      SectionKind = "service"
	SectionObservations SectionKind = "observations"
	SectionValue        SectionKind = "value"
	SectionValidity     SectionKind = "validity"
	SectionTerms        SectionKind = "terms"
	SectionStatus       SectionKind = "status"
)

// Field par etiqueta/valor dentro de una sección.
type Field struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Section sección rotulada del orçamento.
type Section struct {
	Kind       SectionKind `json:"kind"`
	Title      string      `json:"title"`
	Fields     []Field     `json:"fields,omitempty"`
	Paragraphs []string    `json:"paragraphs,omitempty"`
}

// QuoteDocument propuesta comercial lista para exportar.
type QuoteDocument struct {
	QuoteID  string             `json:"quote_id"`
	Number   int64              `json:"number"`
	Date     time.Time          `json:"date"`
	Status   entity.QuoteStatus `json:"status"`
	Sections []Section          `json:"sections"`
}

// Title título de la banda superior del PDF.
func (d *QuoteDocument) Title() string {
	return fmt.Sprintf("ORÇAMENTO Nº %d", d.Number)
}

// FileName nombre del archivo PDF del orçamento.
func (d *QuoteDocument) FileName() string {
	return fmt.Sprintf("ORCAMENTO-LABORA-TECH-%d.pdf", d.Number)
}

// Section devuelve la sección del tipo pedido, si existe.
func (d *QuoteDocument) Section(kind SectionKind) (Section, bool) {
	for _, s := range d.Sections {
		if s.Kind == kind {
			return s, true
		}
	}
	return Section{}, false
}

// ValidityNote nota fija de validez de la propuesta.
const ValidityNote = "Este orçamento é válido por 5 (cinco) dias úteis a partir da data de emissão."

// QuoteTerms cláusulas fijas de términos y condiciones.
var QuoteTerms = []string{
	"1. Os valores apresentados referem-se exclusivamente aos serviços descritos neste orçamento.",
	"2. Alterações de escopo solicitadas após a aprovação serão orçadas separadamente.",
	"3. O prazo de execução começa a contar a partir da aprovação e do recebimento de todas as informações necessárias.",
	"4. O pagamento deverá ser realizado conforme a forma de pagamento indicada neste documento.",
	"5. A aprovação deste orçamento será formalizada por meio de contrato de prestação de serviços.",
}

// RenderQuoteDocument arma las secciones del orçamento en orden de impresión.
func RenderQuoteDocument(q *entity.Quote) *QuoteDocument {
	sections := []Section{
		{
			Kind:  SectionCompany,
			Title: CompanyName,
			Fields: []Field{
				{Label: "Razão social", Value: CompanyTradeName},
				{Label: "CNPJ", Value: CompanyCNPJ},
				{Label: "Endereço", Value: CompanyAddress + ", " + CompanyCity},
				{Label: "Telefone", Value: CompanyPhone},
				{Label: "E-mail", Value: CompanyEmail},
			},
		},
		{
			Kind:  SectionClient,
			Title: "DADOS DO CLIENTE",
			Fields: []Field{
				{Label: "Nome", Value: q.ClientName},
				{Label: "Documento", Value: q.ClientDocument},
			},
		},
		{
			Kind:       SectionService,
			Title:      "DESCRIÇÃO DO SERVIÇO",
			Paragraphs: []string{q.ServiceDescription},
		},
	}

	if strings.TrimSpace(q.Observations) != "" {
		sections = append(sections, Section{
			Kind:       SectionObservations,
			Title:      "OBSERVAÇÕES",
			Paragraphs: []string{q.Observations},
		})
	}

	sections = append(sections,
		Section{
			Kind:  SectionValue,
			Title: "VALOR TOTAL",
			Fields: []Field{
				{Label: "Valor", Value: money.FormatBRL(q.Value)},
				{Label: "Forma de Pagamento", Value: q.PaymentMethod},
			},
		},
		Section{
			Kind:       SectionValidity,
			Title:      "VALIDADE",
			Paragraphs: []string{ValidityNote},
		},
		Section{
			Kind:       SectionTerms,
			Title:      "TERMOS E CONDIÇÕES",
			Paragraphs: append([]string(nil), QuoteTerms...),
		},
	)

	if stamp, ok := statusStamp(q); ok {
		sections = append(sections, stamp)
	}

	return &QuoteDocument{
		QuoteID:  q.ID,
		Number:   q.Number,
		Date:     q.CreatedAt,
		Status:   q.Status,
		Sections: sections,
	}
}

func statusStamp(q *entity.Quote) (Section, bool) {
	switch q.Status {
	case entity.QuoteStatusApproved:
		return Section{
			Kind:   SectionStatus,
			Title:  "SITUAÇÃO",
			Fields: []Field{{Label: "Status", Value: "APROVADO"}},
		}, true
	case entity.QuoteStatusRejected:
		return Section{
			Kind:  SectionStatus,
			Title: "SITUAÇÃO",
			Fields: []Field{
				{Label: "Status", Value: "REJEITADO"},
				{Label: "Justificativa", Value: q.RejectionJustification},
			},
		}, true
	}
	return Section{}, false
}
