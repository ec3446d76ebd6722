// Package pdf exporta el orçamento y el contrato a PDF A4.
//
// Layout de cada página:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  LOGO                         Razão social / CNPJ / contato │
//	│  ─────────────────────────────────────────────────────────  │
//	│  [sólo pág. 1] ORÇAMENTO Nº n | CONTRATO Nº n        fecha  │
//	│  CUERPO: texto partido al ancho útil, cajas atómicas         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: empresa, dirección, contacto       Página i de N   │
//	└─────────────────────────────────────────────────────────────┘
//
// La paginación es propia: maroto sólo dibuja páginas que ya entran.
package pdf

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"runtime/debug"

	maroto "github.com/johnfercher/maroto/v2"
	marotopage "github.com/johnfercher/maroto/v2/pkg/components/page"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/labora-api/internal/application/quotes"
	"github.com/jhoicas/labora-api/internal/domain"
	"github.com/jhoicas/labora-api/internal/domain/document"
	"github.com/jhoicas/labora-api/pkg/logger"
)

//go:embed assets/logo.png
var defaultLogo []byte

var _ quotes.DocumentExporter = (*Exporter)(nil)

// Exporter implementa quotes.DocumentExporter usando Maroto v2.
type Exporter struct {
	logo    []byte
	measure Measurer
	log     *logger.Logger
}

// NewExporter construye el exportador. logoPath vacío usa el logo embebido.
func NewExporter(logoPath string, log *logger.Logger) (*Exporter, error) {
	logo := defaultLogo
	if logoPath != "" {
		b, err := os.ReadFile(logoPath)
		if err != nil {
			return nil, fmt.Errorf("pdf: leer logo: %w", err)
		}
		logo = b
	}
	return &Exporter{logo: logo, measure: newFpdfMeasurer(), log: log}, nil
}

// ExportQuote genera el PDF del orçamento.
func (e *Exporter) ExportQuote(ctx context.Context, doc *document.QuoteDocument) (out []byte, err error) {
	defer e.recoverPanic(ctx, "quote", &out, &err)

	pages := paginate(quoteElements(e.measure, doc))
	return e.generate(pageFrame{
		logo:  e.logo,
		title: doc.Title(),
		date:  document.FormatDate(doc.Date),
	}, pages, doc.Title())
}

// ExportContract genera el PDF del contrato.
func (e *Exporter) ExportContract(ctx context.Context, c *document.Contract) (out []byte, err error) {
	defer e.recoverPanic(ctx, "contract", &out, &err)

	pages := paginate(contractElements(e.measure, c))
	return e.generate(pageFrame{
		logo:  e.logo,
		title: c.Title(),
		date:  document.FormatDate(c.Date),
	}, pages, c.Title())
}

func (e *Exporter) generate(frame pageFrame, pages []page, title string) ([]byte, error) {
	frame.total = len(pages)

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(marginSide).WithRightMargin(marginSide).
		WithTopMargin(marginTop).WithBottomMargin(marginBottom).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: bodySize}).
		WithTitle(title, true).
		WithAuthor(document.CompanyTradeName, true).
		Build()

	m := maroto.New(cfg)
	out := make([]core.Page, 0, len(pages))
	for _, p := range pages {
		out = append(out, marotopage.New().Add(renderPage(frame, p)...))
	}
	m.AddPages(out...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	b := doc.GetBytes()
	if len(b) == 0 {
		return nil, fmt.Errorf("pdf: documento vacío")
	}
	return b, nil
}

// recoverPanic convierte un panic de dibujo en ExportError y descarta los bytes parciales.
func (e *Exporter) recoverPanic(ctx context.Context, kind string, out *[]byte, err *error) {
	r := recover()
	if r == nil {
		return
	}
	e.log.Ctx(ctx).Error().
		Str("document", kind).
		Interface("panic", r).
		Bytes("stack", debug.Stack()).
		Msg("panic al exportar documento")
	*out = nil
	*err = &domain.ExportError{Document: kind, Err: fmt.Errorf("panic: %v", r)}
}
