package quotes

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/jhoicas/labora-api/internal/domain"
	"github.com/jhoicas/labora-api/internal/domain/document"
	"github.com/jhoicas/labora-api/internal/domain/entity"
	"github.com/jhoicas/labora-api/internal/domain/repository"
	"github.com/jhoicas/labora-api/pkg/logger"
)

// DocumentUseCase arma y exporta el orçamento y el contrato de un orçamento.
type DocumentUseCase struct {
	repo     repository.QuoteRepository
	exporter DocumentExporter
	log      *logger.Logger
	now      func() time.Time
}

// NewDocumentUseCase construye el caso de uso.
func NewDocumentUseCase(repo repository.QuoteRepository, exporter DocumentExporter, log *logger.Logger) *DocumentUseCase {
	return &DocumentUseCase{repo: repo, exporter: exporter, log: log, now: time.Now}
}

// WithClock reemplaza el reloj usado para fechar el contrato.
func (uc *DocumentUseCase) WithClock(now func() time.Time) *DocumentUseCase {
	uc.now = now
	return uc
}

// QuoteDocument secciones del orçamento (cualquier estado).
func (uc *DocumentUseCase) QuoteDocument(ctx context.Context, quoteID string) (*document.QuoteDocument, error) {
	q, err := loadQuote(ctx, uc.repo, quoteID)
	if err != nil {
		return nil, err
	}
	return document.RenderQuoteDocument(q), nil
}

// QuotePDF genera el PDF del orçamento.
func (uc *DocumentUseCase) QuotePDF(ctx context.Context, quoteID string) (pdfBytes []byte, filename string, err error) {
	doc, err := uc.QuoteDocument(ctx, quoteID)
	if err != nil {
		return nil, "", err
	}
	pdfBytes, err = uc.export(ctx, "quote", doc.Number, func(ctx context.Context) ([]byte, error) {
		return uc.exporter.ExportQuote(ctx, doc)
	})
	if err != nil {
		return nil, "", err
	}
	return pdfBytes, doc.FileName(), nil
}

// ContractDraft texto del contrato listo para editar. Sólo para orçamentos aprobados.
func (uc *DocumentUseCase) ContractDraft(ctx context.Context, quoteID string) (*document.Contract, error) {
	q, err := uc.approvedQuote(ctx, quoteID)
	if err != nil {
		return nil, err
	}
	return document.RenderContractDocument(q, uc.now()), nil
}

// ContractPDF genera el PDF del contrato. Si editedText no está vacío se exporta
// ese texto (editado a mano) en lugar de la plantilla.
func (uc *DocumentUseCase) ContractPDF(ctx context.Context, quoteID, editedText string) (pdfBytes []byte, filename string, err error) {
	q, err := uc.approvedQuote(ctx, quoteID)
	if err != nil {
		return nil, "", err
	}
	var c *document.Contract
	if strings.TrimSpace(editedText) == "" {
		c = document.RenderContractDocument(q, uc.now())
	} else {
		c = document.ParseContractText(q.ID, q.Number, uc.now(), editedText)
	}
	pdfBytes, err = uc.export(ctx, "contract", c.Number, func(ctx context.Context) ([]byte, error) {
		return uc.exporter.ExportContract(ctx, c)
	})
	if err != nil {
		return nil, "", err
	}
	return pdfBytes, c.FileName(), nil
}

func (uc *DocumentUseCase) approvedQuote(ctx context.Context, quoteID string) (*entity.Quote, error) {
	q, err := loadQuote(ctx, uc.repo, quoteID)
	if err != nil {
		return nil, err
	}
	if q.Status != entity.QuoteStatusApproved {
		return nil, domain.ErrQuoteNotApproved
	}
	return q, nil
}

func (uc *DocumentUseCase) export(ctx context.Context, kind string, number int64, fn func(context.Context) ([]byte, error)) ([]byte, error) {
	ctx, span := tracer.Start(ctx, "quotes.export", trace.WithAttributes(
		attribute.String("document.kind", kind),
		attribute.Int64("document.number", number),
	))
	defer span.End()

	b, err := fn(ctx)
	if err == nil && len(b) == 0 {
		err = errors.New("documento vacío")
	}
	if err != nil {
		var ee *domain.ExportError
		if !errors.As(err, &ee) {
			err = &domain.ExportError{Document: kind, Err: err}
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		uc.log.Ctx(ctx).Error().Err(err).Str("document", kind).Int64("number", number).Msg("fallo al exportar documento")
		return nil, err
	}
	span.SetAttributes(attribute.Int("document.bytes", len(b)))
	return b, nil
}
