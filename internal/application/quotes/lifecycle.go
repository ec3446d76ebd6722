package quotes

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/jhoicas/labora-api/internal/domain"
	"github.com/jhoicas/labora-api/internal/domain/entity"
	"github.com/jhoicas/labora-api/internal/domain/repository"
	"github.com/jhoicas/labora-api/pkg/logger"
)

var tracer = otel.Tracer("github.com/jhoicas/labora-api/internal/application/quotes")

// TransitionResult orçamento tras la transición. Changed=false si ya estaba en el estado pedido.
type TransitionResult struct {
	Quote   *entity.Quote
	Changed bool
}

// LifecycleManager aplica las transiciones pending → approved y pending → rejected.
//
// La escritura es condicional (sólo si el estado actual es pending), así dos
// clics concurrentes no pueden transicionar dos veces.
type LifecycleManager struct {
	repo repository.QuoteRepository
	log  *logger.Logger
}

// NewLifecycleManager construye el gestor de estados.
func NewLifecycleManager(repo repository.QuoteRepository, log *logger.Logger) *LifecycleManager {
	return &LifecycleManager{repo: repo, log: log}
}

// Approve aprueba un orçamento pendiente y limpia la justificación.
func (m *LifecycleManager) Approve(ctx context.Context, quoteID string) (*TransitionResult, error) {
	return m.transition(ctx, quoteID, entity.QuoteStatusApproved, "")
}

// Reject rechaza un orçamento pendiente guardando la justificación tal cual.
// Una justificación vacía (o sólo espacios) es un ValidationError y no toca el estado.
func (m *LifecycleManager) Reject(ctx context.Context, quoteID, justification string) (*TransitionResult, error) {
	if strings.TrimSpace(justification) == "" {
		return nil, domain.NewValidationError("justification", "Justificativa é obrigatória")
	}
	return m.transition(ctx, quoteID, entity.QuoteStatusRejected, justification)
}

func (m *LifecycleManager) transition(ctx context.Context, quoteID string, target entity.QuoteStatus, justification string) (*TransitionResult, error) {
	ctx, span := tracer.Start(ctx, "quotes.transition", trace.WithAttributes(
		attribute.String("quote.id", quoteID),
		attribute.String("quote.target_status", string(target)),
	))
	defer span.End()

	if _, err := uuid.Parse(quoteID); err != nil {
		return nil, m.fail(span, domain.ErrNotFound)
	}

	changed, err := m.repo.UpdateStatusIfPending(ctx, quoteID, target, justification)
	if err != nil {
		return nil, m.fail(span, domain.NewPersistenceError("quotes.update_status", err))
	}

	q, err := loadQuote(ctx, m.repo, quoteID)
	if err != nil {
		return nil, m.fail(span, err)
	}

	if !changed {
		if q.Status != target {
			return nil, m.fail(span, fmt.Errorf("%w: %s → %s", domain.ErrInvalidStateTransition, q.Status, target))
		}
		span.SetAttributes(attribute.Bool("quote.changed", false))
		m.log.Ctx(ctx).Info().
			Str("quote_id", quoteID).
			Str("status", string(target)).
			Msg("orçamento ya estaba en el estado pedido")
		return &TransitionResult{Quote: q, Changed: false}, nil
	}

	span.SetAttributes(attribute.Bool("quote.changed", true))
	m.log.Ctx(ctx).Info().
		Str("quote_id", quoteID).
		Int64("number", q.Number).
		Str("status", string(target)).
		Msg("estado de orçamento actualizado")
	return &TransitionResult{Quote: q, Changed: true}, nil
}

func (m *LifecycleManager) fail(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}
