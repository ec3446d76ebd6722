package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/jhoicas/labora-api/internal/domain"
	"github.com/jhoicas/labora-api/internal/domain/entity"
	"github.com/jhoicas/labora-api/internal/domain/repository"
	"github.com/jhoicas/labora-api/pkg/brdoc"
)

var _ repository.QuoteRepository = (*QuoteRepo)(nil)

var quoteColumns = []string{
	"id", "number",
	"COALESCE(client_id::text, '') AS client_id",
	"COALESCE(service_id::text, '') AS service_id",
	"client_name", "client_document", "service_description", "observations",
	"value", "payment_method", "status", "rejection_justification",
	"user_id", "created_at", "updated_at",
}

// QuoteRepo implementación de QuoteRepository (usable con pool o tx).
type QuoteRepo struct {
	q Querier
}

// NewQuoteRepository construye el adaptador. Pasar pool o tx (Querier).
func NewQuoteRepository(q Querier) *QuoteRepo {
	return &QuoteRepo{q: q}
}

// Create persiste el orçamento; el número secuencial lo asigna la base.
func (r *QuoteRepo) Create(ctx context.Context, q *entity.Quote) error {
	sql, args, err := builder().
		Insert("quotes").
		Columns("id", "client_id", "service_id", "client_name", "client_document",
			"service_description", "observations", "value", "payment_method",
			"status", "rejection_justification", "user_id", "created_at", "updated_at").
		Values(q.ID, nullIfEmpty(q.ClientID), nullIfEmpty(q.ServiceID), q.ClientName, q.ClientDocument,
			q.ServiceDescription, q.Observations, q.Value, q.PaymentMethod,
			string(q.Status), q.RejectionJustification, q.UserID, q.CreatedAt, q.UpdatedAt).
		Suffix("RETURNING number, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert quote: %w", err)
	}
	if err := r.q.QueryRow(ctx, sql, args...).Scan(&q.Number, &q.CreatedAt, &q.UpdatedAt); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isCheckViolation(err) {
			return fmt.Errorf("%w: %v", domain.ErrInvalidArgument, err)
		}
		return fmt.Errorf("insert quote: %w", err)
	}
	return nil
}

// GetByID obtiene un orçamento por ID. Retorna nil, nil si no existe.
func (r *QuoteRepo) GetByID(ctx context.Context, id string) (*entity.Quote, error) {
	sql, args, err := builder().Select(quoteColumns...).From("quotes").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get quote: %w", err)
	}
	var q entity.Quote
	if err := pgxscan.Get(ctx, r.q, &q, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get quote: %w", err)
	}
	return &q, nil
}

// List orçamentos más recientes primero.
func (r *QuoteRepo) List(ctx context.Context, f repository.QuoteFilter) ([]*entity.Quote, error) {
	sql, args, err := quoteListQuery(f).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list quotes: %w", err)
	}
	var list []*entity.Quote
	if err := pgxscan.Select(ctx, r.q, &list, sql, args...); err != nil {
		return nil, fmt.Errorf("list quotes: %w", err)
	}
	return list, nil
}

func quoteListQuery(f repository.QuoteFilter) squirrel.SelectBuilder {
	q := builder().Select(quoteColumns...).From("quotes")
	if f.Status != "" {
		q = q.Where(squirrel.Eq{"status": string(f.Status)})
	}
	if f.Search != "" {
		pattern := containsPattern(f.Search)
		or := squirrel.Or{
			squirrel.Expr("number::text LIKE ?", pattern),
			squirrel.ILike{"client_name": pattern},
			squirrel.ILike{"client_document": pattern},
		}
		if d := brdoc.Digits(f.Search); d != "" {
			or = append(or, squirrel.Expr(`regexp_replace(client_document, '\D', '', 'g') LIKE ?`, "%"+d+"%"))
		}
		q = q.Where(or)
	}
	q = q.OrderBy("created_at DESC")
	if f.Limit > 0 {
		q = q.Limit(uint64(f.Limit))
	}
	if f.Offset > 0 {
		q = q.Offset(uint64(f.Offset))
	}
	return q
}

// UpdateStatusIfPending escribe estado y justificación sólo si el estado actual es pending.
// Un solo UPDATE condicional: dos transiciones concurrentes no pueden ganar ambas.
func (r *QuoteRepo) UpdateStatusIfPending(ctx context.Context, id string, status entity.QuoteStatus, justification string) (bool, error) {
	sql, args, err := statusUpdateQuery(id, status, justification).ToSql()
	if err != nil {
		return false, fmt.Errorf("build update quote status: %w", err)
	}
	tag, err := r.q.Exec(ctx, sql, args...)
	if err != nil {
		if isCheckViolation(err) {
			return false, fmt.Errorf("%w: %v", domain.ErrInvalidArgument, err)
		}
		return false, fmt.Errorf("update quote status: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

func statusUpdateQuery(id string, status entity.QuoteStatus, justification string) squirrel.UpdateBuilder {
	return builder().
		Update("quotes").
		Set("status", string(status)).
		Set("rejection_justification", justification).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"status": string(entity.QuoteStatusPending)})
}
