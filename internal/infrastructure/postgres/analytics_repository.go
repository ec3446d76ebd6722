package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/jhoicas/labora-api/internal/domain/entity"
	"github.com/jhoicas/labora-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de solo lectura para el dashboard.
type AnalyticsRepo struct {
	q Querier
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

// CountByStatus cantidad de orçamentos agrupada por estado.
func (r *AnalyticsRepo) CountByStatus(ctx context.Context) (map[entity.QuoteStatus]int, error) {
	const query = `SELECT status, COUNT(*) FROM quotes GROUP BY status`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("analytics.CountByStatus: %w", err)
	}
	defer rows.Close()

	counts := make(map[entity.QuoteStatus]int, 3)
	for rows.Next() {
		var (
			status string
			n      int
		)
		if err := rows.Scan(&status, &n); err != nil {
			return nil, fmt.Errorf("analytics.CountByStatus scan: %w", err)
		}
		counts[entity.QuoteStatus(status)] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("analytics.CountByStatus rows: %w", err)
	}
	return counts, nil
}

// Totals valor total de todos los orçamentos y de los aprobados.
func (r *AnalyticsRepo) Totals(ctx context.Context) (repository.QuoteTotals, error) {
	const query = `
	SELECT
	    COALESCE(SUM(value), 0)                                     AS total_value,
	    COALESCE(SUM(value) FILTER (WHERE status = 'approved'), 0)  AS approved_value
	FROM quotes`

	var t repository.QuoteTotals
	if err := pgxscan.Get(ctx, r.q, &t, query); err != nil {
		return repository.QuoteTotals{}, fmt.Errorf("analytics.Totals: %w", err)
	}
	return t, nil
}

// MonthlyApproved ingresos aprobados por mes calendario en horario de Brasília.
// Month llega como timestamp sin zona (día 1, 00:00).
func (r *AnalyticsRepo) MonthlyApproved(ctx context.Context, from time.Time) ([]repository.MonthlyRevenue, error) {
	const query = `
	SELECT
	    date_trunc('month', created_at AT TIME ZONE 'America/Sao_Paulo')  AS month,
	    COALESCE(SUM(value), 0)                                           AS total,
	    COUNT(*)                                                          AS count
	FROM quotes
	WHERE status = 'approved'
	  AND created_at >= $1
	GROUP BY 1
	ORDER BY 1`

	var out []repository.MonthlyRevenue
	if err := pgxscan.Select(ctx, r.q, &out, query, from); err != nil {
		return nil, fmt.Errorf("analytics.MonthlyApproved: %w", err)
	}
	return out, nil
}
