package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/labora-api/internal/domain/entity"
)

// MonthlyRevenue total aprobado de un mes (Month = día 1 a las 00:00).
type MonthlyRevenue struct {
	Month time.Time       `db:"month"`
	Total decimal.Decimal `db:"total"`
	Count int             `db:"count"`
}

// QuoteTotals sumatorias sobre todos los orçamentos.
type QuoteTotals struct {
	TotalValue    decimal.Decimal `db:"total_value"`
	ApprovedValue decimal.Decimal `db:"approved_value"`
}

// AnalyticsRepository consultas read-only para el dashboard.
type AnalyticsRepository interface {
	// CountByStatus cantidad de orçamentos por estado (los estados sin filas no aparecen).
	CountByStatus(ctx context.Context) (map[entity.QuoteStatus]int, error)
	Totals(ctx context.Context) (QuoteTotals, error)
	// MonthlyApproved ingresos aprobados agrupados por mes desde from (incluido).
	MonthlyApproved(ctx context.Context, from time.Time) ([]MonthlyRevenue, error)
}
