package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
type DashboardSummaryDTO struct {
	PendingCount  int `json:"pending_count"`
	ApprovedCount int `json:"approved_count"`
	RejectedCount int `json:"rejected_count"`

	// Suma de todos los orçamentos (cualquier estado) y sólo de los aprobados.
	TotalValue    decimal.Decimal `json:"total_value"`
	ApprovedValue decimal.Decimal `json:"approved_value"`

	RecentQuotes   []QuoteResponse      `json:"recent_quotes"`   // 5 más recientes
	MonthlyRevenue []MonthlyRevenueDTO `json:"monthly_revenue"` // últimos 6 meses, del más antiguo al actual
}

// MonthlyRevenueDTO ingresos aprobados de un mes.
type MonthlyRevenueDTO struct {
	Month string          `json:"month"` // "2026-10"
	Label string          `json:"label"` // "Outubro 2026"
	Total decimal.Decimal `json:"total"`
	Count int             `json:"count"`
}
