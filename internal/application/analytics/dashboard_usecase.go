// Package analytics contiene el caso de uso del dashboard: contadores por estado,
// totales e ingresos aprobados de los últimos meses.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/labora-api/internal/application/dto"
	"github.com/jhoicas/labora-api/internal/application/quotes"
	"github.com/jhoicas/labora-api/internal/domain"
	"github.com/jhoicas/labora-api/internal/domain/document"
	"github.com/jhoicas/labora-api/internal/domain/entity"
	"github.com/jhoicas/labora-api/internal/domain/repository"
)

const (
	dashboardRecentQuotes = 5 // orçamentos en el widget "recentes"
	dashboardMonths       = 6 // meses del gráfico de ingresos
)

// DashboardUseCase genera el resumen del dashboard.
//
// Fuente de datos: AnalyticsRepository (consultas read-only) y QuoteRepository
// para los orçamentos recientes.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
	quoteRepo     repository.QuoteRepository
	now           func() time.Time
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository, quoteRepo repository.QuoteRepository) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo, quoteRepo: quoteRepo, now: time.Now}
}

// WithClock reemplaza el reloj (tests).
func (uc *DashboardUseCase) WithClock(now func() time.Time) *DashboardUseCase {
	uc.now = now
	return uc
}

// GetSummary construye el DashboardSummaryDTO.
//
// Cuatro consultas en paralelo:
//  1. CountByStatus        → contadores
//  2. Totals               → valor total y aprobado
//  3. List(limit 5)        → orçamentos recientes
//  4. MonthlyApproved(6m)  → ingresos por mes
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	now := uc.now().In(document.Location)

	// ── Rango: día 1 del mes de hace 5 meses ──────────────────────────────────
	currentMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	from := currentMonth.AddDate(0, -(dashboardMonths - 1), 0)

	var (
		counts  map[entity.QuoteStatus]int
		totals  repository.QuoteTotals
		recent  []*entity.Quote
		monthly []repository.MonthlyRevenue
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		counts, err = uc.analyticsRepo.CountByStatus(gctx)
		if err != nil {
			return fmt.Errorf("dashboard: contadores: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		totals, err = uc.analyticsRepo.Totals(gctx)
		if err != nil {
			return fmt.Errorf("dashboard: totales: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		recent, err = uc.quoteRepo.List(gctx, repository.QuoteFilter{Limit: dashboardRecentQuotes})
		if err != nil {
			return fmt.Errorf("dashboard: recientes: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		monthly, err = uc.analyticsRepo.MonthlyApproved(gctx, from)
		if err != nil {
			return fmt.Errorf("dashboard: ingresos mensuales: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, domain.NewPersistenceError("dashboard.summary", err)
	}

	return &dto.DashboardSummaryDTO{
		PendingCount:   counts[entity.QuoteStatusPending],
		ApprovedCount:  counts[entity.QuoteStatusApproved],
		RejectedCount:  counts[entity.QuoteStatusRejected],
		TotalValue:     totals.TotalValue.Round(2),
		ApprovedValue:  totals.ApprovedValue.Round(2),
		RecentQuotes:   quotes.ToQuoteResponses(recent),
		MonthlyRevenue: fillMonths(from, monthly),
	}, nil
}

// fillMonths completa con cero los meses sin orçamentos aprobados.
func fillMonths(from time.Time, rows []repository.MonthlyRevenue) []dto.MonthlyRevenueDTO {
	byKey := make(map[string]repository.MonthlyRevenue, len(rows))
	for _, r := range rows {
		byKey[r.Month.Format("2006-01")] = r
	}
	out := make([]dto.MonthlyRevenueDTO, 0, dashboardMonths)
	for i := 0; i < dashboardMonths; i++ {
		m := from.AddDate(0, i, 0)
		key := m.Format("2006-01")
		item := dto.MonthlyRevenueDTO{Month: key, Label: monthLabel(m), Total: decimal.Zero}
		if r, ok := byKey[key]; ok {
			item.Total = r.Total.Round(2)
			item.Count = r.Count
		}
		out = append(out, item)
	}
	return out
}

// monthLabel devuelve una etiqueta legible del mes, ej: "Outubro 2026".
func monthLabel(t time.Time) string {
	months := [...]string{
		"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
		"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
	}
	return fmt.Sprintf("%s %d", months[t.Month()-1], t.Year())
}
