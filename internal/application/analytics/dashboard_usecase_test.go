package analytics_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/labora-api/internal/application/analytics"
	"github.com/jhoicas/labora-api/internal/domain"
	"github.com/jhoicas/labora-api/internal/domain/document"
	"github.com/jhoicas/labora-api/internal/domain/entity"
	"github.com/jhoicas/labora-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type fakeAnalytics struct {
	counts   map[entity.QuoteStatus]int
	totals   repository.QuoteTotals
	monthly  []repository.MonthlyRevenue
	gotFrom  time.Time
	countErr error
}

func (f *fakeAnalytics) CountByStatus(context.Context) (map[entity.QuoteStatus]int, error) {
	return f.counts, f.countErr
}

func (f *fakeAnalytics) Totals(context.Context) (repository.QuoteTotals, error) {
	return f.totals, nil
}

func (f *fakeAnalytics) MonthlyApproved(_ context.Context, from time.Time) ([]repository.MonthlyRevenue, error) {
	f.gotFrom = from
	return f.monthly, nil
}

type fakeQuotes struct {
	gotLimit int
	list     []*entity.Quote
}

func (f *fakeQuotes) Create(context.Context, *entity.Quote) error { return nil }
func (f *fakeQuotes) GetByID(context.Context, string) (*entity.Quote, error) {
	return nil, nil
}
func (f *fakeQuotes) List(_ context.Context, flt repository.QuoteFilter) ([]*entity.Quote, error) {
	f.gotLimit = flt.Limit
	return f.list, nil
}
func (f *fakeQuotes) UpdateStatusIfPending(context.Context, string, entity.QuoteStatus, string) (bool, error) {
	return false, nil
}

func fixedNow() time.Time {
	return time.Date(2026, 10, 19, 12, 0, 0, 0, document.Location)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestGetSummary_ContadoresYTotales(t *testing.T) {
	an := &fakeAnalytics{
		counts: map[entity.QuoteStatus]int{entity.QuoteStatusPending: 3, entity.QuoteStatusApproved: 2},
		totals: repository.QuoteTotals{
			TotalValue:    decimal.RequireFromString("5000.456"),
			ApprovedValue: decimal.RequireFromString("3000"),
		},
	}
	qs := &fakeQuotes{list: []*entity.Quote{{ID: "q1", Number: 7, Status: entity.QuoteStatusApproved}}}

	out, err := analytics.NewDashboardUseCase(an, qs).WithClock(fixedNow).GetSummary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, out.PendingCount)
	assert.Equal(t, 2, out.ApprovedCount)
	assert.Equal(t, 0, out.RejectedCount, "estado sin filas cuenta cero")
	assert.Equal(t, "5000.46", out.TotalValue.StringFixed(2))
	assert.Equal(t, 5, qs.gotLimit)
	require.Len(t, out.RecentQuotes, 1)
	assert.Equal(t, "Aprovado", out.RecentQuotes[0].StatusLabel)
}

func TestGetSummary_SeisMesesConCeros(t *testing.T) {
	loc := document.Location
	an := &fakeAnalytics{
		monthly: []repository.MonthlyRevenue{
			{Month: time.Date(2026, 8, 1, 0, 0, 0, 0, loc), Total: decimal.RequireFromString("1200"), Count: 2},
			{Month: time.Date(2026, 10, 1, 0, 0, 0, 0, loc), Total: decimal.RequireFromString("899.9"), Count: 1},
		},
	}

	out, err := analytics.NewDashboardUseCase(an, &fakeQuotes{}).WithClock(fixedNow).GetSummary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, 5, 1, 0, 0, 0, 0, loc), an.gotFrom)
	require.Len(t, out.MonthlyRevenue, 6)
	assert.Equal(t, "2026-05", out.MonthlyRevenue[0].Month)
	assert.Equal(t, "Maio 2026", out.MonthlyRevenue[0].Label)
	assert.True(t, out.MonthlyRevenue[0].Total.IsZero())
	assert.Equal(t, "Agosto 2026", out.MonthlyRevenue[3].Label)
	assert.Equal(t, 2, out.MonthlyRevenue[3].Count)
	assert.Equal(t, "Outubro 2026", out.MonthlyRevenue[5].Label)
	assert.Equal(t, "899.9", out.MonthlyRevenue[5].Total.String())
}

func TestGetSummary_ErrorDeConsulta_PersistenceError(t *testing.T) {
	an := &fakeAnalytics{countErr: errors.New("timeout")}
	_, err := analytics.NewDashboardUseCase(an, &fakeQuotes{}).WithClock(fixedNow).GetSummary(context.Background())

	var pe *domain.PersistenceError
	assert.True(t, errors.As(err, &pe))
}
