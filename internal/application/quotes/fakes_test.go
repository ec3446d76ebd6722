package quotes_test

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/labora-api/internal/domain"
	"github.com/jhoicas/labora-api/internal/domain/document"
	"github.com/jhoicas/labora-api/internal/domain/entity"
	"github.com/jhoicas/labora-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositorios en memoria
// ──────────────────────────────────────────────────────────────────────────────

type memQuoteRepo struct {
	mu         sync.Mutex
	byID       map[string]*entity.Quote
	nextNumber int64
	lastFilter repository.QuoteFilter
	updateErr  error
}

func newMemQuoteRepo() *memQuoteRepo {
	return &memQuoteRepo{byID: make(map[string]*entity.Quote), nextNumber: 1}
}

func (r *memQuoteRepo) Create(_ context.Context, q *entity.Quote) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	q.Number = r.nextNumber
	r.nextNumber++
	cp := *q
	r.byID[q.ID] = &cp
	return nil
}

func (r *memQuoteRepo) GetByID(_ context.Context, id string) (*entity.Quote, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	q, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *q
	return &cp, nil
}

func (r *memQuoteRepo) List(_ context.Context, f repository.QuoteFilter) ([]*entity.Quote, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lastFilter = f
	var out []*entity.Quote
	for _, q := range r.byID {
		if f.Status != "" && q.Status != f.Status {
			continue
		}
		cp := *q
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memQuoteRepo) UpdateStatusIfPending(_ context.Context, id string, status entity.QuoteStatus, justification string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.updateErr != nil {
		return false, r.updateErr
	}
	q, ok := r.byID[id]
	if !ok || q.Status != entity.QuoteStatusPending {
		return false, nil
	}
	q.Status = status
	q.RejectionJustification = justification
	q.UpdatedAt = time.Now()
	return true, nil
}

// seed inserta un orçamento con el estado indicado y devuelve su ID.
func (r *memQuoteRepo) seed(status entity.QuoteStatus) string {
	q := &entity.Quote{
		ID:                 uuid.New().String(),
		ClientName:         "Maria Silva",
		ClientDocument:     "123.456.789-09",
		ServiceDescription: "Site institucional",
		Value:              decimal.RequireFromString("1234.5"),
		PaymentMethod:      "PIX",
		Status:             status,
		CreatedAt:          time.Date(2026, 10, 5, 15, 0, 0, 0, time.UTC),
	}
	if status == entity.QuoteStatusRejected {
		q.RejectionJustification = "fora do orçamento"
	}
	_ = r.Create(context.Background(), q)
	return q.ID
}

type memClientRepo struct {
	byID map[string]*entity.Client
}

func (r *memClientRepo) Create(context.Context, *entity.Client) error { return errors.New("no usado") }
func (r *memClientRepo) Update(context.Context, *entity.Client) error { return errors.New("no usado") }
func (r *memClientRepo) GetByID(_ context.Context, id string) (*entity.Client, error) {
	return r.byID[id], nil
}
func (r *memClientRepo) List(context.Context, repository.ClientFilter) ([]*entity.Client, error) {
	return nil, nil
}
func (r *memClientRepo) Search(context.Context, string, int) ([]*entity.Client, error) {
	return nil, nil
}

type memCatalogRepo struct {
	services map[string]*entity.Service
}

func (r *memCatalogRepo) ListCategories(context.Context) ([]*entity.ServiceCategory, error) {
	return nil, nil
}
func (r *memCatalogRepo) ListServices(context.Context, string) ([]*entity.Service, error) {
	return nil, nil
}
func (r *memCatalogRepo) GetService(_ context.Context, id string) (*entity.Service, error) {
	return r.services[id], nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Exportador falso
// ──────────────────────────────────────────────────────────────────────────────

type fakeExporter struct {
	lastQuote    *document.QuoteDocument
	lastContract *document.Contract
	err          error
}

func (e *fakeExporter) ExportQuote(_ context.Context, doc *document.QuoteDocument) ([]byte, error) {
	e.lastQuote = doc
	if e.err != nil {
		return nil, e.err
	}
	return []byte("%PDF-quote"), nil
}

func (e *fakeExporter) ExportContract(_ context.Context, c *document.Contract) ([]byte, error) {
	e.lastContract = c
	if e.err != nil {
		return nil, e.err
	}
	return []byte("%PDF-contract"), nil
}

var errStore = domain.NewPersistenceError("quotes.update_status", errors.New("conexión perdida"))
