package http_test

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/labora-api/internal/application/analytics"
	"github.com/jhoicas/labora-api/internal/application/auth"
	"github.com/jhoicas/labora-api/internal/application/catalog"
	"github.com/jhoicas/labora-api/internal/application/clients"
	"github.com/jhoicas/labora-api/internal/application/quotes"
	"github.com/jhoicas/labora-api/internal/application/validation"
	"github.com/jhoicas/labora-api/internal/domain"
	"github.com/jhoicas/labora-api/internal/domain/document"
	"github.com/jhoicas/labora-api/internal/domain/entity"
	"github.com/jhoicas/labora-api/internal/domain/repository"
	apphttp "github.com/jhoicas/labora-api/internal/interfaces/http"
	"github.com/jhoicas/labora-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles de prueba
// ──────────────────────────────────────────────────────────────────────────────

const (
	testUserID = "00000000-0000-0000-0000-000000000001"
	testToken  = "valid-token"
)

// fakeAuthn acepta sólo testToken.
type fakeAuthn struct{}

func (fakeAuthn) Authenticate(_ context.Context, token string) (*entity.User, error) {
	if token != testToken {
		return nil, domain.ErrUnauthorized
	}
	return &entity.User{ID: testUserID, Email: "equipe@laboratech.com.br"}, nil
}

// fakeIDP proveedor de identidad con un único usuario.
type fakeIDP struct {
	mu      sync.Mutex
	revoked map[string]bool
}

func newFakeIDP() *fakeIDP { return &fakeIDP{revoked: make(map[string]bool)} }

func (p *fakeIDP) SignUp(_ context.Context, email, _ string, _ bool) (*entity.User, error) {
	if email == "equipe@laboratech.com.br" {
		return nil, domain.ErrEmailAlreadyExists
	}
	now := time.Now()
	return &entity.User{ID: testUserID, Email: email, EmailConfirmedAt: &now, CreatedAt: now}, nil
}

func (p *fakeIDP) SignIn(_ context.Context, email, password string) (*entity.Session, error) {
	if password != "secret123" {
		return nil, domain.ErrInvalidCredentials
	}
	return &entity.Session{
		AccessToken: testToken,
		ExpiresAt:   time.Now().Add(time.Hour),
		User:        &entity.User{ID: testUserID, Email: email},
	}, nil
}

func (p *fakeIDP) SignOut(_ context.Context, token string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.revoked[token] = true
	return nil
}

func (p *fakeIDP) GetUser(_ context.Context, token string) (*entity.User, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if token != testToken || p.revoked[token] {
		return nil, domain.ErrUnauthorized
	}
	return &entity.User{ID: testUserID, Email: "equipe@laboratech.com.br"}, nil
}

// memQuoteRepo repositorio de orçamentos en memoria.
type memQuoteRepo struct {
	mu   sync.Mutex
	byID map[string]*entity.Quote
	next int64
	err  error
}

func newMemQuoteRepo() *memQuoteRepo {
	return &memQuoteRepo{byID: make(map[string]*entity.Quote), next: 1}
}

func (r *memQuoteRepo) put(q *entity.Quote) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *q
	r.byID[q.ID] = &cp
}

func (r *memQuoteRepo) Create(_ context.Context, q *entity.Quote) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	q.Number = r.next
	r.next++
	q.CreatedAt = time.Now()
	q.UpdatedAt = q.CreatedAt
	cp := *q
	r.byID[q.ID] = &cp
	return nil
}

func (r *memQuoteRepo) GetByID(_ context.Context, id string) (*entity.Quote, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
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
	if r.err != nil {
		return nil, r.err
	}
	var out []*entity.Quote
	for _, q := range r.byID {
		if f.Status != "" && q.Status != f.Status {
			continue
		}
		cp := *q
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number > out[j].Number })
	return out, nil
}

func (r *memQuoteRepo) UpdateStatusIfPending(_ context.Context, id string, status entity.QuoteStatus, justification string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return false, r.err
	}
	q, ok := r.byID[id]
	if !ok || q.Status != entity.QuoteStatusPending {
		return false, nil
	}
	q.Status = status
	q.RejectionJustification = justification
	return true, nil
}

// errInvalidUUID imita el error de PostgreSQL al comparar una columna uuid con texto inválido (22P02).
var errInvalidUUID = errors.New(`ERROR: invalid input syntax for type uuid (SQLSTATE 22P02)`)

func checkUUID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return errInvalidUUID
	}
	return nil
}

// memClientRepo repositorio de clientes en memoria.
type memClientRepo struct {
	mu   sync.Mutex
	byID map[string]*entity.Client
}

func newMemClientRepo() *memClientRepo {
	return &memClientRepo{byID: make(map[string]*entity.Client)}
}

func (r *memClientRepo) Create(_ context.Context, c *entity.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, other := range r.byID {
		if c.CPF != "" && other.CPF == c.CPF {
			return domain.ErrDuplicate
		}
	}
	cp := *c
	r.byID[c.ID] = &cp
	return nil
}

func (r *memClientRepo) Update(_ context.Context, c *entity.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[c.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *c
	r.byID[c.ID] = &cp
	return nil
}

func (r *memClientRepo) GetByID(_ context.Context, id string) (*entity.Client, error) {
	if err := checkUUID(id); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *memClientRepo) List(_ context.Context, _ repository.ClientFilter) ([]*entity.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Client, 0, len(r.byID))
	for _, c := range r.byID {
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memClientRepo) Search(ctx context.Context, _ string, limit int) ([]*entity.Client, error) {
	list, _ := r.List(ctx, repository.ClientFilter{})
	if len(list) > limit {
		list = list[:limit]
	}
	return list, nil
}

// emptyCatalog catálogo sin servicios.
type emptyCatalog struct{}

func (emptyCatalog) ListCategories(context.Context) ([]*entity.ServiceCategory, error) {
	return []*entity.ServiceCategory{{ID: "c1", Name: "Desenvolvimento Web"}}, nil
}

func (emptyCatalog) ListServices(_ context.Context, categoryID string) ([]*entity.Service, error) {
	return nil, checkUUID(categoryID)
}

func (emptyCatalog) GetService(_ context.Context, id string) (*entity.Service, error) {
	return nil, checkUUID(id)
}

// fakeAnalytics métricas fijas.
type fakeAnalytics struct{}

func (fakeAnalytics) CountByStatus(context.Context) (map[entity.QuoteStatus]int, error) {
	return map[entity.QuoteStatus]int{entity.QuoteStatusPending: 2, entity.QuoteStatusApproved: 1}, nil
}

func (fakeAnalytics) Totals(context.Context) (repository.QuoteTotals, error) {
	return repository.QuoteTotals{TotalValue: decimal.NewFromInt(3000), ApprovedValue: decimal.NewFromInt(1000)}, nil
}

func (fakeAnalytics) MonthlyApproved(context.Context, time.Time) ([]repository.MonthlyRevenue, error) {
	return nil, nil
}

// fakeExporter devuelve un PDF mínimo o un ExportError.
type fakeExporter struct {
	fail       bool
	lastText   string
	quoteCalls int
}

func (e *fakeExporter) ExportQuote(_ context.Context, _ *document.QuoteDocument) ([]byte, error) {
	e.quoteCalls++
	if e.fail {
		return nil, &domain.ExportError{Document: "quote", Err: errors.New("sin fuente")}
	}
	return []byte("%PDF-1.3 orcamento"), nil
}

func (e *fakeExporter) ExportContract(_ context.Context, c *document.Contract) ([]byte, error) {
	if e.fail {
		return nil, &domain.ExportError{Document: "contract", Err: errors.New("sin fuente")}
	}
	e.lastText = c.Text()
	return []byte("%PDF-1.3 contrato"), nil
}

// ──────────────────────────────────────────────────────────────────────────────
// App de prueba
// ──────────────────────────────────────────────────────────────────────────────

type testEnv struct {
	app      *fiber.App
	quotes   *memQuoteRepo
	clients  *memClientRepo
	exporter *fakeExporter
	idp      *fakeIDP
}

func newTestEnv(rateLimit int) *testEnv {
	env := &testEnv{
		quotes:   newMemQuoteRepo(),
		clients:  newMemClientRepo(),
		exporter: &fakeExporter{},
		idp:      newFakeIDP(),
	}
	v := validation.New()
	log := logger.Nop()

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:        auth.NewAuthUseCase(env.idp, v, true),
		ClientUC:      clients.NewClientUseCase(env.clients, v),
		CatalogUC:     catalog.NewCatalogUseCase(emptyCatalog{}),
		QuoteUC:       quotes.NewQuoteUseCase(env.quotes, env.clients, emptyCatalog{}, v),
		Lifecycle:     quotes.NewLifecycleManager(env.quotes, log),
		DocumentUC:    quotes.NewDocumentUseCase(env.quotes, env.exporter, log),
		DashboardUC:   analytics.NewDashboardUseCase(fakeAnalytics{}, env.quotes),
		Validator:     v,
		Log:           log,
		Authenticator: fakeAuthn{},
		AuthRateLimit: rateLimit,
	})
	env.app = app
	return env
}

func sampleQuote(id string, status entity.QuoteStatus) *entity.Quote {
	return &entity.Quote{
		ID:                 id,
		Number:             7,
		ClientName:         "Maria Silva",
		ClientDocument:     "529.982.247-25",
		ServiceDescription: "Landing page",
		Value:              decimal.NewFromInt(1500),
		PaymentMethod:      "PIX",
		Status:             status,
		UserID:             testUserID,
		CreatedAt:          time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC),
	}
}
