package quotes_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/labora-api/internal/application/dto"
	"github.com/jhoicas/labora-api/internal/application/quotes"
	"github.com/jhoicas/labora-api/internal/application/validation"
	"github.com/jhoicas/labora-api/internal/domain"
	"github.com/jhoicas/labora-api/internal/domain/entity"
)

const (
	clientID  = "11111111-1111-1111-1111-111111111111"
	serviceID = "22222222-2222-2222-2222-222222222222"
	userID    = "33333333-3333-3333-3333-333333333333"
)

func newQuoteUC(repo *memQuoteRepo) *quotes.QuoteUseCase {
	clients := &memClientRepo{byID: map[string]*entity.Client{
		clientID: {ID: clientID, FullName: "Silva Tecnologia", CNPJ: "11.222.333/0001-81"},
	}}
	catalog := &memCatalogRepo{services: map[string]*entity.Service{
		serviceID: {
			ID:          serviceID,
			Name:        "Landing page",
			Description: "Landing page responsiva",
			BasePrice:   decimal.NewNullDecimal(decimal.RequireFromString("899.90")),
		},
	}}
	return quotes.NewQuoteUseCase(repo, clients, catalog, validation.New())
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_Pendiente_ConNumeroYDueno(t *testing.T) {
	repo := newMemQuoteRepo()
	out, err := newQuoteUC(repo).Create(context.Background(), userID, dto.CreateQuoteRequest{
		ClientName:         "Maria Silva",
		ClientDocument:     "12345678909",
		ServiceDescription: "Site institucional",
		Value:              decimal.RequireFromString("1500"),
		PaymentMethod:      "PIX",
	})
	require.NoError(t, err)
	assert.Equal(t, "pending", out.Status)
	assert.Equal(t, "Pendente", out.StatusLabel)
	assert.Equal(t, int64(1), out.Number)
	assert.Equal(t, userID, out.UserID)
	assert.Equal(t, "123.456.789-09", out.ClientDocument, "documento con máscara")
}

func TestCreate_PrecargaClienteYServicio(t *testing.T) {
	repo := newMemQuoteRepo()
	out, err := newQuoteUC(repo).Create(context.Background(), userID, dto.CreateQuoteRequest{
		ClientID:      clientID,
		ServiceID:     serviceID,
		PaymentMethod: "Boleto",
	})
	require.NoError(t, err)
	assert.Equal(t, "Silva Tecnologia", out.ClientName)
	assert.Equal(t, "11.222.333/0001-81", out.ClientDocument)
	assert.Equal(t, "Landing page responsiva", out.ServiceDescription)
	assert.True(t, decimal.RequireFromString("899.90").Equal(out.Value))
	assert.Equal(t, clientID, out.ClientID)
	assert.Equal(t, serviceID, out.ServiceID)
}

func TestCreate_ValoresDelFormularioTienenPrioridad(t *testing.T) {
	repo := newMemQuoteRepo()
	out, err := newQuoteUC(repo).Create(context.Background(), userID, dto.CreateQuoteRequest{
		ServiceID:          serviceID,
		ClientName:         "Maria Silva",
		ClientDocument:     "123.456.789-09",
		ServiceDescription: "Landing page com blog",
		Value:              decimal.RequireFromString("1200"),
		PaymentMethod:      "PIX",
	})
	require.NoError(t, err)
	assert.Equal(t, "Landing page com blog", out.ServiceDescription)
	assert.True(t, decimal.RequireFromString("1200").Equal(out.Value))
}

func TestCreate_ValorCero_ValidationError(t *testing.T) {
	repo := newMemQuoteRepo()
	_, err := newQuoteUC(repo).Create(context.Background(), userID, dto.CreateQuoteRequest{
		ClientName:         "Maria Silva",
		ClientDocument:     "123.456.789-09",
		ServiceDescription: "Site",
		PaymentMethod:      "PIX",
	})
	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "value", verr.Fields[0].Field)
	assert.Empty(t, repo.byID)
}

func TestCreate_ValorMenorQueUnCentavo_ValidationError(t *testing.T) {
	repo := newMemQuoteRepo()
	_, err := newQuoteUC(repo).Create(context.Background(), userID, dto.CreateQuoteRequest{
		ClientName:         "Maria Silva",
		ClientDocument:     "12345678909",
		ServiceDescription: "Site",
		Value:              decimal.RequireFromString("0.004"),
		PaymentMethod:      "PIX",
	})
	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr), "0,004 se redondea a 0 antes de validar")
	assert.Equal(t, "value", verr.Fields[0].Field)
	assert.Empty(t, repo.byID, "no se persiste nada")
}

func TestCreate_ValorRedondeadoACentavos(t *testing.T) {
	repo := newMemQuoteRepo()
	out, err := newQuoteUC(repo).Create(context.Background(), userID, dto.CreateQuoteRequest{
		ClientName:         "Maria Silva",
		ClientDocument:     "12345678909",
		ServiceDescription: "Site",
		Value:              decimal.RequireFromString("0.005"),
		PaymentMethod:      "PIX",
	})
	require.NoError(t, err)
	assert.Equal(t, "0.01", out.Value.StringFixed(2))
}

func TestCreate_ValorFueraDeRango_ValidationError(t *testing.T) {
	repo := newMemQuoteRepo()
	_, err := newQuoteUC(repo).Create(context.Background(), userID, dto.CreateQuoteRequest{
		ClientName:         "Maria Silva",
		ClientDocument:     "12345678909",
		ServiceDescription: "Site",
		Value:              decimal.RequireFromString("1000000000000"),
		PaymentMethod:      "PIX",
	})
	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "Valor acima do limite permitido", verr.Fields[0].Message)
	assert.Empty(t, repo.byID)
}

func TestCreate_ClienteInexistente(t *testing.T) {
	_, err := newQuoteUC(newMemQuoteRepo()).Create(context.Background(), userID, dto.CreateQuoteRequest{
		ClientID:      "99999999-9999-9999-9999-999999999999",
		PaymentMethod: "PIX",
	})
	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "client_id", verr.Fields[0].Field)
}

// ──────────────────────────────────────────────────────────────────────────────
// Consultas
// ──────────────────────────────────────────────────────────────────────────────

func TestGetByID_Inexistente(t *testing.T) {
	_, err := newQuoteUC(newMemQuoteRepo()).GetByID(context.Background(), "44444444-4444-4444-4444-444444444444")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestList_StatusInvalido(t *testing.T) {
	_, err := newQuoteUC(newMemQuoteRepo()).List(context.Background(), dto.QuoteListRequest{Status: "draft"})
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestList_FiltrosLleganAlRepositorio(t *testing.T) {
	repo := newMemQuoteRepo()
	repo.seed(entity.QuoteStatusPending)
	repo.seed(entity.QuoteStatusApproved)

	out, err := newQuoteUC(repo).List(context.Background(), dto.QuoteListRequest{Status: "pending", Search: "maria"})
	require.NoError(t, err)
	assert.Len(t, out, 1)
	assert.Equal(t, entity.QuoteStatusPending, repo.lastFilter.Status)
	assert.Equal(t, "maria", repo.lastFilter.Search)
	assert.Equal(t, 20, repo.lastFilter.Limit)
}

func TestListContracts_SoloAprobados(t *testing.T) {
	repo := newMemQuoteRepo()
	repo.seed(entity.QuoteStatusPending)
	repo.seed(entity.QuoteStatusApproved)
	repo.seed(entity.QuoteStatusRejected)

	out, err := newQuoteUC(repo).ListContracts(context.Background(), "", dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "approved", out[0].Status)
}
