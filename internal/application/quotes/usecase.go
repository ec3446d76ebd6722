package quotes

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/labora-api/internal/application/dto"
	"github.com/jhoicas/labora-api/internal/application/validation"
	"github.com/jhoicas/labora-api/internal/domain"
	"github.com/jhoicas/labora-api/internal/domain/entity"
	"github.com/jhoicas/labora-api/internal/domain/repository"
)

// QuoteUseCase alta y consulta de orçamentos.
type QuoteUseCase struct {
	repo     repository.QuoteRepository
	clients  repository.ClientRepository
	catalog  repository.CatalogRepository
	validate *validation.Validator
}

// NewQuoteUseCase construye el caso de uso.
func NewQuoteUseCase(
	repo repository.QuoteRepository,
	clients repository.ClientRepository,
	catalog repository.CatalogRepository,
	v *validation.Validator,
) *QuoteUseCase {
	return &QuoteUseCase{repo: repo, clients: clients, catalog: catalog, validate: v}
}

// Create crea un orçamento pendiente a nombre de userID.
//
// Con client_id se copian nombre y documento del cliente si vienen vacíos.
// Con service_id se precargan descripción y valor vacíos desde el catálogo.
func (uc *QuoteUseCase) Create(ctx context.Context, userID string, in dto.CreateQuoteRequest) (*dto.QuoteResponse, error) {
	in.Normalize()
	if err := uc.prefill(ctx, &in); err != nil {
		return nil, err
	}
	in.Normalize()
	if err := uc.validate.Quote(&in); err != nil {
		return nil, err
	}

	now := time.Now()
	q := &entity.Quote{
		ID:                 uuid.New().String(),
		ClientID:           in.ClientID,
		ServiceID:          in.ServiceID,
		ClientName:         in.ClientName,
		ClientDocument:     in.ClientDocument,
		ServiceDescription: in.ServiceDescription,
		Observations:       in.Observations,
		Value:              in.Value,
		PaymentMethod:      in.PaymentMethod,
		Status:             entity.QuoteStatusPending,
		UserID:             userID,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := uc.repo.Create(ctx, q); err != nil {
		return nil, domain.NewPersistenceError("quotes.create", err)
	}
	out := ToQuoteResponse(q)
	return &out, nil
}

func (uc *QuoteUseCase) prefill(ctx context.Context, in *dto.CreateQuoteRequest) error {
	if in.ClientID != "" {
		if _, err := uuid.Parse(in.ClientID); err != nil {
			return domain.NewValidationError("client_id", "Cliente inválido")
		}
		c, err := uc.clients.GetByID(ctx, in.ClientID)
		if err != nil {
			return domain.NewPersistenceError("clients.get", err)
		}
		if c == nil {
			return domain.NewValidationError("client_id", "Cliente não encontrado")
		}
		if in.ClientName == "" {
			in.ClientName = c.FullName
		}
		if in.ClientDocument == "" {
			in.ClientDocument = c.TaxID()
		}
	}
	if in.ServiceID != "" {
		if _, err := uuid.Parse(in.ServiceID); err != nil {
			return domain.NewValidationError("service_id", "Serviço inválido")
		}
		s, err := uc.catalog.GetService(ctx, in.ServiceID)
		if err != nil {
			return domain.NewPersistenceError("catalog.service", err)
		}
		if s == nil {
			return domain.NewValidationError("service_id", "Serviço não encontrado")
		}
		if in.ServiceDescription == "" {
			in.ServiceDescription = s.Description
			if in.ServiceDescription == "" {
				in.ServiceDescription = s.Name
			}
		}
		if in.Value.IsZero() && s.BasePrice.Valid {
			in.Value = s.BasePrice.Decimal
		}
	}
	return nil
}

// GetByID retorna domain.ErrNotFound si el orçamento no existe.
func (uc *QuoteUseCase) GetByID(ctx context.Context, id string) (*dto.QuoteResponse, error) {
	q, err := loadQuote(ctx, uc.repo, id)
	if err != nil {
		return nil, err
	}
	out := ToQuoteResponse(q)
	return &out, nil
}

// List orçamentos más recientes primero, con filtro opcional de estado y búsqueda.
func (uc *QuoteUseCase) List(ctx context.Context, in dto.QuoteListRequest) ([]dto.QuoteResponse, error) {
	status := entity.QuoteStatus(in.Status)
	if status != "" && !status.Valid() {
		return nil, domain.NewValidationError("status", "Status inválido")
	}
	return uc.list(ctx, status, in.Search, in.PageRequest)
}

// ListContracts orçamentos aprobados (los que tienen contrato).
func (uc *QuoteUseCase) ListContracts(ctx context.Context, search string, page dto.PageRequest) ([]dto.QuoteResponse, error) {
	return uc.list(ctx, entity.QuoteStatusApproved, search, page)
}

func (uc *QuoteUseCase) list(ctx context.Context, status entity.QuoteStatus, search string, page dto.PageRequest) ([]dto.QuoteResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(ctx, repository.QuoteFilter{
		Status: status,
		Search: dto.NormalizeSearch(search),
		Limit:  page.Limit,
		Offset: page.Offset,
	})
	if err != nil {
		return nil, domain.NewPersistenceError("quotes.list", err)
	}
	return ToQuoteResponses(list), nil
}

// loadQuote lee el orçamento y traduce la ausencia a domain.ErrNotFound.
func loadQuote(ctx context.Context, repo repository.QuoteRepository, id string) (*entity.Quote, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrNotFound
	}
	q, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, domain.NewPersistenceError("quotes.get", err)
	}
	if q == nil {
		return nil, domain.ErrNotFound
	}
	return q, nil
}

// ToQuoteResponse mapea la entidad a la respuesta HTTP.
func ToQuoteResponse(q *entity.Quote) dto.QuoteResponse {
	return dto.QuoteResponse{
		ID:                     q.ID,
		Number:                 q.Number,
		ClientID:               q.ClientID,
		ServiceID:              q.ServiceID,
		ClientName:             q.ClientName,
		ClientDocument:         q.ClientDocument,
		ServiceDescription:     q.ServiceDescription,
		Observations:           q.Observations,
		Value:                  q.Value,
		PaymentMethod:          q.PaymentMethod,
		Status:                 string(q.Status),
		StatusLabel:            q.Status.Label(),
		RejectionJustification: q.RejectionJustification,
		UserID:                 q.UserID,
		CreatedAt:              q.CreatedAt,
	}
}

// ToQuoteResponses mapea una lista de entidades.
func ToQuoteResponses(list []*entity.Quote) []dto.QuoteResponse {
	out := make([]dto.QuoteResponse, 0, len(list))
	for _, q := range list {
		out = append(out, ToQuoteResponse(q))
	}
	return out
}
