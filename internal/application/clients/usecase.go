// Package clients contiene los casos de uso del cadastro de clientes.
package clients

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

// SearchLimit cantidad máxima de resultados de la búsqueda rápida.
const SearchLimit = 5

// ClientUseCase alta, edición, consulta y búsqueda de clientes. No hay baja.
type ClientUseCase struct {
	repo     repository.ClientRepository
	validate *validation.Validator
}

// NewClientUseCase construye el caso de uso.
func NewClientUseCase(repo repository.ClientRepository, v *validation.Validator) *ClientUseCase {
	return &ClientUseCase{repo: repo, validate: v}
}

// Create normaliza, valida y persiste un cliente nuevo.
func (uc *ClientUseCase) Create(ctx context.Context, in dto.ClientRequest) (*dto.ClientResponse, error) {
	in.Normalize()
	if err := uc.validate.Client(&in); err != nil {
		return nil, err
	}
	now := time.Now()
	c := &entity.Client{
		ID:        uuid.New().String(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	applyRequest(c, in)
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, domain.NewPersistenceError("clients.create", err)
	}
	return ToClientResponse(c), nil
}

// Update reemplaza todos los campos editables del cliente.
func (uc *ClientUseCase) Update(ctx context.Context, id string, in dto.ClientRequest) (*dto.ClientResponse, error) {
	in.Normalize()
	if err := uc.validate.Client(&in); err != nil {
		return nil, err
	}
	c, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	applyRequest(c, in)
	c.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, domain.NewPersistenceError("clients.update", err)
	}
	return ToClientResponse(c), nil
}

// GetByID retorna domain.ErrNotFound si el cliente no existe.
func (uc *ClientUseCase) GetByID(ctx context.Context, id string) (*dto.ClientResponse, error) {
	c, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToClientResponse(c), nil
}

// load lee el cliente; un id que no es uuid o inexistente es domain.ErrNotFound.
func (uc *ClientUseCase) load(ctx context.Context, id string) (*entity.Client, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrNotFound
	}
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, domain.NewPersistenceError("clients.get", err)
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return c, nil
}

// List clientes ordenados por fecha de alta (más recientes primero).
func (uc *ClientUseCase) List(ctx context.Context, page dto.PageRequest) ([]dto.ClientResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(ctx, repository.ClientFilter{Limit: page.Limit, Offset: page.Offset})
	if err != nil {
		return nil, domain.NewPersistenceError("clients.list", err)
	}
	return toClientResponses(list), nil
}

// Search búsqueda rápida por nombre, CPF o CNPJ. Un término vacío no devuelve nada.
func (uc *ClientUseCase) Search(ctx context.Context, term string) ([]dto.ClientResponse, error) {
	term = dto.NormalizeSearch(term)
	if term == "" {
		return []dto.ClientResponse{}, nil
	}
	list, err := uc.repo.Search(ctx, term, SearchLimit)
	if err != nil {
		return nil, domain.NewPersistenceError("clients.search", err)
	}
	return toClientResponses(list), nil
}

func applyRequest(c *entity.Client, in dto.ClientRequest) {
	c.FullName = in.FullName
	c.Email = in.Email
	c.CPF = in.CPF
	c.CNPJ = in.CNPJ
	c.Phone = in.Phone
	c.IsWhatsApp = in.IsWhatsApp
	c.Address = entity.Address{
		Street:       in.Address.Street,
		Number:       in.Address.Number,
		Complement:   in.Address.Complement,
		Neighborhood: in.Address.Neighborhood,
		City:         in.Address.City,
		State:        in.Address.State,
		ZipCode:      in.Address.ZipCode,
	}
}

// ToClientResponse mapea la entidad a la respuesta HTTP.
func ToClientResponse(c *entity.Client) *dto.ClientResponse {
	if c == nil {
		return nil
	}
	return &dto.ClientResponse{
		ID:         c.ID,
		FullName:   c.FullName,
		Email:      c.Email,
		CPF:        c.CPF,
		CNPJ:       c.CNPJ,
		Phone:      c.Phone,
		IsWhatsApp: c.IsWhatsApp,
		Address: dto.AddressResponse{
			Street:       c.Address.Street,
			Number:       c.Address.Number,
			Complement:   c.Address.Complement,
			Neighborhood: c.Address.Neighborhood,
			City:         c.Address.City,
			State:        c.Address.State,
			ZipCode:      c.Address.ZipCode,
		},
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func toClientResponses(list []*entity.Client) []dto.ClientResponse {
	out := make([]dto.ClientResponse, 0, len(list))
	for _, c := range list {
		out = append(out, *ToClientResponse(c))
	}
	return out
}
