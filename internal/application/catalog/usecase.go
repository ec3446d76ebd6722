// Package catalog expone el catálogo de categorías y servicios (sólo lectura).
package catalog

import (
	"context"

	"github.com/google/uuid"

	"github.com/jhoicas/labora-api/internal/application/dto"
	"github.com/jhoicas/labora-api/internal/domain"
	"github.com/jhoicas/labora-api/internal/domain/entity"
	"github.com/jhoicas/labora-api/internal/domain/repository"
)

// CatalogUseCase lectura del catálogo para precargar orçamentos.
type CatalogUseCase struct {
	repo repository.CatalogRepository
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(repo repository.CatalogRepository) *CatalogUseCase {
	return &CatalogUseCase{repo: repo}
}

// ListCategories todas las categorías ordenadas por nombre.
func (uc *CatalogUseCase) ListCategories(ctx context.Context) ([]dto.CategoryResponse, error) {
	list, err := uc.repo.ListCategories(ctx)
	if err != nil {
		return nil, domain.NewPersistenceError("catalog.categories", err)
	}
	out := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		out = append(out, dto.CategoryResponse{ID: c.ID, Name: c.Name})
	}
	return out, nil
}

// ListServices servicios de una categoría. Un id que no es uuid es domain.ErrNotFound.
func (uc *CatalogUseCase) ListServices(ctx context.Context, categoryID string) ([]dto.ServiceResponse, error) {
	if _, err := uuid.Parse(categoryID); err != nil {
		return nil, domain.ErrNotFound
	}
	list, err := uc.repo.ListServices(ctx, categoryID)
	if err != nil {
		return nil, domain.NewPersistenceError("catalog.services", err)
	}
	out := make([]dto.ServiceResponse, 0, len(list))
	for _, s := range list {
		out = append(out, ToServiceResponse(s))
	}
	return out, nil
}

// GetService retorna domain.ErrNotFound si el servicio no existe o el id no es uuid.
func (uc *CatalogUseCase) GetService(ctx context.Context, id string) (*dto.ServiceResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrNotFound
	}
	s, err := uc.repo.GetService(ctx, id)
	if err != nil {
		return nil, domain.NewPersistenceError("catalog.service", err)
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	out := ToServiceResponse(s)
	return &out, nil
}

// ToServiceResponse mapea el servicio; BasePrice queda nil si no tiene precio fijo.
func ToServiceResponse(s *entity.Service) dto.ServiceResponse {
	out := dto.ServiceResponse{
		ID:          s.ID,
		CategoryID:  s.CategoryID,
		Name:        s.Name,
		Description: s.Description,
	}
	if s.BasePrice.Valid {
		p := s.BasePrice.Decimal
		out.BasePrice = &p
	}
	return out
}
