package repository

import (
	"context"

	"github.com/jhoicas/labora-api/internal/domain/entity"
)

// CatalogRepository lectura del catálogo de categorías y servicios.
type CatalogRepository interface {
	ListCategories(ctx context.Context) ([]*entity.ServiceCategory, error)
	ListServices(ctx context.Context, categoryID string) ([]*entity.Service, error)
	// GetService retorna nil, nil si no existe.
	GetService(ctx context.Context, id string) (*entity.Service, error)
}
