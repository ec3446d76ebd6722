package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/jhoicas/labora-api/internal/domain/entity"
	"github.com/jhoicas/labora-api/internal/domain/repository"
)

var _ repository.CatalogRepository = (*CatalogRepo)(nil)

var serviceColumns = []string{"id", "category_id", "name", "description", "base_price"}

// CatalogRepo lectura de categorías y servicios.
type CatalogRepo struct {
	q Querier
}

// NewCatalogRepository construye el adaptador.
func NewCatalogRepository(q Querier) *CatalogRepo {
	return &CatalogRepo{q: q}
}

// ListCategories categorías ordenadas por nombre.
func (r *CatalogRepo) ListCategories(ctx context.Context) ([]*entity.ServiceCategory, error) {
	sql, args, err := builder().Select("id", "name").From("service_categories").OrderBy("name").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list categories: %w", err)
	}
	var list []*entity.ServiceCategory
	if err := pgxscan.Select(ctx, r.q, &list, sql, args...); err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return list, nil
}

// ListServices servicios de la categoría ordenados por nombre.
func (r *CatalogRepo) ListServices(ctx context.Context, categoryID string) ([]*entity.Service, error) {
	sql, args, err := builder().Select(serviceColumns...).From("services").
		Where(squirrel.Eq{"category_id": categoryID}).
		OrderBy("name").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list services: %w", err)
	}
	var list []*entity.Service
	if err := pgxscan.Select(ctx, r.q, &list, sql, args...); err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	return list, nil
}

// GetService retorna nil, nil si no existe.
func (r *CatalogRepo) GetService(ctx context.Context, id string) (*entity.Service, error) {
	sql, args, err := builder().Select(serviceColumns...).From("services").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get service: %w", err)
	}
	var s entity.Service
	if err := pgxscan.Get(ctx, r.q, &s, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get service: %w", err)
	}
	return &s, nil
}
