package repository

import (
	"context"

	"github.com/jhoicas/labora-api/internal/domain/entity"
)

// ClientFilter filtros del listado de clientes (orden: created_at desc).
type ClientFilter struct {
	Limit  int
	Offset int
}

// ClientRepository puerto de persistencia de clientes.
type ClientRepository interface {
	Create(ctx context.Context, c *entity.Client) error
	// Update reemplaza todos los campos editables del cliente.
	Update(ctx context.Context, c *entity.Client) error
	// GetByID retorna nil, nil si no existe.
	GetByID(ctx context.Context, id string) (*entity.Client, error)
	List(ctx context.Context, f ClientFilter) ([]*entity.Client, error)
	// Search busca por nombre, CPF o CNPJ (sin distinguir mayúsculas), a lo sumo limit resultados.
	Search(ctx context.Context, term string, limit int) ([]*entity.Client, error)
}
