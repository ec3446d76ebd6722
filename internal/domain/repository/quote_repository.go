package repository

import (
	"context"

	"github.com/jhoicas/labora-api/internal/domain/entity"
)

// QuoteFilter filtros del listado de orçamentos (orden: created_at desc).
type QuoteFilter struct {
	Status entity.QuoteStatus // vacío = todos
	Search string             // número, nombre o documento del cliente
	Limit  int
	Offset int
}

// QuoteRepository puerto de persistencia de orçamentos.
type QuoteRepository interface {
	// Create persiste el orçamento y completa Number, CreatedAt y UpdatedAt.
	Create(ctx context.Context, q *entity.Quote) error
	// GetByID retorna nil, nil si no existe.
	GetByID(ctx context.Context, id string) (*entity.Quote, error)
	List(ctx context.Context, f QuoteFilter) ([]*entity.Quote, error)
	// UpdateStatusIfPending aplica la transición sólo si el estado actual es pending.
	// Retorna false si ninguna fila cumplió la condición.
	UpdateStatusIfPending(ctx context.Context, id string, status entity.QuoteStatus, justification string) (bool, error)
}
