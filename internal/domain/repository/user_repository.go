package repository

import (
	"context"
	"time"

	"github.com/jhoicas/labora-api/internal/domain/entity"
)

// UserRepository puerto de persistencia de usuarios.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	// GetByEmail retorna nil, nil si no existe (email sin distinguir mayúsculas).
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	GetByID(ctx context.Context, id string) (*entity.User, error)
	ConfirmEmail(ctx context.Context, id string, at time.Time) error
}
