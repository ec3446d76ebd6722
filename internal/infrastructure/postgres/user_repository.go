package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/jhoicas/labora-api/internal/domain"
	"github.com/jhoicas/labora-api/internal/domain/entity"
	"github.com/jhoicas/labora-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

var userColumns = []string{"id", "email", "password_hash", "email_confirmed_at", "created_at", "updated_at"}

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

// Create persiste un nuevo usuario.
func (r *UserRepo) Create(ctx context.Context, u *entity.User) error {
	sql, args, err := builder().
		Insert("users").
		Columns(userColumns...).
		Values(u.ID, u.Email, u.PasswordHash, u.EmailConfirmedAt, u.CreatedAt, u.UpdatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert user: %w", err)
	}
	if _, err := r.q.Exec(ctx, sql, args...); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByEmail obtiene un usuario por email sin distinguir mayúsculas.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.findOne(ctx, squirrel.Expr("lower(email) = lower(?)", email))
}

// GetByID obtiene un usuario por ID.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return r.findOne(ctx, squirrel.Eq{"id": id})
}

func (r *UserRepo) findOne(ctx context.Context, pred squirrel.Sqlizer) (*entity.User, error) {
	sql, args, err := builder().Select(userColumns...).From("users").Where(pred).Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get user: %w", err)
	}
	var u entity.User
	if err := pgxscan.Get(ctx, r.q, &u, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

// ConfirmEmail marca el email como confirmado; no sobrescribe una confirmación previa.
func (r *UserRepo) ConfirmEmail(ctx context.Context, id string, at time.Time) error {
	sql, args, err := builder().
		Update("users").
		Set("email_confirmed_at", squirrel.Expr("COALESCE(email_confirmed_at, ?)", at)).
		Set("updated_at", at).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build confirm email: %w", err)
	}
	tag, err := r.q.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("confirm email: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
