// Package identity proveedor de identidad propio: usuarios en PostgreSQL,
// passwords con bcrypt, tokens JWT y revocación de sesiones en Redis.
package identity

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/labora-api/internal/application/auth"
	"github.com/jhoicas/labora-api/internal/domain"
	"github.com/jhoicas/labora-api/internal/domain/entity"
	"github.com/jhoicas/labora-api/internal/domain/repository"
	pkgjwt "github.com/jhoicas/labora-api/pkg/jwt"
)

var _ auth.IdentityProvider = (*Provider)(nil)

// RevocationStore tokens revocados por jti.
type RevocationStore interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// TokenConfig parámetros de emisión de JWT.
type TokenConfig struct {
	Secret     string
	Issuer     string
	ExpMinutes int
}

// Provider implementa auth.IdentityProvider.
type Provider struct {
	users    repository.UserRepository
	sessions RevocationStore
	tokens   TokenConfig
	cost     int
	now      func() time.Time
}

// NewProvider construye el proveedor. cost es el costo de bcrypt (0 = bcrypt.DefaultCost).
func NewProvider(users repository.UserRepository, sessions RevocationStore, tokens TokenConfig, cost int) *Provider {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &Provider{users: users, sessions: sessions, tokens: tokens, cost: cost, now: time.Now}
}

// SignUp crea el usuario. Con autoConfirm el email queda confirmado en el acto; si el
// usuario ya existía sin confirmar y el password coincide, sólo se confirma.
func (p *Provider) SignUp(ctx context.Context, email, password string, autoConfirm bool) (*entity.User, error) {
	existing, err := p.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, domain.NewPersistenceError("identity.sign_up", err)
	}
	if existing != nil {
		return p.confirmExisting(ctx, existing, password, autoConfirm)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), p.cost)
	if err != nil {
		return nil, fmt.Errorf("identity: hash password: %w", err)
	}
	now := p.now().UTC()
	u := &entity.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if autoConfirm {
		u.EmailConfirmedAt = &now
	}
	if err := p.users.Create(ctx, u); err != nil {
		if errors.Is(err, domain.ErrEmailAlreadyExists) {
			return nil, err
		}
		return nil, domain.NewPersistenceError("identity.sign_up", err)
	}
	return u, nil
}

func (p *Provider) confirmExisting(ctx context.Context, u *entity.User, password string, autoConfirm bool) (*entity.User, error) {
	if u.EmailConfirmed() || !autoConfirm {
		return nil, domain.ErrEmailAlreadyExists
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	now := p.now().UTC()
	if err := p.users.ConfirmEmail(ctx, u.ID, now); err != nil {
		return nil, domain.NewPersistenceError("identity.confirm_email", err)
	}
	u.EmailConfirmedAt = &now
	return u, nil
}

// SignIn verifica credenciales y emite un token.
func (p *Provider) SignIn(ctx context.Context, email, password string) (*entity.Session, error) {
	u, err := p.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, domain.NewPersistenceError("identity.sign_in", err)
	}
	if u == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}
	if !u.EmailConfirmed() {
		return nil, domain.ErrEmailNotConfirmed
	}

	token, err := pkgjwt.Generate(p.tokens.Secret, u.ID, u.Email, p.tokens.Issuer, p.tokens.ExpMinutes)
	if err != nil {
		return nil, fmt.Errorf("identity: generate token: %w", err)
	}
	claims, err := pkgjwt.Parse(p.tokens.Secret, token)
	if err != nil {
		return nil, fmt.Errorf("identity: parse token: %w", err)
	}
	return &entity.Session{AccessToken: token, ExpiresAt: claims.ExpiresAt.Time, User: u}, nil
}

// SignOut revoca el token hasta su vencimiento.
func (p *Provider) SignOut(ctx context.Context, accessToken string) error {
	claims, err := pkgjwt.Parse(p.tokens.Secret, accessToken)
	if err != nil {
		return domain.ErrUnauthorized
	}
	if err := p.sessions.Revoke(ctx, claims.ID, claims.ExpiresIn(p.now())); err != nil {
		return domain.NewPersistenceError("identity.sign_out", err)
	}
	return nil
}

// GetUser resuelve el usuario de un token vigente y no revocado.
func (p *Provider) GetUser(ctx context.Context, accessToken string) (*entity.User, error) {
	claims, err := pkgjwt.Parse(p.tokens.Secret, accessToken)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}
	revoked, err := p.sessions.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, domain.NewPersistenceError("identity.get_user", err)
	}
	if revoked {
		return nil, domain.ErrUnauthorized
	}
	u, err := p.users.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, domain.NewPersistenceError("identity.get_user", err)
	}
	if u == nil {
		return nil, domain.ErrUnauthorized
	}
	return u, nil
}
