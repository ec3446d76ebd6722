package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/jhoicas/labora-api/internal/application/dto"
	"github.com/jhoicas/labora-api/internal/application/validation"
	"github.com/jhoicas/labora-api/internal/domain"
	"github.com/jhoicas/labora-api/internal/domain/entity"
)

// Mensajes de autenticación mostrados al usuario.
const (
	MsgInvalidCredentials = "Email ou senha incorretos"
	MsgEmailTaken         = "Este email já está cadastrado"
	MsgSignUpLoginLater   = "Conta criada com sucesso! Faça login para continuar."
	MsgSignUpOK           = "Conta criada com sucesso!"
)

// IdentityProvider puerto del servicio de identidad (registro, login, sesión).
//
// SignIn retorna domain.ErrEmailNotConfirmed si el email todavía no se confirmó
// y domain.ErrInvalidCredentials si email/password no coinciden.
// SignUp con autoConfirm sobre un usuario sin confirmar y con el mismo password
// lo confirma; sobre un usuario confirmado retorna domain.ErrEmailAlreadyExists.
type IdentityProvider interface {
	SignUp(ctx context.Context, email, password string, autoConfirm bool) (*entity.User, error)
	SignIn(ctx context.Context, email, password string) (*entity.Session, error)
	SignOut(ctx context.Context, accessToken string) error
	GetUser(ctx context.Context, accessToken string) (*entity.User, error)
}

// AuthUseCase casos de uso de autenticación: registro, login, logout y usuario actual.
type AuthUseCase struct {
	idp         IdentityProvider
	validate    *validation.Validator
	autoConfirm bool
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(idp IdentityProvider, v *validation.Validator, autoConfirm bool) *AuthUseCase {
	return &AuthUseCase{idp: idp, validate: v, autoConfirm: autoConfirm}
}

// SignIn verifica email/password y emite una sesión.
// Si el proveedor responde "email not confirmed" se re-emite el registro
// (con auto confirmación) y se reintenta el login una sola vez.
func (uc *AuthUseCase) SignIn(ctx context.Context, in dto.SignInRequest) (*dto.SessionResponse, error) {
	in.Email = normalizeEmail(in.Email)
	if err := uc.validate.SignIn(&in); err != nil {
		return nil, err
	}

	sess, err := uc.idp.SignIn(ctx, in.Email, in.Password)
	if errors.Is(err, domain.ErrEmailNotConfirmed) {
		if _, suErr := uc.idp.SignUp(ctx, in.Email, in.Password, true); suErr != nil {
			return nil, authFailure(suErr)
		}
		sess, err = uc.idp.SignIn(ctx, in.Email, in.Password)
	}
	if err != nil {
		return nil, authFailure(err)
	}
	return toSessionResponse(sess), nil
}

// SignUp registra un usuario e intenta el login inmediato.
// Si el login falla el registro sigue siendo exitoso y Session queda nil.
func (uc *AuthUseCase) SignUp(ctx context.Context, in dto.SignUpRequest) (*dto.SignUpResponse, error) {
	in.Email = normalizeEmail(in.Email)
	if err := uc.validate.SignUp(&in); err != nil {
		return nil, err
	}

	user, err := uc.idp.SignUp(ctx, in.Email, in.Password, uc.autoConfirm)
	if err != nil {
		if errors.Is(err, domain.ErrEmailAlreadyExists) {
			return nil, &domain.AuthError{Message: MsgEmailTaken, Err: err}
		}
		return nil, authFailure(err)
	}

	out := &dto.SignUpResponse{User: toUserResponse(user)}
	sess, err := uc.idp.SignIn(ctx, in.Email, in.Password)
	if err != nil {
		out.Message = MsgSignUpLoginLater
		return out, nil
	}
	out.Session = toSessionResponse(sess)
	out.Message = MsgSignUpOK
	return out, nil
}

// SignOut revoca el token de acceso.
func (uc *AuthUseCase) SignOut(ctx context.Context, accessToken string) error {
	return uc.idp.SignOut(ctx, accessToken)
}

// Authenticate resuelve el usuario dueño del token (rechaza tokens revocados o vencidos).
func (uc *AuthUseCase) Authenticate(ctx context.Context, accessToken string) (*entity.User, error) {
	user, err := uc.idp.GetUser(ctx, accessToken)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	return user, nil
}

// Me devuelve el usuario autenticado.
func (uc *AuthUseCase) Me(ctx context.Context, accessToken string) (*dto.UserResponse, error) {
	user, err := uc.Authenticate(ctx, accessToken)
	if err != nil {
		return nil, err
	}
	out := toUserResponse(user)
	return &out, nil
}

// authFailure convierte errores del proveedor en AuthError; los de persistencia pasan intactos.
func authFailure(err error) error {
	var pe *domain.PersistenceError
	if errors.As(err, &pe) {
		return err
	}
	var ae *domain.AuthError
	if errors.As(err, &ae) {
		return err
	}
	return &domain.AuthError{Message: MsgInvalidCredentials, Err: err}
}

func normalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func toSessionResponse(s *entity.Session) *dto.SessionResponse {
	if s == nil {
		return nil
	}
	out := &dto.SessionResponse{
		AccessToken: s.AccessToken,
		TokenType:   "Bearer",
		ExpiresAt:   s.ExpiresAt,
	}
	if s.User != nil {
		out.User = toUserResponse(s.User)
	}
	return out
}

func toUserResponse(u *entity.User) dto.UserResponse {
	if u == nil {
		return dto.UserResponse{}
	}
	return dto.UserResponse{
		ID:             u.ID,
		Email:          u.Email,
		EmailConfirmed: u.EmailConfirmed(),
		CreatedAt:      u.CreatedAt,
	}
}
