package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/labora-api/internal/application/auth"
	"github.com/jhoicas/labora-api/internal/application/dto"
	"github.com/jhoicas/labora-api/internal/application/validation"
	"github.com/jhoicas/labora-api/internal/domain"
	"github.com/jhoicas/labora-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Mock del proveedor de identidad
// ──────────────────────────────────────────────────────────────────────────────

type mockIDP struct {
	mock.Mock
}

func (m *mockIDP) SignUp(ctx context.Context, email, password string, autoConfirm bool) (*entity.User, error) {
	args := m.Called(ctx, email, password, autoConfirm)
	u, _ := args.Get(0).(*entity.User)
	return u, args.Error(1)
}

func (m *mockIDP) SignIn(ctx context.Context, email, password string) (*entity.Session, error) {
	args := m.Called(ctx, email, password)
	s, _ := args.Get(0).(*entity.Session)
	return s, args.Error(1)
}

func (m *mockIDP) SignOut(ctx context.Context, accessToken string) error {
	return m.Called(ctx, accessToken).Error(0)
}

func (m *mockIDP) GetUser(ctx context.Context, accessToken string) (*entity.User, error) {
	args := m.Called(ctx, accessToken)
	u, _ := args.Get(0).(*entity.User)
	return u, args.Error(1)
}

var (
	ctx      = context.Background()
	testUser = &entity.User{ID: "u-1", Email: "ana@labora.tech", CreatedAt: time.Now()}
	testSess = &entity.Session{AccessToken: "tok", ExpiresAt: time.Now().Add(time.Hour), User: testUser}
)

func newUC(idp *mockIDP) *auth.AuthUseCase {
	return auth.NewAuthUseCase(idp, validation.New(), false)
}

// ──────────────────────────────────────────────────────────────────────────────
// SignIn
// ──────────────────────────────────────────────────────────────────────────────

func TestSignIn_OK(t *testing.T) {
	idp := &mockIDP{}
	idp.On("SignIn", ctx, "ana@labora.tech", "secreta").Return(testSess, nil).Once()

	out, err := newUC(idp).SignIn(ctx, dto.SignInRequest{Email: "  Ana@Labora.tech ", Password: "secreta"})
	require.NoError(t, err)
	assert.Equal(t, "tok", out.AccessToken)
	assert.Equal(t, "Bearer", out.TokenType)
	assert.Equal(t, "u-1", out.User.ID)
	idp.AssertExpectations(t)
}

func TestSignIn_EmailNoConfirmado_ReintentaConSignUp(t *testing.T) {
	idp := &mockIDP{}
	idp.On("SignIn", ctx, "ana@labora.tech", "secreta").Return(nil, domain.ErrEmailNotConfirmed).Once()
	idp.On("SignUp", ctx, "ana@labora.tech", "secreta", true).Return(testUser, nil).Once()
	idp.On("SignIn", ctx, "ana@labora.tech", "secreta").Return(testSess, nil).Once()

	out, err := newUC(idp).SignIn(ctx, dto.SignInRequest{Email: "ana@labora.tech", Password: "secreta"})
	require.NoError(t, err)
	assert.Equal(t, "tok", out.AccessToken)
	idp.AssertExpectations(t)
	idp.AssertNumberOfCalls(t, "SignIn", 2)
}

func TestSignIn_CredencialesInvalidas_AuthError(t *testing.T) {
	idp := &mockIDP{}
	idp.On("SignIn", ctx, "ana@labora.tech", "errada1").Return(nil, domain.ErrInvalidCredentials).Once()

	_, err := newUC(idp).SignIn(ctx, dto.SignInRequest{Email: "ana@labora.tech", Password: "errada1"})
	var ae *domain.AuthError
	require.True(t, errors.As(err, &ae))
	assert.Equal(t, auth.MsgInvalidCredentials, ae.Message)
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestSignIn_FormularioInvalido_NoLlamaAlProveedor(t *testing.T) {
	idp := &mockIDP{}
	_, err := newUC(idp).SignIn(ctx, dto.SignInRequest{Email: "no-es-email", Password: "123"})

	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	idp.AssertNotCalled(t, "SignIn", mock.Anything, mock.Anything, mock.Anything)
}

func TestSignIn_ErrorDePersistencia_PasaIntacto(t *testing.T) {
	idp := &mockIDP{}
	pe := domain.NewPersistenceError("users.get", errors.New("conexión rechazada"))
	idp.On("SignIn", ctx, "ana@labora.tech", "secreta").Return(nil, pe).Once()

	_, err := newUC(idp).SignIn(ctx, dto.SignInRequest{Email: "ana@labora.tech", Password: "secreta"})
	var got *domain.PersistenceError
	assert.True(t, errors.As(err, &got))
}

// ──────────────────────────────────────────────────────────────────────────────
// SignUp
// ──────────────────────────────────────────────────────────────────────────────

func TestSignUp_LoginInmediato(t *testing.T) {
	idp := &mockIDP{}
	idp.On("SignUp", ctx, "ana@labora.tech", "secreta", false).Return(testUser, nil).Once()
	idp.On("SignIn", ctx, "ana@labora.tech", "secreta").Return(testSess, nil).Once()

	out, err := newUC(idp).SignUp(ctx, dto.SignUpRequest{Email: "ana@labora.tech", Password: "secreta", ConfirmPassword: "secreta"})
	require.NoError(t, err)
	require.NotNil(t, out.Session)
	assert.Equal(t, auth.MsgSignUpOK, out.Message)
}

func TestSignUp_LoginFalla_MensajeParaLoguearDespues(t *testing.T) {
	idp := &mockIDP{}
	idp.On("SignUp", ctx, "ana@labora.tech", "secreta", false).Return(testUser, nil).Once()
	idp.On("SignIn", ctx, "ana@labora.tech", "secreta").Return(nil, domain.ErrEmailNotConfirmed).Once()

	out, err := newUC(idp).SignUp(ctx, dto.SignUpRequest{Email: "ana@labora.tech", Password: "secreta", ConfirmPassword: "secreta"})
	require.NoError(t, err, "el registro es exitoso aunque falle el login")
	assert.Nil(t, out.Session)
	assert.Equal(t, "Conta criada com sucesso! Faça login para continuar.", out.Message)
	assert.Equal(t, "u-1", out.User.ID)
}

func TestSignUp_EmailExistente(t *testing.T) {
	idp := &mockIDP{}
	idp.On("SignUp", ctx, "ana@labora.tech", "secreta", false).Return(nil, domain.ErrEmailAlreadyExists).Once()

	_, err := newUC(idp).SignUp(ctx, dto.SignUpRequest{Email: "ana@labora.tech", Password: "secreta", ConfirmPassword: "secreta"})
	var ae *domain.AuthError
	require.True(t, errors.As(err, &ae))
	assert.Equal(t, auth.MsgEmailTaken, ae.Message)
}

// ──────────────────────────────────────────────────────────────────────────────
// Sesión
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthenticate_TokenRevocado(t *testing.T) {
	idp := &mockIDP{}
	idp.On("GetUser", ctx, "tok").Return(nil, domain.ErrUnauthorized).Once()

	_, err := newUC(idp).Authenticate(ctx, "tok")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestMe_DevuelveUsuario(t *testing.T) {
	idp := &mockIDP{}
	idp.On("GetUser", ctx, "tok").Return(testUser, nil).Once()

	out, err := newUC(idp).Me(ctx, "tok")
	require.NoError(t, err)
	assert.Equal(t, "ana@labora.tech", out.Email)
	assert.False(t, out.EmailConfirmed)
}

func TestSignOut_DelegaEnProveedor(t *testing.T) {
	idp := &mockIDP{}
	idp.On("SignOut", ctx, "tok").Return(nil).Once()

	require.NoError(t, newUC(idp).SignOut(ctx, "tok"))
	idp.AssertExpectations(t)
}
