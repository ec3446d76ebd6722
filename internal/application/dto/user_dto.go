package dto

import "time"

// SignInRequest entrada del login.
type SignInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=72,bcrypt_len"`
}

// SignUpRequest entrada del registro; ConfirmPassword debe coincidir con Password.
type SignUpRequest struct {
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=6,max=72,bcrypt_len"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	EmailConfirmed bool      `json:"email_confirmed"`
	CreatedAt      time.Time `json:"created_at"`
}

// SessionResponse token de acceso emitido en el login.
type SessionResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	ExpiresAt   time.Time    `json:"expires_at"`
	User        UserResponse `json:"user"`
}

// SignUpResponse resultado del registro. Session es nil si el login inmediato falló.
type SignUpResponse struct {
	User    UserResponse     `json:"user"`
	Session *SessionResponse `json:"session,omitempty"`
	Message string           `json:"message,omitempty"`
}
