package entity

import "time"

// Session sesión autenticada emitida por el proveedor de identidad.
type Session struct {
	AccessToken string
	ExpiresAt   time.Time
	User        *User
}
