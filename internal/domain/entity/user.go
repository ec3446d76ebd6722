package entity

import "time"

// User representa un usuario del equipo (único rol: autenticado).
type User struct {
	ID               string     `db:"id"`
	Email            string     `db:"email"`
	PasswordHash     string     `db:"password_hash"` // bcrypt hash, nunca plano en dominio después de persistir
	EmailConfirmedAt *time.Time `db:"email_confirmed_at"`
	CreatedAt        time.Time  `db:"created_at"`
	UpdatedAt        time.Time  `db:"updated_at"`
}

// EmailConfirmed indica si el usuario ya confirmó su email.
func (u *User) EmailConfirmed() bool {
	return u.EmailConfirmedAt != nil
}
