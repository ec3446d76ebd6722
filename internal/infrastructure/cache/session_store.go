package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const revokedPrefix = "labora:session:revoked:"

// SessionStore lista de tokens revocados (por jti). Cada entrada vive lo que le quedaba al token.
type SessionStore struct {
	client *redis.Client
}

// NewSessionStore construye el almacén sobre un cliente ya conectado.
func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{client: client}
}

// Revoke marca el jti como revocado durante ttl. Un ttl <= 0 no hace nada: el token ya expiró.
func (s *SessionStore) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	if err := s.client.Set(ctx, revokedPrefix+jti, "1", ttl).Err(); err != nil {
		return fmt.Errorf("cache: revoke session: %w", err)
	}
	return nil
}

// IsRevoked indica si el jti fue revocado.
func (s *SessionStore) IsRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := s.client.Exists(ctx, revokedPrefix+jti).Result()
	if err != nil {
		return false, fmt.Errorf("cache: check session: %w", err)
	}
	return n > 0, nil
}
