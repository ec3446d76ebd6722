package http

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/labora-api/internal/application/dto"
	"github.com/jhoicas/labora-api/internal/domain/entity"
)

// Locals keys del usuario autenticado en Fiber.
const (
	LocalUserID      = "user_id"
	LocalUserEmail   = "user_email"
	LocalAccessToken = "access_token"
)

// Authenticator resuelve el usuario dueño de un token de acceso.
type Authenticator interface {
	Authenticate(ctx context.Context, accessToken string) (*entity.User, error)
}

// AuthMiddleware valida el Bearer Token (firma, vencimiento y revocación) y carga el usuario en c.Locals.
func AuthMiddleware(authn Authenticator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, ok := bearerToken(c)
		if !ok {
			return nil
		}
		user, err := authn.Authenticate(c.UserContext(), tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalUserID, user.ID)
		c.Locals(LocalUserEmail, user.Email)
		c.Locals(LocalAccessToken, tokenString)
		return c.Next()
	}
}

// bearerToken extrae el token; si falta o está mal formado ya escribe la respuesta 401.
// fasthttp recorta los espacios finales, así que "Bearer   " llega como "Bearer".
func bearerToken(c *fiber.Ctx) (string, bool) {
	authHeader := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if authHeader == "" {
		_ = c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		return "", false
	}
	scheme, token, _ := strings.Cut(authHeader, " ")
	if !strings.EqualFold(scheme, "Bearer") {
		_ = c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		return "", false
	}
	token = strings.TrimSpace(token)
	if token == "" {
		_ = c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		return "", false
	}
	return token, true
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	v := c.Locals(LocalUserID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetAccessToken devuelve el token de la petición autenticada.
func GetAccessToken(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalAccessToken).(string)
	return s
}
