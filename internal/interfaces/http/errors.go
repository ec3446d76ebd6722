package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/labora-api/internal/application/dto"
	"github.com/jhoicas/labora-api/internal/domain"
	"github.com/jhoicas/labora-api/pkg/logger"
)

// Mensajes genéricos para el usuario.
const (
	msgInvalidBody   = "Corpo da requisição inválido"
	msgValidation    = "Verifique os campos destacados"
	msgUnauthorized  = "Sessão expirada. Faça login novamente."
	msgNotFound      = "Registro não encontrado"
	msgInvalidState  = "Este orçamento já foi aprovado ou rejeitado"
	msgNotApproved   = "O contrato só pode ser gerado para orçamentos aprovados"
	msgDuplicate     = "Registro já cadastrado"
	msgInvalidArg    = "Dados inválidos"
	msgExportFailed  = "Erro ao gerar o PDF. Tente novamente."
	msgInternalError = "Erro ao acessar os dados. Tente novamente."
)

// writeError traduce errores de dominio a HTTP. Los de persistencia y exportación
// se registran antes de responder con un mensaje genérico.
func writeError(c *fiber.Ctx, log *logger.Logger, err error) error {
	var (
		ve *domain.ValidationError
		ae *domain.AuthError
		ee *domain.ExportError
	)
	switch {
	case errors.As(err, &ve):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: msgValidation, Fields: ve.Fields})
	case errors.As(err, &ae):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "AUTH", Message: ae.Message})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: msgUnauthorized})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: msgNotFound})
	case errors.Is(err, domain.ErrInvalidStateTransition):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INVALID_STATE_TRANSITION", Message: msgInvalidState})
	case errors.Is(err, domain.ErrQuoteNotApproved):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "QUOTE_NOT_APPROVED", Message: msgNotApproved})
	case errors.Is(err, domain.ErrDuplicate), errors.Is(err, domain.ErrEmailAlreadyExists):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: msgDuplicate})
	case errors.Is(err, domain.ErrInvalidArgument):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ARGUMENT", Message: msgInvalidArg})
	case errors.As(err, &ee):
		log.Ctx(c.UserContext()).Error().Err(err).Str("path", c.Path()).Msg("fallo al exportar documento")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "EXPORT_ERROR", Message: msgExportFailed})
	default:
		log.Ctx(c.UserContext()).Error().Err(err).Str("path", c.Path()).Msg("error interno")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: msgInternalError})
	}
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: msgInvalidBody})
}
