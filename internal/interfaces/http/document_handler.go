package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/labora-api/internal/application/dto"
	"github.com/jhoicas/labora-api/internal/application/validation"
	"github.com/jhoicas/labora-api/pkg/logger"
)

// DocumentHandler validación y máscara de CPF, CNPJ, teléfono y CEP.
type DocumentHandler struct {
	v   *validation.Validator
	log *logger.Logger
}

// NewDocumentHandler construye el handler.
func NewDocumentHandler(v *validation.Validator, log *logger.Logger) *DocumentHandler {
	return &DocumentHandler{v: v, log: log}
}

// Check godoc
// @Summary      Validar y formatear un documento
// @Tags         documents
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.DocumentCheckRequest  true  "kind: cpf | cnpj | taxid | phone | cep"
// @Success      200   {object}  dto.DocumentCheckResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/documents/check [post]
func (h *DocumentHandler) Check(c *fiber.Ctx) error {
	var in dto.DocumentCheckRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.v.CheckDocument(in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}
