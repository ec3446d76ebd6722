package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/labora-api/internal/application/dto"
	"github.com/jhoicas/labora-api/internal/application/quotes"
	"github.com/jhoicas/labora-api/pkg/logger"
)

// QuoteHandler alta, consulta, ciclo de vida y exportación de orçamentos.
type QuoteHandler struct {
	uc        *quotes.QuoteUseCase
	lifecycle *quotes.LifecycleManager
	docs      *quotes.DocumentUseCase
	log       *logger.Logger
}

// NewQuoteHandler construye el handler de orçamentos.
func NewQuoteHandler(uc *quotes.QuoteUseCase, lifecycle *quotes.LifecycleManager, docs *quotes.DocumentUseCase, log *logger.Logger) *QuoteHandler {
	return &QuoteHandler{uc: uc, lifecycle: lifecycle, docs: docs, log: log}
}

// Create godoc
// @Summary      Crear orçamento (queda pendente)
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateQuoteRequest  true  "datos del orçamento"
// @Success      201   {object}  dto.QuoteResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/quotes [post]
func (h *QuoteHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateQuoteRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar orçamentos (más recientes primero)
// @Tags         quotes
// @Produce      json
// @Security     BearerAuth
// @Param        status  query  string  false  "pending | approved | rejected"
// @Param        q       query  string  false  "número, nombre o documento"
// @Param        limit   query  int     false  "máx. 100"
// @Param        offset  query  int     false  "desplazamiento"
// @Success      200  {array}  dto.QuoteResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/quotes [get]
func (h *QuoteHandler) List(c *fiber.Ctx) error {
	var in dto.QuoteListRequest
	if err := c.QueryParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.List(c.UserContext(), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener orçamento
// @Tags         quotes
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "ID del orçamento"
// @Success      200  {object}  dto.QuoteResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/quotes/{id} [get]
func (h *QuoteHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Approve godoc
// @Summary      Aprobar orçamento pendente
// @Description  Idempotente: si ya estaba aprobado responde 200 con changed=false.
// @Tags         quotes
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "ID del orçamento"
// @Success      200  {object}  dto.TransitionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/quotes/{id}/approve [post]
func (h *QuoteHandler) Approve(c *fiber.Ctx) error {
	res, err := h.lifecycle.Approve(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(toTransitionResponse(res))
}

// Reject godoc
// @Summary      Rechazar orçamento pendente
// @Description  La justificación es obligatoria y no puede quedar en blanco.
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                  true  "ID del orçamento"
// @Param        body  body  dto.RejectQuoteRequest  true  "justificación"
// @Success      200  {object}  dto.TransitionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/quotes/{id}/reject [post]
func (h *QuoteHandler) Reject(c *fiber.Ctx) error {
	var in dto.RejectQuoteRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	res, err := h.lifecycle.Reject(c.UserContext(), c.Params("id"), in.Justification)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(toTransitionResponse(res))
}

// Document godoc
// @Summary      Secciones del orçamento para vista previa
// @Tags         quotes
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "ID del orçamento"
// @Success      200  {object}  document.QuoteDocument
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/quotes/{id}/document [get]
func (h *QuoteHandler) Document(c *fiber.Ctx) error {
	out, err := h.docs.QuoteDocument(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// PDF godoc
// @Summary      Descargar el orçamento en PDF
// @Tags         quotes
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        id   path  string  true  "ID del orçamento"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/quotes/{id}/pdf [get]
func (h *QuoteHandler) PDF(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.docs.QuotePDF(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return sendPDF(c, pdfBytes, filename)
}

func toTransitionResponse(res *quotes.TransitionResult) dto.TransitionResponse {
	return dto.TransitionResponse{Quote: quotes.ToQuoteResponse(res.Quote), Changed: res.Changed}
}

// sendPDF responde el PDF como descarga con el nombre de archivo dado.
func sendPDF(c *fiber.Ctx, pdfBytes []byte, filename string) error {
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(pdfBytes)
}
