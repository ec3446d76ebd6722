package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/labora-api/internal/application/dto"
	"github.com/jhoicas/labora-api/internal/application/quotes"
	"github.com/jhoicas/labora-api/pkg/logger"
)

// ContractHandler contratos de orçamentos aprobados.
type ContractHandler struct {
	uc   *quotes.QuoteUseCase
	docs *quotes.DocumentUseCase
	log  *logger.Logger
}

// NewContractHandler construye el handler de contratos.
func NewContractHandler(uc *quotes.QuoteUseCase, docs *quotes.DocumentUseCase, log *logger.Logger) *ContractHandler {
	return &ContractHandler{uc: uc, docs: docs, log: log}
}

// List godoc
// @Summary      Orçamentos aprobados (disponibles para contrato)
// @Tags         contracts
// @Produce      json
// @Security     BearerAuth
// @Param        q       query  string  false  "número, nombre o documento"
// @Param        limit   query  int     false  "máx. 100"
// @Param        offset  query  int     false  "desplazamiento"
// @Success      200  {array}  dto.QuoteResponse
// @Router       /api/contracts [get]
func (h *ContractHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badBody(c)
	}
	out, err := h.uc.ListContracts(c.UserContext(), c.Query("q"), page)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Draft godoc
// @Summary      Texto editable del contrato
// @Tags         contracts
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "ID del orçamento"
// @Success      200  {object}  dto.ContractDraftResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/contracts/{id} [get]
func (h *ContractHandler) Draft(c *fiber.Ctx) error {
	ct, err := h.docs.ContractDraft(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(dto.ContractDraftResponse{
		QuoteID:  ct.QuoteID,
		Number:   ct.Number,
		Title:    ct.Title(),
		FileName: ct.FileName(),
		Content:  ct.Text(),
	})
}

// PDF godoc
// @Summary      Generar el PDF del contrato
// @Description  Con content vacío se exporta la plantilla sin editar.
// @Tags         contracts
// @Accept       json
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        id    path  string                  true   "ID del orçamento"
// @Param        body  body  dto.ContractPDFRequest  false  "texto editado"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/contracts/{id}/pdf [post]
func (h *ContractHandler) PDF(c *fiber.Ctx) error {
	var in dto.ContractPDFRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return badBody(c)
		}
	}
	pdfBytes, filename, err := h.docs.ContractPDF(c.UserContext(), c.Params("id"), in.Content)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return sendPDF(c, pdfBytes, filename)
}
