package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/labora-api/internal/application/catalog"
	"github.com/jhoicas/labora-api/pkg/logger"
)

// CatalogHandler categorías y servicios (sólo lectura).
type CatalogHandler struct {
	uc  *catalog.CatalogUseCase
	log *logger.Logger
}

// NewCatalogHandler construye el handler del catálogo.
func NewCatalogHandler(uc *catalog.CatalogUseCase, log *logger.Logger) *CatalogHandler {
	return &CatalogHandler{uc: uc, log: log}
}

// ListCategories godoc
// @Summary      Listar categorías de servicio
// @Tags         catalog
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.CategoryResponse
// @Router       /api/catalog/categories [get]
func (h *CatalogHandler) ListCategories(c *fiber.Ctx) error {
	out, err := h.uc.ListCategories(c.UserContext())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// ListServices godoc
// @Summary      Servicios de una categoría
// @Tags         catalog
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "ID de la categoría"
// @Success      200  {array}  dto.ServiceResponse
// @Router       /api/catalog/categories/{id}/services [get]
func (h *CatalogHandler) ListServices(c *fiber.Ctx) error {
	out, err := h.uc.ListServices(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// GetService godoc
// @Summary      Obtener servicio
// @Tags         catalog
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "ID del servicio"
// @Success      200  {object}  dto.ServiceResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/catalog/services/{id} [get]
func (h *CatalogHandler) GetService(c *fiber.Ctx) error {
	out, err := h.uc.GetService(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}
