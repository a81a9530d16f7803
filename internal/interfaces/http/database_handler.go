package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-lite/internal/application/dto"
	"github.com/jhoicas/inventario-lite/internal/domain"
	"github.com/jhoicas/inventario-lite/internal/infrastructure/cache"
	"github.com/jhoicas/inventario-lite/internal/infrastructure/storage"
)

// DatabaseHandler maneja las utilidades de administración del documento
// completo: respaldo, restauración e inicialización (solo admin).
type DatabaseHandler struct {
	store *storage.Store
	cache *cache.Cache
}

// NewDatabaseHandler construye el handler.
func NewDatabaseHandler(store *storage.Store, c *cache.Cache) *DatabaseHandler {
	return &DatabaseHandler{store: store, cache: c}
}

// Export godoc
// @Summary      Descargar la base de datos completa (JSON)
// @Tags         database
// @Security     Bearer
// @Produce      json
// @Success      200
// @Router       /api/database/export [get]
func (h *DatabaseHandler) Export(c *fiber.Ctx) error {
	data, err := h.store.Export()
	if err != nil {
		return internalError(c, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="inventario-backup.json"`)
	return c.Send(data)
}

// Import godoc
// @Summary      Reemplazar la base de datos completa
// @Tags         database
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/database/import [post]
func (h *DatabaseHandler) Import(c *fiber.Ctx) error {
	body := c.Body()
	if len(body) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "documento JSON requerido"})
	}
	if err := h.store.Import(body); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "el documento no es un respaldo válido"})
		}
		return internalError(c, err)
	}
	h.cache.Invalidate()
	return c.SendStatus(fiber.StatusNoContent)
}

// Reset godoc
// @Summary      Restaurar el dataset inicial
// @Tags         database
// @Security     Bearer
// @Produce      json
// @Success      204
// @Router       /api/database/reset [post]
func (h *DatabaseHandler) Reset(c *fiber.Ctx) error {
	if err := h.store.Reset(); err != nil {
		return internalError(c, err)
	}
	h.cache.Invalidate()
	return c.SendStatus(fiber.StatusNoContent)
}
