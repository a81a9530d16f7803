package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-lite/internal/application/dto"
	"github.com/jhoicas/inventario-lite/internal/application/inventory"
	"github.com/jhoicas/inventario-lite/internal/application/usecase"
	"github.com/jhoicas/inventario-lite/internal/domain"
	"github.com/jhoicas/inventario-lite/internal/infrastructure/export"
	"github.com/jhoicas/inventario-lite/internal/infrastructure/pdf"
)

// ReportHandler maneja la generación, consulta y descarga de reportes.
type ReportHandler struct {
	uc       *usecase.ReportUseCase
	products *usecase.ProductUseCase
	engine   *inventory.Engine
	pdfGen   *pdf.MovementsPDFGenerator
}

// NewReportHandler construye el handler.
func NewReportHandler(
	uc *usecase.ReportUseCase,
	products *usecase.ProductUseCase,
	engine *inventory.Engine,
	pdfGen *pdf.MovementsPDFGenerator,
) *ReportHandler {
	return &ReportHandler{uc: uc, products: products, engine: engine, pdfGen: pdfGen}
}

// List godoc
// @Summary      Listar reportes generados
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  entity.Report
// @Router       /api/reports [get]
func (h *ReportHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener reporte con su snapshot
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del reporte"
// @Success      200  {object}  entity.Report
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reports/{id} [get]
func (h *ReportHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id numérico requerido"})
	}
	out, err := h.uc.GetByID(int64(id))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "reporte no encontrado"})
		}
		return internalError(c, err)
	}
	return c.JSON(out)
}

// Generate godoc
// @Summary      Generar reporte (inventory | movements | lowstock)
// @Tags         reports
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ReportRequest  true  "Tipo y nombre del reporte"
// @Success      201   {object}  entity.Report
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/reports [post]
func (h *ReportHandler) Generate(c *fiber.Ctx) error {
	var in dto.ReportRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Generate(in, GetUserID(c))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "type debe ser inventory, movements o lowstock"})
		}
		return internalError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Delete godoc
// @Summary      Eliminar reporte
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID del reporte"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reports/{id} [delete]
func (h *ReportHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id numérico requerido"})
	}
	if err := h.uc.Delete(int64(id)); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "reporte no encontrado"})
		}
		return internalError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ExportProductsCSV godoc
// @Summary      Descargar catálogo en CSV
// @Tags         reports
// @Security     Bearer
// @Produce      text/csv
// @Success      200
// @Router       /api/reports/export/products.csv [get]
func (h *ReportHandler) ExportProductsCSV(c *fiber.Ctx) error {
	products, err := h.products.List()
	if err != nil {
		return internalError(c, err)
	}
	data, err := export.ProductsCSV(products)
	if err != nil {
		return internalError(c, err)
	}
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="productos.csv"`)
	return c.Send(data)
}

// ExportMovementsCSV godoc
// @Summary      Descargar movimientos en CSV
// @Tags         reports
// @Security     Bearer
// @Produce      text/csv
// @Success      200
// @Router       /api/reports/export/movements.csv [get]
func (h *ReportHandler) ExportMovementsCSV(c *fiber.Ctx) error {
	movements, err := h.engine.ListWithDetails()
	if err != nil {
		return internalError(c, err)
	}
	data, err := export.MovementsCSV(movements)
	if err != nil {
		return internalError(c, err)
	}
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="movimientos.csv"`)
	return c.Send(data)
}

// ExportXLSX godoc
// @Summary      Descargar inventario completo en XLSX
// @Tags         reports
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200
// @Router       /api/reports/export/inventario.xlsx [get]
func (h *ReportHandler) ExportXLSX(c *fiber.Ctx) error {
	products, err := h.products.List()
	if err != nil {
		return internalError(c, err)
	}
	movements, err := h.engine.ListWithDetails()
	if err != nil {
		return internalError(c, err)
	}
	data, err := export.InventoryXLSX(products, movements)
	if err != nil {
		return internalError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="inventario.xlsx"`)
	return c.Send(data)
}

// ExportMovementsPDF godoc
// @Summary      Descargar reporte de movimientos en PDF
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Success      200
// @Router       /api/reports/export/movimientos.pdf [get]
func (h *ReportHandler) ExportMovementsPDF(c *fiber.Ctx) error {
	movements, err := h.engine.ListWithDetails()
	if err != nil {
		return internalError(c, err)
	}
	data, err := h.pdfGen.Generate("Reporte de movimientos", movements)
	if err != nil {
		return internalError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="movimientos.pdf"`)
	return c.Send(data)
}
