package usecase

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/jhoicas/inventario-lite/internal/application/dto"
	"github.com/jhoicas/inventario-lite/internal/application/inventory"
	"github.com/jhoicas/inventario-lite/internal/domain"
	"github.com/jhoicas/inventario-lite/internal/domain/entity"
	"github.com/jhoicas/inventario-lite/internal/domain/repository"
	"github.com/jhoicas/inventario-lite/pkg/logger"
)

// ReportUseCase genera reportes bajo demanda. Data guarda el snapshot tal
// cual se calculó: un reporte viejo no cambia aunque el inventario sí.
type ReportUseCase struct {
	reports  repository.ReportRepository
	products *ProductUseCase
	engine   *inventory.Engine
	log      *logger.Logger
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(
	reports repository.ReportRepository,
	products *ProductUseCase,
	engine *inventory.Engine,
	log *logger.Logger,
) *ReportUseCase {
	return &ReportUseCase{reports: reports, products: products, engine: engine, log: log}
}

// List devuelve los reportes generados, más recientes primero.
func (uc *ReportUseCase) List() ([]entity.Report, error) {
	all, err := uc.reports.GetAll()
	if err != nil {
		return nil, err
	}
	for i, j := 0, len(all)-1; i < j; i, j = i+1, j-1 {
		all[i], all[j] = all[j], all[i]
	}
	return all, nil
}

// GetByID devuelve el reporte con su snapshot, o ErrNotFound.
func (uc *ReportUseCase) GetByID(id int64) (*entity.Report, error) {
	r, err := uc.reports.GetByID(id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, domain.ErrNotFound
	}
	return r, nil
}

// Generate calcula el snapshot del tipo pedido y lo persiste como reporte
// completado.
func (uc *ReportUseCase) Generate(req dto.ReportRequest, userID int64) (*entity.Report, error) {
	if !entity.ValidReportType(req.Type) {
		return nil, domain.ErrInvalidInput
	}

	var (
		data any
		err  error
	)
	switch req.Type {
	case entity.ReportInventory:
		data, err = uc.products.List()
	case entity.ReportMovements:
		data, err = uc.engine.ListWithDetails()
	case entity.ReportLowStock:
		data, err = uc.products.LowStockAlerts()
	}
	if err != nil {
		return nil, err
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = "Reporte " + req.Type + " " + time.Now().Format("2006-01-02")
	}
	r := &entity.Report{
		Name:   name,
		Type:   req.Type,
		UserID: userID,
		Status: "completed",
		Data:   raw,
	}
	if err := uc.reports.Create(r); err != nil {
		return nil, err
	}
	uc.log.Info().Int64("reportId", r.ID).Str("type", r.Type).Msg("reporte generado")
	return r, nil
}

// Delete elimina el reporte de forma definitiva.
func (uc *ReportUseCase) Delete(id int64) error {
	r, err := uc.reports.GetByID(id)
	if err != nil {
		return err
	}
	if r == nil {
		return domain.ErrNotFound
	}
	return uc.reports.Delete(id)
}
