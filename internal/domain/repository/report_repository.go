package repository

import "github.com/jhoicas/inventario-lite/internal/domain/entity"

// ReportRepository define el puerto de persistencia para Report.
type ReportRepository interface {
	GetAll() ([]entity.Report, error)
	GetByID(id int64) (*entity.Report, error)
	Create(r *entity.Report) error
	Delete(id int64) error
}
