package storage

import (
	"github.com/jhoicas/inventario-lite/internal/domain"
	"github.com/jhoicas/inventario-lite/internal/domain/entity"
	"github.com/jhoicas/inventario-lite/internal/domain/repository"
)

// reportRepository implementa repository.ReportRepository sobre el store.
type reportRepository struct {
	store *Store
}

// NewReportRepository crea una instancia de ReportRepository.
func NewReportRepository(store *Store) repository.ReportRepository {
	return &reportRepository{store: store}
}

func reportID(r *entity.Report) int64 { return r.ID }

func (r *reportRepository) GetAll() ([]entity.Report, error) {
	var out []entity.Report
	err := r.store.View(func(doc *Document) error {
		out = append([]entity.Report{}, doc.Reports...)
		return nil
	})
	return out, err
}

func (r *reportRepository) GetByID(id int64) (*entity.Report, error) {
	var out *entity.Report
	err := r.store.View(func(doc *Document) error {
		if i := indexOf(doc.Reports, id, reportID); i >= 0 {
			rep := doc.Reports[i]
			out = &rep
		}
		return nil
	})
	return out, err
}

func (r *reportRepository) Create(rep *entity.Report) error {
	return r.store.Mutate(func(doc *Document) error {
		rep.ID = nextID(doc.Reports, reportID)
		now := r.store.now().UTC()
		rep.CreatedAt = now
		rep.UpdatedAt = now
		if rep.Status == "" {
			rep.Status = "completed"
		}
		doc.Reports = append(doc.Reports, *rep)
		return nil
	})
}

func (r *reportRepository) Delete(id int64) error {
	return r.store.Mutate(func(doc *Document) error {
		i := indexOf(doc.Reports, id, reportID)
		if i < 0 {
			return domain.ErrNotFound
		}
		doc.Reports = append(doc.Reports[:i], doc.Reports[i+1:]...)
		return nil
	})
}
