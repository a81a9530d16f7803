package storage

import (
	"github.com/jhoicas/inventario-lite/internal/domain/entity"
	"github.com/jhoicas/inventario-lite/internal/domain/repository"
)

// activityRepository implementa el registro de actividad reciente. La tabla
// se recorta a entity.MaxActivities en cada alta; no hay borrado explícito.
type activityRepository struct {
	store *Store
}

// NewActivityRepository crea una instancia de ActivityRepository.
func NewActivityRepository(store *Store) repository.ActivityRepository {
	return &activityRepository{store: store}
}

func activityID(a *entity.Activity) int64 { return a.ID }

func (r *activityRepository) Recent() ([]entity.Activity, error) {
	var out []entity.Activity
	err := r.store.View(func(doc *Document) error {
		out = make([]entity.Activity, 0, len(doc.Activities))
		// Más recientes primero (se insertan al frente al registrar).
		out = append(out, doc.Activities...)
		return nil
	})
	return out, err
}

func (r *activityRepository) Record(a *entity.Activity) error {
	return r.store.Mutate(func(doc *Document) error {
		a.ID = nextID(doc.Activities, activityID)
		now := r.store.now().UTC()
		a.CreatedAt = now
		a.UpdatedAt = now
		doc.Activities = append([]entity.Activity{*a}, doc.Activities...)
		if len(doc.Activities) > entity.MaxActivities {
			doc.Activities = doc.Activities[:entity.MaxActivities]
		}
		return nil
	})
}
