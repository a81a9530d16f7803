package repository

import "github.com/jhoicas/inventario-lite/internal/domain/entity"

// ActivityRepository define el puerto del registro de actividad reciente.
type ActivityRepository interface {
	// Recent devuelve las actividades más recientes primero.
	Recent() ([]entity.Activity, error)
	// Record agrega una actividad y recorta la tabla a entity.MaxActivities.
	Record(a *entity.Activity) error
}
