package entity

import "time"

// MaxActivities tope de actividades retenidas: las más antiguas se descartan.
const MaxActivities = 20

// Activity es una entrada del registro de actividad reciente que alimenta el
// panel principal ("creó producto X", "registró salida de Y").
type Activity struct {
	ID        int64     `json:"id"`
	Action    string    `json:"action"`
	Item      string    `json:"item"`
	User      string    `json:"user"` // nombre completo de quien actuó
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
