package entity

import "time"

// DefaultCategoryColor color asignado cuando el cliente no envía uno.
const DefaultCategoryColor = "#3B82F6"

// Category representa una categoría de productos. Se elimina con soft delete:
// IsActive=false la saca de los listados públicos pero permanece en la tabla.
type Category struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"` // ≤200 chars por convención de formulario
	Color       string    `json:"color"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
