package entity

import (
	"encoding/json"
	"time"
)

// Tipos de reporte soportados.
const (
	ReportInventory = "inventory"
	ReportMovements = "movements"
	ReportLowStock  = "lowstock"
)

// ValidReportType reporta si t es un tipo de reporte conocido.
func ValidReportType(t string) bool {
	return t == ReportInventory || t == ReportMovements || t == ReportLowStock
}

// Report es un snapshot generado bajo demanda; Data guarda el resultado tal
// cual se calculó en el momento de la generación.
type Report struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	Type      string          `json:"type"`
	UserID    int64           `json:"userId"`
	Status    string          `json:"status"` // completed
	Data      json.RawMessage `json:"data,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}
