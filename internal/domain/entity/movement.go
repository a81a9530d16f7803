package entity

import "time"

// Tipos de movimiento de inventario.
const (
	MovementEntrada = "entrada" // suma cantidad al producto
	MovementSalida  = "salida"  // resta cantidad al producto
)

// FallbackUserID usuario atribuido a un movimiento cuando no se indica uno.
const FallbackUserID int64 = 1

// Movement registra una entrada o salida de stock. Es inmutable una vez
// creado, salvo su borrado, que revierte el efecto sobre Product.Quantity.
// TransactionID agrupa el alta del movimiento con el ajuste del producto
// (misma operación compuesta) para auditoría.
type Movement struct {
	ID            int64     `json:"id"`
	ProductID     int64     `json:"productId"`
	Type          string    `json:"type"` // entrada | salida
	Quantity      int       `json:"quantity"`
	Reason        string    `json:"reason"` // responsable o justificación
	Notes         string    `json:"notes,omitempty"`
	UserID        int64     `json:"userId"`
	TransactionID string    `json:"transactionId,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// ValidMovementType reporta si t es un tipo de movimiento conocido.
func ValidMovementType(t string) bool {
	return t == MovementEntrada || t == MovementSalida
}

// Delta devuelve el efecto del movimiento sobre la cantidad del producto:
// positivo para entrada, negativo para salida.
func (m *Movement) Delta() int {
	if m.Type == MovementSalida {
		return -m.Quantity
	}
	return m.Quantity
}
