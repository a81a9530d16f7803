package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de producto.
const (
	ProductStatusActive = "active"
)

// Product representa un producto del inventario. Quantity solo se modifica a
// través del motor de movimientos (entrada/salida); nunca queda por debajo de 0.
type Product struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Code        string          `json:"code"` // único por convención, no se fuerza en storage
	Description string          `json:"description,omitempty"`
	Supplier    string          `json:"supplier,omitempty"`
	CategoryID  int64           `json:"categoryId"`
	Quantity    int             `json:"quantity"`
	MinStock    int             `json:"minStock"`
	Price       decimal.Decimal `json:"price"`
	Status      string          `json:"status"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// LowStock reporta si el producto está en o por debajo de su umbral mínimo.
func (p *Product) LowStock() bool {
	return p.Quantity <= p.MinStock
}
