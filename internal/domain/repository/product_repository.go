package repository

import "github.com/jhoicas/inventario-lite/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// Los productos se eliminan con hard delete; la cantidad solo la ajusta el
// motor de movimientos, nunca un Update directo.
type ProductRepository interface {
	GetAll() ([]entity.Product, error)
	// GetByID devuelve (nil, nil) si el id no existe: el caller decide cómo
	// presentar la ausencia ("producto eliminado").
	GetByID(id int64) (*entity.Product, error)
	// Create asigna ID (máximo existente + 1) y timestamps antes de persistir.
	Create(p *entity.Product) error
	Update(p *entity.Product) error
	Delete(id int64) error
}
