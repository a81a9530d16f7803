package repository

import "github.com/jhoicas/inventario-lite/internal/domain/entity"

// MovementRepository define el puerto de lectura para Movement. Las altas y
// bajas de movimientos no pasan por aquí: son operaciones compuestas del
// motor de inventario (movimiento + ajuste de producto en una sola escritura).
type MovementRepository interface {
	GetAll() ([]entity.Movement, error)
	GetByID(id int64) (*entity.Movement, error)
}
