package repository

import "github.com/jhoicas/inventario-lite/internal/domain/entity"

// CategoryRepository define el puerto de persistencia para Category.
// Delete aplica la política declarada para la tabla (soft delete): la fila
// permanece con IsActive=false.
type CategoryRepository interface {
	GetAll() ([]entity.Category, error)
	GetByID(id int64) (*entity.Category, error)
	Create(c *entity.Category) error
	Update(c *entity.Category) error
	Delete(id int64) error
}
