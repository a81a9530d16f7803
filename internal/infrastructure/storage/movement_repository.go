package storage

import (
	"github.com/jhoicas/inventario-lite/internal/domain/entity"
	"github.com/jhoicas/inventario-lite/internal/domain/repository"
)

// movementRepository implementa el puerto de lectura de movimientos. Las
// escrituras viven en el motor de inventario, que necesita mutar movimiento
// y producto en la misma transacción.
type movementRepository struct {
	store *Store
}

// NewMovementRepository crea una instancia de MovementRepository.
func NewMovementRepository(store *Store) repository.MovementRepository {
	return &movementRepository{store: store}
}

func movementID(m *entity.Movement) int64 { return m.ID }

func (r *movementRepository) GetAll() ([]entity.Movement, error) {
	var out []entity.Movement
	err := r.store.View(func(doc *Document) error {
		out = append([]entity.Movement{}, doc.Movements...)
		return nil
	})
	return out, err
}

func (r *movementRepository) GetByID(id int64) (*entity.Movement, error) {
	var out *entity.Movement
	err := r.store.View(func(doc *Document) error {
		if i := indexOf(doc.Movements, id, movementID); i >= 0 {
			m := doc.Movements[i]
			out = &m
		}
		return nil
	})
	return out, err
}
