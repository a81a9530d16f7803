package repository

import "github.com/jhoicas/inventario-lite/internal/domain/entity"

// UserRepository define el puerto de persistencia para User. Todo camino de
// lectura devuelve usuarios sin password; Authenticate es el único punto que
// lo compara, y nunca lo expone. Delete aplica soft delete (IsActive=false).
type UserRepository interface {
	GetAll() ([]entity.User, error)
	GetByID(id int64) (*entity.User, error)
	Create(u *entity.User) error
	Update(u *entity.User) error
	Delete(id int64) error
	// Authenticate acepta username o email como identificador y devuelve el
	// usuario (sanitizado) si las credenciales corresponden a una cuenta
	// activa; (nil, nil) si no hay coincidencia.
	Authenticate(identifier, password string) (*entity.User, error)
}
