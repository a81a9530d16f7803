package usecase

import (
	"strings"

	"github.com/jhoicas/inventario-lite/internal/application/dto"
	"github.com/jhoicas/inventario-lite/internal/domain"
	"github.com/jhoicas/inventario-lite/internal/domain/entity"
	"github.com/jhoicas/inventario-lite/internal/domain/repository"
	"github.com/jhoicas/inventario-lite/pkg/logger"
)

// UserUseCase orquesta la administración de usuarios. Toda respuesta sale
// sin password; el borrado es lógico (la cuenta queda desactivada).
type UserUseCase struct {
	users repository.UserRepository
	log   *logger.Logger
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(users repository.UserRepository, log *logger.Logger) *UserUseCase {
	return &UserUseCase{users: users, log: log}
}

// List devuelve todos los usuarios (activos y desactivados), sanitizados.
func (uc *UserUseCase) List() ([]entity.User, error) {
	return uc.users.GetAll()
}

// GetByID devuelve el usuario sanitizado, o ErrNotFound.
func (uc *UserUseCase) GetByID(id int64) (*entity.User, error) {
	u, err := uc.users.GetByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrNotFound
	}
	return u, nil
}

// Create valida y da de alta un usuario. Sin rol explícito se asigna el de
// menor privilegio (viewer).
func (uc *UserUseCase) Create(req dto.UserRequest) (*entity.User, error) {
	if strings.TrimSpace(req.Username) == "" || strings.TrimSpace(req.Password) == "" {
		return nil, domain.ErrInvalidInput
	}
	role := strings.TrimSpace(req.Role)
	if role != "" && !entity.ValidRole(role) {
		return nil, domain.ErrInvalidInput
	}
	u := &entity.User{
		Username: strings.TrimSpace(req.Username),
		Name:     strings.TrimSpace(req.Name),
		Email:    strings.TrimSpace(req.Email),
		Password: req.Password,
		Role:     role,
	}
	if err := uc.users.Create(u); err != nil {
		return nil, err
	}
	uc.log.Info().Int64("userId", u.ID).Str("username", u.Username).Str("role", u.Role).Msg("usuario creado")
	return u, nil
}

// Update edita un usuario. Un password vacío conserva el actual.
func (uc *UserUseCase) Update(id int64, req dto.UserRequest) (*entity.User, error) {
	existing, err := uc.users.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}
	if role := strings.TrimSpace(req.Role); role != "" {
		if !entity.ValidRole(role) {
			return nil, domain.ErrInvalidInput
		}
		existing.Role = role
	}
	if v := strings.TrimSpace(req.Username); v != "" {
		existing.Username = v
	}
	if v := strings.TrimSpace(req.Name); v != "" {
		existing.Name = v
	}
	if v := strings.TrimSpace(req.Email); v != "" {
		existing.Email = v
	}
	existing.Password = req.Password // vacío conserva el actual (repositorio)

	if err := uc.users.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// Delete desactiva la cuenta (soft delete); no puede volver a autenticarse.
func (uc *UserUseCase) Delete(id int64) error {
	u, err := uc.users.GetByID(id)
	if err != nil {
		return err
	}
	if u == nil {
		return domain.ErrNotFound
	}
	if err := uc.users.Delete(id); err != nil {
		return err
	}
	uc.log.Info().Int64("userId", id).Msg("usuario desactivado")
	return nil
}
