package usecase

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-lite/internal/application/dto"
	"github.com/jhoicas/inventario-lite/internal/domain"
	"github.com/jhoicas/inventario-lite/internal/domain/entity"
	"github.com/jhoicas/inventario-lite/internal/infrastructure/storage"
	"github.com/jhoicas/inventario-lite/pkg/logger"
)

func newUserUC(t *testing.T) (*UserUseCase, *storage.Store) {
	t.Helper()
	store, err := storage.Open(storage.Options{
		Fs:   afero.NewMemMapFs(),
		Path: "data/test.json",
	})
	require.NoError(t, err)
	return NewUserUseCase(storage.NewUserRepository(store), logger.Nop()), store
}

// Sin rol explícito el usuario nuevo queda como viewer; la respuesta nunca
// incluye el password.
func TestUserCreate_RolPorDefecto(t *testing.T) {
	uc, _ := newUserUC(t)

	u, err := uc.Create(dto.UserRequest{Username: "nuevo", Password: "clave123", Name: "Nuevo Usuario"})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleViewer, u.Role)
	assert.Empty(t, u.Password)
	assert.True(t, u.IsActive)
}

func TestUserCreate_Validaciones(t *testing.T) {
	uc, _ := newUserUC(t)

	_, err := uc.Create(dto.UserRequest{Username: "  ", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(dto.UserRequest{Username: "otro", Password: "x", Role: "superadmin"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(dto.UserRequest{Username: "Admin", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrDuplicate, "username repetido sin distinguir mayúsculas")
}

// Un update con password vacío conserva la credencial actual.
func TestUserUpdate_PasswordVacioConserva(t *testing.T) {
	uc, store := newUserUC(t)

	_, err := uc.Update(2, dto.UserRequest{Name: "María Renombrada", Role: entity.RoleAdmin})
	require.NoError(t, err)

	repo := storage.NewUserRepository(store)
	u, err := repo.Authenticate("editor", "editor123")
	require.NoError(t, err)
	require.NotNil(t, u, "sigue autenticando con el password original")
	assert.Equal(t, "María Renombrada", u.Name)
	assert.Equal(t, entity.RoleAdmin, u.Role)
}

// El borrado desactiva la cuenta: desaparece de la autenticación pero sigue
// visible en el listado administrativo.
func TestUserDelete_Desactiva(t *testing.T) {
	uc, store := newUserUC(t)

	require.NoError(t, uc.Delete(3))

	repo := storage.NewUserRepository(store)
	u, err := repo.Authenticate("consulta", "consulta123")
	require.NoError(t, err)
	assert.Nil(t, u, "una cuenta desactivada no autentica")

	list, err := uc.List()
	require.NoError(t, err)
	assert.Len(t, list, 3)

	assert.ErrorIs(t, uc.Delete(99), domain.ErrNotFound)
}
