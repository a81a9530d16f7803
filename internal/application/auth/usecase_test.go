package auth

import (
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-lite/internal/application/dto"
	"github.com/jhoicas/inventario-lite/internal/domain"
	"github.com/jhoicas/inventario-lite/internal/infrastructure/storage"
	"github.com/jhoicas/inventario-lite/pkg/jwt"
	"github.com/jhoicas/inventario-lite/pkg/logger"
)

const ucTestSecret = "secret-para-tests"

func newAuthUC(t *testing.T) (*UseCase, *Manager) {
	t.Helper()
	store, err := storage.Open(storage.Options{
		Fs:   afero.NewMemMapFs(),
		Path: "data/test.json",
	})
	require.NoError(t, err)

	sessions := NewManager(ManagerOptions{
		Duration: 5 * time.Minute,
		Warning:  time.Minute,
	})
	t.Cleanup(sessions.Close)

	uc := NewUseCase(storage.NewUserRepository(store), sessions, logger.Nop(), ucTestSecret, "inventario-lite-test", 60)
	return uc, sessions
}

// Login con username o email del seed abre la sesión y emite un JWT con el
// rol del usuario; el password nunca viaja en la respuesta.
func TestLogin_CredencialesDelSeed(t *testing.T) {
	uc, sessions := newAuthUC(t)

	out, err := uc.Login(dto.LoginRequest{Identifier: "admin", Password: "admin123"})
	require.NoError(t, err)

	assert.Equal(t, "admin", out.User.Username)
	assert.Empty(t, out.User.Password)
	assert.Equal(t, int64(300), out.ExpiresIn)
	assert.True(t, sessions.IsAuthenticated(out.User.ID))

	userID, username, role, err := jwt.Parse(ucTestSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, out.User.ID, userID)
	assert.Equal(t, "admin", username)
	assert.Equal(t, "admin", role)
}

func TestLogin_PorEmail(t *testing.T) {
	uc, _ := newAuthUC(t)

	out, err := uc.Login(dto.LoginRequest{Identifier: "maria@inventario.local", Password: "editor123"})
	require.NoError(t, err)
	assert.Equal(t, "editor", out.User.Role)
}

// Password equivocado y cuenta inexistente devuelven el mismo error.
func TestLogin_CredencialesInvalidas(t *testing.T) {
	uc, _ := newAuthUC(t)

	_, err := uc.Login(dto.LoginRequest{Identifier: "admin", Password: "nope"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = uc.Login(dto.LoginRequest{Identifier: "fantasma", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = uc.Login(dto.LoginRequest{Identifier: "", Password: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLogoutYStatus(t *testing.T) {
	uc, _ := newAuthUC(t)

	out, err := uc.Login(dto.LoginRequest{Identifier: "admin", Password: "admin123"})
	require.NoError(t, err)

	status := uc.Status(out.User.ID)
	assert.Equal(t, string(StateAuthenticated), status.State)
	assert.False(t, status.WarningActive)

	uc.Logout(out.User.ID)
	status = uc.Status(out.User.ID)
	assert.Equal(t, string(StateAnonymous), status.State)
	assert.Zero(t, status.RemainingSecs)
}
