package usecase

import (
	"strings"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-lite/internal/application/dto"
	"github.com/jhoicas/inventario-lite/internal/domain"
	"github.com/jhoicas/inventario-lite/internal/domain/entity"
	"github.com/jhoicas/inventario-lite/internal/infrastructure/cache"
	"github.com/jhoicas/inventario-lite/internal/infrastructure/storage"
	"github.com/jhoicas/inventario-lite/pkg/logger"
)

func newCategoryUC(t *testing.T) *CategoryUseCase {
	t.Helper()
	store, err := storage.Open(storage.Options{
		Fs:   afero.NewMemMapFs(),
		Path: "data/test.json",
	})
	require.NoError(t, err)
	return NewCategoryUseCase(
		storage.NewCategoryRepository(store),
		storage.NewActivityRepository(store),
		cache.New(time.Minute, 100),
		logger.Nop(),
	)
}

// Sin color explícito se asigna el color por defecto.
func TestCategoryCreate_ColorPorDefecto(t *testing.T) {
	uc := newCategoryUC(t)

	c, err := uc.Create(dto.CategoryRequest{Name: "Limpieza"}, "admin")
	require.NoError(t, err)
	assert.Equal(t, entity.DefaultCategoryColor, c.Color)
	assert.True(t, c.IsActive)

	c2, err := uc.Create(dto.CategoryRequest{Name: "Cafetería", Color: "#EF4444"}, "admin")
	require.NoError(t, err)
	assert.Equal(t, "#EF4444", c2.Color)
}

// El borrado es lógico: la categoría sale del listado pero GetByID la sigue
// encontrando (desactivada).
func TestCategoryDelete_SaleDelListado(t *testing.T) {
	uc := newCategoryUC(t)

	antes, err := uc.List()
	require.NoError(t, err)
	require.Len(t, antes, 3)

	require.NoError(t, uc.Delete(2, "admin"))

	despues, err := uc.List()
	require.NoError(t, err)
	assert.Len(t, despues, 2)

	c, err := uc.GetByID(2)
	require.NoError(t, err)
	assert.False(t, c.IsActive)
}

func TestCategoryCreate_Validaciones(t *testing.T) {
	uc := newCategoryUC(t)

	_, err := uc.Create(dto.CategoryRequest{Name: "   "}, "admin")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(dto.CategoryRequest{
		Name:        "Larga",
		Description: strings.Repeat("x", 201),
	}, "admin")
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "descripción hasta 200 caracteres")
}
