package usecase

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-lite/internal/application/dto"
	"github.com/jhoicas/inventario-lite/internal/domain"
	"github.com/jhoicas/inventario-lite/internal/infrastructure/cache"
	"github.com/jhoicas/inventario-lite/internal/infrastructure/storage"
	"github.com/jhoicas/inventario-lite/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func newProductUC(t *testing.T) (*ProductUseCase, *storage.Store) {
	t.Helper()
	store, err := storage.Open(storage.Options{
		Fs:   afero.NewMemMapFs(),
		Path: "data/test.json",
	})
	require.NoError(t, err)
	uc := NewProductUseCase(
		storage.NewProductRepository(store),
		storage.NewCategoryRepository(store),
		storage.NewActivityRepository(store),
		cache.New(time.Minute, 100),
		logger.Nop(),
	)
	return uc, store
}

// ──────────────────────────────────────────────────────────────────────────────
// Listado y búsqueda
// ──────────────────────────────────────────────────────────────────────────────

// El listado resuelve la categoría de cada producto a partir del seed.
func TestProductList_ResuelveCategoria(t *testing.T) {
	uc, _ := newProductUC(t)

	products, err := uc.List()
	require.NoError(t, err)
	require.Len(t, products, 4)
	assert.Equal(t, "Tecnología", products[0].CategoryName)
	assert.Equal(t, "#3B82F6", products[0].CategoryColor)
}

// La búsqueda ignora tildes y mayúsculas: "papeleria" encuentra "Papelería".
func TestProductSearch_IgnoraTildes(t *testing.T) {
	uc, _ := newProductUC(t)

	out, err := uc.Search(dto.ProductFilter{Query: "portatil"})
	require.NoError(t, err)
	require.Len(t, out, 1, `"portatil" debe encontrar "Portátil" en la descripción`)
	assert.Equal(t, "Laptop HP Pavilion 15", out[0].Name)

	out, err = uc.Search(dto.ProductFilter{Query: "LOGITECH"})
	require.NoError(t, err)
	require.Len(t, out, 1)
}

// Filtro combinado: texto + categoría.
func TestProductSearch_FiltroPorCategoria(t *testing.T) {
	uc, _ := newProductUC(t)

	out, err := uc.Search(dto.ProductFilter{CategoryID: 1})
	require.NoError(t, err)
	assert.Len(t, out, 2, "la categoría Tecnología tiene 2 productos en el seed")

	out, err = uc.Search(dto.ProductFilter{Query: "mouse", CategoryID: 2})
	require.NoError(t, err)
	assert.Empty(t, out, "mouse no pertenece a Papelería")
}

// Solo la resma (8 ≤ 15) está en stock bajo en el seed.
func TestProductLowStockAlerts(t *testing.T) {
	uc, _ := newProductUC(t)

	out, err := uc.LowStockAlerts()
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Resma papel carta 75g", out[0].Name)
	assert.True(t, out[0].LowStock)
}

// ──────────────────────────────────────────────────────────────────────────────
// Escrituras
// ──────────────────────────────────────────────────────────────────────────────

// Un alta invalida el listado memoizado y aparece de inmediato.
func TestProductCreate_InvalidaListado(t *testing.T) {
	uc, _ := newProductUC(t)

	antes, err := uc.List()
	require.NoError(t, err)
	require.Len(t, antes, 4)

	p, err := uc.Create(dto.ProductRequest{
		Name:     "Teclado mecánico",
		Code:     "TEC-003",
		Quantity: 10,
		MinStock: 2,
		Price:    decimal.NewFromInt(250000),
	}, "admin")
	require.NoError(t, err)
	assert.Equal(t, int64(5), p.ID, "id = máximo existente + 1")

	despues, err := uc.List()
	require.NoError(t, err)
	assert.Len(t, despues, 5)
}

// Update no toca la cantidad: esa solo la mueve el motor de movimientos.
func TestProductUpdate_NoTocaCantidad(t *testing.T) {
	uc, store := newProductUC(t)

	_, err := uc.Update(1, dto.ProductRequest{
		Name:     "Laptop HP Pavilion 15 (2025)",
		Code:     "TEC-001",
		Quantity: 999, // se ignora
		MinStock: 3,
		Price:    decimal.NewFromInt(2900000),
	}, "admin")
	require.NoError(t, err)

	p, err := storage.NewProductRepository(store).GetByID(1)
	require.NoError(t, err)
	assert.Equal(t, 12, p.Quantity, "la cantidad del seed no debe cambiar por un update")
	assert.Equal(t, "Laptop HP Pavilion 15 (2025)", p.Name)
}

func TestProductCreate_Validaciones(t *testing.T) {
	uc, _ := newProductUC(t)

	_, err := uc.Create(dto.ProductRequest{Code: "X-1"}, "admin")
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "name requerido")

	_, err = uc.Create(dto.ProductRequest{Name: "x", Code: "X-1", Quantity: -1}, "admin")
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad negativa")

	_, err = uc.Create(dto.ProductRequest{Name: "x", Code: "X-1", Price: decimal.NewFromInt(-5)}, "admin")
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "precio negativo")
}

func TestProductDelete_YGetByID(t *testing.T) {
	uc, _ := newProductUC(t)

	require.NoError(t, uc.Delete(2, "admin"))

	_, err := uc.GetByID(2)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = uc.Delete(2, "admin")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
