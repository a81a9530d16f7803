package analytics

import (
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-lite/internal/infrastructure/cache"
	"github.com/jhoicas/inventario-lite/internal/infrastructure/storage"
)

func newDashboardUC(t *testing.T, now time.Time) *DashboardUseCase {
	t.Helper()
	store, err := storage.Open(storage.Options{
		Fs:   afero.NewMemMapFs(),
		Path: "data/test.json",
	})
	require.NoError(t, err)
	uc := NewDashboardUseCase(
		storage.NewProductRepository(store),
		storage.NewCategoryRepository(store),
		storage.NewMovementRepository(store),
		storage.NewActivityRepository(store),
		cache.New(time.Minute, 100),
	)
	uc.now = func() time.Time { return now }
	return uc
}

// Métricas calculadas sobre el seed:
//   - 4 productos; valor = Σ precio × cantidad
//   - 1 producto en stock bajo (resma: 8 ≤ 15)
//   - 3 categorías activas
func TestDashboardStats_SobreElSeed(t *testing.T) {
	// "Hoy" lejos de los movimientos del seed: ninguno cuenta como reciente.
	uc := newDashboardUC(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))

	stats, err := uc.Stats()
	require.NoError(t, err)

	assert.Equal(t, 4, stats.TotalProducts)
	assert.Equal(t, "40528000", stats.TotalValue.String())
	assert.Equal(t, 1, stats.LowStockItems)
	assert.Equal(t, 3, stats.ActiveCategories)
	assert.Equal(t, 0, stats.RecentMovements)
}

// Los movimientos dentro de la ventana de 7 días cuentan como recientes.
func TestDashboardStats_MovimientosRecientes(t *testing.T) {
	// "Hoy" justo después del último movimiento del seed (13/01/2025).
	uc := newDashboardUC(t, time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC))

	stats, err := uc.Stats()
	require.NoError(t, err)
	assert.Equal(t, 2, stats.RecentMovements, "ambos movimientos del seed caen en la ventana")
}
