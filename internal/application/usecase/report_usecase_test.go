package usecase

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-lite/internal/application/dto"
	"github.com/jhoicas/inventario-lite/internal/application/inventory"
	"github.com/jhoicas/inventario-lite/internal/domain"
	"github.com/jhoicas/inventario-lite/internal/domain/entity"
	"github.com/jhoicas/inventario-lite/internal/infrastructure/cache"
	"github.com/jhoicas/inventario-lite/internal/infrastructure/storage"
	"github.com/jhoicas/inventario-lite/pkg/logger"
)

func newReportUC(t *testing.T) (*ReportUseCase, *inventory.Engine) {
	t.Helper()
	store, err := storage.Open(storage.Options{
		Fs:   afero.NewMemMapFs(),
		Path: "data/test.json",
	})
	require.NoError(t, err)

	c := cache.New(time.Minute, 100)
	log := logger.Nop()
	engine := inventory.NewEngine(store, c, log, false)
	productUC := NewProductUseCase(
		storage.NewProductRepository(store),
		storage.NewCategoryRepository(store),
		storage.NewActivityRepository(store),
		c, log,
	)
	return NewReportUseCase(storage.NewReportRepository(store), productUC, engine, log), engine
}

// El snapshot guarda el estado al momento de la generación; movimientos
// posteriores no lo alteran.
func TestReportGenerate_SnapshotInmutable(t *testing.T) {
	uc, engine := newReportUC(t)

	r, err := uc.Generate(dto.ReportRequest{Name: "Inventario enero", Type: entity.ReportInventory}, 1)
	require.NoError(t, err)
	assert.Equal(t, "completed", r.Status)
	assert.Equal(t, int64(1), r.UserID)

	var snapshot []dto.ProductDetail
	require.NoError(t, json.Unmarshal(r.Data, &snapshot))
	require.Len(t, snapshot, 4)
	laptopAntes := snapshot[0].Quantity

	// Mover stock después de generar.
	_, err = engine.RegisterMovement(inventory.RegisterInput{
		ProductID: 1, Type: entity.MovementSalida, Quantity: 3, Reason: "entrega", UserID: 1,
	})
	require.NoError(t, err)

	stored, err := uc.GetByID(r.ID)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(stored.Data, &snapshot))
	assert.Equal(t, laptopAntes, snapshot[0].Quantity, "el snapshot no cambia con el inventario")
}

func TestReportGenerate_LowStock(t *testing.T) {
	uc, _ := newReportUC(t)

	r, err := uc.Generate(dto.ReportRequest{Type: entity.ReportLowStock}, 1)
	require.NoError(t, err)
	assert.NotEmpty(t, r.Name, "sin nombre explícito se genera uno")

	var snapshot []dto.ProductDetail
	require.NoError(t, json.Unmarshal(r.Data, &snapshot))
	require.Len(t, snapshot, 1)
	assert.Equal(t, "Resma papel carta 75g", snapshot[0].Name)
}

func TestReportGenerate_TipoInvalido(t *testing.T) {
	uc, _ := newReportUC(t)
	_, err := uc.Generate(dto.ReportRequest{Type: "ventas"}, 1)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// El listado devuelve los reportes más recientes primero y Delete los
// elimina de forma definitiva.
func TestReportListYDelete(t *testing.T) {
	uc, _ := newReportUC(t)

	a, err := uc.Generate(dto.ReportRequest{Type: entity.ReportInventory}, 1)
	require.NoError(t, err)
	b, err := uc.Generate(dto.ReportRequest{Type: entity.ReportMovements}, 1)
	require.NoError(t, err)

	list, err := uc.List()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, b.ID, list[0].ID, "más reciente primero")

	require.NoError(t, uc.Delete(a.ID))
	_, err = uc.GetByID(a.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
