// Package analytics calcula las métricas agregadas del panel principal.
package analytics

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-lite/internal/application/dto"
	"github.com/jhoicas/inventario-lite/internal/domain/entity"
	"github.com/jhoicas/inventario-lite/internal/domain/repository"
	"github.com/jhoicas/inventario-lite/internal/infrastructure/cache"
)

// recentWindow ventana de "movimientos recientes" del panel.
const recentWindow = 7 * 24 * time.Hour

// DashboardUseCase agrega las métricas del panel a partir de las tablas
// base. El resultado se memoiza; cualquier escritura lo invalida.
type DashboardUseCase struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
	movements  repository.MovementRepository
	activities repository.ActivityRepository
	cache      *cache.Cache
	now        func() time.Time
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	products repository.ProductRepository,
	categories repository.CategoryRepository,
	movements repository.MovementRepository,
	activities repository.ActivityRepository,
	c *cache.Cache,
) *DashboardUseCase {
	return &DashboardUseCase{
		products:   products,
		categories: categories,
		movements:  movements,
		activities: activities,
		cache:      c,
		now:        time.Now,
	}
}

// Stats calcula las métricas del panel: total de productos, valor del
// inventario (Σ precio × cantidad), productos en stock bajo, categorías
// activas y movimientos de los últimos 7 días.
func (uc *DashboardUseCase) Stats() (*dto.DashboardStats, error) {
	return cache.Read(uc.cache, cache.Key("dashboardStats", nil), func() (*dto.DashboardStats, error) {
		products, err := uc.products.GetAll()
		if err != nil {
			return nil, err
		}
		categories, err := uc.categories.GetAll()
		if err != nil {
			return nil, err
		}
		movements, err := uc.movements.GetAll()
		if err != nil {
			return nil, err
		}

		stats := &dto.DashboardStats{
			TotalProducts: len(products),
			TotalValue:    decimal.Zero,
		}
		for _, p := range products {
			stats.TotalValue = stats.TotalValue.Add(p.Price.Mul(decimal.NewFromInt(int64(p.Quantity))))
			if p.LowStock() {
				stats.LowStockItems++
			}
		}
		for _, c := range categories {
			if c.IsActive {
				stats.ActiveCategories++
			}
		}
		cutoff := uc.now().Add(-recentWindow)
		for _, m := range movements {
			if m.CreatedAt.After(cutoff) {
				stats.RecentMovements++
			}
		}
		return stats, nil
	})
}

// RecentActivity devuelve el registro de actividad del panel, más reciente
// primero.
func (uc *DashboardUseCase) RecentActivity() ([]entity.Activity, error) {
	return uc.activities.Recent()
}
