package usecase

import (
	"strings"

	"github.com/jhoicas/inventario-lite/internal/application/dto"
	"github.com/jhoicas/inventario-lite/internal/domain"
	"github.com/jhoicas/inventario-lite/internal/domain/entity"
	"github.com/jhoicas/inventario-lite/internal/domain/repository"
	"github.com/jhoicas/inventario-lite/internal/infrastructure/cache"
	"github.com/jhoicas/inventario-lite/pkg/logger"
	"github.com/jhoicas/inventario-lite/pkg/normalize"
)

// ProductUseCase orquesta el catálogo de productos: CRUD, búsqueda con
// filtros y alertas de stock bajo. Las lecturas frecuentes se memoizan; toda
// escritura invalida los listados afectados.
type ProductUseCase struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
	activities repository.ActivityRepository
	cache      *cache.Cache
	log        *logger.Logger
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(
	products repository.ProductRepository,
	categories repository.CategoryRepository,
	activities repository.ActivityRepository,
	c *cache.Cache,
	log *logger.Logger,
) *ProductUseCase {
	return &ProductUseCase{
		products:   products,
		categories: categories,
		activities: activities,
		cache:      c,
		log:        log,
	}
}

// List devuelve el catálogo completo enriquecido con su categoría.
func (uc *ProductUseCase) List() ([]dto.ProductDetail, error) {
	return cache.Read(uc.cache, cache.Key("products", nil), uc.loadDetails)
}

// Search filtra el catálogo por texto (ignorando tildes y mayúsculas sobre
// nombre, código, descripción y proveedor) y por categoría.
func (uc *ProductUseCase) Search(filter dto.ProductFilter) ([]dto.ProductDetail, error) {
	return cache.Read(uc.cache, cache.Key("products", filter), func() ([]dto.ProductDetail, error) {
		all, err := uc.loadDetails()
		if err != nil {
			return nil, err
		}
		out := make([]dto.ProductDetail, 0, len(all))
		for _, p := range all {
			if filter.CategoryID > 0 && p.CategoryID != filter.CategoryID {
				continue
			}
			if filter.LowStock && !p.LowStock {
				continue
			}
			if q := strings.TrimSpace(filter.Query); q != "" && !matchesProduct(&p, q) {
				continue
			}
			out = append(out, p)
		}
		return out, nil
	})
}

// LowStockAlerts devuelve los productos en o por debajo de su umbral mínimo.
func (uc *ProductUseCase) LowStockAlerts() ([]dto.ProductDetail, error) {
	return cache.Read(uc.cache, cache.Key("lowStock", nil), func() ([]dto.ProductDetail, error) {
		all, err := uc.loadDetails()
		if err != nil {
			return nil, err
		}
		out := make([]dto.ProductDetail, 0)
		for _, p := range all {
			if p.LowStock {
				out = append(out, p)
			}
		}
		return out, nil
	})
}

// GetByID devuelve el producto enriquecido, o ErrNotFound.
func (uc *ProductUseCase) GetByID(id int64) (*dto.ProductDetail, error) {
	p, err := uc.products.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	d := uc.enrich(*p, nil)
	return &d, nil
}

// Create valida y da de alta un producto con su stock inicial.
func (uc *ProductUseCase) Create(req dto.ProductRequest, actorName string) (*entity.Product, error) {
	if err := validateProductRequest(req); err != nil {
		return nil, err
	}
	p := &entity.Product{
		Name:        strings.TrimSpace(req.Name),
		Code:        strings.TrimSpace(req.Code),
		Description: strings.TrimSpace(req.Description),
		Supplier:    strings.TrimSpace(req.Supplier),
		CategoryID:  req.CategoryID,
		Quantity:    req.Quantity,
		MinStock:    req.MinStock,
		Price:       req.Price,
		Status:      entity.ProductStatusActive,
	}
	if err := uc.products.Create(p); err != nil {
		return nil, err
	}
	uc.cache.Invalidate("products", "lowStock", "dashboardStats")
	uc.recordActivity("creó producto", p.Name, actorName)
	uc.log.Info().Int64("productId", p.ID).Str("name", p.Name).Msg("producto creado")
	return p, nil
}

// Update edita los datos del producto. La cantidad persistida no se toca
// desde aquí: solo la mueve el motor de movimientos.
func (uc *ProductUseCase) Update(id int64, req dto.ProductRequest, actorName string) (*entity.Product, error) {
	if err := validateProductRequest(req); err != nil {
		return nil, err
	}
	existing, err := uc.products.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}
	existing.Name = strings.TrimSpace(req.Name)
	existing.Code = strings.TrimSpace(req.Code)
	existing.Description = strings.TrimSpace(req.Description)
	existing.Supplier = strings.TrimSpace(req.Supplier)
	existing.CategoryID = req.CategoryID
	existing.MinStock = req.MinStock
	existing.Price = req.Price

	if err := uc.products.Update(existing); err != nil {
		return nil, err
	}
	uc.cache.Invalidate("products", "lowStock", "dashboardStats")
	uc.recordActivity("actualizó producto", existing.Name, actorName)
	return existing, nil
}

// Delete elimina el producto de forma definitiva (hard delete). Los
// movimientos históricos que lo referencian permanecen.
func (uc *ProductUseCase) Delete(id int64, actorName string) error {
	p, err := uc.products.GetByID(id)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrNotFound
	}
	if err := uc.products.Delete(id); err != nil {
		return err
	}
	uc.cache.Invalidate("products", "lowStock", "dashboardStats", "movements")
	uc.recordActivity("eliminó producto", p.Name, actorName)
	uc.log.Info().Int64("productId", id).Msg("producto eliminado")
	return nil
}

func (uc *ProductUseCase) loadDetails() ([]dto.ProductDetail, error) {
	products, err := uc.products.GetAll()
	if err != nil {
		return nil, err
	}
	categories, err := uc.categories.GetAll()
	if err != nil {
		return nil, err
	}
	byID := make(map[int64]*entity.Category, len(categories))
	for i := range categories {
		byID[categories[i].ID] = &categories[i]
	}
	out := make([]dto.ProductDetail, 0, len(products))
	for _, p := range products {
		out = append(out, uc.enrich(p, byID))
	}
	return out, nil
}

func (uc *ProductUseCase) enrich(p entity.Product, categories map[int64]*entity.Category) dto.ProductDetail {
	d := dto.ProductDetail{Product: p, LowStock: p.LowStock(), CategoryName: "sin categoría"}
	if categories == nil {
		if c, err := uc.categories.GetByID(p.CategoryID); err == nil && c != nil {
			d.CategoryName = c.Name
			d.CategoryColor = c.Color
		}
		return d
	}
	if c, ok := categories[p.CategoryID]; ok {
		d.CategoryName = c.Name
		d.CategoryColor = c.Color
	}
	return d
}

func (uc *ProductUseCase) recordActivity(action, item, actorName string) {
	if actorName == "" {
		actorName = "sistema"
	}
	err := uc.activities.Record(&entity.Activity{Action: action, Item: item, User: actorName})
	if err != nil {
		uc.log.Warn().Err(err).Msg("no se pudo registrar la actividad")
	}
}

func matchesProduct(p *dto.ProductDetail, query string) bool {
	return normalize.Contains(p.Name, query) ||
		normalize.Contains(p.Code, query) ||
		normalize.Contains(p.Description, query) ||
		normalize.Contains(p.Supplier, query)
}

func validateProductRequest(req dto.ProductRequest) error {
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Code) == "" {
		return domain.ErrInvalidInput
	}
	if req.Quantity < 0 || req.MinStock < 0 {
		return domain.ErrInvalidInput
	}
	if req.Price.IsNegative() {
		return domain.ErrInvalidInput
	}
	return nil
}
