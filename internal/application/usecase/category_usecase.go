package usecase

import (
	"strings"

	"github.com/jhoicas/inventario-lite/internal/application/dto"
	"github.com/jhoicas/inventario-lite/internal/domain"
	"github.com/jhoicas/inventario-lite/internal/domain/entity"
	"github.com/jhoicas/inventario-lite/internal/domain/repository"
	"github.com/jhoicas/inventario-lite/internal/infrastructure/cache"
	"github.com/jhoicas/inventario-lite/pkg/logger"
)

const maxCategoryDescription = 200

// CategoryUseCase orquesta las categorías. El borrado es lógico: la
// categoría sale de los listados pero los productos conservan su referencia.
type CategoryUseCase struct {
	categories repository.CategoryRepository
	activities repository.ActivityRepository
	cache      *cache.Cache
	log        *logger.Logger
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(
	categories repository.CategoryRepository,
	activities repository.ActivityRepository,
	c *cache.Cache,
	log *logger.Logger,
) *CategoryUseCase {
	return &CategoryUseCase{categories: categories, activities: activities, cache: c, log: log}
}

// List devuelve solo las categorías activas.
func (uc *CategoryUseCase) List() ([]entity.Category, error) {
	return cache.Read(uc.cache, cache.Key("categories", nil), func() ([]entity.Category, error) {
		all, err := uc.categories.GetAll()
		if err != nil {
			return nil, err
		}
		out := make([]entity.Category, 0, len(all))
		for _, c := range all {
			if c.IsActive {
				out = append(out, c)
			}
		}
		return out, nil
	})
}

// GetByID devuelve la categoría (activa o no), o ErrNotFound.
func (uc *CategoryUseCase) GetByID(id int64) (*entity.Category, error) {
	c, err := uc.categories.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return c, nil
}

// Create valida y da de alta una categoría; sin color se asigna el default.
func (uc *CategoryUseCase) Create(req dto.CategoryRequest, actorName string) (*entity.Category, error) {
	if err := validateCategoryRequest(req); err != nil {
		return nil, err
	}
	c := &entity.Category{
		Name:        strings.TrimSpace(req.Name),
		Description: strings.TrimSpace(req.Description),
		Color:       strings.TrimSpace(req.Color),
	}
	if err := uc.categories.Create(c); err != nil {
		return nil, err
	}
	uc.cache.Invalidate("categories", "products", "dashboardStats")
	uc.recordActivity("creó categoría", c.Name, actorName)
	return c, nil
}

// Update edita una categoría existente.
func (uc *CategoryUseCase) Update(id int64, req dto.CategoryRequest, actorName string) (*entity.Category, error) {
	if err := validateCategoryRequest(req); err != nil {
		return nil, err
	}
	existing, err := uc.categories.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}
	existing.Name = strings.TrimSpace(req.Name)
	existing.Description = strings.TrimSpace(req.Description)
	if color := strings.TrimSpace(req.Color); color != "" {
		existing.Color = color
	}
	if err := uc.categories.Update(existing); err != nil {
		return nil, err
	}
	uc.cache.Invalidate("categories", "products", "dashboardStats")
	uc.recordActivity("actualizó categoría", existing.Name, actorName)
	return existing, nil
}

// Delete desactiva la categoría (soft delete).
func (uc *CategoryUseCase) Delete(id int64, actorName string) error {
	c, err := uc.categories.GetByID(id)
	if err != nil {
		return err
	}
	if c == nil {
		return domain.ErrNotFound
	}
	if err := uc.categories.Delete(id); err != nil {
		return err
	}
	uc.cache.Invalidate("categories", "products", "dashboardStats")
	uc.recordActivity("eliminó categoría", c.Name, actorName)
	return nil
}

func (uc *CategoryUseCase) recordActivity(action, item, actorName string) {
	if actorName == "" {
		actorName = "sistema"
	}
	if err := uc.activities.Record(&entity.Activity{Action: action, Item: item, User: actorName}); err != nil {
		uc.log.Warn().Err(err).Msg("no se pudo registrar la actividad")
	}
}

func validateCategoryRequest(req dto.CategoryRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return domain.ErrInvalidInput
	}
	if len(strings.TrimSpace(req.Description)) > maxCategoryDescription {
		return domain.ErrInvalidInput
	}
	return nil
}
