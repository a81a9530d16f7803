package storage

import (
	"github.com/jhoicas/inventario-lite/internal/domain"
	"github.com/jhoicas/inventario-lite/internal/domain/entity"
	"github.com/jhoicas/inventario-lite/internal/domain/repository"
)

// categoryRepository implementa repository.CategoryRepository sobre el store.
type categoryRepository struct {
	store *Store
}

// NewCategoryRepository crea una instancia de CategoryRepository.
func NewCategoryRepository(store *Store) repository.CategoryRepository {
	return &categoryRepository{store: store}
}

func categoryID(c *entity.Category) int64 { return c.ID }

func (r *categoryRepository) GetAll() ([]entity.Category, error) {
	var out []entity.Category
	err := r.store.View(func(doc *Document) error {
		out = append([]entity.Category{}, doc.Categories...)
		return nil
	})
	return out, err
}

func (r *categoryRepository) GetByID(id int64) (*entity.Category, error) {
	var out *entity.Category
	err := r.store.View(func(doc *Document) error {
		if i := indexOf(doc.Categories, id, categoryID); i >= 0 {
			c := doc.Categories[i]
			out = &c
		}
		return nil
	})
	return out, err
}

func (r *categoryRepository) Create(c *entity.Category) error {
	return r.store.Mutate(func(doc *Document) error {
		c.ID = nextID(doc.Categories, categoryID)
		now := r.store.now().UTC()
		c.CreatedAt = now
		c.UpdatedAt = now
		c.IsActive = true
		if c.Color == "" {
			c.Color = entity.DefaultCategoryColor
		}
		doc.Categories = append(doc.Categories, *c)
		return nil
	})
}

func (r *categoryRepository) Update(c *entity.Category) error {
	return r.store.Mutate(func(doc *Document) error {
		i := indexOf(doc.Categories, c.ID, categoryID)
		if i < 0 {
			return domain.ErrNotFound
		}
		c.CreatedAt = doc.Categories[i].CreatedAt
		c.UpdatedAt = r.store.now().UTC()
		doc.Categories[i] = *c
		return nil
	})
}

func (r *categoryRepository) Delete(id int64) error {
	return r.store.Mutate(func(doc *Document) error {
		i := indexOf(doc.Categories, id, categoryID)
		if i < 0 {
			return domain.ErrNotFound
		}
		// Soft delete: la categoría deja de listarse pero los productos que
		// la referencian conservan su categoryId.
		if policyFor(tableCategories) == DeleteSoft {
			doc.Categories[i].IsActive = false
			doc.Categories[i].UpdatedAt = r.store.now().UTC()
			return nil
		}
		doc.Categories = append(doc.Categories[:i], doc.Categories[i+1:]...)
		return nil
	})
}
