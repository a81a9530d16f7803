package storage

import (
	"github.com/jhoicas/inventario-lite/internal/domain"
	"github.com/jhoicas/inventario-lite/internal/domain/entity"
	"github.com/jhoicas/inventario-lite/internal/domain/repository"
)

// productRepository implementa repository.ProductRepository sobre el store.
type productRepository struct {
	store *Store
}

// NewProductRepository crea una instancia de ProductRepository.
func NewProductRepository(store *Store) repository.ProductRepository {
	return &productRepository{store: store}
}

func productID(p *entity.Product) int64 { return p.ID }

func (r *productRepository) GetAll() ([]entity.Product, error) {
	var out []entity.Product
	err := r.store.View(func(doc *Document) error {
		out = append([]entity.Product{}, doc.Products...)
		return nil
	})
	return out, err
}

func (r *productRepository) GetByID(id int64) (*entity.Product, error) {
	var out *entity.Product
	err := r.store.View(func(doc *Document) error {
		if i := indexOf(doc.Products, id, productID); i >= 0 {
			p := doc.Products[i]
			out = &p
		}
		return nil
	})
	return out, err
}

func (r *productRepository) Create(p *entity.Product) error {
	return r.store.Mutate(func(doc *Document) error {
		p.ID = nextID(doc.Products, productID)
		now := r.store.now().UTC()
		p.CreatedAt = now
		p.UpdatedAt = now
		if p.Status == "" {
			p.Status = entity.ProductStatusActive
		}
		doc.Products = append(doc.Products, *p)
		return nil
	})
}

func (r *productRepository) Update(p *entity.Product) error {
	return r.store.Mutate(func(doc *Document) error {
		i := indexOf(doc.Products, p.ID, productID)
		if i < 0 {
			return domain.ErrNotFound
		}
		p.CreatedAt = doc.Products[i].CreatedAt
		p.UpdatedAt = r.store.now().UTC()
		doc.Products[i] = *p
		return nil
	})
}

func (r *productRepository) Delete(id int64) error {
	return r.store.Mutate(func(doc *Document) error {
		i := indexOf(doc.Products, id, productID)
		if i < 0 {
			return domain.ErrNotFound
		}
		// La política de la tabla de productos es hard delete.
		if policyFor(tableProducts) == DeleteHard {
			doc.Products = append(doc.Products[:i], doc.Products[i+1:]...)
			return nil
		}
		doc.Products[i].Status = ""
		doc.Products[i].UpdatedAt = r.store.now().UTC()
		return nil
	})
}
