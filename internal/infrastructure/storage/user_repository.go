package storage

import (
	"strings"

	"github.com/jhoicas/inventario-lite/internal/domain"
	"github.com/jhoicas/inventario-lite/internal/domain/entity"
	"github.com/jhoicas/inventario-lite/internal/domain/repository"
)

// userRepository implementa repository.UserRepository sobre el store.
// Ningún camino de lectura expone el password.
type userRepository struct {
	store *Store
}

// NewUserRepository crea una instancia de UserRepository.
func NewUserRepository(store *Store) repository.UserRepository {
	return &userRepository{store: store}
}

func userID(u *entity.User) int64 { return u.ID }

func (r *userRepository) GetAll() ([]entity.User, error) {
	var out []entity.User
	err := r.store.View(func(doc *Document) error {
		out = make([]entity.User, 0, len(doc.Users))
		for _, u := range doc.Users {
			out = append(out, u.Sanitized())
		}
		return nil
	})
	return out, err
}

func (r *userRepository) GetByID(id int64) (*entity.User, error) {
	var out *entity.User
	err := r.store.View(func(doc *Document) error {
		if i := indexOf(doc.Users, id, userID); i >= 0 {
			u := doc.Users[i].Sanitized()
			out = &u
		}
		return nil
	})
	return out, err
}

func (r *userRepository) Create(u *entity.User) error {
	err := r.store.Mutate(func(doc *Document) error {
		for i := range doc.Users {
			if strings.EqualFold(doc.Users[i].Username, u.Username) {
				return domain.ErrDuplicate
			}
		}
		u.ID = nextID(doc.Users, userID)
		now := r.store.now().UTC()
		u.CreatedAt = now
		u.UpdatedAt = now
		u.IsActive = true
		if u.Role == "" {
			u.Role = entity.RoleViewer
		}
		doc.Users = append(doc.Users, *u)
		return nil
	})
	if err == nil {
		u.Password = ""
	}
	return err
}

func (r *userRepository) Update(u *entity.User) error {
	err := r.store.Mutate(func(doc *Document) error {
		i := indexOf(doc.Users, u.ID, userID)
		if i < 0 {
			return domain.ErrNotFound
		}
		// Un update sin password conserva el existente.
		if u.Password == "" {
			u.Password = doc.Users[i].Password
		}
		u.CreatedAt = doc.Users[i].CreatedAt
		u.UpdatedAt = r.store.now().UTC()
		doc.Users[i] = *u
		return nil
	})
	if err == nil {
		u.Password = ""
	}
	return err
}

func (r *userRepository) Delete(id int64) error {
	return r.store.Mutate(func(doc *Document) error {
		i := indexOf(doc.Users, id, userID)
		if i < 0 {
			return domain.ErrNotFound
		}
		if policyFor(tableUsers) == DeleteSoft {
			doc.Users[i].IsActive = false
			doc.Users[i].UpdatedAt = r.store.now().UTC()
			return nil
		}
		doc.Users = append(doc.Users[:i], doc.Users[i+1:]...)
		return nil
	})
}

func (r *userRepository) Authenticate(identifier, password string) (*entity.User, error) {
	var out *entity.User
	err := r.store.View(func(doc *Document) error {
		for i := range doc.Users {
			u := &doc.Users[i]
			if !u.IsActive {
				continue
			}
			if !strings.EqualFold(u.Username, identifier) && !strings.EqualFold(u.Email, identifier) {
				continue
			}
			if u.Password == password {
				s := u.Sanitized()
				out = &s
			}
			return nil
		}
		return nil
	})
	return out, err
}
