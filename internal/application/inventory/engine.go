// Package inventory contiene el motor de movimientos: la única pieza
// autorizada a modificar Product.Quantity. Cada movimiento y su ajuste de
// producto se escriben en la misma transacción del store; nunca puede quedar
// uno sin el otro.
package inventory

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/inventario-lite/internal/domain"
	"github.com/jhoicas/inventario-lite/internal/domain/entity"
	"github.com/jhoicas/inventario-lite/internal/infrastructure/cache"
	"github.com/jhoicas/inventario-lite/internal/infrastructure/storage"
	"github.com/jhoicas/inventario-lite/pkg/logger"
)

// Operaciones de lectura cuyo cache invalida cada escritura del motor.
var invalidatedOps = []string{"products", "movements", "lowStock", "dashboardStats"}

// Engine registra y revierte movimientos de inventario. Depende del store
// concreto (no de los puertos de lectura) porque necesita su frontera
// transaccional.
type Engine struct {
	store       *storage.Store
	cache       *cache.Cache
	log         *logger.Logger
	strictStock bool
	now         func() time.Time
}

// NewEngine crea el motor. Con strictStock activo una salida mayor al stock
// disponible se rechaza; desactivado, la cantidad se fija en 0.
func NewEngine(store *storage.Store, c *cache.Cache, log *logger.Logger, strictStock bool) *Engine {
	return &Engine{
		store:       store,
		cache:       c,
		log:         log,
		strictStock: strictStock,
		now:         time.Now,
	}
}

// RegisterInput datos de un movimiento nuevo.
type RegisterInput struct {
	ProductID int64
	Type      string // entrada | salida
	Quantity  int
	Reason    string
	Notes     string
	UserID    int64
}

// MovementDetail es un movimiento enriquecido con los nombres de producto y
// usuario para los listados.
type MovementDetail struct {
	entity.Movement
	ProductName string `json:"productName"`
	ProductCode string `json:"productCode,omitempty"`
	UserName    string `json:"userName"`
}

func (e *Engine) validate(in RegisterInput) error {
	if in.ProductID <= 0 {
		return domain.ErrInvalidInput
	}
	if !entity.ValidMovementType(in.Type) {
		return domain.ErrInvalidInput
	}
	if in.Quantity <= 0 {
		return domain.ErrInvalidInput
	}
	if strings.TrimSpace(in.Reason) == "" {
		return domain.ErrInvalidInput
	}
	return nil
}

// RegisterMovement valida el movimiento y lo aplica: alta del movimiento y
// ajuste de la cantidad del producto en una sola escritura. Si el producto ya
// no existe, el movimiento queda registrado igualmente (auditoría) sin ajuste.
func (e *Engine) RegisterMovement(in RegisterInput) (*entity.Movement, error) {
	if err := e.validate(in); err != nil {
		return nil, err
	}
	if in.UserID <= 0 {
		in.UserID = entity.FallbackUserID
	}

	now := e.now().UTC()
	mov := entity.Movement{
		ProductID:     in.ProductID,
		Type:          in.Type,
		Quantity:      in.Quantity,
		Reason:        strings.TrimSpace(in.Reason),
		Notes:         strings.TrimSpace(in.Notes),
		UserID:        in.UserID,
		TransactionID: uuid.NewString(),
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	err := e.store.Mutate(func(doc *storage.Document) error {
		if i := indexProduct(doc, in.ProductID); i >= 0 {
			p := &doc.Products[i]
			next := p.Quantity + mov.Delta()
			if next < 0 {
				if e.strictStock {
					return domain.ErrInsufficientStock
				}
				next = 0
			}
			p.Quantity = next
			p.UpdatedAt = now
			e.recordActivity(doc, now, activityAction(in.Type), p.Name, in.UserID)
		} else {
			e.recordActivity(doc, now, activityAction(in.Type), "producto eliminado", in.UserID)
		}
		mov.ID = nextMovementID(doc)
		doc.Movements = append(doc.Movements, mov)
		return nil
	})
	if err != nil {
		if domain.IsStorageError(err) {
			// El cambio quedó en memoria; invalidar el cache igualmente.
			e.cache.Invalidate(invalidatedOps...)
		}
		return nil, err
	}

	e.cache.Invalidate(invalidatedOps...)
	e.log.Info().
		Int64("movementId", mov.ID).
		Int64("productId", mov.ProductID).
		Str("type", mov.Type).
		Int("quantity", mov.Quantity).
		Str("transactionId", mov.TransactionID).
		Msg("movimiento registrado")
	return &mov, nil
}

// DeleteMovement elimina un movimiento y revierte su efecto sobre el
// producto (una entrada borrada resta, una salida borrada suma). La reversa
// también se fija en 0 como piso.
func (e *Engine) DeleteMovement(id int64) error {
	err := e.store.Mutate(func(doc *storage.Document) error {
		mi := -1
		for i := range doc.Movements {
			if doc.Movements[i].ID == id {
				mi = i
				break
			}
		}
		if mi < 0 {
			return domain.ErrNotFound
		}
		mov := doc.Movements[mi]

		if pi := indexProduct(doc, mov.ProductID); pi >= 0 {
			p := &doc.Products[pi]
			next := p.Quantity - mov.Delta()
			if next < 0 {
				next = 0
			}
			p.Quantity = next
			p.UpdatedAt = e.now().UTC()
		}
		doc.Movements = append(doc.Movements[:mi], doc.Movements[mi+1:]...)
		return nil
	})
	if err != nil {
		return err
	}

	e.cache.Invalidate(invalidatedOps...)
	e.log.Info().Int64("movementId", id).Msg("movimiento eliminado y revertido")
	return nil
}

// ListWithDetails devuelve los movimientos más recientes primero, con nombre
// de producto y usuario resueltos. El resultado se memoiza.
func (e *Engine) ListWithDetails() ([]MovementDetail, error) {
	return cache.Read(e.cache, cache.Key("movements", nil), func() ([]MovementDetail, error) {
		var out []MovementDetail
		err := e.store.View(func(doc *storage.Document) error {
			products := make(map[int64]*entity.Product, len(doc.Products))
			for i := range doc.Products {
				products[doc.Products[i].ID] = &doc.Products[i]
			}
			users := make(map[int64]string, len(doc.Users))
			for i := range doc.Users {
				users[doc.Users[i].ID] = doc.Users[i].Name
			}

			out = make([]MovementDetail, 0, len(doc.Movements))
			for _, m := range doc.Movements {
				d := MovementDetail{Movement: m}
				if p, ok := products[m.ProductID]; ok {
					d.ProductName = p.Name
					d.ProductCode = p.Code
				} else {
					d.ProductName = "producto eliminado"
				}
				if name, ok := users[m.UserID]; ok {
					d.UserName = name
				} else {
					d.UserName = "usuario desconocido"
				}
				out = append(out, d)
			}
			// Más recientes primero.
			for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
				out[i], out[j] = out[j], out[i]
			}
			return nil
		})
		return out, err
	})
}

func indexProduct(doc *storage.Document, id int64) int {
	for i := range doc.Products {
		if doc.Products[i].ID == id {
			return i
		}
	}
	return -1
}

func nextMovementID(doc *storage.Document) int64 {
	var max int64
	for i := range doc.Movements {
		if doc.Movements[i].ID > max {
			max = doc.Movements[i].ID
		}
	}
	return max + 1
}

func activityAction(movType string) string {
	if movType == entity.MovementSalida {
		return "registró salida"
	}
	return "registró entrada"
}

// recordActivity agrega la actividad dentro de la misma transacción del
// movimiento.
func (e *Engine) recordActivity(doc *storage.Document, now time.Time, action, item string, userID int64) {
	userName := "sistema"
	for i := range doc.Users {
		if doc.Users[i].ID == userID {
			userName = doc.Users[i].Name
			break
		}
	}
	var max int64
	for i := range doc.Activities {
		if doc.Activities[i].ID > max {
			max = doc.Activities[i].ID
		}
	}
	act := entity.Activity{
		ID:        max + 1,
		Action:    action,
		Item:      item,
		User:      userName,
		CreatedAt: now,
		UpdatedAt: now,
	}
	doc.Activities = append([]entity.Activity{act}, doc.Activities...)
	if len(doc.Activities) > entity.MaxActivities {
		doc.Activities = doc.Activities[:entity.MaxActivities]
	}
}
