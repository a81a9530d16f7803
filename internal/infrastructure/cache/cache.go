// Package cache implementa la memoización de lecturas frecuentes (listados,
// estadísticas del panel) con TTL. La invalidación es deliberadamente gruesa:
// cualquier escritura limpia las operaciones afectadas completas en lugar de
// intentar actualizaciones parciales.
package cache

import (
	"encoding/json"
	"time"

	"github.com/karlseguin/ccache/v3"
)

// DefaultTTL vigencia de una entrada si no se configura otra.
const DefaultTTL = 5 * time.Minute

// Cache memoiza resultados de operaciones de lectura bajo claves derivadas
// del nombre de la operación y sus parámetros.
type Cache struct {
	lru *ccache.Cache[any]
	ttl time.Duration
}

// New crea un cache con el TTL y tamaño máximo indicados (valores ≤0 usan
// los defaults).
func New(ttl time.Duration, maxSize int64) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if maxSize <= 0 {
		maxSize = 1000
	}
	return &Cache{
		lru: ccache.New(ccache.Configure[any]().MaxSize(maxSize)),
		ttl: ttl,
	}
}

// Key deriva la clave de una operación y sus parámetros. Parámetros iguales
// producen la misma clave; sin parámetros la clave es solo la operación.
func Key(op string, params any) string {
	if params == nil {
		return op
	}
	data, err := json.Marshal(params)
	if err != nil {
		return op
	}
	return op + "_" + string(data)
}

// Get devuelve el valor cacheado y true si existe y sigue vigente. Una
// entrada vencida se elimina al ser consultada.
func (c *Cache) Get(key string) (any, bool) {
	item := c.lru.Get(key)
	if item == nil {
		return nil, false
	}
	if item.Expired() {
		c.lru.Delete(key)
		return nil, false
	}
	return item.Value(), true
}

// Set guarda un valor bajo la clave con el TTL configurado.
func (c *Cache) Set(key string, value any) {
	c.lru.Set(key, value, c.ttl)
}

// Invalidate elimina las entradas de las operaciones indicadas (todas sus
// variantes de parámetros). Sin argumentos limpia el cache completo.
func (c *Cache) Invalidate(ops ...string) {
	if len(ops) == 0 {
		c.lru.Clear()
		return
	}
	for _, op := range ops {
		c.lru.DeletePrefix(op)
	}
}

// Read memoiza load bajo key: devuelve el valor cacheado si está vigente y
// si no ejecuta load y guarda el resultado. Un load fallido no se cachea.
func Read[T any](c *Cache, key string, load func() (T, error)) (T, error) {
	if v, ok := c.Get(key); ok {
		if typed, ok := v.(T); ok {
			return typed, nil
		}
	}
	v, err := load()
	if err != nil {
		var zero T
		return zero, err
	}
	c.Set(key, v)
	return v, nil
}
