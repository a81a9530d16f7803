package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Claves: misma operación y parámetros → misma clave; parámetros distintos →
// claves distintas.
func TestKey_Determinista(t *testing.T) {
	type filtro struct {
		Q   string `json:"q"`
		Cat int64  `json:"cat"`
	}
	a := Key("products", filtro{Q: "laptop", Cat: 1})
	b := Key("products", filtro{Q: "laptop", Cat: 1})
	c := Key("products", filtro{Q: "mouse", Cat: 1})

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Equal(t, "products", Key("products", nil))
}

// Una entrada vigente se sirve sin recomputar; vencido el TTL la siguiente
// lectura recomputa.
func TestRead_MemoizaYExpira(t *testing.T) {
	c := New(30*time.Millisecond, 100)
	calls := 0
	load := func() ([]string, error) {
		calls++
		return []string{"a", "b"}, nil
	}

	v, err := Read(c, "ops", load)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, v)

	_, err = Read(c, "ops", load)
	require.NoError(t, err)
	assert.Equal(t, 1, calls, "la segunda lectura debe venir del cache")

	time.Sleep(40 * time.Millisecond)

	_, err = Read(c, "ops", load)
	require.NoError(t, err)
	assert.Equal(t, 2, calls, "vencido el TTL se recomputa")
}

// La invalidación por operación elimina todas las variantes de parámetros de
// esa operación y ninguna otra.
func TestInvalidate_PorOperacion(t *testing.T) {
	c := New(time.Minute, 100)
	c.Set(Key("products", map[string]string{"q": "a"}), 1)
	c.Set(Key("products", map[string]string{"q": "b"}), 2)
	c.Set(Key("dashboardStats", nil), 3)

	c.Invalidate("products")

	_, ok := c.Get(Key("products", map[string]string{"q": "a"}))
	assert.False(t, ok)
	_, ok = c.Get(Key("products", map[string]string{"q": "b"}))
	assert.False(t, ok)
	_, ok = c.Get(Key("dashboardStats", nil))
	assert.True(t, ok, "operaciones no invalidadas permanecen")
}

// Sin argumentos, Invalidate limpia todo.
func TestInvalidate_TodoElCache(t *testing.T) {
	c := New(time.Minute, 100)
	c.Set("a", 1)
	c.Set("b", 2)

	c.Invalidate()

	_, ok := c.Get("a")
	assert.False(t, ok)
	_, ok = c.Get("b")
	assert.False(t, ok)
}
