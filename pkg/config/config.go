package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App       AppConfig
	HTTP      HTTPConfig
	JWT       JWTConfig
	Storage   StorageConfig
	Cache     CacheConfig
	Session   SessionConfig
	Inventory InventoryConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// JWTConfig configuración de JWT.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// StorageConfig configuración del documento persistido (un solo blob JSON).
type StorageConfig struct {
	Path    string        // ruta del documento principal
	Backups int           // snapshots recientes a conservar por clave base
	Latency time.Duration // latencia simulada por operación (0 = sin latencia)
}

// CacheConfig configuración de la capa de caché de lecturas.
type CacheConfig struct {
	TTL     time.Duration // ventana de frescura de una entrada
	MaxSize int64         // entradas máximas en memoria
}

// SessionConfig configuración de la máquina de estados de sesión.
// Duration y Warning son superficie de configuración, no verdad de dominio:
// 5 minutos de sesión con aviso en el último minuto por defecto.
type SessionConfig struct {
	Duration         time.Duration // vida total de la sesión desde loginTime
	Warning          time.Duration // ventana de aviso antes de expirar
	ActivityThrottle time.Duration // actividad más cercana que esto no extiende la sesión
}

// InventoryConfig políticas del motor de movimientos.
type InventoryConfig struct {
	// StrictStock: si está activo, una salida mayor al stock disponible se
	// rechaza con ErrInsufficientStock; si no, la cantidad se recorta en 0
	// (comportamiento histórico de la app).
	StrictStock bool
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, JWT_SECRET,
// STORAGE_PATH, CACHE_TTL_MINUTES, SESSION_DURATION_MINUTES, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "inventario-lite"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 60),
			Issuer:     getString(v, "JWT_ISSUER", "inventario-lite"),
		},
		Storage: StorageConfig{
			Path:    getString(v, "STORAGE_PATH", "data/inventario.json"),
			Backups: getInt(v, "STORAGE_BACKUPS", 3),
			Latency: time.Duration(getInt(v, "STORAGE_LATENCY_MS", 0)) * time.Millisecond,
		},
		Cache: CacheConfig{
			TTL:     time.Duration(getInt(v, "CACHE_TTL_MINUTES", 5)) * time.Minute,
			MaxSize: int64(getInt(v, "CACHE_MAX_ENTRIES", 1000)),
		},
		Session: SessionConfig{
			Duration:         time.Duration(getInt(v, "SESSION_DURATION_MINUTES", 5)) * time.Minute,
			Warning:          time.Duration(getInt(v, "SESSION_WARNING_SECONDS", 60)) * time.Second,
			ActivityThrottle: time.Duration(getInt(v, "SESSION_ACTIVITY_THROTTLE_SECONDS", 10)) * time.Second,
		},
		Inventory: InventoryConfig{
			StrictStock: getBool(v, "INVENTORY_STRICT_STOCK", false),
		},
	}

	if cfg.Session.Warning >= cfg.Session.Duration {
		return nil, fmt.Errorf("config: SESSION_WARNING_SECONDS debe ser menor que la duración de la sesión")
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if v.IsSet(key) {
		return v.GetBool(key)
	}
	return def
}
