package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-lite/internal/application/auth"
	apphttp "github.com/jhoicas/inventario-lite/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/inventario-lite/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = int64(1)
	testIssuer    = "inventario-lite-test"
	testExpMin    = 60
)

// buildTestApp construye una aplicación Fiber mínima con:
//   - AuthMiddleware para parsear el JWT y verificar la sesión
//   - RequireRole para autorizar el acceso
//   - Un handler dummy que devuelve 200 si pasa los middlewares
func buildTestApp(sessions *auth.Manager, allowedRoles ...string) *fiber.App {
	app := fiber.New(fiber.Config{
		// Silenciar errores internos en los tests
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		},
	})
	// Ruta protegida: JWT + sesión viva + RBAC
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret, sessions),
		apphttp.RequireRole(allowedRoles...),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"ok":   true,
				"role": apphttp.GetRole(c),
				"user": apphttp.GetUserID(c),
			})
		},
	)
	return app
}

// newSessions crea un Manager con la sesión del usuario de prueba abierta.
func newSessions(t *testing.T) *auth.Manager {
	t.Helper()
	m := auth.NewManager(auth.ManagerOptions{
		Duration: 5 * time.Minute,
		Warning:  time.Minute,
		Throttle: time.Millisecond,
	})
	t.Cleanup(m.Close)
	m.Login(testUserID)
	return m
}

// tokenForRole genera un JWT con el rol indicado.
func tokenForRole(t *testing.T, role string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, "admin", role, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

// doRequest lanza una petición GET /protected y devuelve la respuesta.
func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func errorCode(t *testing.T, resp *http.Response) string {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out struct {
		Code string `json:"code"`
	}
	require.NoError(t, json.Unmarshal(body, &out))
	return out.Code
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireRole
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: El usuario tiene el rol requerido → debe pasar (HTTP 200).
func TestRequireRole_AdminAccedeRutaAdmin(t *testing.T) {
	app := buildTestApp(newSessions(t), "admin")
	resp := doRequest(t, app, tokenForRole(t, "admin"))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// Caso 2: Varios roles permitidos → editor pasa en ruta admin|editor.
func TestRequireRole_EditorAccedeRutaAdminOEditor(t *testing.T) {
	app := buildTestApp(newSessions(t), "admin", "editor")
	resp := doRequest(t, app, tokenForRole(t, "editor"))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// Caso 3: Rol sin permiso → 403.
func TestRequireRole_ViewerBloqueadoEnRutaAdmin(t *testing.T) {
	app := buildTestApp(newSessions(t), "admin")
	resp := doRequest(t, app, tokenForRole(t, "viewer"))
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "FORBIDDEN", errorCode(t, resp))
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_SinAuthHeader_Retorna401(t *testing.T) {
	app := buildTestApp(newSessions(t), "admin")
	resp := doRequest(t, app, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "MISSING_TOKEN", errorCode(t, resp))
}

func TestAuthMiddleware_FormatoInvalido_Retorna401(t *testing.T) {
	app := buildTestApp(newSessions(t), "admin")
	resp := doRequest(t, app, "Basic abc123")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_TokenInvalido_Retorna401(t *testing.T) {
	app := buildTestApp(newSessions(t), "admin")
	resp := doRequest(t, app, "Bearer no-es-un-jwt")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "INVALID_TOKEN", errorCode(t, resp))
}

// JWT válido pero sin sesión abierta (o ya cerrada): 401 SESSION_EXPIRED.
func TestAuthMiddleware_SinSesionViva_Retorna401(t *testing.T) {
	sessions := auth.NewManager(auth.ManagerOptions{Duration: 5 * time.Minute})
	t.Cleanup(sessions.Close)

	app := buildTestApp(sessions, "admin")
	resp := doRequest(t, app, tokenForRole(t, "admin"))
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "SESSION_EXPIRED", errorCode(t, resp))
}

// Cada petición autenticada cuenta como actividad y mantiene la sesión viva.
func TestAuthMiddleware_PeticionRefrescaSesion(t *testing.T) {
	sessions := newSessions(t)
	app := buildTestApp(sessions, "admin")

	resp := doRequest(t, app, tokenForRole(t, "admin"))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, auth.StateAuthenticated, sessions.StateOf(testUserID))
}
