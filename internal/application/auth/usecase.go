package auth

import (
	"strings"

	"github.com/jhoicas/inventario-lite/internal/application/dto"
	"github.com/jhoicas/inventario-lite/internal/domain"
	"github.com/jhoicas/inventario-lite/internal/domain/repository"
	"github.com/jhoicas/inventario-lite/pkg/jwt"
	"github.com/jhoicas/inventario-lite/pkg/logger"
)

// UseCase orquesta el inicio y cierre de sesión: valida credenciales contra
// el repositorio, abre la sesión en el Manager y emite el JWT para la capa
// HTTP.
type UseCase struct {
	users    repository.UserRepository
	sessions *Manager
	log      *logger.Logger

	jwtSecret  string
	jwtIssuer  string
	jwtExpMins int
}

// NewUseCase construye el caso de uso de autenticación.
func NewUseCase(
	users repository.UserRepository,
	sessions *Manager,
	log *logger.Logger,
	jwtSecret, jwtIssuer string,
	jwtExpMins int,
) *UseCase {
	return &UseCase{
		users:      users,
		sessions:   sessions,
		log:        log,
		jwtSecret:  jwtSecret,
		jwtIssuer:  jwtIssuer,
		jwtExpMins: jwtExpMins,
	}
}

// Login valida las credenciales y abre la sesión. Credenciales incorrectas y
// cuentas desactivadas devuelven el mismo error.
func (uc *UseCase) Login(req dto.LoginRequest) (*dto.LoginResponse, error) {
	identifier := strings.TrimSpace(req.Identifier)
	if identifier == "" || req.Password == "" {
		return nil, domain.ErrInvalidInput
	}

	user, err := uc.users.Authenticate(identifier, req.Password)
	if err != nil {
		return nil, err
	}
	if user == nil {
		uc.log.Warn().Str("identifier", identifier).Msg("intento de login fallido")
		return nil, domain.ErrInvalidCredentials
	}

	uc.sessions.Login(user.ID)
	token, err := jwt.Generate(uc.jwtSecret, user.ID, user.Username, user.Role, uc.jwtIssuer, uc.jwtExpMins)
	if err != nil {
		return nil, err
	}

	uc.log.Info().Int64("userId", user.ID).Str("username", user.Username).Msg("sesión iniciada")
	return &dto.LoginResponse{
		Token:     token,
		User:      *user,
		ExpiresIn: int64(uc.sessions.Remaining(user.ID).Seconds()),
	}, nil
}

// Logout cierra la sesión del usuario.
func (uc *UseCase) Logout(userID int64) {
	uc.sessions.Logout(userID)
	uc.log.Info().Int64("userId", userID).Msg("sesión cerrada")
}

// Status devuelve el estado de la sesión del usuario.
func (uc *UseCase) Status(userID int64) dto.SessionStatus {
	st := uc.sessions.StateOf(userID)
	return dto.SessionStatus{
		State:         string(st),
		RemainingSecs: int64(uc.sessions.Remaining(userID).Seconds()),
		WarningActive: st == StateWarning,
	}
}

// Extend reinicia el contador de la sesión ("seguir conectado"). Devuelve
// ErrSessionExpired si la sesión ya venció.
func (uc *UseCase) Extend(userID int64) (dto.SessionStatus, error) {
	if !uc.sessions.Extend(userID) {
		return uc.Status(userID), domain.ErrSessionExpired
	}
	return uc.Status(userID), nil
}

// Touch registra actividad del usuario (refresco con mínimo entre llamadas).
// Devuelve false si la sesión ya no está viva.
func (uc *UseCase) Touch(userID int64) bool {
	return uc.sessions.Touch(userID)
}
