// Package auth implementa el inicio de sesión y el ciclo de vida de la
// sesión por inactividad: autenticada → aviso de expiración → expirada.
package auth

import (
	"sync"
	"time"

	"github.com/jhoicas/inventario-lite/pkg/logger"
)

// Estados de sesión.
type State string

const (
	StateAnonymous     State = "anonymous"
	StateAuthenticated State = "authenticated"
	StateWarning       State = "warning" // queda menos del umbral de aviso
	StateExpired       State = "expired"
)

// Defaults del ciclo de sesión.
const (
	DefaultDuration = 5 * time.Minute
	DefaultWarning  = time.Minute
	DefaultThrottle = 10 * time.Second
)

type session struct {
	lastActivity time.Time
	expired      bool
}

// Manager administra las sesiones activas por usuario. El estado se computa
// perezosamente a partir de la última actividad, así que es correcto incluso
// sin el watcher; el watcher (un único timer reprogramado al vencimiento más
// próximo) solo sirve para expirar proactivamente y notificar.
type Manager struct {
	duration time.Duration
	warning  time.Duration
	throttle time.Duration
	now      func() time.Time
	log      *logger.Logger

	mu       sync.Mutex
	sessions map[int64]*session
	timer    *time.Timer
	onExpire func(userID int64)
	closed   bool
}

// ManagerOptions parámetros del ciclo de sesión. Valores ≤0 usan defaults.
type ManagerOptions struct {
	Duration time.Duration // vida de la sesión sin actividad
	Warning  time.Duration // antelación del aviso (debe ser < Duration)
	Throttle time.Duration // mínimo entre refrescos por actividad
	Now      func() time.Time
	Logger   *logger.Logger
	OnExpire func(userID int64) // notificado por el watcher, fuera del lock
}

// NewManager crea el administrador de sesiones.
func NewManager(opts ManagerOptions) *Manager {
	m := &Manager{
		duration: opts.Duration,
		warning:  opts.Warning,
		throttle: opts.Throttle,
		now:      opts.Now,
		log:      opts.Logger,
		sessions: make(map[int64]*session),
		onExpire: opts.OnExpire,
	}
	if m.duration <= 0 {
		m.duration = DefaultDuration
	}
	if m.warning <= 0 || m.warning >= m.duration {
		m.warning = DefaultWarning
	}
	if m.throttle <= 0 {
		m.throttle = DefaultThrottle
	}
	if m.now == nil {
		m.now = time.Now
	}
	if m.log == nil {
		m.log = logger.Nop()
	}
	return m
}

// Login abre (o reabre) la sesión del usuario con el contador en cero.
func (m *Manager) Login(userID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[userID] = &session{lastActivity: m.now()}
	m.reschedule()
}

// Logout cierra la sesión del usuario.
func (m *Manager) Logout(userID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, userID)
	m.reschedule()
}

// Touch registra actividad del usuario y reinicia el contador, con un mínimo
// entre refrescos para no reiniciarlo en cada petición. Durante el período de
// aviso la actividad implícita ya no extiende: solo Extend saca la sesión del
// aviso. Devuelve false si la sesión no existe o ya expiró (la actividad no
// la revive).
func (m *Manager) Touch(userID int64) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[userID]
	if !ok || m.isExpired(s) {
		return false
	}
	now := m.now()
	if now.Sub(s.lastActivity) < m.throttle {
		return true // actividad registrada pero sin refrescar el contador
	}
	if m.remaining(s) <= m.warning {
		return true // en aviso: requiere extensión explícita
	}
	s.lastActivity = now
	m.reschedule()
	return true
}

// Extend reinicia el contador explícitamente (botón "seguir conectado" del
// aviso de expiración). A diferencia de Touch, ignora el mínimo entre
// refrescos. Devuelve false si la sesión ya expiró.
func (m *Manager) Extend(userID int64) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[userID]
	if !ok || m.isExpired(s) {
		return false
	}
	s.lastActivity = m.now()
	m.reschedule()
	return true
}

// StateOf devuelve el estado actual de la sesión del usuario.
func (m *Manager) StateOf(userID int64) State {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[userID]
	if !ok {
		return StateAnonymous
	}
	if m.isExpired(s) {
		return StateExpired
	}
	if m.remaining(s) <= m.warning {
		return StateWarning
	}
	return StateAuthenticated
}

// Remaining devuelve el tiempo de sesión restante (0 si no hay sesión viva).
func (m *Manager) Remaining(userID int64) time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[userID]
	if !ok || m.isExpired(s) {
		return 0
	}
	return m.remaining(s)
}

// IsAuthenticated reporta si el usuario tiene una sesión viva (incluye el
// período de aviso).
func (m *Manager) IsAuthenticated(userID int64) bool {
	st := m.StateOf(userID)
	return st == StateAuthenticated || st == StateWarning
}

// Close detiene el watcher.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}
}

func (m *Manager) isExpired(s *session) bool {
	if s.expired {
		return true
	}
	if m.now().Sub(s.lastActivity) >= m.duration {
		s.expired = true
		return true
	}
	return false
}

func (m *Manager) remaining(s *session) time.Duration {
	r := m.duration - m.now().Sub(s.lastActivity)
	if r < 0 {
		return 0
	}
	return r
}

// reschedule reprograma el único timer del watcher al vencimiento más
// próximo entre las sesiones vivas. Llamar con el lock tomado.
func (m *Manager) reschedule() {
	if m.closed {
		return
	}
	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}
	next := time.Duration(-1)
	for _, s := range m.sessions {
		if s.expired {
			continue
		}
		if r := m.remaining(s); next < 0 || r < next {
			next = r
		}
	}
	if next < 0 {
		return
	}
	if next < time.Millisecond {
		next = time.Millisecond
	}
	m.timer = time.AfterFunc(next, m.expireDue)
}

// expireDue marca como expiradas las sesiones vencidas, notifica fuera del
// lock y reprograma el timer.
func (m *Manager) expireDue() {
	m.mu.Lock()
	var expired []int64
	for id, s := range m.sessions {
		if !s.expired && m.now().Sub(s.lastActivity) >= m.duration {
			s.expired = true
			expired = append(expired, id)
		}
	}
	m.reschedule()
	notify := m.onExpire
	m.mu.Unlock()

	for _, id := range expired {
		m.log.Info().Int64("userId", id).Msg("sesión expirada por inactividad")
		if notify != nil {
			notify(id)
		}
	}
}
