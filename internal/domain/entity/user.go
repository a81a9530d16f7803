package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"
	RoleViewer = "viewer"
)

// ValidRole reporta si role es uno de los roles conocidos.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleEditor || role == RoleViewer
}

// User representa un usuario del sistema. El password se guarda en claro
// (endurecerlo está fuera del alcance declarado) y se elimina de todo camino
// de lectura antes de salir de la capa de repositorio. Se borra con soft
// delete (IsActive=false).
type User struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"` // único por convención
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"password,omitempty"`
	Role      string    `json:"role"` // admin | editor | viewer
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Sanitized devuelve una copia del usuario sin el password.
func (u User) Sanitized() User {
	u.Password = ""
	return u
}
