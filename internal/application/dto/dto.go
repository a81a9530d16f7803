// Package dto define los contratos de entrada y salida de la capa de
// aplicación y HTTP.
package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-lite/internal/domain/entity"
)

// ErrorResponse respuesta de error uniforme de la API.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// LoginRequest credenciales de inicio de sesión. Identifier acepta username
// o email.
type LoginRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

// LoginResponse resultado de un login exitoso.
type LoginResponse struct {
	Token     string      `json:"token"`
	User      entity.User `json:"user"`
	ExpiresIn int64       `json:"expiresIn"` // segundos restantes de la sesión
}

// SessionStatus estado actual de la sesión del usuario.
type SessionStatus struct {
	State         string `json:"state"` // anonymous | authenticated | warning | expired
	RemainingSecs int64  `json:"remainingSeconds"`
	WarningActive bool   `json:"warningActive"`
}

// ProductRequest alta o edición de un producto. Quantity solo aplica en el
// alta (stock inicial); después la cantidad se mueve por movimientos.
type ProductRequest struct {
	Name        string          `json:"name"`
	Code        string          `json:"code"`
	Description string          `json:"description"`
	Supplier    string          `json:"supplier"`
	CategoryID  int64           `json:"categoryId"`
	Quantity    int             `json:"quantity"`
	MinStock    int             `json:"minStock"`
	Price       decimal.Decimal `json:"price"`
}

// ProductFilter parámetros de búsqueda de productos.
type ProductFilter struct {
	Query      string `json:"q,omitempty"`
	CategoryID int64  `json:"categoryId,omitempty"`
	LowStock   bool   `json:"lowStock,omitempty"`
}

// ProductDetail producto enriquecido con su categoría para los listados.
type ProductDetail struct {
	entity.Product
	CategoryName  string `json:"categoryName"`
	CategoryColor string `json:"categoryColor,omitempty"`
	LowStock      bool   `json:"lowStock"`
}

// CategoryRequest alta o edición de una categoría.
type CategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Color       string `json:"color"`
}

// MovementRequest registro de un movimiento de inventario.
type MovementRequest struct {
	ProductID int64  `json:"productId"`
	Type      string `json:"type"` // entrada | salida
	Quantity  int    `json:"quantity"`
	Reason    string `json:"reason"`
	Notes     string `json:"notes"`
}

// UserRequest alta o edición de un usuario.
type UserRequest struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// ReportRequest generación de un reporte bajo demanda.
type ReportRequest struct {
	Name string `json:"name"`
	Type string `json:"type"` // inventory | movements | lowstock
}

// DashboardStats métricas agregadas del panel principal.
type DashboardStats struct {
	TotalProducts    int             `json:"totalProducts"`
	TotalValue       decimal.Decimal `json:"totalValue"` // Σ precio × cantidad
	LowStockItems    int             `json:"lowStockItems"`
	ActiveCategories int             `json:"activeCategories"`
	RecentMovements  int             `json:"recentMovements"` // últimos 7 días
}

// DatabaseImportRequest blob completo a importar.
type DatabaseImportRequest struct {
	Data []byte `json:"data"`
}
