package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-lite/internal/application/analytics"
	"github.com/jhoicas/inventario-lite/internal/application/auth"
	"github.com/jhoicas/inventario-lite/internal/application/inventory"
	"github.com/jhoicas/inventario-lite/internal/application/usecase"
	"github.com/jhoicas/inventario-lite/internal/domain/entity"
	"github.com/jhoicas/inventario-lite/internal/infrastructure/cache"
	"github.com/jhoicas/inventario-lite/internal/infrastructure/pdf"
	"github.com/jhoicas/inventario-lite/internal/infrastructure/storage"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.UseCase
	Sessions    *auth.Manager
	ProductUC   *usecase.ProductUseCase
	CategoryUC  *usecase.CategoryUseCase
	UserUC      *usecase.UserUseCase
	ReportUC    *usecase.ReportUseCase
	DashboardUC *analytics.DashboardUseCase
	Engine      *inventory.Engine
	Store       *storage.Store
	Cache       *cache.Cache
	PDFGen      *pdf.MovementsPDFGenerator
	JWTSecret   string
}

// Router registra las rutas de la API. Autorización por rol:
//   - viewer: solo lectura
//   - editor: además escribe productos, categorías, movimientos y reportes
//   - admin: además administra usuarios y la base de datos
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	canWrite := RequireRole(entity.RoleAdmin, entity.RoleEditor)
	adminOnly := RequireRole(entity.RoleAdmin)

	// Auth: login público, el resto protegido
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authProtected := authGroup.Group("/", AuthMiddleware(deps.JWTSecret, deps.Sessions))
	authProtected.Post("/logout", authHandler.Logout)
	authProtected.Get("/session", authHandler.Session)
	authProtected.Post("/session/extend", authHandler.Extend)

	// Rutas protegidas (requieren Bearer Token con sesión viva)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret, deps.Sessions))

	// Products
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Get("/low-stock", productHandler.LowStock)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", canWrite, productHandler.Create)
	products.Put("/:id", canWrite, productHandler.Update)
	products.Delete("/:id", canWrite, productHandler.Delete)

	// Categories
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Post("/", canWrite, categoryHandler.Create)
	categories.Put("/:id", canWrite, categoryHandler.Update)
	categories.Delete("/:id", canWrite, categoryHandler.Delete)

	// Movements
	movements := protected.Group("/movements")
	movementHandler := NewMovementHandler(deps.Engine)
	movements.Get("/", movementHandler.List)
	movements.Post("/", canWrite, movementHandler.Register)
	movements.Delete("/:id", canWrite, movementHandler.Delete)

	// Reports y descargas
	reports := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC, deps.ProductUC, deps.Engine, deps.PDFGen)
	reports.Get("/", reportHandler.List)
	reports.Get("/export/products.csv", reportHandler.ExportProductsCSV)
	reports.Get("/export/movements.csv", reportHandler.ExportMovementsCSV)
	reports.Get("/export/inventario.xlsx", reportHandler.ExportXLSX)
	reports.Get("/export/movimientos.pdf", reportHandler.ExportMovementsPDF)
	reports.Get("/:id", reportHandler.GetByID)
	reports.Post("/", canWrite, reportHandler.Generate)
	reports.Delete("/:id", canWrite, reportHandler.Delete)

	// Dashboard
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/stats", dashboardHandler.Stats)
	dashboard.Get("/activity", dashboardHandler.Activity)

	// Users (solo admin)
	users := protected.Group("/users", adminOnly)
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Post("/", userHandler.Create)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)

	// Database (solo admin)
	database := protected.Group("/database", adminOnly)
	databaseHandler := NewDatabaseHandler(deps.Store, deps.Cache)
	database.Get("/export", databaseHandler.Export)
	database.Post("/import", databaseHandler.Import)
	database.Post("/reset", databaseHandler.Reset)
}
