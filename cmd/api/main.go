package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/spf13/afero"

	appanalytics "github.com/jhoicas/inventario-lite/internal/application/analytics"
	"github.com/jhoicas/inventario-lite/internal/application/auth"
	"github.com/jhoicas/inventario-lite/internal/application/inventory"
	"github.com/jhoicas/inventario-lite/internal/application/usecase"
	"github.com/jhoicas/inventario-lite/internal/infrastructure/cache"
	infrapdf "github.com/jhoicas/inventario-lite/internal/infrastructure/pdf"
	"github.com/jhoicas/inventario-lite/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/inventario-lite/internal/interfaces/http"
	"github.com/jhoicas/inventario-lite/pkg/config"
	"github.com/jhoicas/inventario-lite/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	store, err := storage.Open(storage.Options{
		Fs:      afero.NewOsFs(),
		Path:    cfg.Storage.Path,
		Backups: cfg.Storage.Backups,
		Latency: cfg.Storage.Latency,
		Logger:  log,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("apertura del documento de inventario")
	}

	productRepo := storage.NewProductRepository(store)
	categoryRepo := storage.NewCategoryRepository(store)
	movementRepo := storage.NewMovementRepository(store)
	userRepo := storage.NewUserRepository(store)
	reportRepo := storage.NewReportRepository(store)
	activityRepo := storage.NewActivityRepository(store)

	readCache := cache.New(cfg.Cache.TTL, cfg.Cache.MaxSize)

	engine := inventory.NewEngine(store, readCache, log, cfg.Inventory.StrictStock)

	productUC := usecase.NewProductUseCase(productRepo, categoryRepo, activityRepo, readCache, log)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo, activityRepo, readCache, log)
	userUC := usecase.NewUserUseCase(userRepo, log)
	reportUC := usecase.NewReportUseCase(reportRepo, productUC, engine, log)
	dashboardUC := appanalytics.NewDashboardUseCase(productRepo, categoryRepo, movementRepo, activityRepo, readCache)

	sessions := auth.NewManager(auth.ManagerOptions{
		Duration: cfg.Session.Duration,
		Warning:  cfg.Session.Warning,
		Throttle: cfg.Session.ActivityThrottle,
		Logger:   log,
	})
	defer sessions.Close()

	authUC := auth.NewUseCase(userRepo, sessions, log, cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.Expiration)

	pdfGenerator := infrapdf.NewMovementsPDFGenerator()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Inventario Lite API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		Sessions:    sessions,
		ProductUC:   productUC,
		CategoryUC:  categoryUC,
		UserUC:      userUC,
		ReportUC:    reportUC,
		DashboardUC: dashboardUC,
		Engine:      engine,
		Store:       store,
		Cache:       readCache,
		PDFGen:      pdfGenerator,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
