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

	_ "github.com/jhoicas/labora-api/docs"
	"github.com/jhoicas/labora-api/internal/application/analytics"
	"github.com/jhoicas/labora-api/internal/application/auth"
	"github.com/jhoicas/labora-api/internal/application/catalog"
	"github.com/jhoicas/labora-api/internal/application/clients"
	"github.com/jhoicas/labora-api/internal/application/quotes"
	"github.com/jhoicas/labora-api/internal/application/validation"
	"github.com/jhoicas/labora-api/internal/infrastructure/cache"
	"github.com/jhoicas/labora-api/internal/infrastructure/identity"
	infrapdf "github.com/jhoicas/labora-api/internal/infrastructure/pdf"
	"github.com/jhoicas/labora-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/labora-api/internal/interfaces/http"
	"github.com/jhoicas/labora-api/pkg/config"
	"github.com/jhoicas/labora-api/pkg/logger"
)

// @title                      Labora Tech API
// @version                    1.0
// @description                Backend administrativo: clientes, catálogo, orçamentos, contratos y dashboard.
// @BasePath                   /
// @securityDefinitions.apikey BearerAuth
// @in                         header
// @name                       Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB, log.Zerolog())
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool, log.Zerolog()); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	redisClient, err := cache.New(ctx, cfg.Redis.Addr)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a Redis")
	}
	defer redisClient.Close()

	userRepo := postgres.NewUserRepository(pool)
	clientRepo := postgres.NewClientRepository(pool)
	catalogRepo := postgres.NewCatalogRepository(pool)
	quoteRepo := postgres.NewQuoteRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)

	idp := identity.NewProvider(userRepo, cache.NewSessionStore(redisClient), identity.TokenConfig{
		Secret:     cfg.JWT.Secret,
		Issuer:     cfg.JWT.Issuer,
		ExpMinutes: cfg.JWT.Expiration,
	}, 0)

	// PDF: orçamento y contrato con encabezado, sello de estado y paginación propia
	exporter, err := infrapdf.NewExporter(cfg.PDF.LogoPath, log.Component("pdf"))
	if err != nil {
		log.Fatal().Err(err).Str("logo", cfg.PDF.LogoPath).Msg("exportador PDF")
	}

	v := validation.New()
	authUC := auth.NewAuthUseCase(idp, v, cfg.Auth.AutoConfirm)
	clientUC := clients.NewClientUseCase(clientRepo, v)
	catalogUC := catalog.NewCatalogUseCase(catalogRepo)
	quoteUC := quotes.NewQuoteUseCase(quoteRepo, clientRepo, catalogRepo, v)
	lifecycle := quotes.NewLifecycleManager(quoteRepo, log.Component("lifecycle"))
	documentUC := quotes.NewDocumentUseCase(quoteRepo, exporter, log.Component("documents"))
	dashboardUC := analytics.NewDashboardUseCase(analyticsRepo, quoteRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))
	app.Use(httpRouter.SecurityHeaders(cfg.App.IsProduction()))

	// Swagger UI en local: http://localhost:<port>/docs
	if !cfg.App.IsProduction() {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: "./docs/swagger.json",
			Path:     "docs",
			Title:    "Labora Tech API",
		}))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		ClientUC:      clientUC,
		CatalogUC:     catalogUC,
		QuoteUC:       quoteUC,
		Lifecycle:     lifecycle,
		DocumentUC:    documentUC,
		DashboardUC:   dashboardUC,
		Validator:     v,
		Log:           log,
		AuthRateLimit: cfg.Auth.RateLimitPerMinute,
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
