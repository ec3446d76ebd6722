package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/labora-api/internal/application/analytics"
	"github.com/jhoicas/labora-api/internal/application/auth"
	"github.com/jhoicas/labora-api/internal/application/catalog"
	"github.com/jhoicas/labora-api/internal/application/clients"
	"github.com/jhoicas/labora-api/internal/application/quotes"
	"github.com/jhoicas/labora-api/internal/application/validation"
	"github.com/jhoicas/labora-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	ClientUC    *clients.ClientUseCase
	CatalogUC   *catalog.CatalogUseCase
	QuoteUC     *quotes.QuoteUseCase
	Lifecycle   *quotes.LifecycleManager
	DocumentUC  *quotes.DocumentUseCase
	DashboardUC *analytics.DashboardUseCase
	Validator   *validation.Validator
	Log         *logger.Logger

	// Authenticator valida el Bearer Token; nil = AuthUC.
	Authenticator Authenticator
	// AuthRateLimit intentos de sign-in/sign-up por IP y minuto (0 = sin límite).
	AuthRateLimit int
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Log
	if log == nil {
		log = logger.Nop()
	}
	authn := deps.Authenticator
	if authn == nil {
		authn = deps.AuthUC
	}

	api := app.Group("/api")

	// Auth (público, con límite por IP)
	authHandler := NewAuthHandler(deps.AuthUC, log)
	limited := RateLimit(deps.AuthRateLimit)
	authGroup := api.Group("/auth")
	authGroup.Post("/sign-up", limited, authHandler.SignUp)
	authGroup.Post("/sign-in", limited, authHandler.SignIn)
	authGroup.Post("/sign-out", AuthMiddleware(authn), authHandler.SignOut)
	authGroup.Get("/me", AuthMiddleware(authn), authHandler.Me)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(authn))

	// Clientes
	clientHandler := NewClientHandler(deps.ClientUC, log)
	cl := protected.Group("/clients")
	cl.Get("/search", clientHandler.Search)
	cl.Get("/", clientHandler.List)
	cl.Post("/", clientHandler.Create)
	cl.Get("/:id", clientHandler.GetByID)
	cl.Put("/:id", clientHandler.Update)

	// Catálogo
	catalogHandler := NewCatalogHandler(deps.CatalogUC, log)
	cat := protected.Group("/catalog")
	cat.Get("/categories", catalogHandler.ListCategories)
	cat.Get("/categories/:id/services", catalogHandler.ListServices)
	cat.Get("/services/:id", catalogHandler.GetService)

	// Orçamentos
	quoteHandler := NewQuoteHandler(deps.QuoteUC, deps.Lifecycle, deps.DocumentUC, log)
	qt := protected.Group("/quotes")
	qt.Get("/", quoteHandler.List)
	qt.Post("/", quoteHandler.Create)
	qt.Get("/:id", quoteHandler.GetByID)
	qt.Post("/:id/approve", quoteHandler.Approve)
	qt.Post("/:id/reject", quoteHandler.Reject)
	qt.Get("/:id/document", quoteHandler.Document)
	qt.Get("/:id/pdf", quoteHandler.PDF)

	// Contratos (sólo orçamentos aprobados)
	contractHandler := NewContractHandler(deps.QuoteUC, deps.DocumentUC, log)
	ct := protected.Group("/contracts")
	ct.Get("/", contractHandler.List)
	ct.Get("/:id", contractHandler.Draft)
	ct.Post("/:id/pdf", contractHandler.PDF)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC, log)
	protected.Get("/dashboard/summary", dashboardHandler.GetSummary)

	// Validación de documentos para las máscaras del front
	documentHandler := NewDocumentHandler(deps.Validator, log)
	protected.Post("/documents/check", documentHandler.Check)
}
