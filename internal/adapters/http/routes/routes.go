package routes

import (
	"loandesk/internal/adapters/http/handlers"
	"loandesk/internal/adapters/http/middleware"
	"loandesk/internal/adapters/persistence/memory"
	"loandesk/internal/adapters/persistence/repositories"
	"loandesk/internal/config"
	"loandesk/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"gorm.io/gorm"
)

// Setup configures all routes for the application against the MySQL
// repository and the seeded credential store
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config) error {
	credentials, err := memory.SeedCredentialStore(cfg.Admin.Username, cfg.Admin.Password)
	if err != nil {
		return err
	}

	loanRepo := repositories.NewGormLoanRepository(db)

	Register(app, cfg, db, loanRepo, credentials)
	return nil
}

// Register wires handlers onto the app with the given stores. Split out
// from Setup so tests can swap in the in-memory loan store.
func Register(
	app *fiber.App,
	cfg *config.Config,
	db *gorm.DB,
	loanRepo repositories.LoanRepository,
	credentials repositories.CredentialStore,
) {
	// Initialize services
	authService := services.NewAuthService(credentials, cfg)
	loanService := services.NewLoanService(loanRepo)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	authHandler := handlers.NewAuthHandler(authService)
	loanHandler := handlers.NewLoanHandler(loanService)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// API group
	api := app.Group("/api")

	// Public auth routes
	auth := api.Group("/auth")
	auth.Post("/login", authHandler.Login)

	// Protected loan routes
	loans := api.Group("/loans", middleware.AuthMiddleware(cfg))
	loans.Get("/", loanHandler.List)
	loans.Get("/:id", loanHandler.GetByID)
	loans.Post("/", loanHandler.Create)
	loans.Put("/:id", loanHandler.Update)
	loans.Patch("/:id/reject", loanHandler.Reject)
	loans.Delete("/:id", loanHandler.Delete)
}
