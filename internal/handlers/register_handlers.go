package handlers

import (
	"github.com/fintrackhq/fintrack_backend/cmd/docs"
	"github.com/fintrackhq/fintrack_backend/internal/core/domain"
	portssvc "github.com/fintrackhq/fintrack_backend/internal/core/ports/services"
	"github.com/fintrackhq/fintrack_backend/internal/middleware"
	"github.com/fintrackhq/fintrack_backend/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	RegisterValidators()

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Register authentication routes (public plus the authed profile routes)
	registerAuthRoutes(r, cfg, services)

	// Setup the protected /api routes
	setupAPIRoutes(r, cfg, services)

	// Swagger routes (conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIRoutes configures the /api group and delegates to specific entity route registrations
func setupAPIRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Apply AuthMiddleware to the entire /api group except the auth routes,
	// which manage their own middleware.
	api := r.Group("/api", middleware.AuthMiddleware(cfg.JWTSecret))

	registerEntryRoutes(api, "/income", domain.CategoryIncome, "Income entry not found", services.Income, services.IncomeCategories)
	registerEntryRoutes(api, "/expense", domain.CategoryExpense, "Expense entry not found", services.Expense, services.ExpenseCategories)
	registerStockRoutes(api, services.Stock)
	registerInvoiceRoutes(api, services.Invoice)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
