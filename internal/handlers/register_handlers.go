package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
	"github.com/wealthsight/wealth_projection_app/cmd/docs"
	"github.com/wealthsight/wealth_projection_app/internal/apperrors"
	portssvc "github.com/wealthsight/wealth_projection_app/internal/core/ports/services"
	"github.com/wealthsight/wealth_projection_app/internal/middleware"
	"github.com/wealthsight/wealth_projection_app/internal/platform/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	registerCustomValidators()

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Setup API v1 routes behind the per-IP rate limiter
	setupAPIV1Routes(r, cfg, services)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	rate, _ := limiter.NewRateFromFormatted(cfg.RateLimit)
	store := memory.NewStore()
	ipLimiter := limiter.New(store, rate)

	v1 := r.Group("/api/v1", middleware.RateLimit(ipLimiter))

	// Delegate route registration to specific handlers, passing required services
	registerProjectionRoutes(v1, services.Projection)
	registerAmortizationRoutes(v1, services.Amortization)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	// Swagger setup
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// handleEngineError maps the engine's validation sentinels to a 400 response
// and everything else to a 500.
func handleEngineError(c *gin.Context, logger *slog.Logger, err error, failureMsg string) {
	switch {
	case errors.Is(err, apperrors.ErrInvalidTerm),
		errors.Is(err, apperrors.ErrInvalidRate),
		errors.Is(err, apperrors.ErrInvalidHorizon),
		errors.Is(err, apperrors.ErrMalformedInput),
		errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Engine rejected input", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		logger.Error(failureMsg, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": failureMsg})
	}
}
