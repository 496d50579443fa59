package router

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/eagleinfoservice/directory-api/internal/config"
	"github.com/eagleinfoservice/directory-api/internal/handler"
	middlewarepkg "github.com/eagleinfoservice/directory-api/internal/middleware"
)

// Handlers aggregates HTTP handlers used by the router.
type Handlers struct {
	Business *handler.BusinessHandler
	Health   *handler.HealthHandler
}

// Register wires all HTTP routes for the API.
func Register(e *echo.Echo, cfg *config.Config, handlers Handlers) {
	e.GET("/", func(c echo.Context) error {
		return handler.Success(c, http.StatusOK, "service info", map[string]any{
			"service": "directory-api",
			"version": "v1",
			"status":  "running",
		})
	})
	e.GET("/healthz", handlers.Health.Check)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	business := e.Group("/business")
	business.GET("/by-domain", handlers.Business.ByDomain)
	business.GET("/by-linkedin", handlers.Business.ByLinkedIn)
	business.GET("/by-place-id", handlers.Business.ByPlaceID)
	business.GET("/by-email", handlers.Business.ByEmail)
	business.POST("/by-email/batch", handlers.Business.ByEmailBatch, middlewarepkg.BatchRateLimiter(cfg.RateLimitBatch))
	business.GET("/by-google-id", handlers.Business.ByGoogleID)
	business.GET("/by-phone", handlers.Business.ByPhone)
	business.GET("/contacts/enriched", handlers.Business.EnrichedContacts)
}
