package api

import (
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/userhub/users-api/docs"
	"github.com/userhub/users-api/internal/api/handler"
	"github.com/userhub/users-api/internal/api/middleware"
	"github.com/userhub/users-api/internal/core/ports"
	"github.com/userhub/users-api/internal/core/service"
	"github.com/userhub/users-api/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// repo is the single record store shared by every request.
func NewRouter(cfg *config.Config, repo ports.UserRepository, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	// Recover sits inside the logger and metrics so panics still get an
	// access line and a 500 observation.
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.RequestLogger(log))
	e.Use(middleware.Metrics())
	e.Use(echomiddleware.RecoverWithConfig(echomiddleware.RecoverConfig{
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			log.Error().Err(err).Bytes("stack", stack).Str("path", c.Request().URL.Path).Msg("panic recovered")
			return err
		},
	}))
	e.Use(echomiddleware.CORS())

	// --- Dependencies ---
	userService := service.NewUserService(repo, log)
	userHandler := handler.NewUserHandler(userService)
	healthHandler := handler.NewHealthHandler(cfg.Env)

	// --- Index & health ---
	e.GET("/", healthHandler.Index)
	e.GET("/health", healthHandler.Liveness)

	// --- User routes ---
	users := e.Group("/api/users")
	users.POST("", userHandler.Create)
	users.GET("", userHandler.List)
	users.GET("/:id", userHandler.Get)
	users.DELETE("/:id", userHandler.Delete)

	// --- Operational ---
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
