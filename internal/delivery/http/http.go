package http

import (
	"context"

	"strategy-scanner/config"
	"strategy-scanner/internal/render"
	"strategy-scanner/internal/service"
	"strategy-scanner/pkg/logger"
	"strategy-scanner/pkg/middleware"

	goValidator "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"golang.org/x/text/language"
)

type HttpAPIHandler struct {
	cfg       *config.Config
	log       *logger.Logger
	echo      *echo.Echo
	validator *goValidator.Validate
	service   *service.Service
	renderer  *render.Renderer
}

func NewHttpAPIHandler(ctx context.Context, cfg *config.Config, log *logger.Logger, echo *echo.Echo, validator *goValidator.Validate, service *service.Service) *HttpAPIHandler {
	return &HttpAPIHandler{
		cfg:       cfg,
		log:       log,
		echo:      echo,
		validator: validator,
		service:   service,
		renderer:  render.New(language.English),
	}
}

func (h *HttpAPIHandler) SetupRoutes() {
	h.echo.Use(echoMiddleware.Recover())
	h.echo.Use(echoMiddleware.RequestID())
	h.echo.Use(middleware.NewRequestLogger(h.log, "/health"))

	h.echo.GET("/health", h.health)

	base := h.echo.Group("/api", middleware.NewRateLimiterMiddleware(h.cfg.RateLimit))
	h.SetupScan(base)
	h.SetupCatalog(base)

	h.SetupWeb()
}
