package handlers

import (
	"env_advisor/internal/config"
	"env_advisor/internal/logger"
	"env_advisor/internal/metrics"
	"env_advisor/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const defaultWSMaxMessageBytes = 4096

// Options carries the config values the HTTP layer needs.
type Options struct {
	Version           string
	SwaggerEnabled    bool
	WSMaxMessageBytes int64
}

// Handler wires HTTP layer to services, logging and metrics.
type Handler struct {
	services *service.Service
	log      *logger.Logger
	metrics  *metrics.Metrics
	opts     Options
}

// NewHandler constructs a new HTTP handler with dependencies. log and m may
// be nil.
func NewHandler(services *service.Service, log *logger.Logger, m *metrics.Metrics, opts Options) *Handler {
	if opts.Version == "" {
		opts.Version = config.DefaultVersion
	}
	if opts.WSMaxMessageBytes <= 0 {
		opts.WSMaxMessageBytes = defaultWSMaxMessageBytes
	}
	return &Handler{services: services, log: log, metrics: m, opts: opts}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(h.requestID, h.accessLog, gin.CustomRecovery(h.recoverPanic))

	if h.opts.SwaggerEnabled {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
	if h.metrics != nil {
		router.GET("/metrics", gin.WrapH(h.metrics.Handler()))
	}

	router.GET("/health", h.health)

	h.registerAuthRoutes(router)
	h.registerAPIRoutes(router)

	// Streaming analysis over a WebSocket upgrade, same port.
	router.GET("/ws", h.deviceAuthMiddleware, h.wsConnect)

	return router
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	auth := r.Group("/auth")
	{
		auth.POST("/token", h.issueToken)
	}
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api", h.deviceAuthMiddleware)
	{
		api.POST("/analyze", h.analyze)
	}
}
