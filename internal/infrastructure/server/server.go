// Package server wires the SurfGate backend together: configuration,
// logging, metrics, the service registry, and the HTTP and WebSocket
// surfaces.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	apihttp "github.com/surfgate/backend/internal/api/http"
	"github.com/surfgate/backend/internal/api/middleware"
	"github.com/surfgate/backend/internal/api/ws"
	"github.com/surfgate/backend/internal/infrastructure/config"
	"github.com/surfgate/backend/internal/infrastructure/logging"
	"github.com/surfgate/backend/internal/infrastructure/monitoring"
	"github.com/surfgate/backend/internal/infrastructure/tracing"
	"github.com/surfgate/backend/internal/providers/navigation"
	"github.com/surfgate/backend/internal/service"
	"github.com/surfgate/backend/internal/urlcheck"
)

// Server wraps the HTTP server and dependencies
type Server struct {
	router   *gin.Engine
	registry *service.Registry
	logger   *logging.Logger
	config   *config.Config
	metrics  *monitoring.Metrics
	httpSrv  *http.Server
}

// NewServer creates a new server instance
func NewServer(cfg *config.Config) (*Server, error) {
	var logger *logging.Logger
	if cfg.Logging.Development {
		logger = logging.NewDevelopment()
	} else {
		logger = logging.NewDefault()
	}

	logger.Info("Initializing SurfGate Server",
		zap.String("port", cfg.Server.Port),
		zap.Int("batch_workers", cfg.Validation.BatchWorkers),
	)

	metrics := monitoring.NewMetrics()
	tracer := tracing.New("surfgate", logger.Logger)

	validator := urlcheck.New().WithWorkers(cfg.Validation.BatchWorkers)
	provider := navigation.NewWithValidator(validator)

	serviceRegistry := service.NewRegistry()
	if err := serviceRegistry.Register(provider); err != nil {
		return nil, fmt.Errorf("failed to register navigation provider: %w", err)
	}

	if !cfg.Logging.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(tracing.HTTPMiddleware(tracer))
	router.Use(monitoring.Middleware(metrics))
	router.Use(middleware.CORS(middleware.DefaultCORSConfig()))
	if cfg.RateLimit.Enabled {
		logger.Info("Rate limiting enabled",
			zap.Int("rps", cfg.RateLimit.RequestsPerSecond),
			zap.Int("burst", cfg.RateLimit.Burst),
		)
		router.Use(middleware.RateLimit(middleware.RateLimitConfig{
			RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
			Burst:             cfg.RateLimit.Burst,
		}))
	}

	handlers := apihttp.NewHandlers(serviceRegistry, validator, metrics, logger, cfg.Validation.MaxBatchSize)
	wsHandler := ws.NewHandler(validator, metrics, logger)

	router.GET("/", handlers.Root)
	router.GET("/health", handlers.Health)

	// Service management
	router.GET("/services", handlers.ListServices)
	router.POST("/services/execute", handlers.ExecuteService)

	// Validation
	router.POST("/validate", handlers.Validate)
	router.POST("/validate/batch", handlers.ValidateBatch)

	// WebSocket
	router.GET("/stream", wsHandler.HandleConnection)

	// Metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/metrics/json", handlers.MetricsJSON)

	logger.Info("Server initialized successfully")

	return &Server{
		router:   router,
		registry: serviceRegistry,
		logger:   logger,
		config:   cfg,
		metrics:  metrics,
	}, nil
}

// Router exposes the gin engine, for tests
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Run starts the HTTP server and blocks until it stops
func (s *Server) Run() error {
	addr := s.config.Server.Host + ":" + s.config.Server.Port
	s.logger.Info("Starting HTTP server", zap.String("addr", addr))

	s.httpSrv = &http.Server{
		Addr:    addr,
		Handler: s.router,
	}

	if err := s.httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Close gracefully shuts down the server
func (s *Server) Close() error {
	s.logger.Info("Shutting down server...")

	if s.httpSrv != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.httpSrv.Shutdown(ctx); err != nil {
			s.logger.Error("Failed to shut down HTTP server", zap.Error(err))
			return fmt.Errorf("failed to shut down http server: %w", err)
		}
	}

	s.logger.Sync()
	return nil
}
