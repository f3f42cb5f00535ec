// File: internal/app/server.go
package app

import (
	"context"
	"errors"
	"net/http"
	"time"

	_ "wedding_directory_backend/docs" // registers the OpenAPI document
	"wedding_directory_backend/internal/account"
	"wedding_directory_backend/internal/common"
	"wedding_directory_backend/internal/config"
	"wedding_directory_backend/internal/freelancer"
	"wedding_directory_backend/internal/jobs"
	"wedding_directory_backend/internal/middleware"
	"wedding_directory_backend/internal/review"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Server struct holds the dependencies for the HTTP server.
type Server struct {
	httpServer *http.Server
	router     *gin.Engine
	cfg        *config.Config
	logger     *zap.Logger
	index      freelancer.SearchIndex
	sweepJob   *jobs.OrphanSweepJob
}

// NewServer creates a new instance of our application server.
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	freelancerHandler *freelancer.Handler,
	reviewHandler *review.Handler,
	accountHandler *account.Handler,
	index freelancer.SearchIndex,
	sweepJob *jobs.OrphanSweepJob,
) (*Server, error) {
	gin.SetMode(cfg.GinMode)
	if err := freelancer.RegisterGinValidations(); err != nil {
		return nil, err
	}

	router := gin.New()
	router.HandleMethodNotAllowed = true

	// --- Global Middleware ---
	router.Use(middleware.ZapLogger(logger, cfg))
	router.Use(middleware.ErrorHandler(logger))
	router.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if len(cfg.CORSOrigins) == 0 || (len(cfg.CORSOrigins) == 1 && cfg.CORSOrigins[0] == "*") {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.CORSOrigins
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", common.RequestIDHeader}
	corsConfig.ExposeHeaders = []string{"Content-Length", common.RequestIDHeader}
	router.Use(cors.New(corsConfig))

	router.NoRoute(middleware.NoRoute())
	router.NoMethod(middleware.NoMethod())

	// --- Setup Routes ---
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "UP", "search": index.Enabled()})
	})
	if cfg.SwaggerEnabled {
		router.GET("/api-docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	freelancerHandler.RegisterRoutes(router)
	reviewHandler.RegisterRoutes(router)
	accountHandler.RegisterRoutes(router)

	httpServer := &http.Server{
		Addr:         cfg.ServerAddress(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	return &Server{
		httpServer: httpServer,
		router:     router,
		cfg:        cfg,
		logger:     logger,
		index:      index,
		sweepJob:   sweepJob,
	}, nil
}

// Router exposes the configured engine.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Start prepares the search index, starts the background jobs and serves
// HTTP until Shutdown is called.
func (s *Server) Start() error {
	if idx, ok := s.index.(*freelancer.ElasticIndex); ok {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		err := idx.EnsureIndex(ctx)
		cancel()
		if err != nil {
			s.logger.Error("Failed to create Elasticsearch freelancer index; searches fall back to the database", zap.Error(err))
		}
	}

	if s.sweepJob != nil {
		if err := s.sweepJob.SetupAndStart(); err != nil {
			s.logger.Error("Failed to setup and start orphan sweep job", zap.Error(err))
		}
	}

	s.logger.Info("HTTP Server starting",
		zap.String("address", s.httpServer.Addr),
		zap.String("gin_mode", s.cfg.GinMode),
	)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		s.logger.Error("Failed to start HTTP server", zap.Error(err))
		return err
	}
	s.logger.Info("HTTP Server stopped")
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Attempting graceful server shutdown...")
	if s.sweepJob != nil {
		s.sweepJob.Stop()
	}
	return s.httpServer.Shutdown(ctx)
}
