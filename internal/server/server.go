package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/evalops/scorebench/internal/logging"
	"github.com/evalops/scorebench/internal/version"
)

// Config holds the scoring server settings. All values are explicit
// configuration from the CLI; nothing is read from process-wide state.
type Config struct {
	BindAddr string // Interface to bind, e.g. 0.0.0.0
	BindPort int    // TCP port for the HTTP listener
	Model    *LinearModel
}

// Server hosts the scoring HTTP endpoint and a health route.
type Server struct {
	model      *LinearModel
	httpServer *http.Server
	bindAddr   string
	bindPort   int
	startTime  time.Time
}

// NewServer creates a scoring server instance around a loaded model.
func NewServer(config *Config) *Server {
	// Set Gin to release mode for production
	gin.SetMode(gin.ReleaseMode)

	return &Server{
		model:    config.Model,
		bindAddr: config.BindAddr,
		bindPort: config.BindPort,
	}
}

// Start starts the scoring HTTP server. Tests the bind first so address
// conflicts surface immediately instead of inside the serve goroutine.
func (s *Server) Start() error {
	logging.Info("Starting scoring server on %s:%d", s.bindAddr, s.bindPort)
	s.startTime = time.Now()

	// Create Gin router
	router := gin.New()

	// Route Gin's internal logging through the unified logging system
	if !logging.IsConfiguredByCLI() {
		gin.DefaultWriter = logging.NewLevelWriter("INFO", "gin")
		gin.DefaultErrorWriter = logging.NewLevelWriter("ERROR", "gin")
	}

	// Add middleware
	router.Use(s.loggingMiddleware())
	router.Use(gin.Recovery())

	// Setup routes
	s.setupRoutes(router)

	// Create HTTP server
	s.httpServer = &http.Server{
		Addr:    fmt.Sprintf("%s:%d", s.bindAddr, s.bindPort),
		Handler: router,
		// Timeouts for production
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Test binding first to catch errors immediately
	listener, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("failed to bind to %s: %w", s.httpServer.Addr, err)
	}
	listener.Close() // Close the test listener

	// Start server in goroutine now that we know binding works
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Error("HTTP server failed: %v", err)
		}
	}()

	logging.Success("Scoring server started successfully")
	return nil
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	logging.Info("Shutting down scoring server...")

	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}

	return nil
}

// setupRoutes configures the scoring and health routes.
func (s *Server) setupRoutes(router *gin.Engine) {
	router.GET("/health", HandleHealth(version.ScorebenchVersion, s.startTime))
	router.POST("/score", HandleScore(s.model))
}

// loggingMiddleware provides request logging through the unified logger.
func (s *Server) loggingMiddleware() gin.HandlerFunc {
	return gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		// Log using our custom logger
		logging.Info("%s - [%s] \"%s %s %s %d %s \"%s\" %s\"",
			param.ClientIP,
			param.TimeStamp.Format(time.RFC1123),
			param.Method,
			param.Path,
			param.Request.Proto,
			param.StatusCode,
			param.Latency,
			param.Request.UserAgent(),
			param.ErrorMessage,
		)
		return ""
	})
}
