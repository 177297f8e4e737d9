package api

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"strings"
	"syscall"
	"time"

	api_utils "github.com/ethanbaker/api/pkg/utils"
	"github.com/ethanbaker/names/internal/api/middleware"
	"github.com/ethanbaker/names/internal/metrics"
	"github.com/ethanbaker/names/pkg/names"
	"github.com/ethanbaker/names/pkg/utils"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"

	health_module "github.com/ethanbaker/names/internal/api/modules/health"
	names_module "github.com/ethanbaker/names/internal/api/modules/names"
)

const (
	SHUTDOWN_TIMEOUT      = 10 * time.Second
	RATE_LIMITER_MAX_IDLE = 10 * time.Minute
)

// NewEngine builds the gin engine serving the names API on top of the given service
func NewEngine(cfg *utils.Config, service *names.Service, limiter *middleware.RateLimiter) *gin.Engine {
	engine := gin.New()
	engine.NoRoute(api_utils.NoRouteHandler)

	// Add trusted proxies
	engine.SetTrustedProxies(nil)

	// Request logging, metrics and error mapping. ErrorHandler wraps the recovery so panics are mapped too
	engine.Use(gin.Logger(), middleware.RequestID())
	if cfg.GetBoolWithDefault("METRICS_ENABLED", true) {
		engine.Use(metrics.Instrument())
	}
	engine.Use(middleware.ErrorHandler(), gin.CustomRecovery(middleware.Recover))

	// Add CORS using gin-contrib/cors (https://github.com/gin-contrib/cors for documentation)
	engine.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Split(cfg.GetWithDefault("CORS_ALLOWED_ORIGINS", "*"), ","),
		AllowMethods:     []string{"OPTIONS", "GET", "POST"},
		AllowHeaders:     []string{"Origin", "Content-Type", middleware.REQUEST_ID_HEADER},
		ExposeHeaders:    []string{"Content-Length", middleware.REQUEST_ID_HEADER},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	if cfg.GetBoolWithDefault("METRICS_ENABLED", true) {
		engine.GET("/metrics", gin.WrapH(metrics.Handler()))
	}

	// Routes are served at the root and under '/api'
	for _, group := range []*gin.RouterGroup{&engine.RouterGroup, engine.Group("/api")} {
		health_module.RegisterRoutes(group, service.Store())
		names_module.RegisterRoutes(group, service, limiter.Handler())
	}

	return engine
}

// newScheduler is a helper function that sets up the background jobs: the store health
// monitor and the rate limiter cleanup
func newScheduler(cfg *utils.Config, service *names.Service, limiter *middleware.RateLimiter) (*cron.Cron, error) {
	scheduler := cron.New()

	if cfg.GetBoolWithDefault("HEALTH_MONITOR_ENABLED", true) {
		schedule := cfg.GetWithDefault("HEALTH_MONITOR_SCHEDULE", "@every 30s")
		monitor := health_module.NewMonitor(service.Store())
		if _, err := scheduler.AddFunc(schedule, monitor.Run); err != nil {
			return nil, err
		}

		// Probe once so metrics are populated from the start
		monitor.Run()
	}

	if limiter.Enabled() {
		if _, err := scheduler.AddFunc("@every 1m", func() { limiter.Cleanup(RATE_LIMITER_MAX_IDLE) }); err != nil {
			return nil, err
		}
	}

	return scheduler, nil
}

// Start creates the names service and serves the API until SIGINT or SIGTERM.
// Setup failures and listen errors are returned after the store and scheduler are closed
func Start(cfg *utils.Config) error {
	// Initialized configuration settings
	port := cfg.GetWithDefault("API_PORT", "8080")
	gin.SetMode(cfg.GetWithDefault("GIN_MODE", gin.ReleaseMode))

	service, err := names_module.NewService(cfg)
	if err != nil {
		return fmt.Errorf("failed to create names service: %w", err)
	}
	defer service.Store().Close()

	limiter := middleware.NewRateLimiter(
		cfg.GetFloatWithDefault("NAMES_RATE_LIMIT", 0),
		cfg.GetIntWithDefault("NAMES_RATE_BURST", 5),
	)

	scheduler, err := newScheduler(cfg, service, limiter)
	if err != nil {
		return fmt.Errorf("failed to schedule background jobs: %w", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	server := &http.Server{
		Addr:              ":" + port,
		Handler:           NewEngine(cfg, service, limiter),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Then after performing initial setup, start the server
	return serve(ctx, server)
}

// serve runs the server until ctx is cancelled or it fails to listen, then shuts it down
func serve(ctx context.Context, server *http.Server) error {
	serveErr := make(chan error, 1)
	go func() {
		log.Printf("[API-MAIN]: Listening on %s", server.Addr)
		serveErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("failed to start server: %w", err)
	case <-ctx.Done():
	}

	log.Println("[API-MAIN]: Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), SHUTDOWN_TIMEOUT)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}

	return nil
}
