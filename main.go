package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/bellapacxx/squares-backend/config"
	"github.com/bellapacxx/squares-backend/controllers"
	"github.com/bellapacxx/squares-backend/repository"
	"github.com/bellapacxx/squares-backend/routes"
	"github.com/bellapacxx/squares-backend/services"
	"github.com/bellapacxx/squares-backend/utils/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// setupRepository picks postgres when DATABASE_URL is set, memory otherwise.
func setupRepository(cfg *config.Config) repository.Repository {
	if cfg.DatabaseURL == "" {
		logger.Info("[Init] DATABASE_URL not set, keeping games in memory")
		return repository.NewInMemoryRepository()
	}
	db, err := config.ConnectDB(cfg.DatabaseURL)
	if err != nil {
		logger.Fatalf("[FATAL] %v", err)
	}
	logger.Info("[Init] Connected to database")
	return repository.NewGormRepository(db)
}

// setupNotifier fans changes out over RabbitMQ when configured. Without it,
// or if the broker is unreachable, only this instance's subscribers are told.
func setupNotifier(cfg *config.Config, hub *services.Hub, repo repository.Repository) (services.Notifier, func()) {
	if cfg.AMQPURL == "" {
		return services.NewLocalNotifier(hub), func() {}
	}
	n, err := services.NewAMQPNotifier(cfg.AMQPURL, hub, repo)
	if err != nil {
		logger.Errorf("[Init] %v; falling back to local notifications", err)
		return services.NewLocalNotifier(hub), func() {}
	}
	logger.Info("[Init] Publishing game updates through RabbitMQ")
	return n, func() {
		if err := n.Close(); err != nil {
			logger.Warnf("[Shutdown] closing RabbitMQ: %v", err)
		}
	}
}

// setupRouter initializes Gin routes and middleware
func setupRouter(cfg *config.Config, h *controllers.Handler) *gin.Engine {
	r := gin.New()

	// Middleware
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", controllers.SessionHeader},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.SetupRoutes(r, h)

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "timestamp": time.Now()})
	})

	return r
}

func main() {
	cfg := config.Load()
	if err := logger.Init(cfg.LogLevel); err != nil {
		panic(err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repo := setupRepository(cfg)

	odds, err := services.LoadOddsTable(cfg.OddsTablePath)
	if err != nil {
		logger.Fatalf("[FATAL] %v", err)
	}

	hub := services.NewHub()
	notifier, closeNotifier := setupNotifier(cfg, hub, repo)
	defer closeNotifier()

	live := services.NewLiveScores(services.NewScoreFeed(cfg.ScoreFeedURL), cfg.ScorePollInterval)
	go live.Run(ctx)

	games := services.NewGameService(repo, notifier, odds)
	router := setupRouter(cfg, controllers.NewHandler(games, hub, live))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Infof("🚀 Squares Backend server starting on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("[FATAL] Failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("[Shutdown] stopping server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("[Shutdown] %v", err)
	}
}
