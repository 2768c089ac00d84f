package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"

	"liquidacenter-live/internal/config"
	"liquidacenter-live/internal/handler"
	"liquidacenter-live/internal/middleware"
	"liquidacenter-live/internal/repository"
	"liquidacenter-live/internal/service"
	"liquidacenter-live/pkg/logger"
	"liquidacenter-live/pkg/redis"
)

// lifecycleService is anything with a janitor routine to start and stop.
type lifecycleService interface {
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
}

// Resources holds all resources that need cleanup
type Resources struct {
	redisClient *redis.Client
	services    []lifecycleService
	server      *http.Server
	log         *logger.Logger
	mu          sync.Mutex
	closed      bool
}

// Cleanup gracefully closes all resources
func (r *Resources) Cleanup(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return nil
	}
	r.closed = true

	var errs []error

	r.log.Info("Starting graceful shutdown...")

	// Shutdown HTTP server first to stop accepting new requests
	if r.server != nil {
		if err := r.server.Shutdown(ctx); err != nil {
			r.log.WithError(err).Error("Failed to shutdown HTTP server")
			errs = append(errs, fmt.Errorf("HTTP server shutdown: %w", err))
		} else {
			r.log.Info("HTTP server shutdown complete")
		}
	}

	// Stop janitor routines
	for _, svc := range r.services {
		if err := svc.Stop(ctx); err != nil {
			r.log.WithError(err).Error("Failed to stop service")
			errs = append(errs, fmt.Errorf("service shutdown: %w", err))
		}
	}

	// Close Redis connection with health check
	if r.redisClient != nil {
		healthCtx, healthCancel := context.WithTimeout(ctx, 2*time.Second)
		if err := r.redisClient.Health(healthCtx); err != nil {
			r.log.WithError(err).Warn("Redis health check failed before closing")
		}
		healthCancel()

		if err := r.redisClient.Close(); err != nil {
			r.log.WithError(err).Error("Failed to close Redis connection")
			errs = append(errs, fmt.Errorf("Redis close: %w", err))
		} else {
			r.log.Info("Redis connection closed")
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("cleanup completed with %d errors: %v", len(errs), errs)
	}

	r.log.Info("Graceful shutdown completed successfully")
	return nil
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	log.WithFields(map[string]interface{}{
		"port":        cfg.Port,
		"log_level":   cfg.LogLevel,
		"environment": cfg.Environment,
	}).Info("Starting liquidacenter-live server")

	// Redis is optional: the hot counters fall back to process-local
	// stores when no URL is configured.
	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		redisClient, err = redis.NewClient(cfg.RedisURL, cfg.Environment, log.Logger)
		if err != nil {
			log.WithError(err).Fatal("Failed to connect to Redis")
		}
		log.Info("Using Redis-backed live stores")
	}

	var (
		voteStore  repository.VoteStore
		statsStore repository.StatsStore
		chatStore  repository.ChatStore
	)
	if redisClient != nil {
		voteStore = repository.NewRedisVoteStore(redisClient)
		statsStore = repository.NewRedisStatsStore(redisClient)
		chatStore = repository.NewRedisChatStore(redisClient)
	} else {
		voteStore = repository.NewMemoryVoteStore()
		statsStore = repository.NewMemoryStatsStore()
		chatStore = repository.NewMemoryChatStore()
	}

	questionService := service.NewQuestionService(repository.NewMemoryQuestionStore(), log)
	voteService := service.NewVoteService(voteStore, log, cfg.VoteResetInterval)
	statsService := service.NewStatsService(statsStore, log, cfg.StatsResetInterval)
	chatService := service.NewChatService(chatStore, log, cfg.ChatMaxMessages, cfg.ChatKeepMessages, cfg.ChatTrimInterval)
	bannerService := service.NewBannerService(repository.NewMemoryBannerStore(), log)

	ctx := context.Background()
	janitors := []lifecycleService{voteService, statsService, chatService}
	for _, svc := range janitors {
		if err := svc.Start(ctx); err != nil {
			log.WithError(err).Fatal("Failed to start service")
		}
	}

	router := setupRouter(cfg, log, questionService, voteService, statsService, chatService, bannerService)

	server := &http.Server{
		Addr:           ":" + cfg.Port,
		Handler:        router,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   60 * time.Second,
		IdleTimeout:    120 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	resources := &Resources{
		redisClient: redisClient,
		services:    janitors,
		server:      server,
		log:         log,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)

	defer func() {
		cleanupCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := resources.Cleanup(cleanupCtx); err != nil {
			log.WithError(err).Error("Cleanup completed with errors")
		}
	}()

	serverErrChan := make(chan error, 1)
	go func() {
		log.Info("Server starting on port " + cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Error("Server error occurred")
			serverErrChan <- err
		}
	}()

	select {
	case sig := <-quit:
		log.WithField("signal", sig.String()).Info("Received shutdown signal")
	case err := <-serverErrChan:
		log.WithError(err).Error("Server failed, initiating shutdown")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 25*time.Second)
	defer cancel()

	if err := resources.Cleanup(shutdownCtx); err != nil {
		log.WithError(err).Error("Graceful shutdown completed with errors")
		os.Exit(1)
	}

	log.Info("Application shutdown complete")
}

// setupRouter configures and returns the HTTP router
func setupRouter(
	cfg *config.Config,
	log *logger.Logger,
	questionService *service.QuestionService,
	voteService *service.VoteService,
	statsService *service.StatsService,
	chatService *service.ChatService,
	bannerService *service.BannerService,
) *chi.Mux {
	r := chi.NewRouter()

	corsConfig := &middleware.CORSConfig{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "Content-Length", "Accept-Encoding"},
		AllowCredentials: true,
		MaxAge:           86400,
	}

	r.Use(middleware.CORS(corsConfig, log))
	r.Use(middleware.RequestID())
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Compress(5))
	r.Use(chiMiddleware.Timeout(60 * time.Second))

	healthHandler := handler.NewHealthHandler(log)
	questionHandler := handler.NewQuestionHandler(questionService, log)
	voteHandler := handler.NewVoteHandler(voteService, log)
	statsHandler := handler.NewStatsHandler(statsService, log)
	chatHandler := handler.NewChatHandler(chatService, log)
	bannerHandler := handler.NewBannerHandler(bannerService, log)

	r.Get("/health", healthHandler.Check)

	r.Route("/api", func(r chi.Router) {
		questionHandler.RegisterRoutes(r)
		voteHandler.RegisterRoutes(r)
		statsHandler.RegisterRoutes(r)
		chatHandler.RegisterRoutes(r)
		bannerHandler.RegisterRoutes(r)
	})

	r.MethodNotAllowed(handler.MethodNotAllowed(log))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"Endpoint not found"}`))
	})

	log.Info("Router configured successfully")
	return r
}
