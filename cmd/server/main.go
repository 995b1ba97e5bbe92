package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	httpAdapter "github.com/khoahotran/portfolio/adapters/http"
	"github.com/khoahotran/portfolio/adapters/persistence"
	"github.com/khoahotran/portfolio/adapters/view"
	"github.com/khoahotran/portfolio/internal/application/service"
	interactionUC "github.com/khoahotran/portfolio/internal/application/usecase/interaction"
	pageUC "github.com/khoahotran/portfolio/internal/application/usecase/page"
	profileUC "github.com/khoahotran/portfolio/internal/application/usecase/profile"
	projectUC "github.com/khoahotran/portfolio/internal/application/usecase/project"
	"github.com/khoahotran/portfolio/internal/config"
	"github.com/khoahotran/portfolio/internal/content"
	"github.com/khoahotran/portfolio/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger, err := logger.NewZapLogger(cfg.App.Env)
	if err != nil {
		log.Fatalf("FATAL: cannot init logger: %v", err)
	}
	defer appLogger.Sync()

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Repositories
	contentRepo, err := persistence.NewContentRepo(content.Default(), view.SectionIDs())
	if err != nil {
		appLogger.Fatal("Invalid page content", err)
	}

	var sessions service.SessionStore
	switch cfg.Session.Driver {
	case config.SessionDriverRedis:
		redisClient, err := persistence.NewRedisClient(ctx, cfg)
		if err != nil {
			appLogger.Fatal("Cannot connect Redis", err, zap.String("addr", cfg.Redis.Addr))
		}
		defer redisClient.Close()
		sessions = persistence.NewRedisSessionStore(redisClient, cfg.Session.TTL)
	default:
		memStore := persistence.NewMemorySessionStore(cfg.Session.TTL)
		go memStore.RunSweeper(ctx, max(cfg.Session.TTL/2, time.Second))
		sessions = memStore
	}
	appLogger.Info("Session store ready", zap.String("driver", cfg.Session.Driver), zap.Duration("ttl", cfg.Session.TTL))

	// Use Cases
	renderPageUseCase := pageUC.NewRenderPageUseCase(contentRepo, sessions, appLogger)
	handleEventUseCase := interactionUC.NewHandleEventUseCase(contentRepo, sessions, appLogger)
	profileUseCase := profileUC.NewProfileUseCase(contentRepo)
	listProjectsUseCase := projectUC.NewListProjectsUseCase(contentRepo, appLogger)
	getProjectUseCase := projectUC.NewGetProjectUseCase(contentRepo, appLogger)

	// HTTP Handlers
	handlers := httpAdapter.Handlers{
		Page:    httpAdapter.NewPageHandler(renderPageUseCase, handleEventUseCase, appLogger),
		Profile: httpAdapter.NewProfileHandler(profileUseCase, appLogger),
		Project: httpAdapter.NewProjectHandler(listProjectsUseCase, getProjectUseCase, appLogger),
	}

	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		SessionCookie: cfg.Session.CookieName,
		SessionTTL:    cfg.Session.TTL,
		AssetsDir:     cfg.Assets.Dir,
	}, handlers, appLogger)

	srv := &http.Server{
		Addr:              ":" + cfg.App.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		appLogger.Info("Server running", zap.String("port", cfg.App.Port), zap.String("env", cfg.App.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal("Cannot run server", err)
		}
	}()

	<-ctx.Done()
	appLogger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", err)
	}
}
