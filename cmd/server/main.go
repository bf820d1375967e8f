package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	_ "kanban/docs" // swagger docs

	"github.com/getsentry/sentry-go"
	"github.com/labstack/echo/v4"
	"github.com/spf13/pflag"

	"kanban/internal/auth"
	"kanban/internal/cache"
	"kanban/internal/config"
	"kanban/internal/db"
	"kanban/internal/handler"
	"kanban/internal/logger"
	"kanban/internal/repository"
	"kanban/internal/router"
	"kanban/internal/service"
)

// @title Kanban API
// @version 1.0
// @description Kanban board API with boards, lists, labels, likes and JWT session authentication.
// @host localhost:3000
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	configPath := pflag.StringP("config", "c", "config.yaml", "path to the YAML config file")
	pflag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("load config")
	}
	logger.Init(cfg.LogLevel)

	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:         cfg.SentryDSN,
			Environment: cfg.SentryEnvironment,
		}); err != nil {
			logger.Warn().Err(err).Msg("sentry init failed, continuing without error reporting")
		}
		defer sentry.Flush(2 * time.Second)
	}

	gormDB, err := db.Open(cfg.DBDriver, cfg.DBDSN)
	if err != nil {
		logger.Fatal().Err(err).Msg("database init")
	}

	if cfg.ResetDB {
		logger.Warn().Msg("reset_db enabled, dropping all tables")
		if err := db.Reset(gormDB); err != nil {
			logger.Fatal().Err(err).Msg("reset database")
		}
	}
	if err := db.Migrate(gormDB); err != nil {
		logger.Fatal().Err(err).Msg("migrate database")
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB, "kanban:")
	defer cacheClient.Close()
	if err := cacheClient.Ping(context.Background()); err != nil {
		logger.Warn().Err(err).Str("addr", cfg.RedisAddr).Msg("redis unreachable, Google sign-in will fail until it is back")
	}

	repos := repository.New(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret, cfg.JWTAccessExpiry, cfg.JWTRefreshExpiry)
	states := auth.NewStateStore(cacheClient)
	var provider auth.OAuthProvider
	if cfg.GoogleClientID != "" {
		provider = auth.NewGoogleProvider(cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.GoogleRedirectURL)
	} else {
		logger.Info().Msg("google_client_id not set, Google sign-in disabled")
	}

	// Initialize services
	authService := service.NewAuthService(repos, jwtService)
	boardService := service.NewBoardService(repos)
	listService := service.NewListService(repos)
	labelService := service.NewLabelService(repos)

	e := echo.New()
	e.HideBanner = true
	router.Register(e, cfg, authService, router.Handlers{
		Auth:  handler.NewAuthHandler(authService, provider, states, cfg.FrontendURL),
		Board: handler.NewBoardHandler(boardService),
		List:  handler.NewListHandler(listService),
		Label: handler.NewLabelHandler(labelService),
	})

	logger.Info().Str("url", swaggerURL(cfg)).Msg("swagger documentation available")

	go func() {
		addr := ":" + cfg.ServerPort
		logger.Info().Str("addr", addr).Msg("server listening")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("server start")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("server shutdown")
	}
	logger.Info().Msg("server stopped")
}

func swaggerURL(cfg *config.Config) string {
	host := cfg.SwaggerHost
	if host == "" {
		host = "localhost:" + cfg.ServerPort
	}
	// SwaggerHost may already include the scheme
	if !strings.HasPrefix(host, "http://") && !strings.HasPrefix(host, "https://") {
		host = "http://" + host
	}
	return host + "/swagger/index.html"
}
