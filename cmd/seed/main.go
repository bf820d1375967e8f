package main

import (
	"context"

	"github.com/spf13/pflag"

	"kanban/internal/auth"
	"kanban/internal/config"
	"kanban/internal/db"
	"kanban/internal/logger"
	"kanban/internal/repository"
	"kanban/internal/seed"
	"kanban/internal/service"
)

func main() {
	configPath := pflag.StringP("config", "c", "config.yaml", "path to the YAML config file")
	source := pflag.StringP("file", "f", "seed.json", "fixture path or http(s) URL")
	pflag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("load config")
	}
	logger.Init(cfg.LogLevel)
	logger.Info().Msg("starting seed script")

	gormDB, err := db.Open(cfg.DBDriver, cfg.DBDSN)
	if err != nil {
		logger.Fatal().Err(err).Msg("connect to database")
	}

	// Run migrations to ensure schema is up to date
	if err := db.Migrate(gormDB); err != nil {
		logger.Fatal().Err(err).Msg("migrate database")
	}

	ctx := context.Background()
	logger.Info().Str("source", *source).Msg("loading fixture")
	fixture, err := seed.Load(ctx, *source)
	if err != nil {
		logger.Fatal().Err(err).Msg("load fixture")
	}

	repos := repository.New(gormDB)
	authService := service.NewAuthService(repos, auth.NewJWTService(cfg.JWTSecret, cfg.JWTAccessExpiry, cfg.JWTRefreshExpiry))
	seeder := seed.New(authService, service.NewBoardService(repos), service.NewListService(repos))

	stats, err := seeder.Run(ctx, fixture)
	if err != nil {
		logger.Fatal().Err(err).
			Int("users_created", stats.UsersCreated).
			Int("boards", stats.Boards).
			Msg("seed failed")
	}

	logger.Info().
		Int("users_created", stats.UsersCreated).
		Int("users_existing", stats.UsersExisting).
		Int("boards", stats.Boards).
		Int("lists", stats.Lists).
		Msg("seed completed")
}
