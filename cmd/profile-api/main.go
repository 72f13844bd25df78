// Command profile-api serves the read-only profile content consumed by the
// site. Content is loaded from a YAML seed into an in-memory database at
// startup.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/vladmesh/personal-site/internal/bootstrap"
	"github.com/vladmesh/personal-site/internal/config"
	"github.com/vladmesh/personal-site/internal/logging"
	"github.com/vladmesh/personal-site/internal/profileapi"
	"github.com/vladmesh/personal-site/internal/server"
	"github.com/vladmesh/personal-site/internal/store"
	"github.com/vladmesh/personal-site/internal/telemetry"
)

func main() {
	addr := pflag.String("addr", "", "listen address (overrides API_ADDR)")
	seedPath := pflag.String("seed", "", "seed YAML file (overrides SEED_PATH)")
	envFile := pflag.StringSlice("env-file", []string{".env"}, "dotenv files to load when present")
	pflag.Parse()

	if err := config.LoadDotenvIfPresent(*envFile...); err != nil {
		fmt.Fprintf(os.Stderr, "load env: %v\n", err)
		os.Exit(1)
	}
	cfg, err := config.LoadAPI()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	if *addr != "" {
		cfg.Addr = *addr
	}
	if *seedPath != "" {
		cfg.SeedPath = *seedPath
	}

	if err := run(context.Background(), cfg); err != nil {
		slog.Error("profile_api_exited", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.APIConfig) error {
	logger, err := logging.New(logging.Options{
		Service: cfg.Telemetry.ServiceName,
		Level:   cfg.Log.Level,
		Dir:     cfg.Log.Dir,
		Traced:  cfg.Telemetry.Enabled,
	})
	if err != nil {
		return err
	}

	app := bootstrap.NewServerApp("profile-api", cfg.Addr, nil, logger)
	defer func() { _ = app.Close() }()

	provider, err := telemetry.NewProvider(ctx, cfg.Telemetry, cfg.Env)
	if err != nil {
		return err
	}
	app.OnShutdown(provider.Shutdown)

	seed, err := store.LoadSeed(cfg.SeedPath)
	if err != nil {
		return err
	}
	db, err := store.OpenSeeded(ctx, seed)
	if err != nil {
		return err
	}
	app.OnShutdown(func(context.Context) error { return db.Close() })
	logger.Info("profile_seeded",
		slog.String("path", cfg.SeedPath),
		slog.Int("experience", len(seed.Experience)),
		slog.Int("projects", len(seed.Projects)),
		slog.Int("contacts", len(seed.Contacts)),
	)

	r := server.NewEngine(server.Options{
		ServiceName: cfg.Telemetry.ServiceName,
		Production:  config.IsProduction(cfg.Env),
		Traced:      cfg.Telemetry.Enabled,
	}, logger)
	r.Use(profileapi.CORS(cfg.CORSOrigins))
	profileapi.NewHandler(db, logger).Register(r)

	app.Server.Handler = r
	return app.Run(ctx)
}
