package main

import (
	"context"
	"log/slog"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/gin-gonic/gin"

	"github.com/vladmesh/personal-site/internal/apiclient"
	"github.com/vladmesh/personal-site/internal/bootstrap"
	"github.com/vladmesh/personal-site/internal/config"
	"github.com/vladmesh/personal-site/internal/logging"
	"github.com/vladmesh/personal-site/internal/profile"
	"github.com/vladmesh/personal-site/internal/server"
	"github.com/vladmesh/personal-site/internal/telemetry"
)

func main() {
	if err := run(context.Background()); err != nil {
		slog.Error("site_exited", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.LoadSite()
	if err != nil {
		return err
	}

	logger, err := logging.New(logging.Options{
		Service: cfg.Telemetry.ServiceName,
		Level:   cfg.Log.Level,
		Dir:     cfg.Log.Dir,
		Traced:  cfg.Telemetry.Enabled,
	})
	if err != nil {
		return err
	}

	app := bootstrap.NewServerApp("site", ":"+cfg.Port, nil, logger)
	defer func() { _ = app.Close() }()

	provider, err := telemetry.NewProvider(ctx, cfg.Telemetry, cfg.Env)
	if err != nil {
		return err
	}
	app.OnShutdown(provider.Shutdown)

	app.Server.Handler = newRouter(cfg, logger)
	return app.Run(ctx)
}

// newRouter builds the site engine: shared middleware, templates and pages.
func newRouter(cfg config.SiteConfig, logger *slog.Logger) *gin.Engine {
	client := apiclient.New(apiclient.Config{
		BaseURL: cfg.APIBaseURL,
		Timeout: cfg.APITimeout,
	}, logger)
	if client.BaseURL() == "" {
		logger.Warn("api_base_url_missing", slog.String("hint", "PUBLIC_API_BASE_URL is empty, contacts use fallback links"))
	}
	profiles := profile.NewService(client, profile.FallbackLinks{
		Email:      cfg.Links.Email,
		Telegram:   cfg.Links.Telegram,
		GitHub:     cfg.Links.GitHub,
		GitHubRepo: cfg.Links.GitHubRepo,
		LinkedIn:   cfg.Links.LinkedIn,
		Phone:      cfg.Links.Phone,
		WhatsApp:   cfg.Links.WhatsApp,
	}, logger)

	r := server.NewEngine(server.Options{
		ServiceName: cfg.Telemetry.ServiceName,
		Production:  config.IsProduction(cfg.Env),
		Traced:      cfg.Telemetry.Enabled,
		Gzip:        true,
	}, logger)
	r.SetFuncMap(templateFuncs())
	r.LoadHTMLGlob(cfg.TemplatesGlob)

	setupRoutes(r, cfg, &pages{
		profiles: profiles,
		links:    cfg.Links,
		logger:   logger,
	})
	return r
}
