package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/jeonbyeongmin/canny-sub000/internal/auth"
	"github.com/jeonbyeongmin/canny-sub000/internal/completion"
	"github.com/jeonbyeongmin/canny-sub000/internal/newsletter"
	"github.com/jeonbyeongmin/canny-sub000/internal/prompt"
	"github.com/jeonbyeongmin/canny-sub000/internal/router"
	"github.com/jeonbyeongmin/canny-sub000/internal/server"
	"github.com/jeonbyeongmin/canny-sub000/internal/settings"
	"github.com/jeonbyeongmin/canny-sub000/internal/storage/pg"
	"github.com/jeonbyeongmin/canny-sub000/pkg/config/env"
	"github.com/labstack/echo/v4"
)

func main() {
	if err := env.LoadDotEnv("cmd/newsletter_api/.env"); err != nil {
		slog.Info("Skipping .env ...", "error", err)
	}

	sCfg, err := server.LoadConfig()
	if err != nil {
		slog.Error("Failed to load server config", "error", err)
		os.Exit(1)
	}

	s := server.NewServer(sCfg)

	ctx := context.Background()

	poolCfg, err := pg.LoadPoolConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	pool, err := pg.NewConnectionPool(ctx, *poolCfg)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	users := pg.NewUserStore(pool)
	sources := pg.NewSourceStore(pool)
	newsletters := pg.NewNewsletterStore(pool)

	jwtCfg, err := auth.LoadJWTConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load auth config", "error", err)
		os.Exit(1)
	}
	issuer := auth.NewJWTIssuer(*jwtCfg)

	completionCfg := completion.LoadConfigFromEnv()
	client, err := completion.NewOpenAIClient(completionCfg.BaseURL)
	if err != nil {
		slog.Error("Failed to create completion client", "error", err)
		os.Exit(1)
	}

	templates := prompt.DefaultTemplates()
	if path := os.Getenv("PROMPT_TEMPLATES"); path != "" {
		templates, err = prompt.LoadTemplates(path)
		if err != nil {
			slog.Error("Failed to load prompt templates", "path", path, "error", err)
			os.Exit(1)
		}
	}
	composer := prompt.NewComposer(templates)

	resolver := settings.NewResolver(users, sources)
	generator := newsletter.NewGenerator(users, resolver, composer, client, newsletters)
	analyzer := newsletter.NewAnalyzer(users, newsletters, client)

	s.SetupHealthChecks(pool)

	s.Echo.GET("/", func(c echo.Context) error {
		return c.String(200, "Newsletter API is running")
	})

	router.NewAuthRouter(s.Echo, users, issuer).Bind()
	router.NewSettingsRouter(s.Echo, users, issuer).Bind()
	router.NewSourcesRouter(s.Echo, sources, issuer).Bind()
	router.NewNewslettersRouter(s.Echo, newsletters, generator, analyzer, issuer).Bind()

	if err := s.Start(); err != nil {
		s.Echo.Logger.Error("Failed to start server: ", err)
		os.Exit(1)
	}
}
