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

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/dharmasatrya/flightanalyst/internal/completion"
	"github.com/dharmasatrya/flightanalyst/internal/config"
	"github.com/dharmasatrya/flightanalyst/internal/handler"
	"github.com/dharmasatrya/flightanalyst/internal/logger"
	"github.com/dharmasatrya/flightanalyst/internal/metrics"
	"github.com/dharmasatrya/flightanalyst/internal/pipeline"
	"github.com/dharmasatrya/flightanalyst/internal/providers"
	"github.com/dharmasatrya/flightanalyst/internal/session"
	"github.com/dharmasatrya/flightanalyst/internal/timezone"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("Failed to load .env: %v", err)
	}

	cfg := config.LoadServer()

	zl, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	settings, err := config.LoadSettings(cfg.SettingsFile)
	if err != nil {
		zl.Fatal("failed to load settings", zap.String("file", cfg.SettingsFile), zap.Error(err))
	}
	zl.Info("settings loaded",
		zap.String("engine", settings.FlightSearch.Engine),
		zap.String("model", settings.Completion.Model),
		zap.Strings("currencies", settings.FlightSearch.CurrencyOptions),
	)

	loc, err := timezone.Resolve(cfg.Timezone)
	if err != nil {
		zl.Fatal("invalid timezone", zap.Error(err))
	}

	store, err := newSessionStore(cfg)
	if err != nil {
		zl.Fatal("failed to initialize session store", zap.Error(err))
	}
	defer store.Close()
	zl.Info("session store ready", zap.String("store", cfg.SessionStore), zap.Duration("ttl", cfg.SessionTTL))

	defaults := session.Credentials{SearchAPIKey: cfg.SerpAPIKey, CompletionAPIKey: cfg.OpenAIKey}
	if !defaults.Complete() {
		zl.Warn("api keys are not set, users must supply them per session")
	}

	httpClient := &http.Client{Timeout: cfg.HTTPClientTimeout}
	clients := pipeline.Clients{
		NewSearcher: func(apiKey string) providers.FlightSearcher {
			return providers.NewSerpAPIClient(apiKey, providers.SerpAPIConfig{
				BaseURL:    cfg.SerpAPIBaseURL,
				HTTPClient: httpClient,
			})
		},
		NewCompleter: func(apiKey string) completion.Completer {
			return completion.NewOpenAIClient(apiKey, completion.OpenAIConfig{
				BaseURL:    cfg.OpenAIBaseURL,
				HTTPClient: httpClient,
			})
		},
	}

	m := metrics.New("flightanalyst")
	p := pipeline.New(pipeline.Config{
		Engine:      settings.FlightSearch.Engine,
		Model:       settings.Completion.Model,
		Temperature: settings.Completion.Temperature,
	}, clients, m, zl)

	h := handler.NewAnalysisHandler(handler.Options{
		Settings:   settings,
		Defaults:   defaults,
		Store:      store,
		Pipeline:   p,
		Clock:      timezone.NewClock(loc),
		Logger:     zl,
		SessionTTL: cfg.SessionTTL,
	})

	e, err := handler.NewServer(h, m, zl)
	if err != nil {
		zl.Fatal("failed to build server", zap.Error(err))
	}

	go func() {
		zl.Info("starting flight analyst server", zap.String("port", cfg.Port))
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Fatal("failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		zl.Error("graceful shutdown failed", zap.Error(err))
	}
}

func newSessionStore(cfg config.Server) (session.Store, error) {
	if cfg.SessionStore != config.SessionStoreRedis {
		return session.NewMemoryStore(cfg.SessionTTL), nil
	}
	return session.NewRedisStore(session.RedisConfig{
		Host:     cfg.RedisHost,
		Port:     cfg.RedisPort,
		Password: cfg.RedisPass,
		DB:       cfg.RedisDB,
		TTL:      cfg.SessionTTL,
	})
}
