package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bryanwahyu/truthlens/internal/application"
	appai "github.com/bryanwahyu/truthlens/internal/application/ai"
	"github.com/bryanwahyu/truthlens/internal/config"
	domai "github.com/bryanwahyu/truthlens/internal/domain/ai"
	"github.com/bryanwahyu/truthlens/internal/infra/ai/openai"
	"github.com/bryanwahyu/truthlens/internal/infra/ai/prompt"
	"github.com/bryanwahyu/truthlens/internal/infra/httpserver"
	"github.com/bryanwahyu/truthlens/internal/logging"
	"github.com/bryanwahyu/truthlens/internal/middleware"
)

func main() {
	log := logging.GetLogger()

	// path config.yaml
	path := "config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		path = v
	}

	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}
	log.Infof("log level set to %s", logging.SetLogLevel(cfg.Log.Level))

	var client domai.Client
	switch cfg.AI.Provider {
	case config.ProviderHeuristic:
		client = prompt.NewHeuristicAnalyzer()
	default:
		if cfg.AI.APIKey == "" {
			log.Warn("OPENAI_API_KEY is not set; /analyze will fail until it is configured")
		}
		client = openai.NewClient(cfg.AI.APIKey, openai.Options{
			Model:       cfg.AI.Model,
			BaseURL:     cfg.AI.BaseURL,
			MaxTokens:   cfg.AI.MaxTokens,
			Temperature: cfg.AI.Temperature,
		})
	}

	svc := appai.NewService(client, application.SystemClock{}, log)

	limiter := middleware.NewRateLimiter(cfg.Limits.RateCapacity, cfg.Limits.RateRefill)
	defer limiter.Close()

	handler := httpserver.NewRouter(svc, httpserver.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		MaxTextChars:   cfg.Limits.MaxTextChars,
		RateLimiter:    limiter,
		Log:            log,
		HealthCheckers: map[string]middleware.HealthChecker{
			"analyzer": &middleware.AnalyzerHealthChecker{Provider: cfg.AI.Provider, APIKey: cfg.AI.APIKey},
		},
	})

	addr := cfg.Addr()
	// no write timeout: an analysis may take as long as the model does
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.WithField("model", svc.Model()).Infof("server listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Errorf("shutdown error: %v", err)
	}
}
