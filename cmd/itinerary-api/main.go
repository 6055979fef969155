// README: Entry point; loads config, migrates, wires services, serves HTTP until signalled.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"tripcast/internal/ai"
	"tripcast/internal/config"
	httptransport "tripcast/internal/http"
	"tripcast/internal/infra"
	"tripcast/internal/maps"
	"tripcast/internal/modules/aiusage"
	"tripcast/internal/modules/itinerary"
	"tripcast/internal/modules/plan"
	"tripcast/internal/modules/weather"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := infra.NewLogger(os.Stderr, cfg.AppEnv, cfg.LogLevel, "itinerary-api")
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := infra.Migrate(ctx, cfg.DB.DSN); err != nil {
		return err
	}
	dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
	if err != nil {
		return err
	}
	defer dbPool.Close()

	llm, err := ai.NewProvider(ctx, cfg.AI)
	if err != nil {
		return fmt.Errorf("ai provider init: %w", err)
	}
	defer llm.Close()

	rapidOpts := weather.RapidAPIOptions{
		BaseURL: cfg.Weather.RapidAPIBaseURL,
		Host:    cfg.Weather.RapidAPIHost,
		APIKey:  cfg.Weather.RapidAPIKey,
		Timeout: cfg.Weather.Timeout,
	}
	if cfg.Maps.APIKey != "" {
		geocoder, err := maps.NewGeocoder(cfg.Maps.APIKey)
		if err != nil {
			return err
		}
		rapidOpts.Countries = geocoder
	}
	fetcher := weather.NewFetcher(
		weather.NewRapidAPIProvider(rapidOpts, logger),
		weather.NewOpenWeatherMapProvider(cfg.Weather.OpenWeatherBaseURL, cfg.Weather.OpenWeatherKey, cfg.Weather.Timeout),
		logger,
	)

	deps := itinerary.Deps{
		Weather:  fetcher,
		Planner:  plan.NewGenerator(llm, logger),
		Store:    itinerary.NewStore(dbPool),
		Logger:   logger,
		Location: cfg.Location,
	}
	if cfg.Redis.Addr != "" {
		redisClient := infra.NewRedis(cfg.Redis.Addr)
		defer redisClient.Close()
		deps.Quota = aiusage.NewService(aiusage.NewStore(redisClient), cfg.AI.DailyLimit)
		logger.Info("generation quota enabled", "daily_limit", cfg.AI.DailyLimit)
	}

	if cfg.AppEnv == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}
	handler := httptransport.NewServer(httptransport.ServerDeps{
		Itineraries:    itinerary.NewService(deps),
		Logger:         logger,
		TrustedProxies: cfg.HTTP.TrustedProxies,
	})

	server := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           handler.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      90 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", "addr", cfg.HTTP.Addr, "ai_provider", cfg.AI.Provider)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
