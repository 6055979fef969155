package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"tripcast/internal/ai"
	"tripcast/internal/config"
	"tripcast/internal/infra"
	"tripcast/internal/modules/plan"
	"tripcast/internal/modules/weather"
	"tripcast/internal/types"
)

func main() {
	destination := flag.String("destination", "London", "city to plan for")
	dateFlag := flag.String("date", "", "trip date (YYYY-MM-DD), defaults to today")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	logger := infra.NewLogger(os.Stderr, cfg.AppEnv, cfg.LogLevel, "plan-demo")

	date := types.DateOf(time.Now().In(cfg.Location))
	if *dateFlag != "" {
		if date, err = types.ParseDate(*dateFlag); err != nil {
			log.Fatalf("invalid -date: %v", err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	llm, err := ai.NewProvider(ctx, cfg.AI)
	if err != nil {
		log.Fatalf("Failed to initialize AI provider: %v", err)
	}
	defer llm.Close()

	fetcher := weather.NewFetcher(
		weather.NewRapidAPIProvider(weather.RapidAPIOptions{
			BaseURL: cfg.Weather.RapidAPIBaseURL,
			Host:    cfg.Weather.RapidAPIHost,
			APIKey:  cfg.Weather.RapidAPIKey,
			Timeout: cfg.Weather.Timeout,
		}, logger),
		weather.NewOpenWeatherMapProvider(cfg.Weather.OpenWeatherBaseURL, cfg.Weather.OpenWeatherKey, cfg.Weather.Timeout),
		logger,
	)

	w, err := fetcher.Fetch(ctx, *destination, date)
	if err != nil {
		log.Fatalf("Error fetching weather: %v", err)
	}
	fmt.Printf("Weather in %s on %s: %s\n", *destination, date, plan.WeatherSummary(w))

	p, err := plan.NewGenerator(llm, logger).Generate(ctx, *destination, date, w)
	if err != nil {
		log.Fatalf("Error generating plan: %v", err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(p); err != nil {
		log.Fatal(err)
	}
}
