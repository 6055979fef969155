// README: Config loader; environment variables (optionally a config.yaml) with defaults, required keys fail fast.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"net"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	ProviderGroq   = "groq"
	ProviderGemini = "gemini"
)

type WeatherConfig struct {
	RapidAPIKey        string
	RapidAPIBaseURL    string
	RapidAPIHost       string
	OpenWeatherKey     string
	OpenWeatherBaseURL string
	Timeout            time.Duration
}

type AIConfig struct {
	Provider    string
	GroqKey     string
	GroqBaseURL string
	GroqModel   string
	GeminiKey   string
	GeminiModel string
	DailyLimit  int
}

type Config struct {
	AppEnv   string
	LogLevel slog.Level
	HTTP     struct {
		Addr string
		// TrustedProxies may set X-Forwarded-For; empty trusts no proxy.
		TrustedProxies []string
	}
	DB struct {
		DSN string
	}
	Redis struct {
		Addr string
	}
	Maps struct {
		APIKey string
	}
	Weather  WeatherConfig
	AI       AIConfig
	Location *time.Location
}

func Load() (Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	v.SetDefault("app_env", "dev")
	v.SetDefault("log_level", "info")
	v.SetDefault("http_addr", ":8080")
	v.SetDefault("rapidapi_base_url", "https://weather-api167.p.rapidapi.com")
	v.SetDefault("rapidapi_host", "weather-api167.p.rapidapi.com")
	v.SetDefault("openweathermap_api_key", "demo")
	v.SetDefault("openweathermap_base_url", "http://api.openweathermap.org")
	v.SetDefault("weather_timeout", "10s")
	v.SetDefault("ai_provider", ProviderGroq)
	v.SetDefault("groq_base_url", "https://api.groq.com/openai/v1")
	v.SetDefault("groq_model", "llama3-8b-8192")
	v.SetDefault("gemini_model", "gemini-2.0-flash")
	v.SetDefault("ai_daily_limit", 50)
	v.SetDefault("timezone", "UTC")

	// Keys without defaults.
	for _, k := range []string{"database_url", "rapidapi_key", "groq_api_key", "gemini_api_key", "redis_addr", "maps_api_key", "trusted_proxies"} {
		_ = v.BindEnv(k)
	}
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	cfg.AppEnv = strings.TrimSpace(v.GetString("app_env"))
	switch cfg.AppEnv {
	case "dev", "prod":
	default:
		return Config{}, fmt.Errorf("invalid APP_ENV %q (allowed: dev, prod)", cfg.AppEnv)
	}

	level, err := parseLogLevel(v.GetString("log_level"))
	if err != nil {
		return Config{}, err
	}
	cfg.LogLevel = level

	cfg.HTTP.Addr = v.GetString("http_addr")
	proxies, err := parseTrustedProxies(v.GetString("trusted_proxies"))
	if err != nil {
		return Config{}, err
	}
	cfg.HTTP.TrustedProxies = proxies
	cfg.DB.DSN = strings.TrimSpace(v.GetString("database_url"))
	cfg.Redis.Addr = strings.TrimSpace(v.GetString("redis_addr"))
	cfg.Maps.APIKey = strings.TrimSpace(v.GetString("maps_api_key"))

	cfg.Weather = WeatherConfig{
		RapidAPIKey:        strings.TrimSpace(v.GetString("rapidapi_key")),
		RapidAPIBaseURL:    strings.TrimRight(v.GetString("rapidapi_base_url"), "/"),
		RapidAPIHost:       v.GetString("rapidapi_host"),
		OpenWeatherKey:     v.GetString("openweathermap_api_key"),
		OpenWeatherBaseURL: strings.TrimRight(v.GetString("openweathermap_base_url"), "/"),
		Timeout:            v.GetDuration("weather_timeout"),
	}
	if cfg.Weather.Timeout <= 0 {
		return Config{}, fmt.Errorf("invalid WEATHER_TIMEOUT %q", v.GetString("weather_timeout"))
	}

	cfg.AI = AIConfig{
		Provider:    strings.ToLower(strings.TrimSpace(v.GetString("ai_provider"))),
		GroqKey:     strings.TrimSpace(v.GetString("groq_api_key")),
		GroqBaseURL: strings.TrimRight(v.GetString("groq_base_url"), "/"),
		GroqModel:   v.GetString("groq_model"),
		GeminiKey:   strings.TrimSpace(v.GetString("gemini_api_key")),
		GeminiModel: v.GetString("gemini_model"),
		DailyLimit:  v.GetInt("ai_daily_limit"),
	}

	loc, err := time.LoadLocation(v.GetString("timezone"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid TIMEZONE %q: %w", v.GetString("timezone"), err)
	}
	cfg.Location = loc

	var missing []string
	if cfg.DB.DSN == "" {
		missing = append(missing, "DATABASE_URL")
	}
	if cfg.Weather.RapidAPIKey == "" {
		missing = append(missing, "RAPIDAPI_KEY")
	}
	switch cfg.AI.Provider {
	case ProviderGroq:
		if cfg.AI.GroqKey == "" {
			missing = append(missing, "GROQ_API_KEY")
		}
	case ProviderGemini:
		if cfg.AI.GeminiKey == "" {
			missing = append(missing, "GEMINI_API_KEY")
		}
	default:
		return Config{}, fmt.Errorf("invalid AI_PROVIDER %q (allowed: %s, %s)", cfg.AI.Provider, ProviderGroq, ProviderGemini)
	}
	if len(missing) > 0 {
		return Config{}, fmt.Errorf("required environment variables not set: %s", strings.Join(missing, ", "))
	}

	return cfg, nil
}

// parseTrustedProxies splits a comma-separated list of IPs and CIDRs.
func parseTrustedProxies(s string) ([]string, error) {
	var out []string
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if _, _, err := net.ParseCIDR(p); err != nil && net.ParseIP(p) == nil {
			return nil, fmt.Errorf("invalid TRUSTED_PROXIES entry %q", p)
		}
		out = append(out, p)
	}
	return out, nil
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid LOG_LEVEL %q (allowed: debug, info, warn, error)", s)
	}
}
