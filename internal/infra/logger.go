// README: slog logger; colored tint output in dev, JSON in prod.
package infra

import (
	"io"
	"log/slog"
	"time"

	"github.com/lmittmann/tint"
)

func NewLogger(w io.Writer, appEnv string, level slog.Level, appName string) *slog.Logger {
	if appEnv == "dev" {
		h := tint.NewHandler(w, &tint.Options{
			Level:      level,
			AddSource:  true,
			TimeFormat: time.Kitchen,
		})
		return slog.New(h).With("app", appName)
	}

	h := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(h).With("app", appName, "env", appEnv)
}
