package contextx

import (
	"context"
	"log/slog"
)

type __contextx_logger__ struct {
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, __contextx_logger__{}, logger)
}

// Logger returns the logger stored by WithLogger, or slog.Default.
func Logger(ctx context.Context) *slog.Logger {
	val, ok := ctx.Value(__contextx_logger__{}).(*slog.Logger)
	if !ok || val == nil {
		return slog.Default()
	}
	return val
}
