package logging

import (
	"context"
	"log/slog"
	"os"
)

type loggerContextKey struct{}

// FromContext returns the logger stored in the context. A context without one
// gets a JSON logger tagged "fallback" so log lines are never dropped, but
// seeing that tag in output means some entry point forgot AddToContext.
func FromContext(ctx context.Context) *slog.Logger {
	logger, ok := ctx.Value(loggerContextKey{}).(*slog.Logger)
	if !ok || logger == nil {
		fallback := slog.New(slog.NewJSONHandler(os.Stdout, nil))
		fallback = fallback.With(slog.String("logger", "fallback"))
		return fallback
	}
	return logger
}

func AddToContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerContextKey{}, logger)
}

// AddMetaToContext attaches attrs to the context's logger, so everything
// logged downstream carries them.
func AddMetaToContext(ctx context.Context, args ...slog.Attr) context.Context {
	logger := FromContext(ctx)

	anySlice := make([]any, len(args))
	for i, arg := range args {
		anySlice[i] = arg
	}

	return AddToContext(ctx, logger.With(anySlice...))
}
