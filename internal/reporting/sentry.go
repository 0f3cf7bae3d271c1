package reporting

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"time"

	"github.com/getsentry/sentry-go"

	"github.com/ltnguyen/hanhtrinh/internal/config"
	"github.com/ltnguyen/hanhtrinh/internal/logging"
)

var uuidRx = regexp.MustCompile(`[0-9a-f]{8}-?([0-9a-f]{4}-?){3}[0-9a-f]{12}`)
var hostRx = regexp.MustCompile(`\[:{0,2}([0-9a-f]{0,4}:?){1,8}\]:\d+`)

func sanitizeError(err string) string {
	err = uuidRx.ReplaceAllString(err, "<uuid>")
	err = hostRx.ReplaceAllString(err, "<host>")
	return err
}

func Report(ctx context.Context, err error, extras ...map[string]string) {
	hub := sentry.GetHubFromContext(ctx)
	logger := logging.FromContext(ctx)
	if hub == nil {
		logger.Warn("Failed to get Sentry hub from context", "Error:", err, "Extras:", extras)
		return
	}

	logger.Error(
		"Reporting error to Sentry",
		slog.String("error", err.Error()),
		slog.Any("extras", extras),
	)

	hub.WithScope(func(scope *sentry.Scope) {
		meta := MetaFromContext(ctx)
		scope.SetTags(meta.tags)
		for key, value := range meta.extras {
			scope.SetExtra(key, value)
		}
		if meta.slotID != "" {
			scope.SetUser(sentry.User{
				ID: meta.slotID,
			})
		}
		scope.SetExtra("secondsSinceStart", time.Since(meta.startedAt).Seconds())

		for _, extra := range extras {
			if extra == nil {
				continue
			}
			for key, value := range extra {
				scope.SetExtra(key, value)
			}
		}

		if err == nil {
			err = errors.New("No error provided")
		}

		scope.SetFingerprint([]string{"{{ default }}", sanitizeError(err.Error())})
		hub.CaptureException(err)
	})
}

// AttachHub puts a fresh Sentry hub and the session start time on the
// context. Every game session (or CLI invocation) gets its own hub so scope
// data from concurrent sessions cannot mix.
func AttachHub(ctx context.Context) context.Context {
	if sentry.GetHubFromContext(ctx) == nil {
		ctx = sentry.SetHubOnContext(ctx, sentry.CurrentHub().Clone())
	}
	return setStartedAtInContext(ctx, time.Now())
}

func InitSentry(sentryDSN string) (func(), error) {
	err := sentry.Init(sentry.ClientOptions{
		Dsn: sentryDSN,
	})
	if err != nil {
		return nil, err
	}

	flush := func() {
		sentry.Flush(5 * time.Second)
	}

	return flush, nil
}

func NewSentryOrMock(conf config.Config) (func(), error) {
	if conf.SentryDSN() != "" {
		return InitSentry(conf.SentryDSN())
	}

	if conf.IsDevelopment() {
		return func() {}, nil
	}

	return nil, fmt.Errorf("Missing Sentry DSN in non-development environment")
}
