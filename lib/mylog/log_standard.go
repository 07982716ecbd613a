package mylog

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"

	"github.com/MarcGrol/signbackend/lib/mycontext"
)

func init() {
	if os.Getenv("GOOGLE_CLOUD_PROJECT") == "" {
		New = newStandardLogger
	}
}

var standardHandler slog.Handler = tint.NewHandler(os.Stderr, &tint.Options{
	Level:      slog.LevelDebug,
	TimeFormat: time.TimeOnly,
})

type standardLogger struct {
	componentName string
	logger        *slog.Logger
}

func newStandardLogger(componentName string) Logger {
	return standardLogger{
		componentName: componentName,
		logger:        slog.New(standardHandler).With(slog.String("component", componentName)),
	}
}

func (l standardLogger) Log(ctx context.Context, traceLabel string, severity Severity, format string, a ...any) {
	attrs := []any{}
	if traceLabel != "" {
		attrs = append(attrs, slog.String("label", traceLabel))
	}
	if requestID := mycontext.RequestIDFromContext(ctx); requestID != "" {
		attrs = append(attrs, slog.String("request", requestID))
	}
	l.logger.Log(ctx, toLevel(severity), fmt.Sprintf(format, a...), attrs...)
}

func toLevel(severity Severity) slog.Level {
	switch severity {
	case SeverityDebug:
		return slog.LevelDebug
	case SeverityWarn:
		return slog.LevelWarn
	case SeverityError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
