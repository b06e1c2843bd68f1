package logging

import (
	"context"
	"io"
	"log/slog"
	"regexp"
	"sync"

	"github.com/m-mizutani/clog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/masq"
)

// Format is the output format of the logger
type Format string

const (
	FormatConsole Format = "console"
	FormatJSON    Format = "json"
)

var (
	defaultLogger = slog.New(slog.DiscardHandler)
	defaultMu     sync.RWMutex

	emailPattern = regexp.MustCompile(`[^\s@"]+@[^\s@"]+\.[^\s@"]+`)
)

type ctxLoggerKey struct{}

// Default returns the process-wide logger
func Default() *slog.Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault replaces the process-wide logger
func SetDefault(logger *slog.Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = logger
}

// With returns a copy of ctx carrying logger
func With(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxLoggerKey{}, logger)
}

// From returns the logger carried by ctx, or the default logger
func From(ctx context.Context) *slog.Logger {
	if ctx != nil {
		if logger, ok := ctx.Value(ctxLoggerKey{}).(*slog.Logger); ok && logger != nil {
			return logger
		}
	}
	return Default()
}

// Filter redacts fields tagged `masq:"secret"` and e-mail addresses
func Filter() func(groups []string, a slog.Attr) slog.Attr {
	return masq.New(
		masq.WithTag("secret"),
		masq.WithRegex(emailPattern),
	)
}

// New builds a logger writing to w in the given format
func New(w io.Writer, level slog.Level, format Format) (*slog.Logger, error) {
	var handler slog.Handler

	switch format {
	case FormatConsole:
		handler = clog.New(
			clog.WithWriter(w),
			clog.WithLevel(level),
			clog.WithReplaceAttr(Filter()),
			clog.WithColor(true),
		)
	case FormatJSON:
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level:       level,
			ReplaceAttr: Filter(),
		})
	default:
		return nil, goerr.New("unsupported log format", goerr.V("format", format))
	}

	return slog.New(handler), nil
}

// ErrAttr returns the conventional slog attribute for err
func ErrAttr(err error) slog.Attr {
	return slog.Any("error", err)
}
