package errutil

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/execdiag/pkg/utils/logging"
)

// Handle logs the error with a message and reports it to Sentry.
// It is meant for failures that have no caller left to return to, such as
// background workers.
func Handle(ctx context.Context, err error, msg string) {
	if err == nil {
		return
	}

	logError(ctx, slog.LevelError, msg, err)
	capture(ctx, err)
}

// HandleHTTP logs the error and writes a JSON error response of the form
// {"error": msg}. Server errors are also reported to Sentry and their
// message is replaced with the generic status text.
func HandleHTTP(ctx context.Context, w http.ResponseWriter, err error, statusCode int, msg string) {
	if err == nil {
		return
	}

	level := slog.LevelWarn
	if statusCode >= http.StatusInternalServerError {
		level = slog.LevelError
		msg = http.StatusText(statusCode)
		capture(ctx, err)
	}
	logError(ctx, level, "HTTP error", err, slog.Int("status", statusCode))

	WriteJSONError(w, statusCode, msg)
}

// WriteJSONError writes {"error": msg} with the given status code
func WriteJSONError(w http.ResponseWriter, statusCode int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func logError(ctx context.Context, level slog.Level, msg string, err error, attrs ...any) {
	logger := logging.From(ctx)

	var ge *goerr.Error
	if errors.As(err, &ge) {
		attrs = append(attrs,
			"error", err.Error(),
			"values", ge.Values(),
			"stack", ge.Stacks(),
		)
	} else {
		attrs = append(attrs, "error", err.Error())
	}

	logger.Log(ctx, level, msg, attrs...)
}

func capture(ctx context.Context, err error) {
	hub := sentry.GetHubFromContext(ctx)
	if hub == nil {
		hub = sentry.CurrentHub()
	}
	hub.CaptureException(err)
}
