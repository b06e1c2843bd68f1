package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/execdiag/pkg/cli/config"
	"github.com/secmon-lab/execdiag/pkg/service/report"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	gt.NoError(t, os.WriteFile(path, []byte(content), 0600)).Required()
	return path
}

func TestLoadAppConfiguration(t *testing.T) {
	t.Run("full override", func(t *testing.T) {
		path := writeConfig(t, `
session_ttl = "30m"

[branding]
coach_name = "Alex Morgan"
coach_title = "Growth Advisor"
booking_url = "https://example.com/book"

[branding.colors]
gold = [200, 100, 0]
navy = [0, 0, 0]
`)
		cfg, err := config.LoadAppConfiguration(path)
		gt.NoError(t, err).Required()

		gt.Value(t, cfg.SessionTTLDuration()).Equal(30 * time.Minute)

		b := cfg.ReportBranding()
		gt.Value(t, b.CoachName).Equal("Alex Morgan")
		gt.Value(t, b.CoachTitle).Equal("Growth Advisor")
		gt.Value(t, b.BookingURL).Equal("https://example.com/book")
		gt.Value(t, b.Palette.Gold).Equal(report.Color{R: 200, G: 100, B: 0})
		gt.Value(t, b.Palette.Navy).Equal(report.Color{})
		gt.Value(t, b.Palette.Blue).Equal(report.DefaultPalette().Blue)
	})

	t.Run("empty file keeps defaults", func(t *testing.T) {
		cfg, err := config.LoadAppConfiguration(writeConfig(t, ""))
		gt.NoError(t, err).Required()
		gt.Value(t, cfg.SessionTTLDuration()).Equal(config.DefaultSessionTTL)
		gt.Value(t, cfg.ReportBranding()).Equal(report.DefaultBranding())
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := config.LoadAppConfiguration(filepath.Join(t.TempDir(), "nothing.toml"))
		gt.Error(t, err).Is(config.ErrConfigNotFound)
	})

	invalid := []struct {
		name    string
		content string
	}{
		{"broken TOML", `session_ttl = `},
		{"unparsable TTL", `session_ttl = "soon"`},
		{"short TTL", `session_ttl = "30s"`},
		{"relative booking URL", "[branding]\nbooking_url = \"/book\""},
		{"non-http booking URL", "[branding]\nbooking_url = \"ftp://example.com\""},
		{"blank coach name", "[branding]\ncoach_name = \"   \""},
		{"colour out of range", "[branding.colors]\nred = [256, 0, 0]"},
		{"colour with two components", "[branding.colors]\nred = [1, 2]"},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.LoadAppConfiguration(writeConfig(t, tt.content))
			gt.Error(t, err).Is(config.ErrInvalidConfig)
		})
	}
}

func TestDefaultAppConfig(t *testing.T) {
	cfg := config.DefaultAppConfig()
	gt.Value(t, cfg.SessionTTLDuration()).Equal(2 * time.Hour)
	gt.NoError(t, cfg.ReportBranding().Validate())
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"", slog.LevelInfo},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			level, err := config.ParseLevel(tt.in)
			gt.NoError(t, err)
			gt.Value(t, level).Equal(tt.want)
		})
	}

	_, err := config.ParseLevel("verbose")
	gt.Error(t, err).Is(config.ErrInvalidConfig)
}
