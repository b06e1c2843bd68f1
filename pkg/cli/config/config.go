package config

import (
	"errors"
	"io/fs"
	"os"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/secmon-lab/execdiag/pkg/service/report"
	"github.com/urfave/cli/v3"
)

const (
	// DefaultSessionTTL is how long an untouched session is kept
	DefaultSessionTTL = 2 * time.Hour
	minSessionTTL     = time.Minute
)

// App holds the CLI flag pointing at the optional TOML app config
type App struct {
	path string
}

// Flags returns CLI flags for the app config file
func (a *App) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Usage:       "Path to the TOML app config (branding, session TTL)",
			Sources:     cli.EnvVars("EXECDIAG_CONFIG"),
			Destination: &a.path,
		},
	}
}

// Configure loads the app config, or the defaults when no path is given
func (a *App) Configure() (*AppConfig, error) {
	if a.path == "" {
		return DefaultAppConfig(), nil
	}
	return LoadAppConfiguration(a.path)
}

// AppConfig represents the application configuration file
type AppConfig struct {
	Branding   BrandingConfig `toml:"branding"`
	SessionTTL string         `toml:"session_ttl"`

	sessionTTL time.Duration
	branding   report.Branding
}

// BrandingConfig overrides the stock report branding. Empty fields keep the
// default value.
type BrandingConfig struct {
	CoachName  string       `toml:"coach_name"`
	CoachTitle string       `toml:"coach_title"`
	BookingURL string       `toml:"booking_url"`
	Colors     ColorsConfig `toml:"colors"`
}

// RGB is a colour written as [r, g, b]
type RGB []int

// ColorsConfig overrides single palette entries
type ColorsConfig struct {
	Navy       RGB `toml:"navy"`
	NavyMedium RGB `toml:"navy_medium"`
	Gold       RGB `toml:"gold"`
	Blue       RGB `toml:"blue"`
	Red        RGB `toml:"red"`
	White      RGB `toml:"white"`
	GrayText   RGB `toml:"gray_text"`
	Panel      RGB `toml:"panel"`
	Track      RGB `toml:"track"`
	Helper     RGB `toml:"helper"`
}

// DefaultAppConfig returns the configuration used without a config file
func DefaultAppConfig() *AppConfig {
	return &AppConfig{
		sessionTTL: DefaultSessionTTL,
		branding:   report.DefaultBranding(),
	}
}

// Validate resolves and checks the configuration
func (a *AppConfig) Validate() error {
	ttl := DefaultSessionTTL
	if a.SessionTTL != "" {
		d, err := time.ParseDuration(a.SessionTTL)
		if err != nil {
			return goerr.Wrap(ErrInvalidConfig, "invalid session_ttl",
				goerr.V(FieldKey, "session_ttl"),
				goerr.V("value", a.SessionTTL),
				goerr.V("cause", err.Error()))
		}
		ttl = d
	}
	if ttl < minSessionTTL {
		return goerr.Wrap(ErrInvalidConfig, "session_ttl must be at least 1m",
			goerr.V(FieldKey, "session_ttl"),
			goerr.V("value", ttl.String()))
	}

	branding, err := a.Branding.resolve()
	if err != nil {
		return err
	}
	if err := branding.Validate(); err != nil {
		return goerr.Wrap(ErrInvalidConfig, "invalid branding", goerr.V("cause", err.Error()))
	}

	a.sessionTTL = ttl
	a.branding = branding
	return nil
}

// SessionTTLDuration returns the resolved session TTL
func (a *AppConfig) SessionTTLDuration() time.Duration {
	return a.sessionTTL
}

// ReportBranding returns the resolved report branding
func (a *AppConfig) ReportBranding() report.Branding {
	return a.branding
}

func (b BrandingConfig) resolve() (report.Branding, error) {
	branding := report.DefaultBranding()
	if b.CoachName != "" {
		branding.CoachName = b.CoachName
	}
	if b.CoachTitle != "" {
		branding.CoachTitle = b.CoachTitle
	}
	if b.BookingURL != "" {
		branding.BookingURL = b.BookingURL
	}

	overrides := []struct {
		name string
		rgb  RGB
		dst  *report.Color
	}{
		{"navy", b.Colors.Navy, &branding.Palette.Navy},
		{"navy_medium", b.Colors.NavyMedium, &branding.Palette.NavyMedium},
		{"gold", b.Colors.Gold, &branding.Palette.Gold},
		{"blue", b.Colors.Blue, &branding.Palette.Blue},
		{"red", b.Colors.Red, &branding.Palette.Red},
		{"white", b.Colors.White, &branding.Palette.White},
		{"gray_text", b.Colors.GrayText, &branding.Palette.GrayText},
		{"panel", b.Colors.Panel, &branding.Palette.Panel},
		{"track", b.Colors.Track, &branding.Palette.Track},
		{"helper", b.Colors.Helper, &branding.Palette.Helper},
	}
	for _, o := range overrides {
		if o.rgb == nil {
			continue
		}
		if len(o.rgb) != 3 {
			return branding, goerr.Wrap(ErrInvalidConfig, "colour must be [r, g, b]",
				goerr.V(FieldKey, "branding.colors."+o.name),
				goerr.V("value", []int(o.rgb)))
		}
		*o.dst = report.Color{R: o.rgb[0], G: o.rgb[1], B: o.rgb[2]}
	}

	return branding, nil
}

// LoadAppConfiguration loads the application configuration from a TOML file
func LoadAppConfiguration(path string) (*AppConfig, error) {
	// #nosec G304 - path is expected to be provided by CLI argument
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, goerr.Wrap(ErrConfigNotFound, "config file does not exist", goerr.V(ConfigPathKey, path))
		}
		return nil, goerr.Wrap(err, "failed to read config file", goerr.V(ConfigPathKey, path))
	}

	var config AppConfig
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, goerr.Wrap(ErrInvalidConfig, "failed to parse TOML config",
			goerr.V(ConfigPathKey, path),
			goerr.V("cause", err.Error()))
	}

	if err := config.Validate(); err != nil {
		return nil, goerr.Wrap(err, "config validation failed", goerr.V(ConfigPathKey, path))
	}

	return &config, nil
}
