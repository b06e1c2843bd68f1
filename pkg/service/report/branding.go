package report

import (
	"net/url"
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

// Palette is the set of colours used across the report
type Palette struct {
	Navy       Color
	NavyMedium Color
	Gold       Color
	Blue       Color
	Red        Color
	White      Color
	GrayText   Color
	Panel      Color
	Track      Color
	Helper     Color
}

// Branding identifies the coach the report promotes
type Branding struct {
	CoachName  string
	CoachTitle string
	BookingURL string
	Palette    Palette
}

// DefaultBranding returns the stock branding
func DefaultBranding() Branding {
	return Branding{
		CoachName:  "Ryan Joswick",
		CoachTitle: "Executive Coach & Advisor",
		BookingURL: "https://calendly.com/ryan-eclm",
		Palette:    DefaultPalette(),
	}
}

// DefaultPalette returns the stock colours
func DefaultPalette() Palette {
	return Palette{
		Navy:       Color{10, 22, 40},
		NavyMedium: Color{30, 41, 59},
		Gold:       Color{245, 158, 11},
		Blue:       Color{37, 99, 235},
		Red:        Color{239, 68, 68},
		White:      Color{255, 255, 255},
		GrayText:   Color{100, 116, 139},
		Panel:      Color{248, 250, 252},
		Track:      Color{226, 232, 240},
		Helper:     Color{128, 128, 128},
	}
}

// CoachFirstName is the first word of CoachName
func (b Branding) CoachFirstName() string {
	if fields := strings.Fields(b.CoachName); len(fields) > 0 {
		return fields[0]
	}
	return b.CoachName
}

func (b Branding) footer() string {
	return b.CoachName + " | " + b.CoachTitle
}

// Validate checks that the branding can be rendered
func (b Branding) Validate() error {
	if strings.TrimSpace(b.CoachName) == "" {
		return goerr.New("coach name is required")
	}
	u, err := url.Parse(b.BookingURL)
	if err != nil {
		return goerr.Wrap(err, "invalid booking URL", goerr.V("url", b.BookingURL))
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return goerr.New("booking URL must be an absolute http(s) URL", goerr.V("url", b.BookingURL))
	}

	for name, c := range b.Palette.colors() {
		if !c.valid() {
			return goerr.New("colour component out of range", goerr.V("color", name), goerr.V("value", c))
		}
	}
	return nil
}

func (p Palette) colors() map[string]Color {
	return map[string]Color{
		"navy":        p.Navy,
		"navy_medium": p.NavyMedium,
		"gold":        p.Gold,
		"blue":        p.Blue,
		"red":         p.Red,
		"white":       p.White,
		"gray_text":   p.GrayText,
		"panel":       p.Panel,
		"track":       p.Track,
		"helper":      p.Helper,
	}
}

func (c Color) valid() bool {
	inRange := func(v int) bool { return v >= 0 && v <= 255 }
	return inRange(c.R) && inRange(c.G) && inRange(c.B)
}
