package report_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/execdiag/pkg/domain/model"
	"github.com/secmon-lab/execdiag/pkg/domain/types"
	"github.com/secmon-lab/execdiag/pkg/service/report"
)

type textCall struct {
	x, y  float64
	s     string
	align report.Align
}

type rectCall struct {
	x, y, w, h float64
	fill       report.Color
}

type linkCall struct {
	x, y, w, h float64
	url        string
}

var errFontTable = errors.New("font table corrupted")

// recordingCanvas captures drawing calls instead of producing a PDF
type recordingCanvas struct {
	pages   int
	fill    report.Color
	texts   map[int][]textCall
	rounded map[int][]rectCall
	circles int
	lines   map[int]int
	links   []linkCall
	failOn  int
	panicOn int
	err     error
}

func newRecordingCanvas() *recordingCanvas {
	return &recordingCanvas{
		texts:   make(map[int][]textCall),
		rounded: make(map[int][]rectCall),
		lines:   make(map[int]int),
	}
}

func (c *recordingCanvas) AddPage() {
	c.pages++
	if c.pages == c.failOn {
		c.err = errFontTable
	}
	if c.pages == c.panicOn {
		panic("drawing backend exploded")
	}
}

func (c *recordingCanvas) PageSize() (float64, float64)          { return 215.9, 279.4 }
func (c *recordingCanvas) SetFillColor(col report.Color)         { c.fill = col }
func (c *recordingCanvas) SetTextColor(report.Color)             {}
func (c *recordingCanvas) SetDrawColor(report.Color)             {}
func (c *recordingCanvas) SetLineWidth(float64)                  {}
func (c *recordingCanvas) SetFont(string, string, float64)       {}
func (c *recordingCanvas) Rect(x, y, w, h float64)               {}
func (c *recordingCanvas) Circle(x, y, r float64)                { c.circles++ }
func (c *recordingCanvas) Line(x1, y1, x2, y2 float64)           { c.lines[c.pages]++ }
func (c *recordingCanvas) SplitText(s string, w float64) []string { return []string{s} }
func (c *recordingCanvas) Err() error                            { return c.err }

func (c *recordingCanvas) RoundedRect(x, y, w, h, r float64) {
	c.rounded[c.pages] = append(c.rounded[c.pages], rectCall{x: x, y: y, w: w, h: h, fill: c.fill})
}

func (c *recordingCanvas) Text(x, y float64, s string, align report.Align) {
	c.texts[c.pages] = append(c.texts[c.pages], textCall{x: x, y: y, s: s, align: align})
}

func (c *recordingCanvas) Link(x, y, w, h float64, url string) {
	c.links = append(c.links, linkCall{x: x, y: y, w: w, h: h, url: url})
}

func (c *recordingCanvas) Output(w io.Writer) error {
	_, err := w.Write([]byte("%PDF-fake"))
	return err
}

func (c *recordingCanvas) hasText(page int, s string) bool {
	for _, t := range c.texts[page] {
		if t.s == s {
			return true
		}
	}
	return false
}

func newSnapshot(t *testing.T, value int) *model.AssessmentSnapshot {
	t.Helper()
	q := model.NewQuestionnaire(model.DefaultCatalog())
	s := model.NewSession(model.NewSessionID(), time.Now())
	gt.Bool(t, q.ValidateContactInfo(s, "Jane Doe", "jane@example.com")).True()
	gt.NoError(t, q.SelectRole(s, types.RoleCRO)).Required()
	for _, question := range q.Questions() {
		gt.NoError(t, q.RecordResponse(s, question.ID, value)).Required()
	}
	return q.Snapshot(s, time.Date(2026, 3, 5, 9, 0, 0, 0, time.UTC))
}

func renderWithRecorder(t *testing.T, snap *model.AssessmentSnapshot, opts ...report.Option) (*recordingCanvas, *bytes.Buffer, error) {
	t.Helper()
	canvas := newRecordingCanvas()
	opts = append(opts, report.WithCanvasFactory(func() report.Canvas { return canvas }))
	var buf bytes.Buffer
	err := report.New(opts...).Render(context.Background(), snap, &buf)
	return canvas, &buf, err
}

func TestRender_Pages(t *testing.T) {
	canvas, buf, err := renderWithRecorder(t, newSnapshot(t, 4))
	gt.NoError(t, err).Required()

	gt.Value(t, canvas.pages).Equal(4)
	gt.Value(t, buf.String()).Equal("%PDF-fake")

	t.Run("cover", func(t *testing.T) {
		gt.Bool(t, canvas.hasText(1, "Executive Growth")).True()
		gt.Bool(t, canvas.hasText(1, "Diagnostic Results")).True()
		gt.Bool(t, canvas.hasText(1, "Jane Doe")).True()
		gt.Bool(t, canvas.hasText(1, "Chief Revenue Officer (CRO)")).True()
		gt.Bool(t, canvas.hasText(1, "March 5, 2026")).True()
		gt.Bool(t, canvas.hasText(1, "Ryan Joswick")).True()
	})

	t.Run("results", func(t *testing.T) {
		gt.Bool(t, canvas.hasText(2, "Your Results")).True()
		gt.Bool(t, canvas.hasText(2, "100%")).True()
		gt.Bool(t, canvas.hasText(2, "High")).True()
		gt.Bool(t, canvas.hasText(2, "Strong alignment and clear communication")).True()
		gt.Bool(t, canvas.hasText(2, "Page 2 of 4")).True()
	})

	t.Run("actions", func(t *testing.T) {
		gt.Bool(t, canvas.hasText(3, "Your Next Moves")).True()
		gt.Value(t, canvas.circles).Equal(5)
		// separators between items only
		gt.Value(t, canvas.lines[3]).Equal(4)
		gt.Bool(t, canvas.hasText(3, "Strengthen Team Alignment")).True()
		gt.Bool(t, canvas.hasText(3, "Build Repeatable Systems")).True()
		gt.Bool(t, canvas.hasText(3, "Reconnect with Your \"Why\"")).False()
		gt.Bool(t, canvas.hasText(3, "Page 3 of 4")).True()
	})

	t.Run("call to action", func(t *testing.T) {
		gt.Bool(t, canvas.hasText(4, "Next Step with Ryan")).True()
		gt.Bool(t, canvas.hasText(4, "CLICK HERE TO BOOK YOUR SESSION")).True()
		gt.Bool(t, canvas.hasText(4, "Ryan Joswick | Executive Coach & Advisor")).True()
		gt.Bool(t, canvas.hasText(4, "Page 4 of 4")).True()

		gt.Array(t, canvas.links).Length(1)
		link := canvas.links[0]
		gt.Value(t, link.url).Equal("https://calendly.com/ryan-eclm")
		gt.Value(t, link.w).Equal(130.0)
		gt.Value(t, link.h).Equal(22.0)
	})
}

func TestRender_ResultBars(t *testing.T) {
	palette := report.DefaultPalette()
	barWidth := (215.9-3*20.0)/2 - 10

	tests := []struct {
		name      string
		value     int
		wantWidth float64
		wantColor report.Color
	}{
		{"all fours", 4, barWidth, palette.Blue},
		{"all twos", 2, report.BarFillWidth(50, barWidth), palette.Gold},
		{"all ones", 1, report.BarFillWidth(25, barWidth), palette.Red},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			canvas, _, err := renderWithRecorder(t, newSnapshot(t, tt.value))
			gt.NoError(t, err).Required()

			// each cell draws panel, track and fill
			rects := canvas.rounded[2]
			gt.Array(t, rects).Length(18)
			for i := 0; i < 6; i++ {
				track := rects[i*3+1]
				fill := rects[i*3+2]
				gt.Value(t, track.w).Equal(barWidth)
				gt.Value(t, track.fill).Equal(palette.Track)
				gt.Value(t, fill.w).Equal(tt.wantWidth)
				gt.Value(t, fill.fill).Equal(tt.wantColor)
			}
		})
	}
}

func TestRender_CustomBranding(t *testing.T) {
	b := report.DefaultBranding()
	b.CoachName = "Alex Morgan"
	b.CoachTitle = "Revenue Advisor"
	b.BookingURL = "https://example.com/book"

	canvas, _, err := renderWithRecorder(t, newSnapshot(t, 3), report.WithBranding(b))
	gt.NoError(t, err).Required()

	gt.Bool(t, canvas.hasText(4, "Next Step with Alex")).True()
	gt.Bool(t, canvas.hasText(2, "Alex Morgan | Revenue Advisor")).True()
	gt.Value(t, canvas.links[0].url).Equal("https://example.com/book")
}

func TestRender_Failures(t *testing.T) {
	t.Run("canvas error aborts and writes nothing", func(t *testing.T) {
		canvas := newRecordingCanvas()
		canvas.failOn = 2
		var buf bytes.Buffer
		r := report.New(report.WithCanvasFactory(func() report.Canvas { return canvas }))

		err := r.Render(context.Background(), newSnapshot(t, 2), &buf)
		gt.Error(t, err).Is(report.ErrRenderFailed)
		gt.Error(t, err).Is(errFontTable)
		gt.Value(t, canvas.pages).Equal(2)
		gt.Value(t, buf.Len()).Equal(0)
	})

	t.Run("panic is recovered", func(t *testing.T) {
		canvas := newRecordingCanvas()
		canvas.panicOn = 3
		var buf bytes.Buffer
		r := report.New(report.WithCanvasFactory(func() report.Canvas { return canvas }))

		err := r.Render(context.Background(), newSnapshot(t, 2), &buf)
		gt.Error(t, err).Is(report.ErrRenderFailed)
		gt.Value(t, buf.Len()).Equal(0)
	})

	t.Run("missing backend", func(t *testing.T) {
		r := report.New(report.WithCanvasFactory(nil))
		err := r.Render(context.Background(), newSnapshot(t, 2), io.Discard)
		gt.Error(t, err).Is(report.ErrRendererUnavailable)
	})

	t.Run("too many categories", func(t *testing.T) {
		snap := newSnapshot(t, 2)
		snap.Scores = append(snap.Scores, model.NewCategoryScore("extra", "Extra", 4, 4))
		_, buf, err := renderWithRecorder(t, snap)
		gt.Error(t, err).Is(report.ErrRenderFailed)
		gt.Value(t, buf.Len()).Equal(0)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err := report.New().Render(ctx, newSnapshot(t, 2), io.Discard)
		gt.Error(t, err).Is(context.Canceled)
	})
}

func TestRender_PDF(t *testing.T) {
	var buf bytes.Buffer
	err := report.New().Render(context.Background(), newSnapshot(t, 3), &buf)
	gt.NoError(t, err).Required()
	gt.Bool(t, strings.HasPrefix(buf.String(), "%PDF-")).True()
}

func TestFilename(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Jane  Doe", "Executive-Diagnostic-Report-Jane-Doe.pdf"},
		{"Jane Doe", "Executive-Diagnostic-Report-Jane-Doe.pdf"},
		{"Jane\t Mary \nDoe", "Executive-Diagnostic-Report-Jane-Mary-Doe.pdf"},
		{"Cher", "Executive-Diagnostic-Report-Cher.pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gt.Value(t, report.Filename(tt.name)).Equal(tt.want)
		})
	}
}

func TestBranding_Validate(t *testing.T) {
	gt.NoError(t, report.DefaultBranding().Validate())

	b := report.DefaultBranding()
	b.BookingURL = "/relative"
	gt.Error(t, b.Validate())

	b = report.DefaultBranding()
	b.BookingURL = "ftp://example.com"
	gt.Error(t, b.Validate())

	b = report.DefaultBranding()
	b.Palette.Gold = report.Color{R: 300}
	gt.Error(t, b.Validate())

	b = report.DefaultBranding()
	b.CoachName = " "
	gt.Error(t, b.Validate())
}
