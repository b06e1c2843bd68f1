package report

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/execdiag/pkg/domain/interfaces"
	"github.com/secmon-lab/execdiag/pkg/domain/model"
)

// Letter page layout in millimetres
const (
	pageWidth  = 215.9
	pageHeight = 279.4
	margin     = 20.0
	totalPages = 4
)

// Renderer draws the four-page diagnostic report
type Renderer struct {
	branding  Branding
	newCanvas CanvasFactory
}

var _ interfaces.ReportRenderer = &Renderer{}

type Option func(*Renderer)

// WithBranding replaces the default branding
func WithBranding(b Branding) Option {
	return func(r *Renderer) {
		r.branding = b
	}
}

// WithCanvasFactory replaces the PDF backend
func WithCanvasFactory(f CanvasFactory) Option {
	return func(r *Renderer) {
		r.newCanvas = f
	}
}

// New creates a Renderer backed by fpdf
func New(opts ...Option) *Renderer {
	r := &Renderer{
		branding:  DefaultBranding(),
		newCanvas: NewFpdfCanvas,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Branding returns the branding in use
func (r *Renderer) Branding() Branding {
	return r.branding
}

// document is what every page routine draws from
type document struct {
	snapshot *model.AssessmentSnapshot
	branding Branding
	actions  []model.ActionStep
}

type page struct {
	name string
	draw func(c Canvas, doc *document) error
}

var pages = []page{
	{name: "cover", draw: drawCover},
	{name: "results", draw: drawResults},
	{name: "actions", draw: drawActions},
	{name: "cta", draw: drawCallToAction},
}

// Render draws the report of snapshot and writes the PDF to w. Pages are
// drawn in order and the first failure aborts the rest. Nothing is written
// to w unless every page succeeded.
func (r *Renderer) Render(ctx context.Context, snapshot *model.AssessmentSnapshot, w io.Writer) (err error) {
	if r.newCanvas == nil {
		return goerr.Wrap(ErrRendererUnavailable, "no canvas factory configured")
	}
	if snapshot == nil {
		return goerr.Wrap(ErrRenderFailed, "snapshot is nil")
	}

	current := "setup"
	defer func() {
		if rec := recover(); rec != nil {
			err = goerr.Wrap(ErrRenderFailed, "panic while drawing report",
				goerr.V(PageKey, current),
				goerr.V(model.SessionIDKey, snapshot.SessionID),
				goerr.V("panic", fmt.Sprint(rec)))
		}
	}()

	c := r.newCanvas()
	if c == nil {
		return goerr.Wrap(ErrRendererUnavailable, "canvas factory returned nil")
	}

	doc := &document{
		snapshot: snapshot,
		branding: r.branding,
		actions:  model.SelectActionSteps(snapshot.Scores),
	}

	for _, p := range pages {
		current = p.name
		if err := ctx.Err(); err != nil {
			return goerr.Wrap(err, "rendering cancelled", goerr.V(PageKey, p.name))
		}

		drawErr := p.draw(c, doc)
		if drawErr == nil {
			drawErr = c.Err()
		}
		if drawErr != nil {
			return goerr.Wrap(errors.Join(ErrRenderFailed, drawErr), "failed to draw page",
				goerr.V(PageKey, p.name),
				goerr.V(model.SessionIDKey, snapshot.SessionID))
		}
	}

	current = "output"
	var buf bytes.Buffer
	if err := c.Output(&buf); err != nil {
		return goerr.Wrap(errors.Join(ErrRenderFailed, err), "failed to output document",
			goerr.V(PageKey, current))
	}

	if _, err := w.Write(buf.Bytes()); err != nil {
		return goerr.Wrap(err, "failed to write report")
	}
	return nil
}

// header draws the navy band with a title and the gold rule below it
func header(c Canvas, b Branding, title string) {
	c.SetFillColor(b.Palette.Navy)
	c.Rect(0, 0, pageWidth, 25)

	c.SetTextColor(b.Palette.White)
	c.SetFont(FontHelvetica, StyleBold, 18)
	c.Text(margin, 17, title, AlignLeft)

	c.SetFillColor(b.Palette.Gold)
	c.Rect(0, 25, pageWidth, 2)
}

func footer(c Canvas, b Branding, pageNum int) {
	c.SetFont(FontHelvetica, StyleNormal, 9)
	c.SetTextColor(b.Palette.GrayText)
	c.Text(pageWidth/2, pageHeight-12, b.footer(), AlignCenter)
	c.Text(pageWidth/2, pageHeight-7, fmt.Sprintf("Page %d of %d", pageNum, totalPages), AlignCenter)
}
