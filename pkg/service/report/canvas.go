package report

import "io"

// Color is an RGB colour with components in 0..255
type Color struct {
	R, G, B int
}

// Align is the horizontal anchor of a text run relative to its x coordinate
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Font families understood by every Canvas
const (
	FontHelvetica = "helvetica"
	FontSymbol    = "zapfdingbats"
)

// Font styles
const (
	StyleNormal = ""
	StyleBold   = "B"
	StyleItalic = "I"
)

// checkMark is the check glyph of the symbol font
const checkMark = "4"

// Canvas is the drawing surface of the report. Units are millimetres with the
// origin at the top-left corner of the page; Text y is the baseline. Shapes
// are filled with the current fill colour.
//
// Drawing calls do not return errors. The first failure is latched and
// reported by Err, after which further calls are ignored.
type Canvas interface {
	AddPage()
	PageSize() (width, height float64)

	SetFillColor(c Color)
	SetTextColor(c Color)
	SetDrawColor(c Color)
	SetLineWidth(w float64)
	SetFont(family, style string, size float64)

	Rect(x, y, w, h float64)
	RoundedRect(x, y, w, h, r float64)
	Line(x1, y1, x2, y2 float64)
	Circle(x, y, r float64)
	Text(x, y float64, s string, align Align)

	// SplitText wraps s into lines no wider than w in the current font
	SplitText(s string, w float64) []string
	// Link makes the given area a clickable link to url
	Link(x, y, w, h float64, url string)

	Output(w io.Writer) error
	Err() error
}

// CanvasFactory creates a fresh canvas for one document
type CanvasFactory func() Canvas

// lineHeight is the distance between baselines of wrapped text, 1.15 times
// the font size converted from points to millimetres
func lineHeight(size float64) float64 {
	return size * 1.15 * 25.4 / 72
}

// textLines draws wrapped lines starting with the first baseline at y
func textLines(c Canvas, x, y float64, lines []string, size float64) {
	step := lineHeight(size)
	for i, line := range lines {
		c.Text(x, y+float64(i)*step, line, AlignLeft)
	}
}
