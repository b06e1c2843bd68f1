package report

import (
	"io"
	"strings"
	"unicode/utf8"

	"github.com/go-pdf/fpdf"
)

type fpdfCanvas struct {
	pdf *fpdf.Fpdf
	tr  func(string) string
}

var _ Canvas = &fpdfCanvas{}

// NewFpdfCanvas returns a Canvas drawing a portrait letter-size PDF
func NewFpdfCanvas() Canvas {
	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCompression(true)

	return &fpdfCanvas{
		pdf: pdf,
		tr:  pdf.UnicodeTranslatorFromDescriptor(""),
	}
}

func (c *fpdfCanvas) AddPage() {
	c.pdf.AddPage()
}

func (c *fpdfCanvas) PageSize() (float64, float64) {
	return c.pdf.GetPageSize()
}

func (c *fpdfCanvas) SetFillColor(col Color) {
	c.pdf.SetFillColor(col.R, col.G, col.B)
}

func (c *fpdfCanvas) SetTextColor(col Color) {
	c.pdf.SetTextColor(col.R, col.G, col.B)
}

func (c *fpdfCanvas) SetDrawColor(col Color) {
	c.pdf.SetDrawColor(col.R, col.G, col.B)
}

func (c *fpdfCanvas) SetLineWidth(w float64) {
	c.pdf.SetLineWidth(w)
}

func (c *fpdfCanvas) SetFont(family, style string, size float64) {
	c.pdf.SetFont(family, style, size)
}

func (c *fpdfCanvas) Rect(x, y, w, h float64) {
	c.pdf.Rect(x, y, w, h, "F")
}

func (c *fpdfCanvas) RoundedRect(x, y, w, h, r float64) {
	if w <= 0 || h <= 0 {
		return
	}
	r = min(r, w/2, h/2)
	c.pdf.RoundedRect(x, y, w, h, r, "1234", "F")
}

func (c *fpdfCanvas) Line(x1, y1, x2, y2 float64) {
	c.pdf.Line(x1, y1, x2, y2)
}

func (c *fpdfCanvas) Circle(x, y, r float64) {
	c.pdf.Circle(x, y, r, "F")
}

func (c *fpdfCanvas) Text(x, y float64, s string, align Align) {
	s = c.tr(s)
	switch align {
	case AlignCenter:
		x -= c.pdf.GetStringWidth(s) / 2
	case AlignRight:
		x -= c.pdf.GetStringWidth(s)
	}
	c.pdf.Text(x, y, s)
}

// SplitText wraps on spaces, breaking words that do not fit on their own.
// Widths are measured on the cp1252 form while the returned lines stay
// UTF-8, so Text translates each of them exactly once.
func (c *fpdfCanvas) SplitText(s string, w float64) []string {
	w -= 2 * c.pdf.GetCellMargin()
	fits := func(line string) bool {
		return c.pdf.GetStringWidth(c.tr(line)) <= w
	}

	var lines []string
	for _, paragraph := range strings.Split(s, "\n") {
		line := ""
		for _, word := range strings.Fields(paragraph) {
			candidate := word
			if line != "" {
				candidate = line + " " + word
			}
			if fits(candidate) {
				line = candidate
				continue
			}
			if line != "" {
				lines = append(lines, line)
				line = ""
			}
			for !fits(word) {
				head := breakWord(word, fits)
				lines = append(lines, head)
				word = word[len(head):]
			}
			line = word
		}
		lines = append(lines, line)
	}
	return lines
}

// breakWord returns the longest rune prefix of word that fits, and at least
// one rune
func breakWord(word string, fits func(string) bool) string {
	end := 0
	for i, r := range word {
		next := i + utf8.RuneLen(r)
		if end > 0 && !fits(word[:next]) {
			break
		}
		end = next
	}
	return word[:end]
}

func (c *fpdfCanvas) Link(x, y, w, h float64, url string) {
	c.pdf.LinkString(x, y, w, h, url)
}

func (c *fpdfCanvas) Output(w io.Writer) error {
	return c.pdf.Output(w)
}

func (c *fpdfCanvas) Err() error {
	return c.pdf.Error()
}
