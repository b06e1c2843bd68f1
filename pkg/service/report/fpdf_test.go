package report_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/execdiag/pkg/service/report"
)

func newFpdfCanvas(t *testing.T) report.Canvas {
	t.Helper()
	c := report.NewFpdfCanvas()
	c.AddPage()
	c.SetFont(report.FontHelvetica, report.StyleNormal, 11)
	return c
}

func TestFpdfCanvas_SplitText(t *testing.T) {
	t.Run("non-ASCII text stays UTF-8", func(t *testing.T) {
		c := newFpdfCanvas(t)
		lines := c.SplitText("Café", 200)
		gt.Value(t, lines).Equal([]string{"Café"})
		gt.NoError(t, c.Err())
	})

	t.Run("wraps on spaces and keeps every word", func(t *testing.T) {
		c := newFpdfCanvas(t)
		text := "Réviser le café – 12–18 mois, naïve résumé crème brûlée déjà vu"
		lines := c.SplitText(text, 40)

		gt.Number(t, len(lines)).GreaterOrEqual(2)
		gt.Value(t, strings.Join(lines, " ")).Equal(text)
		for _, line := range lines {
			c.Text(10, 10, line, report.AlignLeft)
		}
		gt.NoError(t, c.Err())

		var buf bytes.Buffer
		gt.NoError(t, c.Output(&buf)).Required()
		gt.Bool(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-"))).True()
	})

	t.Run("long word is broken", func(t *testing.T) {
		c := newFpdfCanvas(t)
		word := strings.Repeat("é", 40)
		lines := c.SplitText(word, 20)

		gt.Number(t, len(lines)).GreaterOrEqual(2)
		gt.Value(t, strings.Join(lines, "")).Equal(word)
		for _, line := range lines {
			gt.String(t, line).NotEqual("")
		}
	})

	t.Run("explicit line breaks", func(t *testing.T) {
		c := newFpdfCanvas(t)
		gt.Value(t, c.SplitText("one\ntwo", 200)).Equal([]string{"one", "two"})
	})
}
