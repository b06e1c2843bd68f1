package report

import (
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/execdiag/pkg/domain/model"
	"github.com/secmon-lab/execdiag/pkg/domain/types"
)

// Results grid: two columns of three cells
const (
	resultColumns     = 2
	resultRows        = 3
	resultCellHeight  = 60.0
	resultRowPitch    = 70.0
	resultTop         = 45.0
	resultBarHeight   = 6.0
	resultBarRadius   = 2.0
	resultLabelHeight = 5.0
)

func resultColumnWidth() float64 {
	return (pageWidth - 3*margin) / resultColumns
}

// barFillWidth is the filled share of a bar of width w
func barFillWidth(percentage int, w float64) float64 {
	return float64(percentage) / 100 * w
}

func levelColor(p Palette, level types.Level) Color {
	switch level {
	case types.LevelHigh:
		return p.Blue
	case types.LevelMedium:
		return p.Gold
	default:
		return p.Red
	}
}

func drawResults(c Canvas, doc *document) error {
	b := doc.branding
	scores := doc.snapshot.Scores
	if len(scores) > resultColumns*resultRows {
		return goerr.New("too many categories for the results grid", goerr.V("count", len(scores)))
	}

	c.AddPage()
	header(c, b, "Your Results")

	colWidth := resultColumnWidth()
	barWidth := colWidth - 10

	for i, score := range scores {
		col := i / resultRows
		row := i % resultRows
		x := margin + float64(col)*(colWidth+margin)
		y := resultTop + float64(row)*resultRowPitch

		c.SetFillColor(b.Palette.Panel)
		c.RoundedRect(x, y, colWidth, resultCellHeight, 3)

		c.SetFont(FontHelvetica, StyleBold, 11)
		c.SetTextColor(b.Palette.Navy)
		labelLines := c.SplitText(score.Name, barWidth)
		textLines(c, x+5, y+8, labelLines, 11)

		barY := y + float64(len(labelLines))*resultLabelHeight + 10
		c.SetFillColor(b.Palette.Track)
		c.RoundedRect(x+5, barY, barWidth, resultBarHeight, resultBarRadius)
		c.SetFillColor(levelColor(b.Palette, score.Level))
		c.RoundedRect(x+5, barY, barFillWidth(score.Percentage, barWidth), resultBarHeight, resultBarRadius)

		c.SetFont(FontHelvetica, StyleBold, 16)
		c.SetTextColor(b.Palette.Navy)
		c.Text(x+5, barY+18, fmt.Sprintf("%d%%", score.Percentage), AlignLeft)

		c.SetFont(FontHelvetica, StyleNormal, 9)
		c.SetTextColor(b.Palette.GrayText)
		c.Text(x+5, barY+26, score.Level.String(), AlignLeft)

		c.SetFont(FontHelvetica, StyleNormal, 8)
		c.SetTextColor(b.Palette.NavyMedium)
		insight := model.Insight(score.CategoryID, score.Level)
		textLines(c, x+5, barY+35, c.SplitText(insight, barWidth), 8)
	}

	footer(c, b, 2)
	return nil
}
