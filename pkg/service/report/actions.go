package report

import "strconv"

const actionsIntro = "Based on your assessment, here are practical steps to address your key growth areas:"

func drawActions(c Canvas, doc *document) error {
	b := doc.branding

	c.AddPage()
	header(c, b, "Your Next Moves")

	y := 45.0
	c.SetFont(FontHelvetica, StyleNormal, 11)
	c.SetTextColor(b.Palette.NavyMedium)
	c.Text(margin, y, actionsIntro, AlignLeft)
	y += 15

	for i, action := range doc.actions {
		c.SetFillColor(b.Palette.Blue)
		c.Circle(margin+5, y+3, 5)
		c.SetTextColor(b.Palette.White)
		c.SetFont(FontHelvetica, StyleBold, 12)
		c.Text(margin+5, y+5, strconv.Itoa(i+1), AlignCenter)

		c.SetTextColor(b.Palette.Navy)
		c.Text(margin+15, y+5, action.Title, AlignLeft)
		y += 10

		c.SetFont(FontHelvetica, StyleNormal, 10)
		c.SetTextColor(b.Palette.NavyMedium)
		lines := c.SplitText(action.Description, pageWidth-2*margin-15)
		textLines(c, margin+15, y, lines, 10)
		y += float64(len(lines))*5.5 + 15

		if i < len(doc.actions)-1 {
			c.SetDrawColor(b.Palette.Track)
			c.SetLineWidth(0.5)
			c.Line(margin, y-8, pageWidth-margin, y-8)
		}
	}

	footer(c, b, 3)
	return nil
}
