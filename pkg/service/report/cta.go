package report

// Booking button geometry
const (
	buttonWidth  = 130.0
	buttonHeight = 22.0
)

var benefits = []string{
	"Personalized review of your diagnostic results",
	"Specific guidance on your top 2-3 priority areas",
	"Clear next steps tailored to your situation",
	"Direct insight from an executive coach who's been there",
}

func drawCallToAction(c Canvas, doc *document) error {
	b := doc.branding
	center := pageWidth / 2
	firstName := b.CoachFirstName()

	c.AddPage()

	c.SetFillColor(b.Palette.Navy)
	c.Rect(0, 0, pageWidth, 85)
	c.SetFillColor(b.Palette.Gold)
	c.Rect(0, 0, pageWidth, 5)

	c.SetTextColor(b.Palette.White)
	c.SetFont(FontHelvetica, StyleBold, 26)
	c.Text(center, 28, "Next Step with "+firstName, AlignCenter)

	c.SetFont(FontHelvetica, StyleNormal, 11)
	c.Text(center, 44, "You now have clarity on your strengths and blind spots,", AlignCenter)
	c.Text(center, 53, "plus practical steps to get moving.", AlignCenter)
	c.SetFont(FontHelvetica, StyleBold, 10)
	c.Text(center, 66, "This is only the starting point.", AlignCenter)

	y := 100.0
	c.SetFont(FontHelvetica, StyleNormal, 11)
	c.SetTextColor(b.Palette.NavyMedium)
	c.Text(center, y, "Because you completed this diagnostic, you have exclusive access", AlignCenter)
	y += 10
	c.Text(center, y, "to a complimentary 15-minute coaching call with "+firstName+".", AlignCenter)
	y += 20

	buttonX := (pageWidth - buttonWidth) / 2
	buttonY := y
	c.SetFillColor(b.Palette.Blue)
	c.RoundedRect(buttonX, buttonY, buttonWidth, buttonHeight, 4)
	c.SetFont(FontHelvetica, StyleBold, 14)
	c.SetTextColor(b.Palette.White)
	c.Text(center, buttonY+14, "CLICK HERE TO BOOK YOUR SESSION", AlignCenter)
	c.Link(buttonX, buttonY, buttonWidth, buttonHeight, b.BookingURL)

	y = buttonY + buttonHeight + 6
	c.SetFont(FontHelvetica, StyleItalic, 9)
	c.SetTextColor(b.Palette.Helper)
	c.Text(center, y, "(This button is clickable)", AlignCenter)
	y += 22

	c.SetFont(FontHelvetica, StyleBold, 13)
	c.SetTextColor(b.Palette.Navy)
	c.Text(margin, y, "What You'll Get in Your Session:", AlignLeft)
	y += 12

	for _, benefit := range benefits {
		c.SetTextColor(b.Palette.Blue)
		c.SetFont(FontSymbol, StyleNormal, 10)
		c.Text(margin, y, checkMark, AlignLeft)

		c.SetTextColor(b.Palette.NavyMedium)
		c.SetFont(FontHelvetica, StyleNormal, 10)
		c.Text(margin+8, y, benefit, AlignLeft)
		y += 10
	}

	footer(c, b, 4)
	return nil
}
