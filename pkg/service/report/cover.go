package report

const coverDateLayout = "January 2, 2006"

func drawCover(c Canvas, doc *document) error {
	b := doc.branding
	snap := doc.snapshot
	center := pageWidth / 2

	c.AddPage()

	c.SetFillColor(b.Palette.Navy)
	c.Rect(0, 0, pageWidth, pageHeight)
	c.SetFillColor(b.Palette.Gold)
	c.Rect(0, 0, pageWidth, 8)

	const contentY, contentHeight = 60.0, 160.0
	c.SetFillColor(b.Palette.White)
	c.RoundedRect(margin, contentY, pageWidth-2*margin, contentHeight, 5)

	c.SetTextColor(b.Palette.Navy)
	c.SetFont(FontHelvetica, StyleBold, 32)
	c.Text(center, contentY+30, "Executive Growth", AlignCenter)
	c.SetFont(FontHelvetica, StyleBold, 28)
	c.Text(center, contentY+45, "Diagnostic Results", AlignCenter)

	c.SetFillColor(b.Palette.Gold)
	c.Rect(margin+40, contentY+55, pageWidth-2*margin-80, 2)

	c.SetFont(FontHelvetica, StyleNormal, 14)
	c.Text(center, contentY+75, "Prepared for:", AlignCenter)
	c.SetFont(FontHelvetica, StyleBold, 22)
	c.Text(center, contentY+90, snap.Name, AlignCenter)

	c.SetFont(FontHelvetica, StyleNormal, 12)
	c.SetTextColor(b.Palette.GrayText)
	c.Text(center, contentY+100, snap.Role.Label(), AlignCenter)

	c.SetFont(FontHelvetica, StyleNormal, 14)
	c.SetTextColor(b.Palette.Navy)
	c.Text(center, contentY+120, "A snapshot of where you stand today", AlignCenter)

	c.SetFont(FontHelvetica, StyleNormal, 11)
	c.SetTextColor(b.Palette.GrayText)
	c.Text(center, contentY+135, snap.Timestamp.Format(coverDateLayout), AlignCenter)

	c.SetFont(FontHelvetica, StyleNormal, 10)
	c.SetTextColor(b.Palette.White)
	c.Text(center, pageHeight-20, b.CoachName, AlignCenter)
	c.Text(center, pageHeight-13, b.CoachTitle, AlignCenter)

	return nil
}
