package report

var BarFillWidth = barFillWidth
