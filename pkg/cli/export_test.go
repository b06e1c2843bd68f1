package cli

var (
	LoadAnswerSheet = loadAnswerSheet
	RenderFiles     = renderFiles
	PrintScores     = printScores
	PrintCatalog    = printCatalog
	OutputPath      = outputPath
)
