package report

import "regexp"

var whitespaceRun = regexp.MustCompile(`\s+`)

// Filename returns the download name of the report for a respondent
func Filename(name string) string {
	return "Executive-Diagnostic-Report-" + whitespaceRun.ReplaceAllString(name, "-") + ".pdf"
}
