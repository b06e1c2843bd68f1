package report

import "github.com/m-mizutani/goerr/v2"

var (
	// ErrRenderFailed is returned when any page of the report cannot be drawn
	ErrRenderFailed = goerr.New("failed to render report")

	// ErrRendererUnavailable is returned when no drawing backend is configured
	ErrRendererUnavailable = goerr.New("report renderer is unavailable")
)

// PageKey carries the name of the page being drawn when rendering failed
const PageKey = "page"
