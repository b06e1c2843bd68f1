package interfaces

import (
	"context"
	"io"

	"github.com/secmon-lab/execdiag/pkg/domain/model"
)

// ReportRenderer draws the diagnostic report of a snapshot into w
type ReportRenderer interface {
	Render(ctx context.Context, snapshot *model.AssessmentSnapshot, w io.Writer) error
}

// ReportArchive keeps a copy of generated reports
type ReportArchive interface {
	Store(ctx context.Context, name string, data []byte) error
}
