package model

import (
	"time"

	"github.com/secmon-lab/execdiag/pkg/domain/types"
)

// AssessmentSnapshot is the finalized identity and scores of one respondent.
// It only lives for the duration of report generation.
type AssessmentSnapshot struct {
	SessionID SessionID
	Name      string
	Email     string `masq:"secret"`
	Role      types.Role
	Scores    Scores
	Responses []Response
	Timestamp time.Time
}
