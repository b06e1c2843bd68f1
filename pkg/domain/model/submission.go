package model

import (
	"crypto/rand"
	"math/big"

	"github.com/m-mizutani/goerr/v2"
)

const (
	reportIDLength   = 9
	reportIDAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
)

// SubmissionMessage is returned for every accepted submission
const SubmissionMessage = "Questionnaire submitted successfully"

// Submission is the acknowledgement of an echoed questionnaire submission
type Submission struct {
	Success  bool
	Message  string
	ReportID string
}

// NewReportID returns a random 9 character base36 identifier
func NewReportID() (string, error) {
	max := big.NewInt(int64(len(reportIDAlphabet)))
	buf := make([]byte, reportIDLength)
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", goerr.Wrap(err, "failed to generate report ID")
		}
		buf[i] = reportIDAlphabet[n.Int64()]
	}
	return string(buf), nil
}
