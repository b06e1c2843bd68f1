package types

import (
	"regexp"

	"github.com/m-mizutani/goerr/v2"
)

// QuestionID is a stable identifier of a question, formed as "<category-id>.<slug>".
// It survives edits of the prompt text.
type QuestionID string

var questionIDPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*\.[a-z0-9]+(-[a-z0-9]+)*$`)

// Validate checks if the QuestionID is valid
func (q QuestionID) Validate() error {
	if q == "" {
		return goerr.New("question ID cannot be empty")
	}
	if !questionIDPattern.MatchString(string(q)) {
		return goerr.New("question ID must be <category>.<slug> in lowercase alphanumeric with hyphens", goerr.V("id", q))
	}
	return nil
}

// String returns the string representation of QuestionID
func (q QuestionID) String() string {
	return string(q)
}
