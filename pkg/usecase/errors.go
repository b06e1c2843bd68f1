package usecase

import "errors"

// Sentinel errors for use case layer
var (
	// ErrNotCompleted is returned when a report is requested before the
	// session reached the results step
	ErrNotCompleted = errors.New("questionnaire is not completed")

	// ErrIncompleteAnswers is returned when an answer sheet misses questions
	ErrIncompleteAnswers = errors.New("every question must be answered")

	// ErrInvalidPayload is returned when a request body cannot be parsed
	ErrInvalidPayload = errors.New("invalid JSON payload")

	// ErrRendererUnavailable is returned when no report renderer is configured
	ErrRendererUnavailable = errors.New("report renderer is not configured")
)

// Context keys for error values
const (
	MissingKey = "missing"
	StepKey    = "step"
)
