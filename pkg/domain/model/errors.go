package model

import "github.com/m-mizutani/goerr/v2"

// Questionnaire errors
var (
	ErrContactInvalid     = goerr.New("please fill in all required fields with valid information")
	ErrStepIncomplete     = goerr.New("current step is not answered yet")
	ErrInvalidAnswerValue = goerr.New("answer value must be between 1 and 4")
	ErrInvalidRole        = goerr.New("invalid role")
	ErrQuestionNotFound   = goerr.New("question not found")
	ErrSessionNotFound    = goerr.New("session not found")
	ErrInvalidCatalog     = goerr.New("invalid question catalog")
)

// Context keys for error values
const (
	SessionIDKey  = "session_id"
	QuestionIDKey = "question_id"
	CategoryIDKey = "category_id"
	StepKey       = "step"
	ValueKey      = "value"
	RoleKey       = "role"
)
