package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/execdiag/pkg/domain/types"
)

// SessionID is a UUID-based identifier for a questionnaire session
type SessionID string

// NewSessionID generates a new time-ordered UUID v7 SessionID
func NewSessionID() SessionID {
	return SessionID(uuid.Must(uuid.NewV7()).String())
}

// Validate checks if the SessionID is a UUID
func (id SessionID) Validate() error {
	if id == "" {
		return goerr.New("session ID cannot be empty")
	}
	if _, err := uuid.Parse(string(id)); err != nil {
		return goerr.Wrap(err, "session ID must be a UUID", goerr.V(SessionIDKey, id))
	}
	return nil
}

// String returns the string representation of SessionID
func (id SessionID) String() string {
	return string(id)
}

// Response is the recorded answer of one question
type Response struct {
	QuestionID types.QuestionID
	CategoryID types.CategoryID
	Prompt     string
	Value      int
}

// Session is the mutable state of one respondent walking through the
// questionnaire. It is plain data; all transitions are applied by Questionnaire.
type Session struct {
	ID        SessionID
	Step      int
	Name      string
	Email     string
	Role      types.Role
	Responses map[types.QuestionID]Response
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewSession creates a session positioned on the contact step
func NewSession(id SessionID, now time.Time) *Session {
	return &Session{
		ID:        id,
		Step:      ContactStep,
		Responses: make(map[types.QuestionID]Response),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Copy creates a deep copy of the session
func (s *Session) Copy() *Session {
	responses := make(map[types.QuestionID]Response, len(s.Responses))
	for k, v := range s.Responses {
		responses[k] = v
	}

	return &Session{
		ID:        s.ID,
		Step:      s.Step,
		Name:      s.Name,
		Email:     s.Email,
		Role:      s.Role,
		Responses: responses,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
