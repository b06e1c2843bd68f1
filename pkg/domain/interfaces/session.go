package interfaces

import (
	"context"
	"time"

	"github.com/secmon-lab/execdiag/pkg/domain/model"
)

// SessionRepository stores in-flight questionnaire sessions between requests
type SessionRepository interface {
	// Put creates or replaces a session
	Put(ctx context.Context, session *model.Session) error

	// Get retrieves a session by ID. A missing session is reported as
	// model.ErrSessionNotFound.
	Get(ctx context.Context, id model.SessionID) (*model.Session, error)

	// Delete removes a session. Deleting a missing session is not an error.
	Delete(ctx context.Context, id model.SessionID) error

	// DeleteIdle removes every session whose UpdatedAt is before the given
	// time and returns how many were removed
	DeleteIdle(ctx context.Context, before time.Time) (int, error)
}
