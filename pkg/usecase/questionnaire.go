package usecase

import (
	"context"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/execdiag/pkg/domain/interfaces"
	"github.com/secmon-lab/execdiag/pkg/domain/model"
	"github.com/secmon-lab/execdiag/pkg/domain/types"
	"github.com/secmon-lab/execdiag/pkg/utils/logging"
)

// SessionState is a session together with its derived position and progress
type SessionState struct {
	Session  *model.Session
	Position model.Position
	Progress model.Progress
}

// QuestionnaireUseCase drives stored sessions through the questionnaire.
// Every mutating call loads the session, applies one operation and saves it.
type QuestionnaireUseCase struct {
	repo          interfaces.Repository
	questionnaire *model.Questionnaire
	now           func() time.Time
}

func NewQuestionnaireUseCase(repo interfaces.Repository, questionnaire *model.Questionnaire, now func() time.Time) *QuestionnaireUseCase {
	if now == nil {
		now = time.Now
	}
	return &QuestionnaireUseCase{
		repo:          repo,
		questionnaire: questionnaire,
		now:           now,
	}
}

// Questionnaire returns the step layout sessions are driven through
func (uc *QuestionnaireUseCase) Questionnaire() *model.Questionnaire {
	return uc.questionnaire
}

// Catalog returns the question catalog
func (uc *QuestionnaireUseCase) Catalog() *model.Catalog {
	return uc.questionnaire.Catalog()
}

func (uc *QuestionnaireUseCase) state(s *model.Session) *SessionState {
	return &SessionState{
		Session:  s,
		Position: uc.questionnaire.Position(s),
		Progress: uc.questionnaire.Progress(s),
	}
}

func (uc *QuestionnaireUseCase) load(ctx context.Context, id model.SessionID) (*model.Session, error) {
	if err := id.Validate(); err != nil {
		return nil, goerr.Wrap(model.ErrSessionNotFound, "malformed session ID", goerr.V(model.SessionIDKey, id))
	}

	s, err := uc.repo.Session().Get(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get session", goerr.V(model.SessionIDKey, id))
	}
	return s, nil
}

func (uc *QuestionnaireUseCase) update(ctx context.Context, id model.SessionID, apply func(s *model.Session) error) (*SessionState, error) {
	s, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := apply(s); err != nil {
		return nil, err
	}

	s.UpdatedAt = uc.now()
	if err := uc.repo.Session().Put(ctx, s); err != nil {
		return nil, goerr.Wrap(err, "failed to save session", goerr.V(model.SessionIDKey, id))
	}
	return uc.state(s), nil
}

// Start creates a new session positioned on the contact step
func (uc *QuestionnaireUseCase) Start(ctx context.Context) (*SessionState, error) {
	s := model.NewSession(model.NewSessionID(), uc.now())
	if err := uc.repo.Session().Put(ctx, s); err != nil {
		return nil, goerr.Wrap(err, "failed to create session")
	}

	logging.From(ctx).Info("Questionnaire session started", "session_id", s.ID)
	return uc.state(s), nil
}

// Get returns the current state of a session
func (uc *QuestionnaireUseCase) Get(ctx context.Context, id model.SessionID) (*SessionState, error) {
	s, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return uc.state(s), nil
}

// SubmitContact validates and stores the respondent's name and email. The
// boolean result reports whether they were valid; invalid input leaves the
// session untouched and is not an error.
func (uc *QuestionnaireUseCase) SubmitContact(ctx context.Context, id model.SessionID, name, email string) (*SessionState, bool, error) {
	var valid bool
	state, err := uc.update(ctx, id, func(s *model.Session) error {
		valid = uc.questionnaire.ValidateContactInfo(s, name, email)
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return state, valid, nil
}

// SelectRole stores the respondent's role
func (uc *QuestionnaireUseCase) SelectRole(ctx context.Context, id model.SessionID, role types.Role) (*SessionState, error) {
	return uc.update(ctx, id, func(s *model.Session) error {
		return uc.questionnaire.SelectRole(s, role)
	})
}

// Answer records the answer to a question, overwriting a previous one
func (uc *QuestionnaireUseCase) Answer(ctx context.Context, id model.SessionID, questionID types.QuestionID, value int) (*SessionState, error) {
	return uc.update(ctx, id, func(s *model.Session) error {
		return uc.questionnaire.RecordResponse(s, questionID, value)
	})
}

// Advance moves the session to the next step
func (uc *QuestionnaireUseCase) Advance(ctx context.Context, id model.SessionID) (*SessionState, error) {
	return uc.update(ctx, id, func(s *model.Session) error {
		if err := uc.questionnaire.Advance(s); err != nil {
			return err
		}
		if uc.questionnaire.Position(s).Kind == types.StepKindResults {
			logging.From(ctx).Info("Questionnaire completed", "session_id", s.ID)
		}
		return nil
	})
}

// Retreat moves the session to the previous step
func (uc *QuestionnaireUseCase) Retreat(ctx context.Context, id model.SessionID) (*SessionState, error) {
	return uc.update(ctx, id, func(s *model.Session) error {
		uc.questionnaire.Retreat(s)
		return nil
	})
}

// Scores computes the category scores of the answers given so far
func (uc *QuestionnaireUseCase) Scores(ctx context.Context, id model.SessionID) (model.Scores, error) {
	s, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return uc.questionnaire.ComputeScores(s), nil
}

// Complete returns the assessment snapshot of a session on the results step
func (uc *QuestionnaireUseCase) Complete(ctx context.Context, id model.SessionID) (*model.AssessmentSnapshot, error) {
	s, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}

	if pos := uc.questionnaire.Position(s); pos.Kind != types.StepKindResults {
		return nil, goerr.Wrap(ErrNotCompleted, "session has not reached the results step",
			goerr.V(model.SessionIDKey, id),
			goerr.V(StepKey, s.Step))
	}

	return uc.questionnaire.Snapshot(s, uc.now()), nil
}
