package model

import (
	"sort"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/execdiag/pkg/domain/types"
)

// Fixed steps before the first question
const (
	ContactStep       = 0
	RoleStep          = 1
	FirstQuestionStep = 2
)

// Questionnaire is the immutable step layout derived from a Catalog. It applies
// navigation, answering and scoring to a Session passed in by the caller.
type Questionnaire struct {
	catalog    *Catalog
	questions  []Question
	stepOf     map[types.QuestionID]int
	totalSteps int
}

// NewQuestionnaire flattens the catalog into steps. Question i is placed on
// step FirstQuestionStep+i and the results step follows the last question.
func NewQuestionnaire(catalog *Catalog) *Questionnaire {
	questions := catalog.Questions()
	stepOf := make(map[types.QuestionID]int, len(questions))
	for i, q := range questions {
		stepOf[q.ID] = FirstQuestionStep + i
	}

	return &Questionnaire{
		catalog:    catalog,
		questions:  questions,
		stepOf:     stepOf,
		totalSteps: len(questions) + FirstQuestionStep + 1,
	}
}

// Catalog returns the underlying catalog
func (q *Questionnaire) Catalog() *Catalog {
	return q.catalog
}

// TotalSteps returns the number of steps including contact, role and results
func (q *Questionnaire) TotalSteps() int {
	return q.totalSteps
}

// ResultsStep returns the terminal step index
func (q *Questionnaire) ResultsStep() int {
	return q.totalSteps - 1
}

// Questions returns the questions in step order
func (q *Questionnaire) Questions() []Question {
	result := make([]Question, len(q.questions))
	copy(result, q.questions)
	return result
}

// QuestionAt returns the question shown on the given step
func (q *Questionnaire) QuestionAt(step int) (Question, bool) {
	i := step - FirstQuestionStep
	if i < 0 || i >= len(q.questions) {
		return Question{}, false
	}
	return q.questions[i], true
}

// StepOf returns the step index of a question
func (q *Questionnaire) StepOf(id types.QuestionID) (int, bool) {
	step, ok := q.stepOf[id]
	return step, ok
}

// Position describes where a session currently stands
type Position struct {
	Kind     types.StepKind
	Step     int
	Question *Question
}

// Position resolves the step of s into its kind
func (q *Questionnaire) Position(s *Session) Position {
	switch {
	case s.Step <= ContactStep:
		return Position{Kind: types.StepKindContact, Step: ContactStep}
	case s.Step == RoleStep:
		return Position{Kind: types.StepKindRole, Step: RoleStep}
	case s.Step >= q.ResultsStep():
		return Position{Kind: types.StepKindResults, Step: q.ResultsStep()}
	}

	question, _ := q.QuestionAt(s.Step)
	return Position{Kind: types.StepKindQuestion, Step: s.Step, Question: &question}
}

// Progress is the progress indicator state of a session
type Progress struct {
	Current     int
	Total       int
	Percent     float64
	ShowCounter bool
}

// Progress computes the progress indicator of s
func (q *Questionnaire) Progress(s *Session) Progress {
	current := s.Step + 1
	percent := float64(current) / float64(q.totalSteps) * 100
	if percent > 100 {
		percent = 100
	}
	return Progress{
		Current:     current,
		Total:       q.totalSteps,
		Percent:     percent,
		ShowCounter: s.Step < q.totalSteps-1,
	}
}

// ValidateContactInfo trims and checks name and email. On success they are
// committed to s; on failure s keeps its previous values.
func (q *Questionnaire) ValidateContactInfo(s *Session, name, email string) bool {
	name, email, ok := NormalizeContact(name, email)
	if !ok {
		return false
	}
	s.Name = name
	s.Email = email
	return true
}

// SelectRole stores the respondent's role
func (q *Questionnaire) SelectRole(s *Session, role types.Role) error {
	if !role.IsValid() {
		return goerr.Wrap(ErrInvalidRole, "unknown role", goerr.V(RoleKey, role))
	}
	s.Role = role
	return nil
}

// RecordResponse stores or overwrites the answer of a question
func (q *Questionnaire) RecordResponse(s *Session, id types.QuestionID, value int) error {
	question, err := q.catalog.Question(id)
	if err != nil {
		return err
	}
	if !ValidAnswerValue(value) {
		return goerr.Wrap(ErrInvalidAnswerValue, "answer out of range",
			goerr.V(QuestionIDKey, id),
			goerr.V(ValueKey, value))
	}

	if s.Responses == nil {
		s.Responses = make(map[types.QuestionID]Response)
	}
	s.Responses[id] = Response{
		QuestionID: id,
		CategoryID: question.CategoryID,
		Prompt:     question.Prompt,
		Value:      value,
	}
	return nil
}

// Advance moves s one step forward. The contact step requires committed
// contact info, the role step a role and every question step an answer.
// Advancing from the results step is a no-op.
func (q *Questionnaire) Advance(s *Session) error {
	pos := q.Position(s)

	switch pos.Kind {
	case types.StepKindResults:
		return nil
	case types.StepKindContact:
		if _, _, ok := NormalizeContact(s.Name, s.Email); !ok {
			return goerr.Wrap(ErrContactInvalid, "contact info not valid", goerr.V(StepKey, pos.Step))
		}
	case types.StepKindRole:
		if !s.Role.IsValid() {
			return goerr.Wrap(ErrStepIncomplete, "role not selected", goerr.V(StepKey, pos.Step))
		}
	case types.StepKindQuestion:
		if _, ok := s.Responses[pos.Question.ID]; !ok {
			return goerr.Wrap(ErrStepIncomplete, "question not answered",
				goerr.V(StepKey, pos.Step),
				goerr.V(QuestionIDKey, pos.Question.ID))
		}
	}

	s.Step = pos.Step + 1
	return nil
}

// Retreat moves s one step back. It never leaves the contact step and the
// results step has no way back.
func (q *Questionnaire) Retreat(s *Session) {
	pos := q.Position(s)
	if pos.Kind == types.StepKindContact || pos.Kind == types.StepKindResults {
		return
	}
	s.Step = pos.Step - 1
}

// ComputeScores averages each category's answered questions. It is a pure
// function of the current responses and may be called at any step.
func (q *Questionnaire) ComputeScores(s *Session) Scores {
	categories := q.catalog.Categories()
	scores := make(Scores, 0, len(categories))

	for _, cat := range categories {
		var total, answered int
		for _, question := range cat.Questions {
			if resp, ok := s.Responses[question.ID]; ok {
				total += resp.Value
				answered++
			}
		}
		scores = append(scores, NewCategoryScore(cat.ID, cat.Name, total, answered))
	}

	return scores
}

// Snapshot assembles the read-only assessment bundle handed to the renderer
func (q *Questionnaire) Snapshot(s *Session, now time.Time) *AssessmentSnapshot {
	responses := make([]Response, 0, len(s.Responses))
	for _, resp := range s.Responses {
		responses = append(responses, resp)
	}
	sort.Slice(responses, func(i, j int) bool {
		return q.stepOf[responses[i].QuestionID] < q.stepOf[responses[j].QuestionID]
	})

	return &AssessmentSnapshot{
		SessionID: s.ID,
		Name:      s.Name,
		Email:     s.Email,
		Role:      s.Role,
		Scores:    q.ComputeScores(s),
		Responses: responses,
		Timestamp: now,
	}
}
