package usecase

import (
	"bytes"
	"context"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/execdiag/pkg/domain/interfaces"
	"github.com/secmon-lab/execdiag/pkg/domain/model"
	"github.com/secmon-lab/execdiag/pkg/domain/types"
	"github.com/secmon-lab/execdiag/pkg/service/report"
	"github.com/secmon-lab/execdiag/pkg/utils/async"
	"github.com/secmon-lab/execdiag/pkg/utils/logging"
)

// Report is a rendered diagnostic report ready for download
type Report struct {
	Filename string
	Data     []byte
	Snapshot *model.AssessmentSnapshot
}

// AnswerSheet is a complete set of answers submitted in one piece
type AnswerSheet struct {
	Name    string
	Email   string
	Role    types.Role
	Answers map[types.QuestionID]int
}

type ReportUseCase struct {
	questionnaire *QuestionnaireUseCase
	renderer      interfaces.ReportRenderer
	archive       interfaces.ReportArchive
	now           func() time.Time
}

func NewReportUseCase(questionnaire *QuestionnaireUseCase, renderer interfaces.ReportRenderer, archive interfaces.ReportArchive, now func() time.Time) *ReportUseCase {
	if now == nil {
		now = time.Now
	}
	return &ReportUseCase{
		questionnaire: questionnaire,
		renderer:      renderer,
		archive:       archive,
		now:           now,
	}
}

// Generate renders the report of a completed session
func (uc *ReportUseCase) Generate(ctx context.Context, id model.SessionID) (*Report, error) {
	snapshot, err := uc.questionnaire.Complete(ctx, id)
	if err != nil {
		return nil, err
	}
	return uc.Render(ctx, snapshot)
}

// RenderAnswers renders a report from a complete answer sheet without
// storing anything
func (uc *ReportUseCase) RenderAnswers(ctx context.Context, sheet *AnswerSheet) (*Report, error) {
	snapshot, err := uc.SnapshotAnswers(sheet)
	if err != nil {
		return nil, err
	}
	return uc.Render(ctx, snapshot)
}

// SnapshotAnswers replays an answer sheet through the questionnaire and
// returns the resulting snapshot
func (uc *ReportUseCase) SnapshotAnswers(sheet *AnswerSheet) (*model.AssessmentSnapshot, error) {
	if sheet == nil {
		return nil, goerr.New("answer sheet is nil")
	}

	q := uc.questionnaire.Questionnaire()
	now := uc.now()
	s := model.NewSession(model.NewSessionID(), now)

	if !q.ValidateContactInfo(s, sheet.Name, sheet.Email) {
		return nil, goerr.Wrap(model.ErrContactInvalid, "invalid contact info in answer sheet")
	}
	if err := q.SelectRole(s, sheet.Role); err != nil {
		return nil, err
	}

	for id, value := range sheet.Answers {
		if err := q.RecordResponse(s, id, value); err != nil {
			return nil, err
		}
	}

	var missing []types.QuestionID
	for _, question := range q.Questions() {
		if _, ok := s.Responses[question.ID]; !ok {
			missing = append(missing, question.ID)
		}
	}
	if len(missing) > 0 {
		return nil, goerr.Wrap(ErrIncompleteAnswers, "answer sheet is incomplete", goerr.V(MissingKey, missing))
	}

	s.Step = q.ResultsStep()
	return q.Snapshot(s, now), nil
}

// Render draws the report of a snapshot. The document is fully buffered so
// a failed render never yields partial output. When an archive is
// configured a copy is stored in the background.
func (uc *ReportUseCase) Render(ctx context.Context, snapshot *model.AssessmentSnapshot) (*Report, error) {
	if uc.renderer == nil {
		return nil, goerr.Wrap(ErrRendererUnavailable, "cannot render report")
	}

	var buf bytes.Buffer
	if err := uc.renderer.Render(ctx, snapshot, &buf); err != nil {
		return nil, goerr.Wrap(err, "failed to render report", goerr.V(model.SessionIDKey, snapshot.SessionID))
	}

	rep := &Report{
		Filename: report.Filename(snapshot.Name),
		Data:     buf.Bytes(),
		Snapshot: snapshot,
	}

	logging.From(ctx).Info("Report generated",
		"session_id", snapshot.SessionID,
		"size", len(rep.Data))

	if uc.archive != nil {
		name := ArchiveObjectName(snapshot)
		data := rep.Data
		async.Dispatch(ctx, func(ctx context.Context) error {
			if err := uc.archive.Store(ctx, name, data); err != nil {
				return goerr.Wrap(err, "failed to archive report", goerr.V("object", name))
			}
			logging.From(ctx).Info("Report archived", "object", name)
			return nil
		})
	}

	return rep, nil
}

// ArchiveObjectName is the archive key of a report. It carries no personal data.
func ArchiveObjectName(snapshot *model.AssessmentSnapshot) string {
	return snapshot.Timestamp.UTC().Format("2006-01-02") + "/" + snapshot.SessionID.String() + ".pdf"
}
