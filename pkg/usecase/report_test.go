package usecase_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/execdiag/pkg/domain/model"
	"github.com/secmon-lab/execdiag/pkg/domain/types"
	"github.com/secmon-lab/execdiag/pkg/service/report"
	"github.com/secmon-lab/execdiag/pkg/usecase"
)

type stubRenderer struct {
	output string
	err    error
	called int
}

func (r *stubRenderer) Render(ctx context.Context, snapshot *model.AssessmentSnapshot, w io.Writer) error {
	r.called++
	if r.err != nil {
		return r.err
	}
	_, err := io.WriteString(w, r.output)
	return err
}

type memoryArchive struct {
	mu      sync.Mutex
	objects map[string][]byte
	stored  chan string
}

func newMemoryArchive() *memoryArchive {
	return &memoryArchive{
		objects: make(map[string][]byte),
		stored:  make(chan string, 1),
	}
}

func (a *memoryArchive) Store(ctx context.Context, name string, data []byte) error {
	a.mu.Lock()
	a.objects[name] = data
	a.mu.Unlock()
	a.stored <- name
	return nil
}

func fullSheet(value int) *usecase.AnswerSheet {
	answers := make(map[types.QuestionID]int)
	for _, q := range model.DefaultCatalog().Questions() {
		answers[q.ID] = value
	}
	return &usecase.AnswerSheet{
		Name:    "Jane  Doe",
		Email:   "jane@example.com",
		Role:    types.RoleVP,
		Answers: answers,
	}
}

func TestReportUseCase_Generate(t *testing.T) {
	renderer := &stubRenderer{output: "%PDF-stub"}
	archive := newMemoryArchive()
	uc, _, _ := newUseCases(t, usecase.WithRenderer(renderer), usecase.WithArchive(archive))
	ctx := context.Background()

	t.Run("incomplete session", func(t *testing.T) {
		state, err := uc.Questionnaire.Start(ctx)
		gt.NoError(t, err).Required()

		_, err = uc.Report.Generate(ctx, state.Session.ID)
		gt.Error(t, err).Is(usecase.ErrNotCompleted)
		gt.Value(t, renderer.called).Equal(0)
	})

	t.Run("completed session", func(t *testing.T) {
		id := completeSession(t, uc, 3)

		rep, err := uc.Report.Generate(ctx, id)
		gt.NoError(t, err).Required()
		gt.Value(t, rep.Filename).Equal("Executive-Diagnostic-Report-Jane-Doe.pdf")
		gt.Value(t, string(rep.Data)).Equal("%PDF-stub")
		gt.Value(t, rep.Snapshot.SessionID).Equal(id)

		select {
		case name := <-archive.stored:
			gt.Value(t, name).Equal("2026-04-10/" + id.String() + ".pdf")
			gt.String(t, name).NotContains("Jane")
		case <-time.After(time.Second):
			t.Fatal("report was not archived")
		}
	})
}

func TestReportUseCase_RenderFailure(t *testing.T) {
	renderer := &stubRenderer{err: errors.New("font table corrupted")}
	uc, _, _ := newUseCases(t, usecase.WithRenderer(renderer))

	_, err := uc.Report.RenderAnswers(context.Background(), fullSheet(2))
	gt.Error(t, err)
	gt.Value(t, renderer.called).Equal(1)
}

func TestReportUseCase_NoRenderer(t *testing.T) {
	uc, _, _ := newUseCases(t)
	_, err := uc.Report.RenderAnswers(context.Background(), fullSheet(2))
	gt.Error(t, err).Is(usecase.ErrRendererUnavailable)
}

func TestReportUseCase_SnapshotAnswers(t *testing.T) {
	uc, repo, _ := newUseCases(t)

	t.Run("complete sheet", func(t *testing.T) {
		snap, err := uc.Report.SnapshotAnswers(fullSheet(4))
		gt.NoError(t, err).Required()
		gt.Value(t, snap.Name).Equal("Jane  Doe")
		gt.Array(t, snap.Responses).Length(24)
		for _, cs := range snap.Scores {
			gt.Value(t, cs.ScoreLabel()).Equal("4.0")
			gt.Value(t, cs.Level).Equal(types.LevelHigh)
		}

		// nothing is stored
		_, err = repo.Session().Get(context.Background(), snap.SessionID)
		gt.Error(t, err).Is(model.ErrSessionNotFound)
	})

	t.Run("missing answers", func(t *testing.T) {
		sheet := fullSheet(2)
		delete(sheet.Answers, "growth.revenue-obstacle")
		_, err := uc.Report.SnapshotAnswers(sheet)
		gt.Error(t, err).Is(usecase.ErrIncompleteAnswers)
	})

	t.Run("invalid contact", func(t *testing.T) {
		sheet := fullSheet(2)
		sheet.Email = "a b@c.com"
		_, err := uc.Report.SnapshotAnswers(sheet)
		gt.Error(t, err).Is(model.ErrContactInvalid)
	})

	t.Run("invalid role", func(t *testing.T) {
		sheet := fullSheet(2)
		sheet.Role = ""
		_, err := uc.Report.SnapshotAnswers(sheet)
		gt.Error(t, err).Is(model.ErrInvalidRole)
	})

	t.Run("out of range answer", func(t *testing.T) {
		sheet := fullSheet(2)
		sheet.Answers["eq.feedback"] = 0
		_, err := uc.Report.SnapshotAnswers(sheet)
		gt.Error(t, err).Is(model.ErrInvalidAnswerValue)
	})
}

func TestReportUseCase_RealRenderer(t *testing.T) {
	uc, _, _ := newUseCases(t, usecase.WithRenderer(report.New()))

	rep, err := uc.Report.RenderAnswers(context.Background(), fullSheet(2))
	gt.NoError(t, err).Required()
	gt.Bool(t, strings.HasPrefix(string(rep.Data), "%PDF-")).True()
}
