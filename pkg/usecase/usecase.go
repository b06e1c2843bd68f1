package usecase

import (
	"time"

	"github.com/secmon-lab/execdiag/pkg/domain/interfaces"
	"github.com/secmon-lab/execdiag/pkg/domain/model"
)

type UseCases struct {
	repo     interfaces.Repository
	catalog  *model.Catalog
	renderer interfaces.ReportRenderer
	archive  interfaces.ReportArchive
	now      func() time.Time

	Questionnaire *QuestionnaireUseCase
	Report        *ReportUseCase
	Submission    *SubmissionUseCase
}

type Option func(*UseCases)

// WithCatalog replaces the stock question catalog
func WithCatalog(catalog *model.Catalog) Option {
	return func(uc *UseCases) {
		uc.catalog = catalog
	}
}

// WithRenderer sets the report renderer
func WithRenderer(renderer interfaces.ReportRenderer) Option {
	return func(uc *UseCases) {
		uc.renderer = renderer
	}
}

// WithArchive enables archiving of generated reports
func WithArchive(archive interfaces.ReportArchive) Option {
	return func(uc *UseCases) {
		uc.archive = archive
	}
}

// WithClock replaces time.Now
func WithClock(now func() time.Time) Option {
	return func(uc *UseCases) {
		uc.now = now
	}
}

func New(repo interfaces.Repository, opts ...Option) *UseCases {
	uc := &UseCases{
		repo:    repo,
		catalog: model.DefaultCatalog(),
		now:     time.Now,
	}

	for _, opt := range opts {
		opt(uc)
	}

	questionnaire := model.NewQuestionnaire(uc.catalog)
	uc.Questionnaire = NewQuestionnaireUseCase(repo, questionnaire, uc.now)
	uc.Report = NewReportUseCase(uc.Questionnaire, uc.renderer, uc.archive, uc.now)
	uc.Submission = NewSubmissionUseCase()

	return uc
}
