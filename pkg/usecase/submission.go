package usecase

import (
	"context"
	"encoding/json"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/execdiag/pkg/domain/model"
	"github.com/secmon-lab/execdiag/pkg/utils/logging"
)

// SubmissionUseCase acknowledges questionnaire submissions. Nothing is stored.
type SubmissionUseCase struct{}

func NewSubmissionUseCase() *SubmissionUseCase {
	return &SubmissionUseCase{}
}

// Submit logs the submitted payload and returns an acknowledgement with a
// fresh report ID
func (uc *SubmissionUseCase) Submit(ctx context.Context, payload json.RawMessage) (*model.Submission, error) {
	var data any
	if err := json.Unmarshal(payload, &data); err != nil {
		return nil, goerr.Wrap(ErrInvalidPayload, "submission is not valid JSON", goerr.V("cause", err.Error()))
	}

	reportID, err := model.NewReportID()
	if err != nil {
		return nil, err
	}

	logging.From(ctx).Info("Questionnaire submission received",
		"report_id", reportID,
		"payload", data)

	return &model.Submission{
		Success:  true,
		Message:  model.SubmissionMessage,
		ReportID: reportID,
	}, nil
}
