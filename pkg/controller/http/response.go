package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/execdiag/pkg/domain/model"
	"github.com/secmon-lab/execdiag/pkg/usecase"
	"github.com/secmon-lab/execdiag/pkg/utils/errutil"
	"github.com/secmon-lab/execdiag/pkg/utils/safe"
)

// clientErrors maps sentinel errors to their status code. The sentinel's
// message is shown to the client.
var clientErrors = []struct {
	err    error
	status int
}{
	{model.ErrSessionNotFound, http.StatusNotFound},
	{model.ErrQuestionNotFound, http.StatusNotFound},
	{model.ErrContactInvalid, http.StatusBadRequest},
	{model.ErrStepIncomplete, http.StatusBadRequest},
	{model.ErrInvalidAnswerValue, http.StatusBadRequest},
	{model.ErrInvalidRole, http.StatusBadRequest},
	{usecase.ErrIncompleteAnswers, http.StatusBadRequest},
	{usecase.ErrInvalidPayload, http.StatusBadRequest},
	{usecase.ErrNotCompleted, http.StatusConflict},
}

func handleError(w http.ResponseWriter, r *http.Request, err error) {
	for _, ce := range clientErrors {
		if errors.Is(err, ce.err) {
			errutil.HandleHTTP(r.Context(), w, err, ce.status, ce.err.Error())
			return
		}
	}

	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusRequestEntityTooLarge, "request body too large")
		return
	}

	errutil.HandleHTTP(r.Context(), w, err, http.StatusInternalServerError, "")
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		handleError(w, r, goerr.Wrap(err, "failed to marshal response"))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	safe.Write(r.Context(), w, data)
}

// readBody reads at most limit bytes of the request body
func readBody(w http.ResponseWriter, r *http.Request, limit int64) ([]byte, error) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, limit))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read request body")
	}
	return data, nil
}

// decodeJSON decodes the request body into v
func decodeJSON(w http.ResponseWriter, r *http.Request, limit int64, v any) error {
	data, err := readBody(w, r, limit)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return goerr.Wrap(usecase.ErrInvalidPayload, "failed to decode request body", goerr.V("cause", err.Error()))
	}
	return nil
}
