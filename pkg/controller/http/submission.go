package http

import (
	"net/http"
)

type submissionResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	ReportID string `json:"reportId"`
}

func (s *Server) submitHandler(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(w, r, s.maxBodySize)
	if err != nil {
		handleError(w, r, err)
		return
	}

	sub, err := s.uc.Submission.Submit(r.Context(), body)
	if err != nil {
		handleError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, submissionResponse{
		Success:  sub.Success,
		Message:  sub.Message,
		ReportID: sub.ReportID,
	})
}
