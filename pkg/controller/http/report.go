package http

import (
	"mime"
	"net/http"
	"strconv"

	"github.com/secmon-lab/execdiag/pkg/domain/types"
	"github.com/secmon-lab/execdiag/pkg/usecase"
	"github.com/secmon-lab/execdiag/pkg/utils/safe"
)

type answerSheetRequest struct {
	Name    string         `json:"name"`
	Email   string         `json:"email"`
	Role    string         `json:"role"`
	Answers map[string]int `json:"answers"`
}

func (req *answerSheetRequest) toAnswerSheet() *usecase.AnswerSheet {
	answers := make(map[types.QuestionID]int, len(req.Answers))
	for id, v := range req.Answers {
		answers[types.QuestionID(id)] = v
	}
	return &usecase.AnswerSheet{
		Name:    req.Name,
		Email:   req.Email,
		Role:    types.Role(req.Role),
		Answers: answers,
	}
}

func writePDF(w http.ResponseWriter, r *http.Request, rep *usecase.Report) {
	h := w.Header()
	h.Set("Content-Type", "application/pdf")
	h.Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": rep.Filename}))
	h.Set("Content-Length", strconv.Itoa(len(rep.Data)))
	w.WriteHeader(http.StatusOK)
	safe.Write(r.Context(), w, rep.Data)
}

func (s *Server) sessionReportHandler(w http.ResponseWriter, r *http.Request) {
	rep, err := s.uc.Report.Generate(r.Context(), sessionID(r))
	if err != nil {
		handleError(w, r, err)
		return
	}
	writePDF(w, r, rep)
}

func (s *Server) answerSheetReportHandler(w http.ResponseWriter, r *http.Request) {
	var req answerSheetRequest
	if err := decodeJSON(w, r, s.maxBodySize, &req); err != nil {
		handleError(w, r, err)
		return
	}

	rep, err := s.uc.Report.RenderAnswers(r.Context(), req.toAnswerSheet())
	if err != nil {
		handleError(w, r, err)
		return
	}
	writePDF(w, r, rep)
}
