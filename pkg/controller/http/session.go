package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/secmon-lab/execdiag/pkg/domain/model"
	"github.com/secmon-lab/execdiag/pkg/domain/types"
	"github.com/secmon-lab/execdiag/pkg/usecase"
)

type progressResponse struct {
	Current     int     `json:"current"`
	Total       int     `json:"total"`
	Percent     float64 `json:"percent"`
	ShowCounter bool    `json:"showCounter"`
}

type sessionResponse struct {
	ID       string            `json:"id"`
	Step     int               `json:"step"`
	Kind     string            `json:"kind"`
	Name     string            `json:"name"`
	Email    string            `json:"email"`
	Role     string            `json:"role"`
	Question *questionResponse `json:"question,omitempty"`
	Answers  map[string]int    `json:"answers"`
	Progress progressResponse  `json:"progress"`
}

type contactRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type contactResponse struct {
	Valid   bool            `json:"valid"`
	Message string          `json:"message,omitempty"`
	Session sessionResponse `json:"session"`
}

type roleRequest struct {
	Role string `json:"role"`
}

type answerRequest struct {
	Value int `json:"value"`
}

type scoreResponse struct {
	CategoryID string  `json:"categoryId"`
	Name       string  `json:"name"`
	Score      float64 `json:"score"`
	ScoreLabel string  `json:"scoreLabel"`
	Percentage int     `json:"percentage"`
	Level      string  `json:"level"`
	Answered   int     `json:"answered"`
	Insight    string  `json:"insight"`
}

func toSessionResponse(state *usecase.SessionState) sessionResponse {
	s := state.Session
	resp := sessionResponse{
		ID:      s.ID.String(),
		Step:    state.Position.Step,
		Kind:    state.Position.Kind.String(),
		Name:    s.Name,
		Email:   s.Email,
		Role:    string(s.Role),
		Answers: make(map[string]int, len(s.Responses)),
		Progress: progressResponse{
			Current:     state.Progress.Current,
			Total:       state.Progress.Total,
			Percent:     state.Progress.Percent,
			ShowCounter: state.Progress.ShowCounter,
		},
	}
	if state.Position.Question != nil {
		q := toQuestionResponse(*state.Position.Question)
		resp.Question = &q
	}
	for id, r := range s.Responses {
		resp.Answers[id.String()] = r.Value
	}
	return resp
}

func toScoresResponse(scores model.Scores) []scoreResponse {
	resp := make([]scoreResponse, len(scores))
	for i, cs := range scores {
		resp[i] = scoreResponse{
			CategoryID: cs.CategoryID.String(),
			Name:       cs.Name,
			Score:      cs.Score,
			ScoreLabel: cs.ScoreLabel(),
			Percentage: cs.Percentage,
			Level:      cs.Level.String(),
			Answered:   cs.Answered,
			Insight:    model.Insight(cs.CategoryID, cs.Level),
		}
	}
	return resp
}

func sessionID(r *http.Request) model.SessionID {
	return model.SessionID(chi.URLParam(r, "sessionID"))
}

func (s *Server) startSessionHandler(w http.ResponseWriter, r *http.Request) {
	state, err := s.uc.Questionnaire.Start(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusCreated, toSessionResponse(state))
}

func (s *Server) getSessionHandler(w http.ResponseWriter, r *http.Request) {
	state, err := s.uc.Questionnaire.Get(r.Context(), sessionID(r))
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, toSessionResponse(state))
}

func (s *Server) contactHandler(w http.ResponseWriter, r *http.Request) {
	var req contactRequest
	if err := decodeJSON(w, r, s.maxBodySize, &req); err != nil {
		handleError(w, r, err)
		return
	}

	state, valid, err := s.uc.Questionnaire.SubmitContact(r.Context(), sessionID(r), req.Name, req.Email)
	if err != nil {
		handleError(w, r, err)
		return
	}

	resp := contactResponse{
		Valid:   valid,
		Session: toSessionResponse(state),
	}
	if !valid {
		resp.Message = model.ErrContactInvalid.Error()
	}
	writeJSON(w, r, http.StatusOK, resp)
}

func (s *Server) roleHandler(w http.ResponseWriter, r *http.Request) {
	var req roleRequest
	if err := decodeJSON(w, r, s.maxBodySize, &req); err != nil {
		handleError(w, r, err)
		return
	}

	state, err := s.uc.Questionnaire.SelectRole(r.Context(), sessionID(r), types.Role(req.Role))
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, toSessionResponse(state))
}

func (s *Server) answerHandler(w http.ResponseWriter, r *http.Request) {
	var req answerRequest
	if err := decodeJSON(w, r, s.maxBodySize, &req); err != nil {
		handleError(w, r, err)
		return
	}

	questionID := types.QuestionID(chi.URLParam(r, "questionID"))
	state, err := s.uc.Questionnaire.Answer(r.Context(), sessionID(r), questionID, req.Value)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, toSessionResponse(state))
}

func (s *Server) advanceHandler(w http.ResponseWriter, r *http.Request) {
	state, err := s.uc.Questionnaire.Advance(r.Context(), sessionID(r))
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, toSessionResponse(state))
}

func (s *Server) retreatHandler(w http.ResponseWriter, r *http.Request) {
	state, err := s.uc.Questionnaire.Retreat(r.Context(), sessionID(r))
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, toSessionResponse(state))
}

func (s *Server) scoresHandler(w http.ResponseWriter, r *http.Request) {
	scores, err := s.uc.Questionnaire.Scores(r.Context(), sessionID(r))
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]any{"scores": toScoresResponse(scores)})
}
