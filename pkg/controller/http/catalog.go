package http

import (
	"net/http"

	"github.com/secmon-lab/execdiag/pkg/domain/model"
	"github.com/secmon-lab/execdiag/pkg/domain/types"
)

type optionResponse struct {
	Value int    `json:"value"`
	Label string `json:"label"`
}

type questionResponse struct {
	ID         string           `json:"id"`
	CategoryID string           `json:"categoryId"`
	Prompt     string           `json:"prompt"`
	Scale      string           `json:"scale"`
	Options    []optionResponse `json:"options"`
}

type categoryResponse struct {
	ID        string             `json:"id"`
	Name      string             `json:"name"`
	Questions []questionResponse `json:"questions"`
}

type roleResponse struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type catalogResponse struct {
	Categories []categoryResponse `json:"categories"`
	Roles      []roleResponse     `json:"roles"`
	TotalSteps int                `json:"totalSteps"`
}

func toQuestionResponse(q model.Question) questionResponse {
	opts := q.Options()
	resp := questionResponse{
		ID:         q.ID.String(),
		CategoryID: q.CategoryID.String(),
		Prompt:     q.Prompt,
		Scale:      string(q.Scale),
		Options:    make([]optionResponse, len(opts)),
	}
	for i, opt := range opts {
		resp.Options[i] = optionResponse{Value: opt.Value, Label: opt.Label}
	}
	return resp
}

func (s *Server) catalogHandler(w http.ResponseWriter, r *http.Request) {
	catalog := s.uc.Questionnaire.Catalog()

	resp := catalogResponse{
		TotalSteps: s.uc.Questionnaire.Questionnaire().TotalSteps(),
	}
	for _, cat := range catalog.Categories() {
		c := categoryResponse{
			ID:   cat.ID.String(),
			Name: cat.Name,
		}
		for _, q := range cat.Questions {
			c.Questions = append(c.Questions, toQuestionResponse(q))
		}
		resp.Categories = append(resp.Categories, c)
	}
	for _, role := range types.AllRoles() {
		resp.Roles = append(resp.Roles, roleResponse{Value: string(role), Label: role.Label()})
	}

	writeJSON(w, r, http.StatusOK, resp)
}
