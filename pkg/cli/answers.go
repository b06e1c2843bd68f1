package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/secmon-lab/execdiag/pkg/domain/types"
	"github.com/secmon-lab/execdiag/pkg/usecase"
)

// answerFile is the on-disk form of a completed questionnaire, written as
// JSON or TOML
type answerFile struct {
	Name    string         `json:"name" toml:"name"`
	Email   string         `json:"email" toml:"email"`
	Role    string         `json:"role" toml:"role"`
	Answers map[string]int `json:"answers" toml:"answers"`
}

// loadAnswerSheet reads an answer file. The format follows the extension:
// .toml is TOML and everything else is JSON.
func loadAnswerSheet(path string) (*usecase.AnswerSheet, error) {
	// #nosec G304 - path is provided by CLI argument
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read answer file", goerr.V("path", path))
	}

	var file answerFile
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = toml.Unmarshal(data, &file)
	default:
		err = json.Unmarshal(data, &file)
	}
	if err != nil {
		return nil, goerr.Wrap(usecase.ErrInvalidPayload, "failed to parse answer file",
			goerr.V("path", path),
			goerr.V("cause", err.Error()))
	}

	answers := make(map[types.QuestionID]int, len(file.Answers))
	for id, v := range file.Answers {
		answers[types.QuestionID(id)] = v
	}

	return &usecase.AnswerSheet{
		Name:    file.Name,
		Email:   file.Email,
		Role:    types.Role(file.Role),
		Answers: answers,
	}, nil
}
