package types_test

import (
	"testing"

	"github.com/secmon-lab/execdiag/pkg/domain/types"
)

func TestCategoryID_Validate(t *testing.T) {
	tests := []struct {
		name    string
		id      types.CategoryID
		wantErr bool
	}{
		{"valid lowercase", "time-energy", false},
		{"valid single word", "leadership", false},
		{"valid with numbers", "growth-2", false},
		{"empty", "", true},
		{"uppercase", "Time-Energy", true},
		{"spaces", "time energy", true},
		{"underscore", "time_energy", true},
		{"starting with hyphen", "-time", true},
		{"ending with hyphen", "time-", true},
		{"double hyphen", "time--energy", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.id.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("CategoryID.Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestQuestionID_Validate(t *testing.T) {
	tests := []struct {
		name    string
		id      types.QuestionID
		wantErr bool
	}{
		{"valid", "time-energy.meeting-load", false},
		{"valid single words", "eq.feedback", false},
		{"empty", "", true},
		{"missing slug", "time-energy", true},
		{"missing category", ".meeting-load", true},
		{"two dots", "a.b.c", true},
		{"uppercase", "EQ.feedback", true},
		{"prompt text", "How often do you...", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.id.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("QuestionID.Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
