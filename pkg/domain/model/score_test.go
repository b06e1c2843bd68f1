package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/execdiag/pkg/domain/model"
	"github.com/secmon-lab/execdiag/pkg/domain/types"
)

func TestNewCategoryScore(t *testing.T) {
	tests := []struct {
		name           string
		total          int
		answered       int
		wantLabel      string
		wantPercentage int
		wantLevel      types.Level
	}{
		{"nothing answered", 0, 0, "0.0", 0, types.LevelLow},
		{"all fours", 16, 4, "4.0", 100, types.LevelHigh},
		{"all ones", 4, 4, "1.0", 25, types.LevelLow},
		{"all threes", 12, 4, "3.0", 75, types.LevelHigh},
		{"all twos", 8, 4, "2.0", 50, types.LevelMedium},
		{"half rounds up", 10, 4, "2.5", 63, types.LevelMedium},
		{"partial", 7, 3, "2.3", 58, types.LevelMedium},
		{"just below medium", 11, 6, "1.8", 46, types.LevelLow},
		{"quarter tie 1.25 rounds up", 5, 4, "1.3", 31, types.LevelLow},
		{"quarter tie 2.25 rounds up", 9, 4, "2.3", 56, types.LevelMedium},
		{"quarter tie 3.25 rounds up", 13, 4, "3.3", 81, types.LevelHigh},
		{"three quarters", 7, 4, "1.8", 44, types.LevelLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := model.NewCategoryScore("eq", "EQ & Blind Spots", tt.total, tt.answered)
			gt.Value(t, s.ScoreLabel()).Equal(tt.wantLabel)
			gt.Value(t, s.Percentage).Equal(tt.wantPercentage)
			gt.Value(t, s.Level).Equal(tt.wantLevel)
			gt.Value(t, s.Answered).Equal(tt.answered)
		})
	}
}

func TestNewCategoryScore_PercentageBounds(t *testing.T) {
	for answered := 1; answered <= 4; answered++ {
		for total := answered; total <= answered*4; total++ {
			s := model.NewCategoryScore("eq", "EQ", total, answered)
			gt.Number(t, s.Percentage).GreaterOrEqual(0)
			gt.Number(t, s.Percentage).LessOrEqual(100)
			gt.Value(t, s.Level).Equal(types.LevelFromPercentage(s.Percentage))
		}
	}
}

func TestScores_Get(t *testing.T) {
	scores := model.Scores{
		model.NewCategoryScore("eq", "EQ", 8, 4),
		model.NewCategoryScore("growth", "Growth", 16, 4),
	}

	s, ok := scores.Get("growth")
	gt.Bool(t, ok).True()
	gt.Value(t, s.Percentage).Equal(100)

	_, ok = scores.Get("talent")
	gt.Bool(t, ok).False()
}
