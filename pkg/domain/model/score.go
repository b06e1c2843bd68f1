package model

import (
	"math"
	"strconv"

	"github.com/secmon-lab/execdiag/pkg/domain/types"
)

// CategoryScore is the derived score of one category. It is never stored.
type CategoryScore struct {
	CategoryID types.CategoryID
	Name       string
	Score      float64 // average of answered values, 0 if none
	Percentage int     // round(Score / 4 * 100), always within [0, 100]
	Level      types.Level
	Answered   int
}

// NewCategoryScore derives a score from the sum and count of answered values
func NewCategoryScore(id types.CategoryID, name string, total, answered int) CategoryScore {
	var avg float64
	if answered > 0 {
		avg = float64(total) / float64(answered)
	}
	percentage := int(math.Round(avg / MaxAnswerValue * 100))
	if percentage < 0 {
		percentage = 0
	}
	if percentage > 100 {
		percentage = 100
	}

	return CategoryScore{
		CategoryID: id,
		Name:       name,
		Score:      avg,
		Percentage: percentage,
		Level:      types.LevelFromPercentage(percentage),
		Answered:   answered,
	}
}

// ScoreLabel formats the average with one decimal, e.g. "4.0". Ties round
// up, so 1.25 is "1.3".
func (s CategoryScore) ScoreLabel() string {
	return strconv.FormatFloat(math.Floor(s.Score*10+0.5)/10, 'f', 1, 64)
}

// Scores holds one CategoryScore per category in declaration order
type Scores []CategoryScore

// Get looks up the score of a category
func (s Scores) Get(id types.CategoryID) (CategoryScore, bool) {
	for _, cs := range s {
		if cs.CategoryID == id {
			return cs, true
		}
	}
	return CategoryScore{}, false
}
