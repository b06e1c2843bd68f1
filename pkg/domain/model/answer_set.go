package model

import "github.com/secmon-lab/execdiag/pkg/domain/types"

// Minimum and maximum value of any answer option
const (
	MinAnswerValue = 1
	MaxAnswerValue = 4
)

// AnswerOption is one selectable option of a question
type AnswerOption struct {
	Value int
	Label string
}

func options(labels ...string) []AnswerOption {
	result := make([]AnswerOption, len(labels))
	for i, label := range labels {
		result[i] = AnswerOption{Value: i + 1, Label: label}
	}
	return result
}

var answerSets = map[types.AnswerScale][]AnswerOption{
	types.AnswerScaleFrequency: options(
		"Never",
		"Rarely",
		"Often",
		"Always",
	),
	types.AnswerScaleClarity: options(
		"Not at all clear",
		"Somewhat unclear",
		"Mostly clear",
		"Completely clear",
	),
	types.AnswerScaleConfidence: options(
		"Not confident",
		"Somewhat confident",
		"Confident",
		"Very confident",
	),
	types.AnswerScaleEffectiveness: options(
		"Not effective",
		"Somewhat effective",
		"Effective",
		"Very effective",
	),
	types.AnswerScaleDegree: options(
		"Not at all",
		"Somewhat",
		"Quite a bit",
		"Extremely",
	),
	types.AnswerScaleRepeatability: options(
		"Not repeatable",
		"Somewhat repeatable",
		"Mostly repeatable",
		"Highly repeatable",
	),
	types.AnswerScaleMeetingLoad: options(
		"80%+ meetings/email, very little strategic work",
		"60-80% meetings/email, some strategic work",
		"40-60% meetings/email, balanced approach",
		"Less than 40% meetings/email, mostly strategic work",
	),
	types.AnswerScaleRevenueObstacle: options(
		"Major systemic issues (process, team, market)",
		"Multiple significant challenges",
		"A few key challenges we're addressing",
		"Minor obstacles, mostly on track",
	),
}

// AnswerOptions returns a copy of the four ordered options of a scale.
// The second return value is false for an unknown scale.
func AnswerOptions(scale types.AnswerScale) ([]AnswerOption, bool) {
	set, ok := answerSets[scale]
	if !ok {
		return nil, false
	}
	result := make([]AnswerOption, len(set))
	copy(result, set)
	return result, true
}

// ValidAnswerValue reports whether v is a selectable option value
func ValidAnswerValue(v int) bool {
	return v >= MinAnswerValue && v <= MaxAnswerValue
}
