package types

import "fmt"

// AnswerScale names the four-option answer set a question is presented with
type AnswerScale string

const (
	AnswerScaleFrequency       AnswerScale = "frequency"
	AnswerScaleClarity         AnswerScale = "clarity"
	AnswerScaleConfidence      AnswerScale = "confidence"
	AnswerScaleEffectiveness   AnswerScale = "effectiveness"
	AnswerScaleDegree          AnswerScale = "degree"
	AnswerScaleRepeatability   AnswerScale = "repeatability"
	AnswerScaleMeetingLoad     AnswerScale = "meeting-load"
	AnswerScaleRevenueObstacle AnswerScale = "revenue-obstacle"
)

// AllAnswerScales returns all valid answer scales
func AllAnswerScales() []AnswerScale {
	return []AnswerScale{
		AnswerScaleFrequency,
		AnswerScaleClarity,
		AnswerScaleConfidence,
		AnswerScaleEffectiveness,
		AnswerScaleDegree,
		AnswerScaleRepeatability,
		AnswerScaleMeetingLoad,
		AnswerScaleRevenueObstacle,
	}
}

// IsValid checks if the answer scale is valid
func (s AnswerScale) IsValid() bool {
	switch s {
	case AnswerScaleFrequency,
		AnswerScaleClarity,
		AnswerScaleConfidence,
		AnswerScaleEffectiveness,
		AnswerScaleDegree,
		AnswerScaleRepeatability,
		AnswerScaleMeetingLoad,
		AnswerScaleRevenueObstacle:
		return true
	default:
		return false
	}
}

// String returns the string representation of the answer scale
func (s AnswerScale) String() string {
	return string(s)
}

// ParseAnswerScale parses a string into an AnswerScale
func ParseAnswerScale(s string) (AnswerScale, error) {
	scale := AnswerScale(s)
	if !scale.IsValid() {
		return "", fmt.Errorf("invalid answer scale: %s", s)
	}
	return scale, nil
}
