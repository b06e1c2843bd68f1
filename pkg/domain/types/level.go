package types

import "fmt"

// Level is the qualitative bucket derived from a category percentage
type Level string

const (
	LevelHigh   Level = "High"
	LevelMedium Level = "Medium"
	LevelLow    Level = "Low"
)

const (
	highThreshold   = 75
	mediumThreshold = 50
)

// LevelFromPercentage classifies a percentage. High is >= 75, Medium is >= 50,
// everything else is Low.
func LevelFromPercentage(percentage int) Level {
	switch {
	case percentage >= highThreshold:
		return LevelHigh
	case percentage >= mediumThreshold:
		return LevelMedium
	default:
		return LevelLow
	}
}

// AllLevels returns all valid levels from highest to lowest
func AllLevels() []Level {
	return []Level{LevelHigh, LevelMedium, LevelLow}
}

// IsValid checks if the level is valid
func (l Level) IsValid() bool {
	switch l {
	case LevelHigh, LevelMedium, LevelLow:
		return true
	default:
		return false
	}
}

// String returns the string representation of the level
func (l Level) String() string {
	return string(l)
}

// ParseLevel parses a string into a Level
func ParseLevel(s string) (Level, error) {
	level := Level(s)
	if !level.IsValid() {
		return "", fmt.Errorf("invalid level: %s", s)
	}
	return level, nil
}
