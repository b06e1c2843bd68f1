package model

import "github.com/secmon-lab/execdiag/pkg/domain/types"

// DefaultInsight is shown when a (category, level) pair has no canned insight
const DefaultInsight = "Area for development"

var insights = map[types.CategoryID]map[types.Level]string{
	CategoryLeadership: {
		types.LevelHigh:   "Strong alignment and clear communication",
		types.LevelMedium: "Good foundation, room for improvement",
		types.LevelLow:    "Focus on clarity and consistency",
	},
	CategoryTimeEnergy: {
		types.LevelHigh:   "Well-balanced and strategic",
		types.LevelMedium: "Some optimization needed",
		types.LevelLow:    "Priority: protect strategic time",
	},
	CategoryTalent: {
		types.LevelHigh:   "Strong talent practices in place",
		types.LevelMedium: "Good systems, need refinement",
		types.LevelLow:    "Critical: address retention risks",
	},
	CategoryEQ: {
		types.LevelHigh:   "High self-awareness and composure",
		types.LevelMedium: "Developing awareness",
		types.LevelLow:    "Opportunity: seek more feedback",
	},
	CategoryGrowth: {
		types.LevelHigh:   "Scalable processes established",
		types.LevelMedium: "Solid base, needs scaling prep",
		types.LevelLow:    "Focus: repeatable systems",
	},
	CategoryFulfillment: {
		types.LevelHigh:   "Aligned and fulfilled",
		types.LevelMedium: "Good balance, minor gaps",
		types.LevelLow:    "Priority: reconnect with purpose",
	},
}

// Insight returns the one-line insight for a category at a level
func Insight(id types.CategoryID, level types.Level) string {
	if byLevel, ok := insights[id]; ok {
		if text, ok := byLevel[level]; ok {
			return text
		}
	}
	return DefaultInsight
}
