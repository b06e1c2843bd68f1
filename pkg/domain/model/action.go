package model

import (
	"sort"

	"github.com/secmon-lab/execdiag/pkg/domain/types"
)

// MaxActionSteps is the number of action items shown in a report
const MaxActionSteps = 5

// ActionStep is a canned recommendation for a weak category
type ActionStep struct {
	CategoryID  types.CategoryID
	Title       string
	Description string
}

var actionTemplates = map[types.CategoryID]ActionStep{
	CategoryLeadership: {
		Title:       "Strengthen Team Alignment",
		Description: "Hold a weekly 30-minute alignment call with your direct reports. Use this time to clarify priorities, remove blockers, and ensure everyone is rowing in the same direction. Document decisions and circulate notes within 24 hours.",
	},
	CategoryTimeEnergy: {
		Title:       "Protect Strategic Time",
		Description: "Block 2 hours each week for strategic work and treat it as sacred. Turn off notifications, close email, and focus on high-value priorities like planning, big decisions, or relationship building. Schedule it when your energy is highest.",
	},
	CategoryTalent: {
		Title:       "Invest in Onboarding & Development",
		Description: "Review your onboarding process to ensure new hires can ramp in less than 90 days. Create a clear 30-60-90 day plan with milestones. Also, identify 2-3 high performers and start having monthly development conversations with them.",
	},
	CategoryEQ: {
		Title:       "Seek Feedback Actively",
		Description: "Ask one direct report this week: \"What clarity do you need from me to perform better?\" Listen without defensiveness. Make this a monthly practice. Consider a 360 review to identify blind spots you cannot see on your own.",
	},
	CategoryGrowth: {
		Title:       "Build Repeatable Systems",
		Description: "Document your top 3 sales or customer acquisition processes. Identify what works, what does not, and where inconsistency creeps in. Create playbooks or checklists so success becomes repeatable, not reliant on individual heroics.",
	},
	CategoryFulfillment: {
		Title:       "Reconnect with Your \"Why\"",
		Description: "Schedule 30 minutes this week to reflect on what truly drives you. Write down your long-term vision for yourself, your team, and your impact. Use this as a filter for how you spend your time and energy going forward.",
	},
}

// SelectActionSteps picks the lowest-percentage categories, at most
// MaxActionSteps of them, in ascending order. Ties keep the order of scores.
// Categories without a template are skipped.
func SelectActionSteps(scores Scores) []ActionStep {
	sorted := make(Scores, len(scores))
	copy(sorted, scores)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Percentage < sorted[j].Percentage
	})

	actions := make([]ActionStep, 0, MaxActionSteps)
	for _, cs := range sorted {
		if len(actions) == MaxActionSteps {
			break
		}
		tmpl, ok := actionTemplates[cs.CategoryID]
		if !ok {
			continue
		}
		tmpl.CategoryID = cs.CategoryID
		actions = append(actions, tmpl)
	}

	return actions
}
