package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/execdiag/pkg/domain/model"
	"github.com/secmon-lab/execdiag/pkg/domain/types"
)

func scoresWith(percentages map[types.CategoryID]int) model.Scores {
	var scores model.Scores
	for _, cat := range model.DefaultCatalog().Categories() {
		// percentage p maps back to an average of p/25
		p := percentages[cat.ID]
		cs := model.NewCategoryScore(cat.ID, cat.Name, p, 25)
		scores = append(scores, cs)
	}
	return scores
}

func TestSelectActionSteps(t *testing.T) {
	t.Run("lowest five in ascending order", func(t *testing.T) {
		scores := scoresWith(map[types.CategoryID]int{
			model.CategoryLeadership:  90,
			model.CategoryTimeEnergy:  40,
			model.CategoryTalent:      70,
			model.CategoryEQ:          30,
			model.CategoryGrowth:      60,
			model.CategoryFulfillment: 80,
		})

		actions := model.SelectActionSteps(scores)
		gt.Array(t, actions).Length(model.MaxActionSteps)

		want := []types.CategoryID{
			model.CategoryEQ,
			model.CategoryTimeEnergy,
			model.CategoryGrowth,
			model.CategoryTalent,
			model.CategoryFulfillment,
		}
		for i, id := range want {
			gt.Value(t, actions[i].CategoryID).Equal(id)
		}
		gt.Value(t, actions[0].Title).Equal("Seek Feedback Actively")
	})

	t.Run("ties keep declaration order", func(t *testing.T) {
		scores := scoresWith(map[types.CategoryID]int{})

		actions := model.SelectActionSteps(scores)
		gt.Array(t, actions).Length(5)
		gt.Value(t, actions[0].CategoryID).Equal(model.CategoryLeadership)
		gt.Value(t, actions[4].CategoryID).Equal(model.CategoryGrowth)
	})

	t.Run("fewer categories than the limit", func(t *testing.T) {
		scores := model.Scores{
			model.NewCategoryScore(model.CategoryGrowth, "Growth", 4, 4),
			model.NewCategoryScore("custom", "Custom", 4, 4),
		}
		actions := model.SelectActionSteps(scores)
		gt.Array(t, actions).Length(1)
		gt.Value(t, actions[0].Title).Equal("Build Repeatable Systems")
	})

	t.Run("input is not reordered", func(t *testing.T) {
		scores := scoresWith(map[types.CategoryID]int{model.CategoryFulfillment: 10})
		_ = model.SelectActionSteps(scores)
		gt.Value(t, scores[0].CategoryID).Equal(model.CategoryLeadership)
	})
}

func TestInsight(t *testing.T) {
	gt.Value(t, model.Insight(model.CategoryLeadership, types.LevelHigh)).Equal("Strong alignment and clear communication")
	gt.Value(t, model.Insight(model.CategoryTalent, types.LevelLow)).Equal("Critical: address retention risks")
	gt.Value(t, model.Insight("custom", types.LevelLow)).Equal(model.DefaultInsight)
	gt.Value(t, model.Insight(model.CategoryEQ, "Unknown")).Equal(model.DefaultInsight)

	for _, cat := range model.DefaultCatalog().Categories() {
		for _, level := range types.AllLevels() {
			gt.String(t, model.Insight(cat.ID, level)).NotEqual(model.DefaultInsight)
		}
	}
}
