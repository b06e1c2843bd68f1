package model

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/execdiag/pkg/domain/types"
)

// QuestionsPerCategory is the fixed number of questions every category carries
const QuestionsPerCategory = 4

// Question is a single prompt of the questionnaire
type Question struct {
	ID         types.QuestionID
	CategoryID types.CategoryID
	Prompt     string
	Scale      types.AnswerScale
}

// Options returns the answer options the question is presented with
func (q Question) Options() []AnswerOption {
	opts, _ := AnswerOptions(q.Scale)
	return opts
}

// Category is one of the assessment dimensions with its ordered questions
type Category struct {
	ID        types.CategoryID
	Name      string
	Questions []Question
}

// Catalog holds the categories in declaration order. It is immutable once built.
type Catalog struct {
	categories []Category
	questions  map[types.QuestionID]Question
	index      map[types.CategoryID]int
}

// NewCatalog validates and builds a Catalog
func NewCatalog(categories []Category) (*Catalog, error) {
	c := &Catalog{
		categories: make([]Category, 0, len(categories)),
		questions:  make(map[types.QuestionID]Question),
		index:      make(map[types.CategoryID]int),
	}

	for _, cat := range categories {
		if err := cat.ID.Validate(); err != nil {
			return nil, goerr.Wrap(ErrInvalidCatalog, "invalid category ID", goerr.V(CategoryIDKey, cat.ID), goerr.V("cause", err.Error()))
		}
		if cat.Name == "" {
			return nil, goerr.Wrap(ErrInvalidCatalog, "category name is required", goerr.V(CategoryIDKey, cat.ID))
		}
		if _, dup := c.index[cat.ID]; dup {
			return nil, goerr.Wrap(ErrInvalidCatalog, "duplicate category ID", goerr.V(CategoryIDKey, cat.ID))
		}
		if len(cat.Questions) != QuestionsPerCategory {
			return nil, goerr.Wrap(ErrInvalidCatalog, "category must have exactly 4 questions",
				goerr.V(CategoryIDKey, cat.ID),
				goerr.V("count", len(cat.Questions)))
		}

		questions := make([]Question, len(cat.Questions))
		for i, q := range cat.Questions {
			if err := q.ID.Validate(); err != nil {
				return nil, goerr.Wrap(ErrInvalidCatalog, "invalid question ID", goerr.V(QuestionIDKey, q.ID), goerr.V("cause", err.Error()))
			}
			if _, dup := c.questions[q.ID]; dup {
				return nil, goerr.Wrap(ErrInvalidCatalog, "duplicate question ID", goerr.V(QuestionIDKey, q.ID))
			}
			if !q.Scale.IsValid() {
				return nil, goerr.Wrap(ErrInvalidCatalog, "unknown answer scale",
					goerr.V(QuestionIDKey, q.ID),
					goerr.V("scale", q.Scale))
			}
			if q.Prompt == "" {
				return nil, goerr.Wrap(ErrInvalidCatalog, "question prompt is required", goerr.V(QuestionIDKey, q.ID))
			}
			q.CategoryID = cat.ID
			questions[i] = q
			c.questions[q.ID] = q
		}

		c.index[cat.ID] = len(c.categories)
		c.categories = append(c.categories, Category{
			ID:        cat.ID,
			Name:      cat.Name,
			Questions: questions,
		})
	}

	return c, nil
}

// Categories returns the categories in declaration order
func (c *Catalog) Categories() []Category {
	result := make([]Category, len(c.categories))
	copy(result, c.categories)
	return result
}

// Category looks up a category by ID
func (c *Catalog) Category(id types.CategoryID) (Category, bool) {
	i, ok := c.index[id]
	if !ok {
		return Category{}, false
	}
	return c.categories[i], true
}

// Question looks up a question by ID
func (c *Catalog) Question(id types.QuestionID) (Question, error) {
	q, ok := c.questions[id]
	if !ok {
		return Question{}, goerr.Wrap(ErrQuestionNotFound, "question not found", goerr.V(QuestionIDKey, id))
	}
	return q, nil
}

// Questions flattens all questions in declaration order
func (c *Catalog) Questions() []Question {
	result := make([]Question, 0, len(c.questions))
	for _, cat := range c.categories {
		result = append(result, cat.Questions...)
	}
	return result
}

// Stock category IDs
const (
	CategoryLeadership  types.CategoryID = "leadership"
	CategoryTimeEnergy  types.CategoryID = "time-energy"
	CategoryTalent      types.CategoryID = "talent"
	CategoryEQ          types.CategoryID = "eq"
	CategoryGrowth      types.CategoryID = "growth"
	CategoryFulfillment types.CategoryID = "fulfillment"
)

var defaultCatalog = mustCatalog(defaultCategories())

// DefaultCatalog returns the stock six-category, 24-question catalog
func DefaultCatalog() *Catalog {
	return defaultCatalog
}

func mustCatalog(categories []Category) *Catalog {
	c, err := NewCatalog(categories)
	if err != nil {
		panic(err)
	}
	return c
}

func defaultCategories() []Category {
	return []Category{
		{
			ID:   CategoryLeadership,
			Name: "Leadership & Team Alignment",
			Questions: []Question{
				{ID: "leadership.role-clarity", Scale: types.AnswerScaleClarity,
					Prompt: "How clearly does your team understand what success looks like in their roles?"},
				{ID: "leadership.cadence", Scale: types.AnswerScaleFrequency,
					Prompt: "How often do you hold structured manager 1:1s or team cadences?"},
				{ID: "leadership.priority-alignment", Scale: types.AnswerScaleClarity,
					Prompt: "How aligned is your leadership team on the company's top priorities?"},
				{ID: "leadership.decision-communication", Scale: types.AnswerScaleFrequency,
					Prompt: "How consistently are company decisions communicated and reinforced across the org?"},
			},
		},
		{
			ID:   CategoryTimeEnergy,
			Name: "Time & Energy",
			Questions: []Question{
				{ID: "time-energy.meeting-load", Scale: types.AnswerScaleMeetingLoad,
					Prompt: "How much of your week is spent in meetings and email versus strategic work?"},
				{ID: "time-energy.planning-time", Scale: types.AnswerScaleFrequency,
					Prompt: "How often do you protect time for long-term planning and big-picture thinking?"},
				{ID: "time-energy.energy-reserve", Scale: types.AnswerScaleFrequency,
					Prompt: "How often do you feel you have energy left for high-value priorities at the end of the week?"},
				{ID: "time-energy.recovery", Scale: types.AnswerScaleFrequency,
					Prompt: "How often do you step away fully from work for family, friends, or personal recovery?"},
			},
		},
		{
			ID:   CategoryTalent,
			Name: "Talent & Retention",
			Questions: []Question{
				{ID: "talent.retention-confidence", Scale: types.AnswerScaleConfidence,
					Prompt: "How confident are you that your best performers will stay in the next 12 months?"},
				{ID: "talent.onboarding", Scale: types.AnswerScaleEffectiveness,
					Prompt: "How effective is your onboarding at getting new hires productive quickly?"},
				{ID: "talent.incentives", Scale: types.AnswerScaleEffectiveness,
					Prompt: "How well does your current incentive plan reward the right outcomes versus the wrong behaviors?"},
				{ID: "talent.leadership-development", Scale: types.AnswerScaleFrequency,
					Prompt: "How consistently are you developing people for future leadership roles?"},
			},
		},
		{
			ID:   CategoryEQ,
			Name: "EQ & Blind Spots",
			Questions: []Question{
				{ID: "eq.composure", Scale: types.AnswerScaleDegree,
					Prompt: "How composed are you under stress or conflict in high-stakes situations?"},
				{ID: "eq.feedback", Scale: types.AnswerScaleFrequency,
					Prompt: "How often do you actively ask for and receive feedback on your leadership or decisions?"},
				{ID: "eq.self-awareness", Scale: types.AnswerScaleDegree,
					Prompt: "How aware are you of how your words and actions affect others?"},
				{ID: "eq.conflict-resolution", Scale: types.AnswerScaleEffectiveness,
					Prompt: "How effective are you at resolving conflict between team members or departments?"},
			},
		},
		{
			ID:   CategoryGrowth,
			Name: "Growth & Strategy",
			Questions: []Question{
				{ID: "growth.sales-scalability", Scale: types.AnswerScaleConfidence,
					Prompt: "How confident are you that your current sales process can scale over the next 12–18 months?"},
				{ID: "growth.revenue-obstacle", Scale: types.AnswerScaleRevenueObstacle,
					Prompt: "What is the biggest obstacle in hitting revenue targets right now?"},
				{ID: "growth.acquisition-repeatability", Scale: types.AnswerScaleRepeatability,
					Prompt: "How repeatable is your customer acquisition process today?"},
				{ID: "growth.value-articulation", Scale: types.AnswerScaleEffectiveness,
					Prompt: "How well does your team articulate your company's unique value in the sales process?"},
			},
		},
		{
			ID:   CategoryFulfillment,
			Name: "Personal Fulfillment & Purpose",
			Questions: []Question{
				{ID: "fulfillment.purpose", Scale: types.AnswerScaleDegree,
					Prompt: "How strongly do you feel a sense of purpose in your current role?"},
				{ID: "fulfillment.strengths", Scale: types.AnswerScaleDegree,
					Prompt: "How much do you feel you are playing to your strengths in your daily work?"},
				{ID: "fulfillment.vision", Scale: types.AnswerScaleConfidence,
					Prompt: "How confident are you in the long-term vision you're building toward?"},
				{ID: "fulfillment.life-balance", Scale: types.AnswerScaleDegree,
					Prompt: "How fulfilled are you outside of work in areas like family, health, and personal growth?"},
			},
		},
	}
}
