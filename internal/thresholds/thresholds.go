package thresholds

import (
	"fmt"

	"github.com/ajharbinger/answer-eval-api/internal/errors"
)

// Tier names, from best to worst
const (
	TierExcellent = "excellent"
	TierGood      = "good"
	TierPartial   = "partial"
	TierIncorrect = "incorrect"
)

// Default feedback messages per tier
var defaultMessages = map[string]string{
	TierExcellent: "Excellent! Your answer closely matches the reference answer.",
	TierGood:      "Good answer. It covers the main points of the reference answer.",
	TierPartial:   "Partially correct. Your answer is missing some key points from the reference.",
	TierIncorrect: "Incorrect. Your answer does not match the reference answer.",
}

// Tier represents one named feedback band with an inclusive lower bound
type Tier struct {
	Name       string  `json:"name"`
	LowerBound float64 `json:"lower_bound"`
	Feedback   string  `json:"feedback"`
}

// Profile is one named set of tier bounds and feedback messages.
// Tiers are ordered from highest lower bound to lowest; scores below the
// lowest bound fall into the incorrect tier, so the profile always covers
// the full [0,1] range.
type Profile struct {
	Name              string
	Tiers             []Tier
	IncorrectFeedback string
}

// NewProfile creates a validated threshold profile. Bounds must satisfy
// 0 < partial < good < excellent <= 1; messages may override the default
// feedback text per tier name (incorrect included).
func NewProfile(name string, excellent, good, partial float64, messages map[string]string) (*Profile, error) {
	if excellent > 1 {
		return nil, errors.ConfigurationError(
			fmt.Sprintf("profile %s: excellent bound %.4f exceeds 1", name, excellent), nil)
	}
	if partial <= 0 {
		return nil, errors.ConfigurationError(
			fmt.Sprintf("profile %s: partial bound %.4f must be greater than 0", name, partial), nil)
	}
	if !(excellent > good && good > partial) {
		return nil, errors.ConfigurationError(
			fmt.Sprintf("profile %s: bounds must be strictly decreasing (excellent=%.4f good=%.4f partial=%.4f)",
				name, excellent, good, partial), nil)
	}

	message := func(tier string) string {
		if m, ok := messages[tier]; ok && m != "" {
			return m
		}
		return defaultMessages[tier]
	}

	return &Profile{
		Name: name,
		Tiers: []Tier{
			{Name: TierExcellent, LowerBound: excellent, Feedback: message(TierExcellent)},
			{Name: TierGood, LowerBound: good, Feedback: message(TierGood)},
			{Name: TierPartial, LowerBound: partial, Feedback: message(TierPartial)},
		},
		IncorrectFeedback: message(TierIncorrect),
	}, nil
}

// Classify maps a score to its tier name and feedback text. The scan runs
// from the highest lower bound down; a score exactly equal to a bound
// belongs to the higher tier. Scores below the lowest bound are incorrect.
func (p *Profile) Classify(score float64) (string, string) {
	for _, tier := range p.Tiers {
		if score >= tier.LowerBound {
			return tier.Name, tier.Feedback
		}
	}
	return TierIncorrect, p.IncorrectFeedback
}
