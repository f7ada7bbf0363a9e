package standings

import (
	"slices"

	"liga-app/internal/model"
)

// PointsTable maps match outcome classes to the points awarded for them.
type PointsTable struct {
	Win20       int `json:"win_2_0"`
	Win21       int `json:"win_2_1"`
	Loss12      int `json:"loss_1_2"`
	Loss02      int `json:"loss_0_2"`
	ForfeitLoss int `json:"forfeit_loss"`
}

// RatingTable holds the starting rating and the rating swing per win margin.
// A loss moves the rating by the negated delta of the winner's margin.
type RatingTable struct {
	Base  int `json:"base"`
	Win20 int `json:"win_2_0"`
	Win21 int `json:"win_2_1"`
}

// RuleConfig is a fully resolved scoring configuration. The Tiebreakers
// labels are informational; tie-break computation follows the fixed
// criterion order in tiebreak.go regardless of this list.
type RuleConfig struct {
	Points      PointsTable `json:"points"`
	Rating      RatingTable `json:"rating"`
	Tiebreakers []string    `json:"tiebreakers"`
}

func DefaultRules() RuleConfig {
	return RuleConfig{
		Points: PointsTable{
			Win20:       3,
			Win21:       2,
			Loss12:      1,
			Loss02:      0,
			ForfeitLoss: -1,
		},
		Rating: RatingTable{
			Base:  1000,
			Win20: 12,
			Win21: 10,
		},
		Tiebreakers: []string{"headToHead", "setDiff", "gameDiff", "gamePct"},
	}
}

// ResolveRules merges the supplied partial overrides over the defaults.
// Resolution is total: any missing section or field keeps its default.
func ResolveRules(overrides model.RuleOverrides) RuleConfig {
	cfg := DefaultRules()
	if p := overrides.Points; p != nil {
		applyOverride(&cfg.Points.Win20, p.Win20)
		applyOverride(&cfg.Points.Win21, p.Win21)
		applyOverride(&cfg.Points.Loss12, p.Loss12)
		applyOverride(&cfg.Points.Loss02, p.Loss02)
		applyOverride(&cfg.Points.ForfeitLoss, p.ForfeitLoss)
	}
	if r := overrides.Rating; r != nil {
		applyOverride(&cfg.Rating.Base, r.Base)
		applyOverride(&cfg.Rating.Win20, r.Win20)
		applyOverride(&cfg.Rating.Win21, r.Win21)
	}
	if len(overrides.Tiebreakers) > 0 {
		cfg.Tiebreakers = slices.Clone(overrides.Tiebreakers)
	}
	return cfg
}

func applyOverride(target *int, value *int) {
	if value != nil {
		*target = *value
	}
}
