package standings

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"liga-app/internal/model"
)

func TestDeltas_Scheduled(t *testing.T) {
	cfg := DefaultRules()
	score := Score{Status: model.MatchScheduled}

	assert.Equal(t, SidePair{}, PointsDelta(score, cfg))
	assert.Equal(t, SidePair{}, RatingDelta(score, cfg))
}

func TestDeltas_WalkoverAway(t *testing.T) {
	cfg := DefaultRules()
	score := DeriveScore(model.MatchRecord{
		ID: "m1", Home: "a", Away: "b",
		Result: &model.MatchResult{Status: model.MatchWalkover, Winner: model.SideAway},
	})

	assert.Equal(t, SidePair{Home: -1, Away: 3}, PointsDelta(score, cfg))
	assert.Equal(t, SidePair{Home: -12, Away: 12}, RatingDelta(score, cfg))
}

func TestDeltas_PlayedTwoOne(t *testing.T) {
	cfg := DefaultRules()
	score := DeriveScore(playedMatch([2]int{6, 4}, [2]int{3, 6}, [2]int{6, 2}))

	assert.Equal(t, SidePair{Home: 2, Away: 1}, PointsDelta(score, cfg))
	assert.Equal(t, SidePair{Home: 10, Away: -10}, RatingDelta(score, cfg))
}

func TestDeltas_PlayedStraightSets(t *testing.T) {
	cfg := DefaultRules()
	score := DeriveScore(playedMatch([2]int{4, 6}, [2]int{3, 6}))

	assert.Equal(t, SidePair{Home: 0, Away: 3}, PointsDelta(score, cfg))
	assert.Equal(t, SidePair{Home: -12, Away: 12}, RatingDelta(score, cfg))
}

// The two points awarded per match always come straight out of the rule
// table for the outcome class, never silently asymmetric.
func TestDeltas_PointsSumMatchesRuleTable(t *testing.T) {
	cfg := DefaultRules()
	cases := []struct {
		name  string
		score Score
		total int
	}{
		{"walkover", DeriveScore(model.MatchRecord{ID: "m", Home: "a", Away: "b",
			Result: &model.MatchResult{Status: model.MatchWalkover}}), cfg.Points.Win20 + cfg.Points.ForfeitLoss},
		{"straight", DeriveScore(playedMatch([2]int{6, 0}, [2]int{6, 0})), cfg.Points.Win20 + cfg.Points.Loss02},
		{"three sets", DeriveScore(playedMatch([2]int{6, 0}, [2]int{0, 6}, [2]int{6, 0})), cfg.Points.Win21 + cfg.Points.Loss12},
	}
	for _, tc := range cases {
		points := PointsDelta(tc.score, cfg)
		assert.Equal(t, tc.total, points.Home+points.Away, tc.name)

		rating := RatingDelta(tc.score, cfg)
		assert.Zero(t, rating.Home+rating.Away, tc.name)
	}
}
