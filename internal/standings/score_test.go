package standings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"liga-app/internal/model"
)

func playedMatch(sets ...[2]int) model.MatchRecord {
	result := &model.MatchResult{Status: model.MatchPlayed}
	for _, s := range sets {
		home, away := s[0], s[1]
		result.Sets = append(result.Sets, model.SetScore{Home: &home, Away: &away})
	}
	return model.MatchRecord{ID: "m1", Home: "a", Away: "b", Result: result}
}

func TestDeriveScore_Scheduled(t *testing.T) {
	for _, match := range []model.MatchRecord{
		{ID: "m1", Home: "a", Away: "b"},
		{ID: "m2", Home: "a", Away: "b", Result: &model.MatchResult{Status: model.MatchScheduled}},
		{ID: "m3", Home: "a", Away: "b", Result: &model.MatchResult{Status: "unknown"}},
	} {
		score := DeriveScore(match)
		assert.Equal(t, model.MatchScheduled, score.Status, match.ID)
		assert.Equal(t, model.SideNone, score.Winner, match.ID)
	}
}

func TestDeriveScore_WalkoverAway(t *testing.T) {
	match := model.MatchRecord{
		ID: "m1", Home: "a", Away: "b",
		Result: &model.MatchResult{Status: model.MatchWalkover, Winner: model.SideAway},
	}
	score := DeriveScore(match)

	assert.Equal(t, model.MatchWalkover, score.Status)
	assert.Equal(t, model.SideAway, score.Winner)
	assert.Equal(t, model.SideHome, score.Loser)
	assert.Equal(t, SidePair{Home: 0, Away: 2}, score.Sets)
	assert.Equal(t, SidePair{Home: 0, Away: 12}, score.Games)
	assert.Equal(t, []string{"0:6", "0:6"}, score.SetScores)
	assert.True(t, score.StraightSets)
	assert.Equal(t, WalkoverReason, score.Reason)
}

func TestDeriveScore_WalkoverInvalidWinnerDefaultsHome(t *testing.T) {
	match := model.MatchRecord{
		ID: "m1", Home: "a", Away: "b",
		Result: &model.MatchResult{Status: model.MatchWalkover, Winner: "neither", Reason: "no-show"},
	}
	score := DeriveScore(match)

	assert.Equal(t, model.SideHome, score.Winner)
	assert.Equal(t, SidePair{Home: 2, Away: 0}, score.Sets)
	assert.Equal(t, SidePair{Home: 12, Away: 0}, score.Games)
	assert.Equal(t, "no-show", score.Reason)
}

func TestDeriveScore_PlayedThreeSets(t *testing.T) {
	score := DeriveScore(playedMatch([2]int{6, 4}, [2]int{3, 6}, [2]int{6, 2}))

	assert.Equal(t, model.MatchPlayed, score.Status)
	assert.Equal(t, SidePair{Home: 2, Away: 1}, score.Sets)
	assert.Equal(t, SidePair{Home: 15, Away: 12}, score.Games)
	assert.Equal(t, model.SideHome, score.Winner)
	assert.Equal(t, []string{"6:4", "3:6", "6:2"}, score.SetScores)
	assert.False(t, score.StraightSets)
}

func TestDeriveScore_StraightSets(t *testing.T) {
	score := DeriveScore(playedMatch([2]int{6, 4}, [2]int{6, 0}))
	assert.Equal(t, model.SideHome, score.Winner)
	assert.True(t, score.StraightSets)
}

func TestDeriveScore_SkipsInvalidSets(t *testing.T) {
	match := playedMatch([2]int{6, 4}, [2]int{6, 1})
	six := 6
	match.Result.Sets = append(match.Result.Sets, model.SetScore{Home: &six, Away: nil})

	score := DeriveScore(match)
	require.Equal(t, SidePair{Home: 2, Away: 0}, score.Sets)
	assert.Equal(t, SidePair{Home: 12, Away: 5}, score.Games)
	assert.True(t, score.StraightSets)
}

func TestDeriveScore_ZeroValidSetsDefaultsHomeWinner(t *testing.T) {
	match := model.MatchRecord{
		ID: "m1", Home: "a", Away: "b",
		Result: &model.MatchResult{Status: model.MatchPlayed},
	}
	score := DeriveScore(match)

	assert.Equal(t, SidePair{}, score.Sets)
	assert.Equal(t, model.SideHome, score.Winner)
}

func TestDeriveScore_ExplicitWinnerWins(t *testing.T) {
	match := playedMatch([2]int{4, 6}, [2]int{2, 6})
	match.Result.Winner = model.SideHome

	score := DeriveScore(match)
	assert.Equal(t, model.SideHome, score.Winner)
	assert.Equal(t, SidePair{Home: 0, Away: 2}, score.Sets)
	assert.False(t, score.StraightSets)
}
