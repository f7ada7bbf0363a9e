package standings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"liga-app/internal/model"
)

func testCollator() *collate.Collator { return collate.New(language.Russian) }

func sets(pairs ...[2]int) []model.SetScore {
	out := make([]model.SetScore, 0, len(pairs))
	for _, p := range pairs {
		home, away := p[0], p[1]
		out = append(out, model.SetScore{Home: &home, Away: &away})
	}
	return out
}

func fixtureGroup() model.Group {
	return model.Group{
		ID:    "gold-01",
		Label: "Group A",
		Teams: []model.Team{
			{ID: "a", Name: "Ace"},
			{ID: "b", Name: "Bolt"},
		},
		Matches: []model.MatchRecord{
			{ID: "m3", Home: "a", Away: "c", Round: model.NumericRound(2),
				Result: &model.MatchResult{Status: model.MatchWalkover, Winner: model.SideHome}},
			{ID: "m2", Home: "a", Away: "b", Date: "2025-01-02",
				Result: &model.MatchResult{Status: model.MatchPlayed, Sets: sets([2]int{6, 4}, [2]int{6, 2})}},
			{ID: "m4", Home: "a", Away: "b", Round: model.NumericRound(1)},
			{ID: "m1", Home: "b", Away: "a", Date: "2025-01-01",
				Result: &model.MatchResult{Status: model.MatchPlayed, Sets: sets([2]int{6, 3}, [2]int{4, 6}, [2]int{6, 4})}},
			{ID: "broken", Away: "a",
				Result: &model.MatchResult{Status: model.MatchPlayed, Sets: sets([2]int{6, 0})}},
		},
	}
}

func statsByID(stats []*TeamStats) map[string]*TeamStats {
	index := make(map[string]*TeamStats, len(stats))
	for _, s := range stats {
		index[s.TeamID] = s
	}
	return index
}

func TestAggregateGroup_ReplayOrder(t *testing.T) {
	_, processed := AggregateGroup(fixtureGroup(), DefaultRules(), testCollator())

	ids := make([]string, 0, len(processed))
	for _, match := range processed {
		ids = append(ids, match.ID)
	}
	// dated first (ascending), then undated by round; the sideless match
	// is dropped entirely.
	assert.Equal(t, []string{"m1", "m2", "m4", "m3"}, ids)
}

func TestAggregateGroup_Stats(t *testing.T) {
	stats, processed := AggregateGroup(fixtureGroup(), DefaultRules(), testCollator())
	require.Len(t, stats, 3)
	index := statsByID(stats)

	ace := index["a"]
	require.NotNil(t, ace)
	assert.Equal(t, 3, ace.MatchesPlayed)
	assert.Equal(t, 2, ace.Wins)
	assert.Equal(t, 1, ace.Losses)
	assert.Equal(t, 7, ace.Points)
	assert.Equal(t, 1014, ace.Rating)
	assert.Equal(t, []string{"L", "W", "W"}, ace.Form)
	assert.Equal(t, 5, ace.SetsWon)
	assert.Equal(t, 2, ace.SetsLost)
	assert.Equal(t, 37, ace.GamesWon)
	assert.Equal(t, 22, ace.GamesLost)

	bolt := index["b"]
	require.NotNil(t, bolt)
	assert.Equal(t, 2, bolt.MatchesPlayed)
	assert.Equal(t, 2, bolt.Points)
	assert.Equal(t, 998, bolt.Rating)
	assert.Equal(t, []string{"W", "L"}, bolt.Form)

	// unknown opponent materialized from the walkover
	ghost := index["c"]
	require.NotNil(t, ghost)
	assert.Equal(t, "c", ghost.Name)
	assert.Equal(t, 1, ghost.MatchesPlayed)
	assert.Equal(t, 1, ghost.Forfeits)
	assert.Equal(t, []string{"WO"}, ghost.Form)
	assert.Equal(t, -1, ghost.Points)
	assert.Equal(t, 988, ghost.Rating)

	for _, team := range stats {
		assert.Equal(t, team.Wins+team.Losses, team.MatchesPlayed, team.TeamID)
		assert.Equal(t, team.SetsWon-team.SetsLost, team.SetDiff, team.TeamID)
		assert.Equal(t, team.GamesWon-team.GamesLost, team.GameDiff, team.TeamID)
	}

	// ratings chain through the processed log
	require.Len(t, processed, 4)
	m2 := processed[1]
	assert.Equal(t, 990, m2.RatingBefore.Home)
	assert.Equal(t, 1002, m2.RatingAfter.Home)
	assert.Equal(t, SidePair{Home: 12, Away: -12}, m2.RatingDelta)
}

func TestAggregateGroup_HeadToHead(t *testing.T) {
	stats, _ := AggregateGroup(fixtureGroup(), DefaultRules(), testCollator())
	index := statsByID(stats)

	aceVsBolt := index["a"].HeadToHead["b"]
	require.NotNil(t, aceVsBolt)
	assert.Equal(t, 2, aceVsBolt.Matches)
	assert.Equal(t, 4, aceVsBolt.Points)
	assert.Equal(t, 3, aceVsBolt.SetsFor)
	assert.Equal(t, 2, aceVsBolt.SetsAgainst)
	assert.Equal(t, 25, aceVsBolt.GamesFor)
	assert.Equal(t, 22, aceVsBolt.GamesAgainst)

	boltVsAce := index["b"].HeadToHead["a"]
	require.NotNil(t, boltVsAce)
	assert.Equal(t, 2, boltVsAce.Matches)
	assert.Equal(t, 2, boltVsAce.Points)
	assert.Equal(t, aceVsBolt.SetsFor, boltVsAce.SetsAgainst)
	assert.Equal(t, aceVsBolt.GamesFor, boltVsAce.GamesAgainst)
}

func TestAggregateGroup_ScheduledMatchLeavesStatsAlone(t *testing.T) {
	group := model.Group{
		ID:      "g",
		Teams:   []model.Team{{ID: "a", Name: "A"}, {ID: "b", Name: "B"}},
		Matches: []model.MatchRecord{{ID: "m1", Home: "a", Away: "b"}},
	}
	stats, processed := AggregateGroup(group, DefaultRules(), testCollator())

	require.Len(t, processed, 1)
	assert.Equal(t, SidePair{}, processed[0].PointsDelta)
	for _, team := range stats {
		assert.Zero(t, team.MatchesPlayed)
		assert.Equal(t, 1000, team.Rating)
		assert.Empty(t, team.RatingHistory)
		assert.Zero(t, team.GamePct)
	}
}

func TestSortMatches_UnparseableDateSortsWithUndated(t *testing.T) {
	matches := []model.MatchRecord{
		{ID: "x", Date: "soon", Round: model.NumericRound(3)},
		{ID: "y", Date: "2025-02-01"},
		{ID: "z", Round: model.NumericRound(1)},
		{ID: "w", Round: model.Round{Raw: "финал"}},
	}
	sorted := sortMatches(matches, testCollator())

	ids := []string{sorted[0].ID, sorted[1].ID, sorted[2].ID, sorted[3].ID}
	// dated first; undated by numeric round; string rounds after numeric
	assert.Equal(t, []string{"y", "z", "x", "w"}, ids)
}

func TestGamePct(t *testing.T) {
	group := model.Group{
		ID:    "g",
		Teams: []model.Team{{ID: "a", Name: "A"}, {ID: "b", Name: "B"}},
		Matches: []model.MatchRecord{
			{ID: "m1", Home: "a", Away: "b",
				Result: &model.MatchResult{Status: model.MatchPlayed, Sets: sets([2]int{6, 2}, [2]int{6, 2})}},
		},
	}
	stats, _ := AggregateGroup(group, DefaultRules(), testCollator())
	index := statsByID(stats)

	assert.InDelta(t, 0.75, index["a"].GamePct, 1e-9)
	assert.InDelta(t, 0.25, index["b"].GamePct, 1e-9)
}
