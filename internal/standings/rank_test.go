package standings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankStandings_ContiguousRanks(t *testing.T) {
	teams := []*TeamStats{
		{TeamID: "a", Name: "Ace", Points: 3, HeadToHead: map[string]*HeadToHead{}},
		{TeamID: "b", Name: "Bolt", Points: 9, HeadToHead: map[string]*HeadToHead{}},
		{TeamID: "c", Name: "Crash", Points: 6, SetDiff: 2, HeadToHead: map[string]*HeadToHead{}},
		{TeamID: "d", Name: "Dynamo", Points: 6, SetDiff: 4, HeadToHead: map[string]*HeadToHead{}},
	}

	ranked := RankStandings(teams, testCollator())

	require.Len(t, ranked, 4)
	assert.Equal(t, []string{"b", "d", "c", "a"}, orderOf(ranked))
	for i, team := range ranked {
		assert.Equal(t, i+1, team.Rank)
	}
	// only the tied pair carries a tie-break label
	assert.Empty(t, ranked[0].TieBreaker)
	assert.Equal(t, "setDiff", ranked[1].TieBreaker)
	assert.Equal(t, "setDiff", ranked[2].TieBreaker)
	assert.Empty(t, ranked[3].TieBreaker)
}

func TestRankStandings_SingleTeam(t *testing.T) {
	teams := []*TeamStats{{TeamID: "a", Name: "Ace", HeadToHead: map[string]*HeadToHead{}}}
	ranked := RankStandings(teams, testCollator())

	require.Len(t, ranked, 1)
	assert.Equal(t, 1, ranked[0].Rank)
}

func TestRankStandings_RanksAreAPermutation(t *testing.T) {
	teams := []*TeamStats{
		{TeamID: "a", Name: "A", Points: 5, HeadToHead: map[string]*HeadToHead{}},
		{TeamID: "b", Name: "B", Points: 5, HeadToHead: map[string]*HeadToHead{}},
		{TeamID: "c", Name: "C", Points: 5, HeadToHead: map[string]*HeadToHead{}},
		{TeamID: "d", Name: "D", Points: 2, HeadToHead: map[string]*HeadToHead{}},
		{TeamID: "e", Name: "E", Points: 8, HeadToHead: map[string]*HeadToHead{}},
	}

	ranked := RankStandings(teams, testCollator())

	require.Len(t, ranked, 5)
	seen := map[int]bool{}
	for _, team := range ranked {
		assert.False(t, seen[team.Rank], "duplicate rank %d", team.Rank)
		seen[team.Rank] = true
		assert.GreaterOrEqual(t, team.Rank, 1)
		assert.LessOrEqual(t, team.Rank, 5)
	}
}
