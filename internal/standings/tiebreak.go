package standings

import (
	"slices"
	"strconv"

	"golang.org/x/text/collate"
)

// criterion is one step of the fixed tie-break sequence. The sequence is
// internal and independent of the display labels carried in RuleConfig.
type criterion int

const (
	critHeadToHead criterion = iota
	critSetDiff
	critGameDiff
	critGamePct
	critDraw
)

var criterionOrder = []criterion{critHeadToHead, critSetDiff, critGameDiff, critGamePct, critDraw}

func (c criterion) Label() string {
	switch c {
	case critHeadToHead:
		return "headToHead"
	case critSetDiff:
		return "setDiff"
	case critGameDiff:
		return "gameDiff"
	case critGamePct:
		return "gamePct"
	default:
		return "draw"
	}
}

// evaluate returns the team's value under the criterion. Head-to-head
// points are restricted to the tied subset, not the whole group.
func (c criterion) evaluate(team *TeamStats, tied []*TeamStats) float64 {
	switch c {
	case critHeadToHead:
		points := 0
		for _, other := range tied {
			if other.TeamID == team.TeamID {
				continue
			}
			if ledger, ok := team.HeadToHead[other.TeamID]; ok {
				points += ledger.Points
			}
		}
		return float64(points)
	case critSetDiff:
		return float64(team.SetDiff)
	case critGameDiff:
		return float64(team.GameDiff)
	case critGamePct:
		return team.GamePct
	default:
		return 0
	}
}

// ResolveTies produces a strict ordering of teams that are level on
// points, applying the fixed criterion sequence recursively. Teams whose
// order no criterion could decide are flagged RequiresDraw and take an
// alphabetical placeholder position pending a manual draw.
func ResolveTies(teams []*TeamStats, coll *collate.Collator) []*TeamStats {
	return resolveTies(teams, 0, coll)
}

func resolveTies(teams []*TeamStats, index int, coll *collate.Collator) []*TeamStats {
	if len(teams) < 2 {
		return teams
	}
	if index >= len(criterionOrder) || criterionOrder[index] == critDraw {
		slices.SortStableFunc(teams, func(a, b *TeamStats) int {
			return coll.CompareString(a.Name, b.Name)
		})
		for _, team := range teams {
			team.RequiresDraw = true
			if team.TieBreaker == "" {
				team.TieBreaker = critDraw.Label()
			}
		}
		return teams
	}

	crit := criterionOrder[index]
	type valueGroup struct {
		value float64
		teams []*TeamStats
	}
	groups := make(map[string]*valueGroup)
	keys := make([]string, 0, len(teams))
	for _, team := range teams {
		value := crit.evaluate(team, teams)
		// Fixed-precision keys keep float jitter from splitting exact ties.
		key := strconv.FormatFloat(value, 'f', 6, 64)
		group, ok := groups[key]
		if !ok {
			group = &valueGroup{value: value}
			groups[key] = group
			keys = append(keys, key)
		}
		group.teams = append(group.teams, team)
	}

	slices.SortFunc(keys, func(a, b string) int {
		switch va, vb := groups[a].value, groups[b].value; {
		case va > vb:
			return -1
		case va < vb:
			return 1
		default:
			return 0
		}
	})

	if len(keys) > 1 {
		for _, key := range keys {
			for _, team := range groups[key].teams {
				if team.TieBreaker == "" {
					team.TieBreaker = crit.Label()
				}
			}
		}
	}

	ordered := make([]*TeamStats, 0, len(teams))
	for _, key := range keys {
		group := groups[key]
		if len(group.teams) == 1 {
			ordered = append(ordered, group.teams[0])
			continue
		}
		ordered = append(ordered, resolveTies(group.teams, index+1, coll)...)
	}
	return ordered
}
