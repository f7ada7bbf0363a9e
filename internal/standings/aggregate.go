package standings

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"golang.org/x/text/collate"

	"liga-app/internal/model"
)

// TeamStats is the running accumulator for one team inside a group. The
// aggregator owns these for the duration of a run; head-to-head entries
// reference opponents by id only.
type TeamStats struct {
	TeamID  string   `json:"id"`
	Name    string   `json:"name"`
	Players []string `json:"players,omitempty"`
	Club    string   `json:"club,omitempty"`

	MatchesPlayed int `json:"matchesPlayed"`
	Wins          int `json:"wins"`
	Losses        int `json:"losses"`
	Forfeits      int `json:"forfeits"`
	SetsWon       int `json:"setsWon"`
	SetsLost      int `json:"setsLost"`
	GamesWon      int `json:"gamesWon"`
	GamesLost     int `json:"gamesLost"`
	Points        int `json:"points"`
	Rating        int `json:"rating"`

	RatingHistory []RatingPoint          `json:"ratingHistory,omitempty"`
	Form          []string               `json:"form,omitempty"`
	HeadToHead    map[string]*HeadToHead `json:"headToHead,omitempty"`

	SetDiff      int     `json:"setDiff"`
	GameDiff     int     `json:"gameDiff"`
	GamePct      float64 `json:"gamePct"`
	Rank         int     `json:"rank"`
	TieBreaker   string  `json:"tieBreaker,omitempty"`
	RequiresDraw bool    `json:"requiresDraw,omitempty"`
}

type RatingPoint struct {
	MatchID string `json:"matchId"`
	Delta   int    `json:"delta"`
	After   int    `json:"after"`
}

// HeadToHead is the cumulative ledger of one team against one opponent.
type HeadToHead struct {
	Matches      int `json:"matches"`
	Points       int `json:"points"`
	SetsFor      int `json:"setsFor"`
	SetsAgainst  int `json:"setsAgainst"`
	GamesFor     int `json:"gamesFor"`
	GamesAgainst int `json:"gamesAgainst"`
}

// ProcessedMatch is a match record annotated with its normalized score,
// both deltas and the per-side rating before and after the match.
type ProcessedMatch struct {
	model.MatchRecord
	Score        Score    `json:"score"`
	PointsDelta  SidePair `json:"pointsDelta"`
	RatingDelta  SidePair `json:"ratingDelta"`
	RatingBefore SidePair `json:"ratingBefore"`
	RatingAfter  SidePair `json:"ratingAfter"`
}

// AggregateGroup replays a group's matches in deterministic order against
// per-team statistics. Matches missing a side are dropped; matches naming
// unknown teams materialize a minimal entry so the statistics stay
// complete on inconsistent rosters. The returned stats are unranked, in
// declaration order followed by materialization order.
func AggregateGroup(group model.Group, cfg RuleConfig, coll *collate.Collator) ([]*TeamStats, []ProcessedMatch) {
	index := make(map[string]*TeamStats, len(group.Teams))
	order := make([]string, 0, len(group.Teams))
	ensure := func(id string) *TeamStats {
		if stats, ok := index[id]; ok {
			return stats
		}
		stats := &TeamStats{
			TeamID:     id,
			Name:       id,
			Rating:     cfg.Rating.Base,
			HeadToHead: make(map[string]*HeadToHead),
		}
		index[id] = stats
		order = append(order, id)
		return stats
	}
	for _, team := range group.Teams {
		stats := ensure(team.ID)
		stats.Name = team.DisplayName()
		stats.Players = team.Players
		stats.Club = team.Club
	}

	processed := make([]ProcessedMatch, 0, len(group.Matches))
	for _, match := range sortMatches(group.Matches, coll) {
		if strings.TrimSpace(match.Home) == "" || strings.TrimSpace(match.Away) == "" {
			continue
		}
		home := ensure(match.Home)
		away := ensure(match.Away)

		score := DeriveScore(match)
		points := PointsDelta(score, cfg)
		rating := RatingDelta(score, cfg)

		entry := ProcessedMatch{
			MatchRecord:  match,
			Score:        score,
			PointsDelta:  points,
			RatingDelta:  rating,
			RatingBefore: SidePair{Home: home.Rating, Away: away.Rating},
		}
		if score.Status != model.MatchScheduled {
			applyResult(home, away, match.ID, score, points, rating, model.SideHome)
			applyResult(away, home, match.ID, score, points, rating, model.SideAway)
		}
		entry.RatingAfter = SidePair{Home: home.Rating, Away: away.Rating}
		processed = append(processed, entry)
	}

	stats := make([]*TeamStats, 0, len(order))
	for _, id := range order {
		team := index[id]
		team.SetDiff = team.SetsWon - team.SetsLost
		team.GameDiff = team.GamesWon - team.GamesLost
		if total := team.GamesWon + team.GamesLost; total > 0 {
			team.GamePct = float64(team.GamesWon) / float64(total)
		}
		stats = append(stats, team)
	}
	return stats, processed
}

func applyResult(team, opponent *TeamStats, matchID string, score Score, points, rating SidePair, side model.Side) {
	setsFor, setsAgainst := score.Sets.Home, score.Sets.Away
	gamesFor, gamesAgainst := score.Games.Home, score.Games.Away
	pointsDelta, ratingDelta := points.Home, rating.Home
	if side == model.SideAway {
		setsFor, setsAgainst = setsAgainst, setsFor
		gamesFor, gamesAgainst = gamesAgainst, gamesFor
		pointsDelta, ratingDelta = points.Away, rating.Away
	}

	team.MatchesPlayed++
	team.SetsWon += setsFor
	team.SetsLost += setsAgainst
	team.GamesWon += gamesFor
	team.GamesLost += gamesAgainst
	team.Points += pointsDelta
	team.Rating += ratingDelta
	team.RatingHistory = append(team.RatingHistory, RatingPoint{
		MatchID: matchID,
		Delta:   ratingDelta,
		After:   team.Rating,
	})

	if score.Winner == side {
		team.Wins++
		team.Form = append(team.Form, "W")
	} else {
		team.Losses++
		if score.Status == model.MatchWalkover {
			team.Forfeits++
			team.Form = append(team.Form, "WO")
		} else {
			team.Form = append(team.Form, "L")
		}
	}

	ledger, ok := team.HeadToHead[opponent.TeamID]
	if !ok {
		ledger = &HeadToHead{}
		team.HeadToHead[opponent.TeamID] = ledger
	}
	ledger.Matches++
	ledger.Points += pointsDelta
	ledger.SetsFor += setsFor
	ledger.SetsAgainst += setsAgainst
	ledger.GamesFor += gamesFor
	ledger.GamesAgainst += gamesAgainst
}

// sortMatches orders matches by date (undated last), then round (numeric
// rounds first, ascending; string rounds in locale order), then id. The
// replay depends on this order because ratings evolve match by match.
func sortMatches(matches []model.MatchRecord, coll *collate.Collator) []model.MatchRecord {
	sorted := slices.Clone(matches)
	slices.SortStableFunc(sorted, func(a, b model.MatchRecord) int {
		if c := compareDates(a.Date, b.Date); c != 0 {
			return c
		}
		if c := compareRounds(a.Round, b.Round, coll); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
	return sorted
}

func compareDates(a, b string) int {
	dateA, okA := parseDate(a)
	dateB, okB := parseDate(b)
	switch {
	case okA && okB:
		return dateA.Compare(dateB)
	case okA:
		return -1
	case okB:
		return 1
	default:
		return 0
	}
}

func parseDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func compareRounds(a, b model.Round, coll *collate.Collator) int {
	switch {
	case a.IsNum && b.IsNum:
		return cmp.Compare(a.Num, b.Num)
	case a.IsNum:
		return -1
	case b.IsNum:
		return 1
	default:
		return coll.CompareString(a.Raw, b.Raw)
	}
}
