package standings

import (
	"fmt"

	"liga-app/internal/model"
)

// WalkoverReason is the reason recorded for a walkover whose input carries
// none.
const WalkoverReason = "walkover"

// SidePair holds one value per match side.
type SidePair struct {
	Home int `json:"home"`
	Away int `json:"away"`
}

// Score is the normalized outcome of a single match record. It is derived
// fresh on every computation run and never mutated afterwards.
type Score struct {
	Status       model.MatchStatus `json:"status"`
	Winner       model.Side        `json:"winner,omitempty"`
	Loser        model.Side        `json:"loser,omitempty"`
	Sets         SidePair          `json:"sets"`
	Games        SidePair          `json:"games"`
	SetScores    []string          `json:"setScores,omitempty"`
	StraightSets bool              `json:"straightSets"`
	Reason       string            `json:"reason,omitempty"`
}

// DeriveScore converts one raw match record into its normalized outcome.
// It never fails: malformed set entries are skipped and ambiguous winners
// default to the home side.
func DeriveScore(match model.MatchRecord) Score {
	status := match.Status()
	if status == model.MatchScheduled {
		return Score{Status: model.MatchScheduled}
	}
	if status == model.MatchWalkover {
		return deriveWalkover(match.Result)
	}
	return derivePlayed(match.Result)
}

func deriveWalkover(result *model.MatchResult) Score {
	winner := model.SideHome
	if result.Winner == model.SideAway {
		winner = model.SideAway
	}
	reason := result.Reason
	if reason == "" {
		reason = WalkoverReason
	}
	score := Score{
		Status:       model.MatchWalkover,
		Winner:       winner,
		Loser:        opposite(winner),
		SetScores:    []string{"6:0", "6:0"},
		StraightSets: true,
		Reason:       reason,
	}
	if winner == model.SideHome {
		score.Sets = SidePair{Home: 2}
		score.Games = SidePair{Home: 12}
	} else {
		score.Sets = SidePair{Away: 2}
		score.Games = SidePair{Away: 12}
		score.SetScores = []string{"0:6", "0:6"}
	}
	return score
}

func derivePlayed(result *model.MatchResult) Score {
	score := Score{Status: model.MatchPlayed, Reason: result.Reason}
	counted := 0
	for _, set := range result.Sets {
		if !set.Valid() {
			continue
		}
		counted++
		home, away := *set.Home, *set.Away
		score.Games.Home += home
		score.Games.Away += away
		score.SetScores = append(score.SetScores, fmt.Sprintf("%d:%d", home, away))
		switch {
		case home > away:
			score.Sets.Home++
		case away > home:
			score.Sets.Away++
		}
	}

	switch result.Winner {
	case model.SideHome, model.SideAway:
		score.Winner = result.Winner
	default:
		// Ambiguous input (including zero valid sets) keeps the historical
		// home default.
		if score.Sets.Away > score.Sets.Home {
			score.Winner = model.SideAway
		} else {
			score.Winner = model.SideHome
		}
	}
	score.Loser = opposite(score.Winner)

	winnerSets, loserSets := score.Sets.Home, score.Sets.Away
	if score.Winner == model.SideAway {
		winnerSets, loserSets = loserSets, winnerSets
	}
	score.StraightSets = winnerSets == counted && loserSets == 0
	return score
}

func opposite(side model.Side) model.Side {
	if side == model.SideHome {
		return model.SideAway
	}
	return model.SideHome
}
