package standings

import "liga-app/internal/model"

// PointsDelta computes the points awarded to each side for a normalized
// outcome. Scheduled matches award nothing.
func PointsDelta(score Score, cfg RuleConfig) SidePair {
	if score.Status == model.MatchScheduled {
		return SidePair{}
	}
	var winner, loser int
	if score.Status == model.MatchWalkover {
		winner = cfg.Points.Win20
		loser = cfg.Points.ForfeitLoss
	} else if loserSets(score) == 0 {
		winner = cfg.Points.Win20
		loser = cfg.Points.Loss02
	} else {
		winner = cfg.Points.Win21
		loser = cfg.Points.Loss12
	}
	return bySide(score.Winner, winner, loser)
}

// RatingDelta computes the rating swing for each side. The loser loses
// exactly what the winner gains, so every match is zero-sum.
func RatingDelta(score Score, cfg RuleConfig) SidePair {
	if score.Status == model.MatchScheduled || score.Winner == model.SideNone {
		return SidePair{}
	}
	magnitude := cfg.Rating.Win21
	if score.Status == model.MatchWalkover || loserSets(score) == 0 {
		magnitude = cfg.Rating.Win20
	}
	return bySide(score.Winner, magnitude, -magnitude)
}

func loserSets(score Score) int {
	if score.Winner == model.SideAway {
		return score.Sets.Home
	}
	return score.Sets.Away
}

func bySide(winner model.Side, winnerValue, loserValue int) SidePair {
	if winner == model.SideAway {
		return SidePair{Home: loserValue, Away: winnerValue}
	}
	return SidePair{Home: winnerValue, Away: loserValue}
}
