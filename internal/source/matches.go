package source

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"liga-app/internal/model"
)

// MatchUpdate describes a partial edit of an existing match. Nil pointer
// fields keep the current value; an empty string behind a pointer clears
// the field, mirroring the original management tooling.
type MatchUpdate struct {
	NewID     string
	Status    model.MatchStatus
	Winner    model.Side
	Sets      []model.SetScore
	SetsGiven bool
	ClearSets bool
	Date      *string
	Round     *int
	Reason    *string
}

// UpdateMatch applies an update to the match with the given id inside the
// group. The effective status decides which result fields survive:
// scheduled clears winner and sets, a walkover clears sets, a played
// match keeps whatever sets it has unless new ones are supplied.
func UpdateMatch(group *model.Group, matchID string, upd MatchUpdate) (*model.MatchRecord, error) {
	var target *model.MatchRecord
	for i := range group.Matches {
		if group.Matches[i].ID == matchID {
			target = &group.Matches[i]
			break
		}
	}
	if target == nil {
		return nil, fmt.Errorf("match %s not found in group %s", matchID, group.ID)
	}

	if upd.NewID != "" && upd.NewID != matchID {
		for i := range group.Matches {
			if group.Matches[i].ID == upd.NewID {
				return nil, fmt.Errorf("group %s already has match %s", group.ID, upd.NewID)
			}
		}
		target.ID = upd.NewID
	}

	if upd.Date != nil {
		target.Date = *upd.Date
	}
	if upd.Round != nil {
		target.Round = model.NumericRound(*upd.Round)
	}

	if target.Result == nil {
		target.Result = &model.MatchResult{}
	}
	result := target.Result
	if upd.Status != "" {
		result.Status = upd.Status
	}

	switch target.Status() {
	case model.MatchScheduled:
		result.Winner = model.SideNone
		result.Sets = nil
		if upd.Reason != nil && *upd.Reason != "" {
			result.Reason = *upd.Reason
		} else {
			result.Reason = ""
		}
	case model.MatchWalkover:
		if upd.Winner != model.SideNone {
			result.Winner = upd.Winner
		}
		result.Sets = nil
		applyReason(result, upd.Reason)
	default: // played
		if upd.Winner != model.SideNone {
			result.Winner = upd.Winner
		}
		if upd.SetsGiven {
			if len(upd.Sets) > 0 {
				result.Sets = upd.Sets
			} else {
				result.Sets = nil
			}
		} else if upd.ClearSets {
			result.Sets = nil
		}
		applyReason(result, upd.Reason)
	}
	return target, nil
}

// AddMatch validates and appends a new match to the group.
func AddMatch(group *model.Group, match model.MatchRecord) error {
	if match.Result == nil {
		match.Result = &model.MatchResult{Status: model.MatchScheduled}
	}
	switch match.Result.Status {
	case model.MatchScheduled, model.MatchPlayed, model.MatchWalkover:
	default:
		return fmt.Errorf("invalid status %q", match.Result.Status)
	}
	for i := range group.Matches {
		if group.Matches[i].ID == match.ID {
			return fmt.Errorf("match %s already exists", match.ID)
		}
	}
	if match.Home == "" || match.Away == "" {
		return fmt.Errorf("match %s needs both home and away teams", match.ID)
	}
	status := match.Result.Status
	if (status == model.MatchPlayed || status == model.MatchWalkover) && match.Result.Winner == model.SideNone {
		return fmt.Errorf("status %s requires a winner", status)
	}
	if status == model.MatchPlayed && len(match.Result.Sets) == 0 {
		return fmt.Errorf("a played match requires set scores")
	}
	group.Matches = append(group.Matches, match)
	return nil
}

// NextMatchID picks the first free sequential id for a new match, in the
// <group>-NNN form the data tree uses. Groups without an id fall back to a
// random id.
func NextMatchID(group *model.Group) string {
	if group.ID == "" {
		return uuid.NewString()
	}
	for n := len(group.Matches) + 1; ; n++ {
		id := fmt.Sprintf("%s-%03d", group.ID, n)
		if !hasMatch(group, id) {
			return id
		}
	}
}

func hasMatch(group *model.Group, id string) bool {
	for i := range group.Matches {
		if group.Matches[i].ID == id {
			return true
		}
	}
	return false
}

// FindGroup locates a group inside the season document. The returned
// pointer aliases the document, so edits stick.
func FindGroup(doc *model.SeasonDoc, divisionID, groupID string) (*model.Group, error) {
	for di := range doc.Divisions {
		if doc.Divisions[di].ID != divisionID {
			continue
		}
		for gi := range doc.Divisions[di].Groups {
			if doc.Divisions[di].Groups[gi].ID == groupID {
				return &doc.Divisions[di].Groups[gi], nil
			}
		}
		return nil, fmt.Errorf("group %s not found in division %s", groupID, divisionID)
	}
	return nil, fmt.Errorf("division %s not found", divisionID)
}

// ParseSets parses a compact set line like "6-4,3-6,7-5".
func ParseSets(value string) ([]model.SetScore, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	var sets []model.SetScore
	for _, item := range strings.Split(value, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		home, away, ok := strings.Cut(item, "-")
		if !ok {
			return nil, fmt.Errorf("set %q must look like 6-4", item)
		}
		homeScore, err := strconv.Atoi(strings.TrimSpace(home))
		if err != nil {
			return nil, fmt.Errorf("set %q must contain numbers", item)
		}
		awayScore, err := strconv.Atoi(strings.TrimSpace(away))
		if err != nil {
			return nil, fmt.Errorf("set %q must contain numbers", item)
		}
		sets = append(sets, model.SetScore{Home: &homeScore, Away: &awayScore})
	}
	return sets, nil
}

// FormatSets renders sets back into the compact form used by ParseSets.
func FormatSets(sets []model.SetScore) string {
	chunks := make([]string, 0, len(sets))
	for _, set := range sets {
		if !set.Valid() {
			continue
		}
		chunks = append(chunks, fmt.Sprintf("%d-%d", *set.Home, *set.Away))
	}
	return strings.Join(chunks, ",")
}

func applyReason(result *model.MatchResult, reason *string) {
	if reason == nil {
		return
	}
	result.Reason = *reason
}
