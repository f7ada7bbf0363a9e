package standings

import (
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"liga-app/internal/model"
)

// SeasonResult is the fully computed dataset served to presentation.
type SeasonResult struct {
	Season    model.SeasonMeta `json:"season"`
	Rules     RuleConfig       `json:"rules"`
	Divisions []DivisionResult `json:"divisions"`
	Totals    Totals           `json:"totals"`
}

type DivisionResult struct {
	ID          string         `json:"id"`
	Title       string         `json:"title,omitempty"`
	Description string         `json:"description,omitempty"`
	Groups      []*GroupResult `json:"groups"`
}

type GroupResult struct {
	ID        string           `json:"id"`
	Label     string           `json:"label,omitempty"`
	Standings []*TeamStats     `json:"standings"`
	Matches   []ProcessedMatch `json:"matches"`
	Played    int              `json:"played"`
	Scheduled int              `json:"scheduled"`
}

type Totals struct {
	Divisions        int `json:"divisionsCount"`
	Groups           int `json:"groupsCount"`
	Teams            int `json:"teamsCount"`
	MatchesTotal     int `json:"matchesTotal"`
	MatchesPlayed    int `json:"matchesPlayed"`
	MatchesScheduled int `json:"matchesScheduled"`
}

// ComputeSeason recomputes the whole season from the raw document. Groups
// share no state, so they run concurrently; within one group the replay
// stays strictly ordered.
func ComputeSeason(doc model.SeasonDoc) *SeasonResult {
	cfg := ResolveRules(doc.Rules)
	tag := localeTag(doc.Season.Locale)

	divisions := make([]DivisionResult, len(doc.Divisions))
	var grp errgroup.Group
	for di, division := range doc.Divisions {
		divisions[di] = DivisionResult{
			ID:          division.ID,
			Title:       division.Title,
			Description: division.Description,
			Groups:      make([]*GroupResult, len(division.Groups)),
		}
		for gi, group := range division.Groups {
			di, gi, group := di, gi, group
			grp.Go(func() error {
				divisions[di].Groups[gi] = ComputeGroup(group, cfg, tag)
				return nil
			})
		}
	}
	// Group computations have no failure path.
	_ = grp.Wait()

	result := &SeasonResult{
		Season:    doc.Season,
		Rules:     cfg,
		Divisions: divisions,
	}
	result.Totals = computeTotals(divisions)
	return result
}

// ComputeGroup aggregates and ranks a single group.
func ComputeGroup(group model.Group, cfg RuleConfig, tag language.Tag) *GroupResult {
	// Collators are not safe for concurrent use; each group gets its own.
	coll := collate.New(tag)
	stats, processed := AggregateGroup(group, cfg, coll)
	result := &GroupResult{
		ID:        group.ID,
		Label:     group.Label,
		Standings: RankStandings(stats, coll),
		Matches:   processed,
	}
	for _, match := range group.Matches {
		if match.Status() == model.MatchScheduled {
			result.Scheduled++
		} else {
			result.Played++
		}
	}
	return result
}

func computeTotals(divisions []DivisionResult) Totals {
	totals := Totals{Divisions: len(divisions)}
	for _, division := range divisions {
		totals.Groups += len(division.Groups)
		for _, group := range division.Groups {
			if group == nil {
				continue
			}
			totals.Teams += len(group.Standings)
			totals.MatchesTotal += group.Played + group.Scheduled
			totals.MatchesPlayed += group.Played
			totals.MatchesScheduled += group.Scheduled
		}
	}
	return totals
}

func localeTag(locale string) language.Tag {
	if locale == "" {
		return language.Russian
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return language.Russian
	}
	return tag
}
