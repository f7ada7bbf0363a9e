package model

import (
	"encoding/json"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

type MatchStatus string

type Side string

const (
	MatchScheduled MatchStatus = "scheduled"
	MatchPlayed    MatchStatus = "played"
	MatchWalkover  MatchStatus = "wo"

	SideHome Side = "home"
	SideAway Side = "away"
	SideNone Side = ""
)

// SeasonDoc is the raw season document as compiled from the YAML data tree
// or received as a single JSON payload. It is the only input of the
// standings engine.
type SeasonDoc struct {
	Season    SeasonMeta    `json:"season" yaml:"season"`
	Rules     RuleOverrides `json:"rules" yaml:"rules"`
	Divisions []Division    `json:"divisions" yaml:"divisions"`
}

type SeasonMeta struct {
	Title     string `json:"title,omitempty" yaml:"title,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty" yaml:"updatedAt,omitempty"`
	Locale    string `json:"locale,omitempty" yaml:"locale,omitempty"`
}

// RuleOverrides is a partial scoring configuration; nil sections and nil
// fields fall back to defaults during resolution.
type RuleOverrides struct {
	Points      *PointsOverride `json:"points,omitempty" yaml:"points,omitempty"`
	Rating      *RatingOverride `json:"rating,omitempty" yaml:"rating,omitempty"`
	Tiebreakers []string        `json:"tiebreakers,omitempty" yaml:"tiebreakers,omitempty"`
}

type PointsOverride struct {
	Win20       *int `json:"win_2_0,omitempty" yaml:"win_2_0,omitempty"`
	Win21       *int `json:"win_2_1,omitempty" yaml:"win_2_1,omitempty"`
	Loss12      *int `json:"loss_1_2,omitempty" yaml:"loss_1_2,omitempty"`
	Loss02      *int `json:"loss_0_2,omitempty" yaml:"loss_0_2,omitempty"`
	ForfeitLoss *int `json:"forfeit_loss,omitempty" yaml:"forfeit_loss,omitempty"`
}

type RatingOverride struct {
	Base  *int `json:"base,omitempty" yaml:"base,omitempty"`
	Win20 *int `json:"win_2_0,omitempty" yaml:"win_2_0,omitempty"`
	Win21 *int `json:"win_2_1,omitempty" yaml:"win_2_1,omitempty"`
}

type Division struct {
	ID          string  `json:"id" yaml:"id"`
	Title       string  `json:"title,omitempty" yaml:"title,omitempty"`
	Description string  `json:"description,omitempty" yaml:"description,omitempty"`
	Groups      []Group `json:"groups" yaml:"groups"`
}

type Group struct {
	ID      string        `json:"id" yaml:"id"`
	Label   string        `json:"label,omitempty" yaml:"label,omitempty"`
	Teams   []Team        `json:"teams" yaml:"teams"`
	Matches []MatchRecord `json:"matches" yaml:"matches"`
}

type Team struct {
	ID      string   `json:"id" yaml:"id"`
	Name    string   `json:"name,omitempty" yaml:"name,omitempty"`
	Players []string `json:"players,omitempty" yaml:"players,omitempty"`
	Club    string   `json:"club,omitempty" yaml:"club,omitempty"`
}

func (t Team) DisplayName() string {
	name := strings.TrimSpace(t.Name)
	if name != "" {
		return name
	}
	return t.ID
}

type MatchRecord struct {
	ID     string       `json:"id" yaml:"id"`
	Home   string       `json:"home,omitempty" yaml:"home,omitempty"`
	Away   string       `json:"away,omitempty" yaml:"away,omitempty"`
	Date   string       `json:"date,omitempty" yaml:"date,omitempty"`
	Round  Round        `json:"round,omitempty" yaml:"round,omitempty"`
	Arena  string       `json:"arena,omitempty" yaml:"arena,omitempty"`
	Result *MatchResult `json:"result,omitempty" yaml:"result,omitempty"`
}

// Status returns the effective match status; a missing result or an
// unknown status value counts as scheduled.
func (m MatchRecord) Status() MatchStatus {
	if m.Result == nil {
		return MatchScheduled
	}
	switch m.Result.Status {
	case MatchPlayed, MatchWalkover:
		return m.Result.Status
	default:
		return MatchScheduled
	}
}

type MatchResult struct {
	Status MatchStatus `json:"status,omitempty" yaml:"status,omitempty"`
	Winner Side        `json:"winner,omitempty" yaml:"winner,omitempty"`
	Sets   []SetScore  `json:"sets,omitempty" yaml:"sets,omitempty"`
	Reason string      `json:"reason,omitempty" yaml:"reason,omitempty"`
}

// SetScore is one set of a played match. Scores arrive from hand-edited
// YAML and may be missing or non-numeric; such sides decode to nil and the
// engine skips the set.
type SetScore struct {
	Home *int `json:"home" yaml:"home"`
	Away *int `json:"away" yaml:"away"`
}

func (s SetScore) Valid() bool { return s.Home != nil && s.Away != nil }

func (s *SetScore) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		Home any `yaml:"home"`
		Away any `yaml:"away"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}
	s.Home = intFromAny(raw.Home)
	s.Away = intFromAny(raw.Away)
	return nil
}

func (s *SetScore) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	s.Home = intFromAny(raw["home"])
	s.Away = intFromAny(raw["away"])
	return nil
}

// Round is a match round that is either a number or a free-form label.
type Round struct {
	Raw   string
	Num   int
	IsNum bool
}

func NumericRound(n int) Round {
	return Round{Raw: strconv.Itoa(n), Num: n, IsNum: true}
}

func (r Round) IsZero() bool { return !r.IsNum && r.Raw == "" }

func (r Round) String() string {
	if r.IsNum {
		return strconv.Itoa(r.Num)
	}
	return r.Raw
}

func (r *Round) set(raw string) {
	r.Raw = raw
	if n, err := strconv.Atoi(strings.TrimSpace(raw)); err == nil && raw != "" {
		r.Num = n
		r.IsNum = true
	} else {
		r.Num = 0
		r.IsNum = false
	}
}

func (r *Round) UnmarshalYAML(value *yaml.Node) error {
	r.set(value.Value)
	return nil
}

func (r Round) MarshalYAML() (any, error) {
	if r.IsZero() {
		return nil, nil
	}
	if r.IsNum {
		return r.Num, nil
	}
	return r.Raw, nil
}

func (r *Round) UnmarshalJSON(data []byte) error {
	var value any
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	switch v := value.(type) {
	case float64:
		r.Raw = strconv.Itoa(int(v))
		r.Num = int(v)
		r.IsNum = true
	case string:
		r.set(v)
	default:
		r.set("")
	}
	return nil
}

func (r Round) MarshalJSON() ([]byte, error) {
	if r.IsZero() {
		return []byte("null"), nil
	}
	if r.IsNum {
		return json.Marshal(r.Num)
	}
	return json.Marshal(r.Raw)
}

func intFromAny(value any) *int {
	switch v := value.(type) {
	case int:
		return &v
	case int64:
		n := int(v)
		return &n
	case float64:
		n := int(v)
		return &n
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return &n
		}
	}
	return nil
}
