package web

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"liga-app/internal/model"
	"liga-app/internal/source"
	"liga-app/internal/standings"
)

func (s *Server) handleSeason(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.seasonResult())
}

func (s *Server) handleTotals(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.seasonResult().Totals)
}

func (s *Server) handleGroupStandings(w http.ResponseWriter, r *http.Request) {
	group, ok := s.findGroup(chi.URLParam(r, "divisionID"), chi.URLParam(r, "groupID"))
	if !ok {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"standings": group.Standings,
	})
}

func (s *Server) handleGroupMatches(w http.ResponseWriter, r *http.Request) {
	group, ok := s.findGroup(chi.URLParam(r, "divisionID"), chi.URLParam(r, "groupID"))
	if !ok {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"matches":   group.Matches,
		"played":    group.Played,
		"scheduled": group.Scheduled,
	})
}

func (s *Server) handleRevisions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.ListRevisions(50))
}

type matchPayload struct {
	Division string  `json:"division"`
	Group    string  `json:"group"`
	Match    string  `json:"match"`
	NewID    string  `json:"newId"`
	Home     string  `json:"home"`
	Away     string  `json:"away"`
	Status   string  `json:"status"`
	Winner   string  `json:"winner"`
	Sets     *string `json:"sets"`
	Date     *string `json:"date"`
	Round    *int    `json:"round"`
	Reason   *string `json:"reason"`
}

func (s *Server) handleMatchUpdate(w http.ResponseWriter, r *http.Request) {
	var payload matchPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}
	if payload.Division == "" || payload.Group == "" || payload.Match == "" {
		http.Error(w, "division, group and match are required", http.StatusBadRequest)
		return
	}

	doc, ok := s.store.GetSeason()
	if !ok {
		http.Error(w, "no season loaded", http.StatusConflict)
		return
	}
	group, err := source.FindGroup(&doc, payload.Division, payload.Group)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	upd := source.MatchUpdate{
		NewID:  payload.NewID,
		Status: model.MatchStatus(payload.Status),
		Winner: model.Side(payload.Winner),
		Date:   payload.Date,
		Round:  payload.Round,
		Reason: payload.Reason,
	}
	if payload.Sets != nil {
		sets, err := source.ParseSets(*payload.Sets)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		upd.Sets = sets
		upd.SetsGiven = true
	}

	updated, err := source.UpdateMatch(group, payload.Match, upd)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	s.saveAndRespond(w, doc, fmt.Sprintf("update match %s", updated.ID), payload.Division, payload.Group)
}

func (s *Server) handleMatchCreate(w http.ResponseWriter, r *http.Request) {
	var payload matchPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}
	if payload.Division == "" || payload.Group == "" {
		http.Error(w, "division and group are required", http.StatusBadRequest)
		return
	}

	doc, ok := s.store.GetSeason()
	if !ok {
		http.Error(w, "no season loaded", http.StatusConflict)
		return
	}
	group, err := source.FindGroup(&doc, payload.Division, payload.Group)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	match := model.MatchRecord{
		ID:     payload.Match,
		Home:   payload.Home,
		Away:   payload.Away,
		Result: &model.MatchResult{Status: model.MatchScheduled},
	}
	if match.ID == "" {
		match.ID = source.NextMatchID(group)
	}
	if payload.Status != "" {
		match.Result.Status = model.MatchStatus(payload.Status)
	}
	if payload.Winner != "" {
		match.Result.Winner = model.Side(payload.Winner)
	}
	if payload.Date != nil {
		match.Date = *payload.Date
	}
	if payload.Round != nil {
		match.Round = model.NumericRound(*payload.Round)
	}
	if payload.Reason != nil {
		match.Result.Reason = *payload.Reason
	}
	if payload.Sets != nil {
		sets, err := source.ParseSets(*payload.Sets)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		match.Result.Sets = sets
	}

	if err := source.AddMatch(group, match); err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	s.saveAndRespond(w, doc, fmt.Sprintf("add match %s", match.ID), payload.Division, payload.Group)
}

func (s *Server) saveAndRespond(w http.ResponseWriter, doc model.SeasonDoc, note, divisionID, groupID string) {
	if err := s.store.SaveSeason(doc, note); err != nil {
		log.Printf("save season: %v", err)
		http.Error(w, "save failed", http.StatusInternalServerError)
		return
	}
	s.Recompute()
	if group, ok := s.findGroup(divisionID, groupID); ok {
		writeJSON(w, http.StatusOK, group)
		return
	}
	writeJSON(w, http.StatusOK, s.seasonResult().Totals)
}

func (s *Server) findGroup(divisionID, groupID string) (*standings.GroupResult, bool) {
	result := s.seasonResult()
	for _, division := range result.Divisions {
		if division.ID != divisionID {
			continue
		}
		for _, group := range division.Groups {
			if group != nil && group.ID == groupID {
				return group, true
			}
		}
	}
	return nil, false
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && !strings.Contains(err.Error(), "broken pipe") {
		log.Printf("write json: %v", err)
	}
}
