package web

import (
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"

	"liga-app/internal/model"
	"liga-app/internal/standings"
	"liga-app/internal/store"
)

type Server struct {
	store store.Store

	mu     sync.RWMutex
	result *standings.SeasonResult
}

func NewServer(store store.Store) *Server {
	s := &Server{store: store}
	s.Recompute()
	return s
}

// Recompute rebuilds the full computed dataset from the stored raw
// document. Every mutation goes through here; nothing computed is ever
// persisted.
func (s *Server) Recompute() {
	doc, ok := s.store.GetSeason()
	if !ok {
		doc = model.SeasonDoc{}
	}
	result := standings.ComputeSeason(doc)

	s.mu.Lock()
	s.result = result
	s.mu.Unlock()
}

func (s *Server) seasonResult() *standings.SeasonResult {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.result
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	r.Get("/api/season", s.handleSeason)
	r.Get("/api/totals", s.handleTotals)
	r.Get("/api/divisions/{divisionID}/groups/{groupID}/standings", s.handleGroupStandings)
	r.Get("/api/divisions/{divisionID}/groups/{groupID}/matches", s.handleGroupMatches)
	r.Get("/api/revisions", s.handleRevisions)

	r.Group(func(r chi.Router) {
		r.Use(RequireAdminKey)
		r.Post("/admin/matches", s.handleMatchCreate)
		r.Post("/admin/matches/update", s.handleMatchUpdate)
	})

	return r
}
