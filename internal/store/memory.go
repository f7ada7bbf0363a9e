package store

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"

	"liga-app/internal/model"
)

type MemoryStore struct {
	mu        sync.RWMutex
	payload   []byte
	revisions []Revision
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) GetSeason() (model.SeasonDoc, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.payload == nil {
		return model.SeasonDoc{}, false
	}
	var doc model.SeasonDoc
	if err := json.Unmarshal(s.payload, &doc); err != nil {
		return model.SeasonDoc{}, false
	}
	return doc, true
}

func (s *MemoryStore) SaveSeason(doc model.SeasonDoc, note string) error {
	payload, err := json.Marshal(doc)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.payload = payload
	s.revisions = append(s.revisions, Revision{
		ID:        uuid.NewString(),
		Note:      note,
		CreatedAt: time.Now().UTC(),
	})
	return nil
}

func (s *MemoryStore) ListRevisions(limit int) []Revision {
	s.mu.RLock()
	defer s.mu.RUnlock()

	revisions := make([]Revision, 0, len(s.revisions))
	for i := len(s.revisions) - 1; i >= 0; i-- {
		if limit > 0 && len(revisions) == limit {
			break
		}
		revisions = append(revisions, s.revisions[i])
	}
	return revisions
}
