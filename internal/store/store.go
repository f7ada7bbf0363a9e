package store

import (
	"time"

	"liga-app/internal/model"
)

// Revision is one saved version of the raw season document. Only raw
// documents are persisted; computed standings are always rebuilt.
type Revision struct {
	ID        string
	Note      string
	CreatedAt time.Time
}

type Store interface {
	GetSeason() (model.SeasonDoc, bool)
	SaveSeason(doc model.SeasonDoc, note string) error
	ListRevisions(limit int) []Revision
}
