package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"liga-app/internal/model"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS season_current (
  id INTEGER PRIMARY KEY CHECK (id = 1),
  payload TEXT NOT NULL,
  updated_at TIMESTAMP NOT NULL
);
CREATE TABLE IF NOT EXISTS season_revisions (
  id TEXT PRIMARY KEY,
  note TEXT NOT NULL DEFAULT '',
  created_at TIMESTAMP NOT NULL
);`

type SQLiteStore struct {
	db *sql.DB
}

type SQLiteOptions struct {
	MigrationsDir string
}

func NewSQLiteStore(path string, opts SQLiteOptions) (*SQLiteStore, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("sqlite path is required")
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	if err := ensureSchema(db, sqliteSchema); err != nil {
		_ = db.Close()
		return nil, err
	}
	migrationsDir := strings.TrimSpace(opts.MigrationsDir)
	if migrationsDir == "" {
		migrationsDir = "migrations"
	}
	if err := applyMigrations(db, migrationsDir); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) GetSeason() (model.SeasonDoc, bool) {
	var payload string
	err := s.db.QueryRow(`SELECT payload FROM season_current WHERE id = 1`).Scan(&payload)
	if err != nil {
		return model.SeasonDoc{}, false
	}
	var doc model.SeasonDoc
	if err := json.Unmarshal([]byte(payload), &doc); err != nil {
		return model.SeasonDoc{}, false
	}
	return doc, true
}

func (s *SQLiteStore) SaveSeason(doc model.SeasonDoc, note string) error {
	payload, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode season: %w", err)
	}
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin save tx: %w", err)
	}
	now := time.Now().UTC()
	if _, err := tx.Exec(
		`INSERT INTO season_current (id, payload, updated_at) VALUES (1, $1, $2)
		 ON CONFLICT (id) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at`,
		string(payload), now,
	); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("save season: %w", err)
	}
	if _, err := tx.Exec(
		`INSERT INTO season_revisions (id, note, created_at) VALUES ($1, $2, $3)`,
		uuid.NewString(), note, now,
	); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("save revision: %w", err)
	}
	return tx.Commit()
}

func (s *SQLiteStore) ListRevisions(limit int) []Revision {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.Query(
		`SELECT id, note, created_at FROM season_revisions ORDER BY created_at DESC, id LIMIT $1`, limit)
	if err != nil {
		return nil
	}
	defer rows.Close()

	revisions := []Revision{}
	for rows.Next() {
		var r Revision
		if err := rows.Scan(&r.ID, &r.Note, &r.CreatedAt); err != nil {
			continue
		}
		revisions = append(revisions, r)
	}
	return revisions
}

func (s *SQLiteStore) Close() error { return s.db.Close() }
