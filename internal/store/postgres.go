package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"

	"liga-app/internal/model"
)

const postgresSchema = `
CREATE TABLE IF NOT EXISTS season_current (
  id INTEGER PRIMARY KEY CHECK (id = 1),
  payload TEXT NOT NULL,
  updated_at TIMESTAMPTZ NOT NULL
);
CREATE TABLE IF NOT EXISTS season_revisions (
  id TEXT PRIMARY KEY,
  note TEXT NOT NULL DEFAULT '',
  created_at TIMESTAMPTZ NOT NULL
);`

type PostgresStore struct {
	db *sql.DB
}

type PostgresOptions struct {
	MigrationsDir string
}

func NewPostgresStore(dsn string, opts PostgresOptions) (*PostgresStore, error) {
	if strings.TrimSpace(dsn) == "" {
		return nil, errors.New("postgres dsn is required")
	}
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	if err := ensureSchema(db, postgresSchema); err != nil {
		_ = db.Close()
		return nil, err
	}
	migrationsDir := strings.TrimSpace(opts.MigrationsDir)
	if migrationsDir == "" {
		migrationsDir = "migrations/postgres"
	}
	if err := applyMigrations(db, migrationsDir); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &PostgresStore{db: db}, nil
}

func (s *PostgresStore) GetSeason() (model.SeasonDoc, bool) {
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

func (s *PostgresStore) SaveSeason(doc model.SeasonDoc, note string) error {
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

func (s *PostgresStore) ListRevisions(limit int) []Revision {
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

func (s *PostgresStore) Close() error { return s.db.Close() }
