package kv

import (
	"context"
	"database/sql"
)

type postgresStore struct{ db *sql.DB }

// NewPostgresStore keeps the whole key layout in a single table:
//
//	CREATE TABLE IF NOT EXISTS kv_entries (
//	  key        TEXT PRIMARY KEY,
//	  value      JSONB NOT NULL,
//	  updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
//	);
func NewPostgresStore(db *sql.DB) (Store, error) {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS kv_entries (
		  key        TEXT PRIMARY KEY,
		  value      JSONB NOT NULL,
		  updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`)
	if err != nil {
		return nil, err
	}
	return &postgresStore{db: db}, nil
}

func (s *postgresStore) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM kv_entries WHERE key=$1`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return value, nil
}

func (s *postgresStore) Set(ctx context.Context, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO kv_entries (key, value) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value=$2, updated_at=NOW()`,
		key, value)
	return err
}

func (s *postgresStore) Delete(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM kv_entries WHERE key=$1`, key)
	return err
}
