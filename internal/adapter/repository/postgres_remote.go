package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/petalsoft/sakuradrill/internal/entity"
	"github.com/petalsoft/sakuradrill/internal/repository"
)

// PostgresRemoteStore keeps one progress row per family in the shared
// database, mirroring the hosted-Postgres layout the web client used.
type PostgresRemoteStore struct {
	pool *pgxpool.Pool
}

var _ repository.RemoteStore = (*PostgresRemoteStore)(nil)

// NewPostgresRemoteStore wraps an established pool.
func NewPostgresRemoteStore(pool *pgxpool.Pool) *PostgresRemoteStore {
	return &PostgresRemoteStore{pool: pool}
}

// EnsureSchema creates the progress table when it does not exist yet.
func (s *PostgresRemoteStore) EnsureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS progress (
			family_id  TEXT PRIMARY KEY,
			data       JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`)
	if err != nil {
		return fmt.Errorf("ensure progress table: %w", err)
	}
	return nil
}

func (s *PostgresRemoteStore) Fetch(ctx context.Context, familyID string) (*entity.ProgressSnapshot, error) {
	var raw []byte
	err := s.pool.QueryRow(ctx, `SELECT data FROM progress WHERE family_id = $1`, familyID).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("fetch remote progress: %w", err)
	}

	var snap entity.ProgressSnapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, fmt.Errorf("decode remote progress: %w", err)
	}
	return &snap, nil
}

func (s *PostgresRemoteStore) Push(ctx context.Context, familyID string, snap entity.ProgressSnapshot) error {
	raw, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode remote progress: %w", err)
	}
	_, err = s.pool.Exec(ctx, `
		INSERT INTO progress (family_id, data, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (family_id) DO UPDATE SET data = EXCLUDED.data, updated_at = EXCLUDED.updated_at`,
		familyID, raw, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("push remote progress: %w", err)
	}
	return nil
}
