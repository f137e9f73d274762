package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3" // sqlite driver
	"github.com/sirupsen/logrus"

	"github.com/petalsoft/sakuradrill/internal/entity"
	"github.com/petalsoft/sakuradrill/internal/repository"
)

// progressKey is the single document key the snapshot lives under.
const progressKey = "sakura_progress"

// SQLiteProgressRepository stores the snapshot as one JSON document in a
// kv table. Unparsable stored state is treated as absent: losing a corrupt
// document beats refusing to start.
type SQLiteProgressRepository struct {
	db     *sql.DB
	logger *logrus.Logger
}

var _ repository.ProgressRepository = (*SQLiteProgressRepository)(nil)

// NewSQLiteProgressRepository opens (or creates) the store at path and
// ensures the kv table exists. The returned cleanup closes the handle.
func NewSQLiteProgressRepository(path string, logger *logrus.Logger) (*SQLiteProgressRepository, func(), error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, nil, fmt.Errorf("open progress store: %w", err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS kv (key TEXT PRIMARY KEY, value TEXT NOT NULL)`); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("init progress store: %w", err)
	}
	repo := &SQLiteProgressRepository{db: db, logger: logger}
	return repo, func() { db.Close() }, nil
}

func (r *SQLiteProgressRepository) Load(ctx context.Context) (*entity.ProgressSnapshot, error) {
	var raw string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, progressKey).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load progress: %w", err)
	}

	var snap entity.ProgressSnapshot
	if err := json.Unmarshal([]byte(raw), &snap); err != nil {
		r.logger.WithError(err).Warn("stored progress is unreadable, starting fresh")
		return nil, nil
	}
	return &snap, nil
}

func (r *SQLiteProgressRepository) Save(ctx context.Context, snap entity.ProgressSnapshot) error {
	raw, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode progress: %w", err)
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO kv (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		progressKey, string(raw))
	if err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	return nil
}

func (r *SQLiteProgressRepository) Reset(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, progressKey); err != nil {
		return fmt.Errorf("reset progress: %w", err)
	}
	return nil
}
