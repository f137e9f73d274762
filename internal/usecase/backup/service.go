// Package backup implements the administrative bulk surface: replaying
// exported review results into the snapshot and exporting the snapshot as
// the same JSON document the stores persist.
package backup

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/petalsoft/sakuradrill/internal/entity"
	"github.com/petalsoft/sakuradrill/internal/repository"
	"github.com/petalsoft/sakuradrill/internal/usecase/progress"
)

// ImportEntry is one replayed answer. Date is optional RFC3339; it defaults
// to the import time.
type ImportEntry struct {
	Quality int    `json:"quality"`
	Date    string `json:"date,omitempty"`
}

// Service replays and exports progress state.
type Service struct {
	repo      repository.ProgressRepository
	threshold int
	clock     func() time.Time
}

// Option tweaks a Service.
type Option func(*Service)

// WithClock overrides the wall clock, for tests and dated replays.
func WithClock(clock func() time.Time) Option {
	return func(s *Service) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// NewService builds the backup service around the local progress store.
func NewService(repo repository.ProgressRepository, fullBloomThreshold int, opts ...Option) *Service {
	s := &Service{
		repo:      repo,
		threshold: fullBloomThreshold,
		clock:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Import decodes an itemId → entry mapping and replays every entry through
// the regular review transition, awarding blooms for passes. The payload is
// validated up front: any malformed entry aborts the whole import with no
// state change. Returns the number of replayed entries.
func (s *Service) Import(ctx context.Context, r io.Reader) (int, error) {
	var payload map[string]ImportEntry
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&payload); err != nil {
		return 0, fmt.Errorf("%w: %v", entity.ErrInvalidImport, err)
	}
	if len(payload) == 0 {
		return 0, fmt.Errorf("%w: empty payload", entity.ErrInvalidImport)
	}

	now := s.clock()
	dates := make(map[string]time.Time, len(payload))
	for itemID, e := range payload {
		if itemID == "" {
			return 0, fmt.Errorf("%w: empty item id", entity.ErrInvalidImport)
		}
		if !entity.ValidQuality(e.Quality) {
			return 0, fmt.Errorf("%w: item %s: %v", entity.ErrInvalidImport, itemID, entity.ErrInvalidQuality)
		}
		at := now
		if e.Date != "" {
			parsed, err := time.Parse(time.RFC3339, e.Date)
			if err != nil {
				return 0, fmt.Errorf("%w: item %s: bad date %q", entity.ErrInvalidImport, itemID, e.Date)
			}
			at = parsed
		}
		dates[itemID] = at
	}

	snap, err := s.snapshot(ctx)
	if err != nil {
		return 0, err
	}
	for itemID, e := range payload {
		snap = progress.RecordReviewAt(snap, itemID, e.Quality, dates[itemID])
		if e.Quality >= entity.QualityHesitant {
			snap = progress.AddBloom(snap)
		}
	}

	if err := s.repo.Save(ctx, snap); err != nil {
		return 0, err
	}
	return len(payload), nil
}

// Export writes the migrated snapshot as indented JSON; the output is the
// exact persisted document shape, so an export survives a store swap.
func (s *Service) Export(ctx context.Context, w io.Writer) error {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snap); err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return nil
}

func (s *Service) snapshot(ctx context.Context) (entity.ProgressSnapshot, error) {
	stored, err := s.repo.Load(ctx)
	if err != nil {
		return entity.ProgressSnapshot{}, err
	}
	if stored == nil {
		return entity.NewProgressSnapshot(s.threshold), nil
	}
	return stored.Normalize(s.threshold), nil
}
