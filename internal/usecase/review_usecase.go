package usecase

import (
	"context"
	"time"

	"github.com/petalsoft/sakuradrill/internal/entity"
	"github.com/petalsoft/sakuradrill/internal/repository"
	"github.com/petalsoft/sakuradrill/internal/usecase/progress"
	syncuc "github.com/petalsoft/sakuradrill/internal/usecase/sync"
)

// ReviewUsecase records drill answers and their side effects: scheduling,
// streak, blooms, and the background remote push.
type ReviewUsecase interface {
	RecordAnswer(ctx context.Context, itemID string, quality int) (*entity.ReviewRecord, error)
	Snapshot(ctx context.Context) (entity.ProgressSnapshot, error)
	Reset(ctx context.Context) error
}

// NewReviewUsecase wires the review path. syncer may be local-only; the
// answer path never blocks on the remote.
func NewReviewUsecase(catalog repository.Catalog, progressRepo repository.ProgressRepository, syncer *syncuc.Syncer, fullBloomThreshold int) ReviewUsecase {
	return &reviewUsecase{
		catalog:      catalog,
		progressRepo: progressRepo,
		syncer:       syncer,
		threshold:    fullBloomThreshold,
		clock:        time.Now,
	}
}

type reviewUsecase struct {
	catalog      repository.Catalog
	progressRepo repository.ProgressRepository
	syncer       *syncuc.Syncer
	threshold    int
	clock        func() time.Time
}

func (u *reviewUsecase) RecordAnswer(ctx context.Context, itemID string, quality int) (*entity.ReviewRecord, error) {
	if !entity.ValidQuality(quality) {
		return nil, entity.ErrInvalidQuality
	}
	if _, err := u.catalog.ProblemByID(ctx, itemID); err != nil {
		return nil, err
	}

	snap, err := u.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	now := u.clock()
	snap = progress.RecordReviewAt(snap, itemID, quality, now)
	if quality >= entity.QualityHesitant {
		snap = progress.AddBloom(snap)
	}
	snap = progress.UpdateStreak(snap, now)

	if err := u.progressRepo.Save(ctx, snap); err != nil {
		return nil, err
	}
	u.syncer.PushAsync(snap)

	rec := snap.Reviews[itemID]
	return &rec, nil
}

// Snapshot loads the local snapshot, migrated forward, defaulting to an
// empty one when nothing (or garbage) is stored.
func (u *reviewUsecase) Snapshot(ctx context.Context) (entity.ProgressSnapshot, error) {
	stored, err := u.progressRepo.Load(ctx)
	if err != nil {
		return entity.ProgressSnapshot{}, err
	}
	if stored == nil {
		return entity.NewProgressSnapshot(u.threshold), nil
	}
	return stored.Normalize(u.threshold), nil
}

func (u *reviewUsecase) Reset(ctx context.Context) error {
	return u.progressRepo.Reset(ctx)
}
