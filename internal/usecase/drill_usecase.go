package usecase

import (
	"context"
	"math/rand"
	"regexp"
	"time"

	"github.com/petalsoft/sakuradrill/internal/entity"
	"github.com/petalsoft/sakuradrill/internal/repository"
	"github.com/petalsoft/sakuradrill/internal/usecase/srs"
)

// DrillUsecase builds drill sessions: due selection plus batch cutting.
type DrillUsecase interface {
	DueProblems(ctx context.Context, mode entity.DrillMode) (srs.DueList, error)
	SelectBatch(ctx context.Context, mode entity.DrillMode) (srs.DueList, []entity.Problem, error)
	DueCount(ctx context.Context, mode entity.DrillMode) (int, bool, error)
}

// DrillConfig tunes batch building.
type DrillConfig struct {
	MinBatch      int
	MaxBatch      int
	WarmupPattern *regexp.Regexp
}

// NewDrillUsecase wires catalog and progress with the batch tuning. rng
// must be non-nil; seed it for reproducible sessions.
func NewDrillUsecase(catalog repository.Catalog, progressRepo repository.ProgressRepository, cfg DrillConfig, rng *rand.Rand) DrillUsecase {
	if cfg.MinBatch <= 0 {
		cfg.MinBatch = srs.DefaultMinBatch
	}
	if cfg.MaxBatch < cfg.MinBatch {
		cfg.MaxBatch = srs.DefaultMaxBatch
	}
	return &drillUsecase{
		catalog:      catalog,
		progressRepo: progressRepo,
		cfg:          cfg,
		rng:          rng,
		clock:        time.Now,
	}
}

type drillUsecase struct {
	catalog      repository.Catalog
	progressRepo repository.ProgressRepository
	cfg          DrillConfig
	rng          *rand.Rand
	clock        func() time.Time
}

func (u *drillUsecase) DueProblems(ctx context.Context, mode entity.DrillMode) (srs.DueList, error) {
	problems, err := u.catalog.Problems(ctx)
	if err != nil {
		return srs.DueList{}, err
	}
	reviews, err := u.loadReviews(ctx)
	if err != nil {
		return srs.DueList{}, err
	}
	return srs.SelectDue(problems, reviews, mode, u.clock()), nil
}

func (u *drillUsecase) SelectBatch(ctx context.Context, mode entity.DrillMode) (srs.DueList, []entity.Problem, error) {
	due, err := u.DueProblems(ctx, mode)
	if err != nil {
		return srs.DueList{}, nil, err
	}
	batch := srs.SelectBatch(due.Problems, u.cfg.MinBatch, u.cfg.MaxBatch, u.cfg.WarmupPattern, u.rng)
	return due, batch, nil
}

func (u *drillUsecase) DueCount(ctx context.Context, mode entity.DrillMode) (int, bool, error) {
	due, err := u.DueProblems(ctx, mode)
	if err != nil {
		return 0, false, err
	}
	return len(due.Problems), due.IsDue, nil
}

func (u *drillUsecase) loadReviews(ctx context.Context) (map[string]entity.ReviewRecord, error) {
	snap, err := u.progressRepo.Load(ctx)
	if err != nil {
		return nil, err
	}
	if snap == nil {
		return map[string]entity.ReviewRecord{}, nil
	}
	return snap.Reviews, nil
}
