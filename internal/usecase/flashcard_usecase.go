package usecase

import (
	"context"
	"math/rand"

	"github.com/petalsoft/sakuradrill/internal/entity"
	"github.com/petalsoft/sakuradrill/internal/repository"
	"github.com/petalsoft/sakuradrill/internal/usecase/progress"
	"github.com/petalsoft/sakuradrill/internal/usecase/srs"
	syncuc "github.com/petalsoft/sakuradrill/internal/usecase/sync"
)

// FlashcardUsecase runs Leitner sessions: weighted draws, grading, and the
// end-of-session stats fold.
type FlashcardUsecase interface {
	DrawSession(ctx context.Context) ([]entity.Flashcard, int, error)
	Grade(ctx context.Context, cardID string, correct bool) (int, error)
	FinishSession(ctx context.Context, bestCombo int) error
	Stats(ctx context.Context) (entity.FlashcardStats, int, error)
}

// NewFlashcardUsecase wires the Leitner session path.
func NewFlashcardUsecase(catalog repository.Catalog, progressRepo repository.ProgressRepository, syncer *syncuc.Syncer, sessionCap, fullBloomThreshold int, rng *rand.Rand) FlashcardUsecase {
	if sessionCap <= 0 {
		sessionCap = entity.DefaultSessionCap
	}
	return &flashcardUsecase{
		catalog:      catalog,
		progressRepo: progressRepo,
		syncer:       syncer,
		sessionCap:   sessionCap,
		threshold:    fullBloomThreshold,
		rng:          rng,
	}
}

type flashcardUsecase struct {
	catalog      repository.Catalog
	progressRepo repository.ProgressRepository
	syncer       *syncuc.Syncer
	sessionCap   int
	threshold    int
	rng          *rand.Rand
}

// DrawSession starts a new session: bumps the session counter, persists it,
// and returns the weighted draw plus the new session number.
func (u *flashcardUsecase) DrawSession(ctx context.Context) ([]entity.Flashcard, int, error) {
	cards, err := u.catalog.Flashcards(ctx)
	if err != nil {
		return nil, 0, err
	}
	snap, err := u.snapshot(ctx)
	if err != nil {
		return nil, 0, err
	}

	snap = progress.IncrementSession(snap)
	if err := u.progressRepo.Save(ctx, snap); err != nil {
		return nil, 0, err
	}

	picked := srs.SelectWeighted(cards, snap.Flashcards.Boxes, u.sessionCap, u.rng)
	return picked, snap.Flashcards.SessionCount, nil
}

// Grade moves the card through its box (up on a pass, back to box 1 on a
// miss) and folds the single-card outcome into the stats. Returns the new
// box.
func (u *flashcardUsecase) Grade(ctx context.Context, cardID string, correct bool) (int, error) {
	if _, err := u.catalog.FlashcardByID(ctx, cardID); err != nil {
		return 0, err
	}
	snap, err := u.snapshot(ctx)
	if err != nil {
		return 0, err
	}

	if correct {
		snap = progress.AdvanceFlashcard(snap, cardID)
	} else {
		snap = progress.DemoteFlashcard(snap, cardID)
	}

	delta := progress.StatsDelta{
		TotalSeen:     1,
		MasteredCount: snap.Flashcards.MasteredCount(),
	}
	if correct {
		delta.TotalCorrect = 1
	}
	snap = progress.UpdateFlashcardStats(snap, delta)

	if err := u.progressRepo.Save(ctx, snap); err != nil {
		return 0, err
	}
	return snap.Flashcards.BoxOf(cardID), nil
}

// FinishSession records the session's best combo and pushes the final state
// to the family remote.
func (u *flashcardUsecase) FinishSession(ctx context.Context, bestCombo int) error {
	snap, err := u.snapshot(ctx)
	if err != nil {
		return err
	}
	snap = progress.UpdateFlashcardStats(snap, progress.StatsDelta{
		BestCombo:     bestCombo,
		MasteredCount: snap.Flashcards.MasteredCount(),
	})
	if err := u.progressRepo.Save(ctx, snap); err != nil {
		return err
	}
	u.syncer.PushAsync(snap)
	return nil
}

func (u *flashcardUsecase) Stats(ctx context.Context) (entity.FlashcardStats, int, error) {
	snap, err := u.snapshot(ctx)
	if err != nil {
		return entity.FlashcardStats{}, 0, err
	}
	return snap.Flashcards.Stats, snap.Flashcards.SessionCount, nil
}

func (u *flashcardUsecase) snapshot(ctx context.Context) (entity.ProgressSnapshot, error) {
	stored, err := u.progressRepo.Load(ctx)
	if err != nil {
		return entity.ProgressSnapshot{}, err
	}
	if stored == nil {
		return entity.NewProgressSnapshot(u.threshold), nil
	}
	return stored.Normalize(u.threshold), nil
}
