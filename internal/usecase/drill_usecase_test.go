package usecase

import (
	"context"
	"math/rand"
	"regexp"
	"testing"
	"time"

	"github.com/petalsoft/sakuradrill/internal/entity"
	"github.com/petalsoft/sakuradrill/internal/usecase/progress"
)

var testNow = time.Date(2026, 3, 14, 20, 0, 0, 0, time.UTC)

func newTestDrill(catalog *fakeCatalog, repo *fakeProgressRepo) *drillUsecase {
	uc := NewDrillUsecase(catalog, repo, DrillConfig{
		MinBatch:      5,
		MaxBatch:      10,
		WarmupPattern: regexp.MustCompile(`大問1$`),
	}, rand.New(rand.NewSource(1)))
	impl := uc.(*drillUsecase)
	impl.clock = func() time.Time { return testNow }
	return impl
}

func TestDueProblemsEmptyStore(t *testing.T) {
	catalog := &fakeCatalog{problems: []entity.Problem{
		{ID: "p1", Source: "第1回 大問2(1)", CorrectRate: 70},
		{ID: "p2", Source: "第1回 大問2(2)", CorrectRate: 30},
	}}
	uc := newTestDrill(catalog, &fakeProgressRepo{})

	due, err := uc.DueProblems(context.Background(), entity.ModeNormal)
	if err != nil {
		t.Fatalf("DueProblems returned error: %v", err)
	}
	if !due.IsDue {
		t.Error("expected unseen items to be due")
	}
	if len(due.Problems) != 1 || due.Problems[0].ID != "p1" {
		t.Fatalf("expected only p1 in the normal band, got %v", due.Problems)
	}
}

func TestDueProblemsUsesStoredReviews(t *testing.T) {
	catalog := &fakeCatalog{problems: []entity.Problem{
		{ID: "p1", Source: "第1回 大問2(1)", CorrectRate: 70},
	}}
	repo := &fakeProgressRepo{}
	snap := entity.NewProgressSnapshot(11)
	snap = progress.RecordReviewAt(snap, "p1", entity.QualityConfident, testNow)
	repo.Save(context.Background(), snap)

	uc := newTestDrill(catalog, repo)

	count, isDue, err := uc.DueCount(context.Background(), entity.ModeNormal)
	if err != nil {
		t.Fatalf("DueCount returned error: %v", err)
	}
	// p1 was just answered, its next review is tomorrow; the band falls back
	// to free practice.
	if isDue {
		t.Error("expected free-practice fallback")
	}
	if count != 1 {
		t.Errorf("expected the whole band in the fallback, got %d", count)
	}
}

func TestSelectBatchBounded(t *testing.T) {
	problems := make([]entity.Problem, 0, 20)
	for g := 0; g < 5; g++ {
		for s := 1; s <= 4; s++ {
			problems = append(problems, entity.Problem{
				ID:          string(rune('a'+g)) + string(rune('0'+s)),
				Source:      "第" + string(rune('1'+g)) + "回 大問2(" + string(rune('0'+s)) + ")",
				CorrectRate: 70,
			})
		}
	}
	uc := newTestDrill(&fakeCatalog{problems: problems}, &fakeProgressRepo{})

	due, batch, err := uc.SelectBatch(context.Background(), entity.ModeNormal)
	if err != nil {
		t.Fatalf("SelectBatch returned error: %v", err)
	}
	if len(due.Problems) != 20 {
		t.Fatalf("expected 20 due problems, got %d", len(due.Problems))
	}
	if len(batch) < 5 || len(batch) > 10 {
		t.Errorf("expected batch within 5..10, got %d", len(batch))
	}
}
