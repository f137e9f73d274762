package usecase

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/petalsoft/sakuradrill/internal/entity"
)

func newTestFlashcards(catalog *fakeCatalog, repo *fakeProgressRepo) FlashcardUsecase {
	return NewFlashcardUsecase(catalog, repo, localSyncer(repo), 3, 11, rand.New(rand.NewSource(1)))
}

func testCards(n int) []entity.Flashcard {
	out := make([]entity.Flashcard, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, entity.Flashcard{ID: "c" + string(rune('a'+i)), Category: "multiplication"})
	}
	return out
}

func TestDrawSessionIncrementsCounterAndCaps(t *testing.T) {
	catalog := &fakeCatalog{flashcards: testCards(6)}
	repo := &fakeProgressRepo{}
	uc := newTestFlashcards(catalog, repo)

	cards, session, err := uc.DrawSession(context.Background())
	if err != nil {
		t.Fatalf("DrawSession returned error: %v", err)
	}
	if session != 1 {
		t.Errorf("expected session 1, got %d", session)
	}
	if len(cards) != 3 {
		t.Errorf("expected a draw of 3, got %d", len(cards))
	}
	if repo.stored == nil || repo.stored.Flashcards.SessionCount != 1 {
		t.Error("expected the session counter to be persisted")
	}

	_, session, err = uc.DrawSession(context.Background())
	if err != nil {
		t.Fatalf("DrawSession returned error: %v", err)
	}
	if session != 2 {
		t.Errorf("expected session 2, got %d", session)
	}
}

func TestGradeAdvancesAndDemotes(t *testing.T) {
	catalog := &fakeCatalog{flashcards: testCards(2)}
	repo := &fakeProgressRepo{}
	uc := newTestFlashcards(catalog, repo)

	box, err := uc.Grade(context.Background(), "ca", true)
	if err != nil {
		t.Fatalf("Grade returned error: %v", err)
	}
	if box != 2 {
		t.Errorf("expected first pass to land in box 2, got %d", box)
	}

	box, err = uc.Grade(context.Background(), "ca", true)
	if err != nil {
		t.Fatalf("Grade returned error: %v", err)
	}
	if box != 3 {
		t.Errorf("expected box 3, got %d", box)
	}

	box, err = uc.Grade(context.Background(), "ca", false)
	if err != nil {
		t.Fatalf("Grade returned error: %v", err)
	}
	if box != entity.DemotedBox {
		t.Errorf("expected a miss to demote to box %d, got %d", entity.DemotedBox, box)
	}

	stats := repo.stored.Flashcards.Stats
	if stats.TotalSeen != 3 || stats.TotalCorrect != 2 {
		t.Errorf("unexpected stats %+v", stats)
	}
}

func TestGradeUnknownCard(t *testing.T) {
	catalog := &fakeCatalog{flashcards: testCards(1)}
	uc := newTestFlashcards(catalog, &fakeProgressRepo{})

	if _, err := uc.Grade(context.Background(), "ghost", true); !errors.Is(err, entity.ErrFlashcardNotFound) {
		t.Errorf("expected ErrFlashcardNotFound, got %v", err)
	}
}

func TestFinishSessionKeepsBestCombo(t *testing.T) {
	catalog := &fakeCatalog{flashcards: testCards(2)}
	repo := &fakeProgressRepo{}
	uc := newTestFlashcards(catalog, repo)

	if err := uc.FinishSession(context.Background(), 5); err != nil {
		t.Fatalf("FinishSession returned error: %v", err)
	}
	if err := uc.FinishSession(context.Background(), 3); err != nil {
		t.Fatalf("FinishSession returned error: %v", err)
	}

	stats, _, err := uc.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats returned error: %v", err)
	}
	if stats.BestCombo != 5 {
		t.Errorf("expected best combo 5, got %d", stats.BestCombo)
	}
}

func TestStatsCountsMasteredCards(t *testing.T) {
	catalog := &fakeCatalog{flashcards: testCards(1)}
	repo := &fakeProgressRepo{}
	uc := newTestFlashcards(catalog, repo)

	// Four passes from unseen: boxes 2, 3, 4, 5.
	for i := 0; i < 4; i++ {
		if _, err := uc.Grade(context.Background(), "ca", true); err != nil {
			t.Fatalf("Grade returned error: %v", err)
		}
	}

	stats, _, err := uc.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats returned error: %v", err)
	}
	if stats.MasteredCount != 1 {
		t.Errorf("expected 1 mastered card, got %d", stats.MasteredCount)
	}
}
