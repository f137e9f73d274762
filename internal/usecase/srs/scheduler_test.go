package srs

import (
	"testing"
	"time"

	"github.com/petalsoft/sakuradrill/internal/entity"
)

var testNow = time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)

func TestNextReviewConfidentFirstPass(t *testing.T) {
	rec := entity.NewReviewRecord()

	got := NextReview(rec, entity.QualityConfident, testNow)

	if got.Repetitions != 1 {
		t.Errorf("expected repetitions 1, got %d", got.Repetitions)
	}
	if got.Interval != 1 {
		t.Errorf("expected interval 1, got %d", got.Interval)
	}
	if got.EaseFactor != 2.6 {
		t.Errorf("expected ease factor 2.6, got %v", got.EaseFactor)
	}
	want := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	if !got.NextReviewDate.Equal(want) {
		t.Errorf("expected next review %v, got %v", want, got.NextReviewDate)
	}
}

func TestNextReviewHesitantFirstPass(t *testing.T) {
	rec := entity.NewReviewRecord()

	got := NextReview(rec, entity.QualityHesitant, testNow)

	if got.Repetitions != 1 {
		t.Errorf("expected repetitions 1, got %d", got.Repetitions)
	}
	// A one-day interval is not dampened further.
	if got.Interval != 1 {
		t.Errorf("expected interval 1, got %d", got.Interval)
	}
	if got.EaseFactor != 2.36 {
		t.Errorf("expected ease factor 2.36, got %v", got.EaseFactor)
	}
}

func TestNextReviewFailureResets(t *testing.T) {
	rec := entity.ReviewRecord{
		EaseFactor:  2.6,
		Interval:    8,
		Repetitions: 3,
		History:     []entity.HistoryEntry{},
	}

	got := NextReview(rec, entity.QualityFailed, testNow)

	if got.Repetitions != 0 {
		t.Errorf("expected repetitions reset to 0, got %d", got.Repetitions)
	}
	if got.Interval != 1 {
		t.Errorf("expected interval reset to 1, got %d", got.Interval)
	}
	if got.EaseFactor != 2.06 {
		t.Errorf("expected ease factor 2.06, got %v", got.EaseFactor)
	}
}

func TestNextReviewEaseFloor(t *testing.T) {
	rec := entity.ReviewRecord{
		EaseFactor: entity.MinEaseFactor,
		History:    []entity.HistoryEntry{},
	}

	got := NextReview(rec, entity.QualityFailed, testNow)

	if got.EaseFactor != entity.MinEaseFactor {
		t.Errorf("expected ease factor clamped at %v, got %v", entity.MinEaseFactor, got.EaseFactor)
	}
}

func TestNextReviewHesitantDampensLongInterval(t *testing.T) {
	rec := entity.ReviewRecord{
		EaseFactor:  2.5,
		Interval:    3,
		Repetitions: 2,
		History:     []entity.HistoryEntry{},
	}

	got := NextReview(rec, entity.QualityHesitant, testNow)

	// round(3*2.5) = 8, dampened to round(8*0.7) = 6.
	if got.Interval != 6 {
		t.Errorf("expected dampened interval 6, got %d", got.Interval)
	}
	want := time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC)
	if !got.NextReviewDate.Equal(want) {
		t.Errorf("expected next review %v, got %v", want, got.NextReviewDate)
	}
}

func TestNextReviewConfidentSequence(t *testing.T) {
	rec := entity.NewReviewRecord()
	wantIntervals := []int{1, 3, 8}

	for i, want := range wantIntervals {
		rec = NextReview(rec, entity.QualityConfident, testNow)
		if rec.Interval != want {
			t.Fatalf("pass %d: expected interval %d, got %d", i+1, want, rec.Interval)
		}
	}
	if rec.Repetitions != 3 {
		t.Errorf("expected repetitions 3, got %d", rec.Repetitions)
	}
	if rec.EaseFactor != 2.8 {
		t.Errorf("expected ease factor 2.8, got %v", rec.EaseFactor)
	}
}

func TestNextReviewDoesNotMutateInput(t *testing.T) {
	rec := entity.NewReviewRecord()

	NextReview(rec, entity.QualityConfident, testNow)

	if rec.Repetitions != 0 || rec.Interval != 0 || rec.EaseFactor != entity.InitialEaseFactor {
		t.Errorf("input record was mutated: %+v", rec)
	}
}

func TestMidnight(t *testing.T) {
	late := time.Date(2026, 3, 14, 23, 59, 59, 999, time.UTC)
	want := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	if got := Midnight(late); !got.Equal(want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}
