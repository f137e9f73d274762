package backup

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/petalsoft/sakuradrill/internal/entity"
)

type fakeProgressRepo struct {
	stored *entity.ProgressSnapshot
	saves  int
}

func (r *fakeProgressRepo) Load(ctx context.Context) (*entity.ProgressSnapshot, error) {
	if r.stored == nil {
		return nil, nil
	}
	snap := r.stored.Clone()
	return &snap, nil
}

func (r *fakeProgressRepo) Save(ctx context.Context, snap entity.ProgressSnapshot) error {
	clone := snap.Clone()
	r.stored = &clone
	r.saves++
	return nil
}

func (r *fakeProgressRepo) Reset(ctx context.Context) error {
	r.stored = nil
	return nil
}

var fixedNow = time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func TestImportReplaysEntries(t *testing.T) {
	repo := &fakeProgressRepo{}
	svc := NewService(repo, 11, WithClock(fixedClock))

	payload := `{"p1": {"quality": 5}, "p2": {"quality": 1}}`
	n, err := svc.Import(context.Background(), strings.NewReader(payload))
	if err != nil {
		t.Fatalf("Import returned error: %v", err)
	}
	if n != 2 {
		t.Errorf("expected 2 replayed entries, got %d", n)
	}

	snap := repo.stored
	if snap == nil {
		t.Fatal("expected the snapshot to be saved")
	}
	if rec := snap.Reviews["p1"]; rec.Repetitions != 1 || !rec.LastReviewDate.Equal(fixedNow) {
		t.Errorf("unexpected p1 record %+v", rec)
	}
	if rec := snap.Reviews["p2"]; rec.Repetitions != 0 || rec.Interval != 1 {
		t.Errorf("unexpected p2 record %+v", rec)
	}
	// Only the pass earns a bloom.
	if snap.Sakura.TotalBlooms != 1 {
		t.Errorf("expected 1 bloom, got %d", snap.Sakura.TotalBlooms)
	}
}

func TestImportDatedEntry(t *testing.T) {
	repo := &fakeProgressRepo{}
	svc := NewService(repo, 11, WithClock(fixedClock))

	payload := `{"p1": {"quality": 5, "date": "2026-01-02T08:00:00Z"}}`
	if _, err := svc.Import(context.Background(), strings.NewReader(payload)); err != nil {
		t.Fatalf("Import returned error: %v", err)
	}

	want := time.Date(2026, 1, 2, 8, 0, 0, 0, time.UTC)
	if rec := repo.stored.Reviews["p1"]; !rec.LastReviewDate.Equal(want) {
		t.Errorf("expected dated replay at %v, got %v", want, rec.LastReviewDate)
	}
}

func TestImportAllOrNothing(t *testing.T) {
	repo := &fakeProgressRepo{}
	svc := NewService(repo, 11, WithClock(fixedClock))

	cases := []struct {
		name    string
		payload string
	}{
		{"bad quality", `{"p1": {"quality": 5}, "p2": {"quality": 4}}`},
		{"bad date", `{"p1": {"quality": 5, "date": "yesterday"}}`},
		{"unknown field", `{"p1": {"quality": 5, "mood": "great"}}`},
		{"empty payload", `{}`},
		{"not json", `quality five`},
	}
	for _, tc := range cases {
		n, err := svc.Import(context.Background(), strings.NewReader(tc.payload))
		if !errors.Is(err, entity.ErrInvalidImport) {
			t.Errorf("%s: expected ErrInvalidImport, got %v", tc.name, err)
		}
		if n != 0 {
			t.Errorf("%s: expected 0 replayed entries, got %d", tc.name, n)
		}
		if repo.saves != 0 {
			t.Fatalf("%s: invalid import reached the store", tc.name)
		}
	}
}

func TestExportRoundTrip(t *testing.T) {
	repo := &fakeProgressRepo{}
	svc := NewService(repo, 11, WithClock(fixedClock))

	payload := `{"p1": {"quality": 5}}`
	if _, err := svc.Import(context.Background(), strings.NewReader(payload)); err != nil {
		t.Fatalf("Import returned error: %v", err)
	}

	var buf strings.Builder
	if err := svc.Export(context.Background(), &buf); err != nil {
		t.Fatalf("Export returned error: %v", err)
	}
	out := buf.String()
	for _, want := range []string{`"reviews"`, `"p1"`, `"sakura"`, `"streak"`, `"flashcards"`} {
		if !strings.Contains(out, want) {
			t.Errorf("export missing %s:\n%s", want, out)
		}
	}
}

func TestExportEmptyStore(t *testing.T) {
	repo := &fakeProgressRepo{}
	svc := NewService(repo, 11)

	var buf strings.Builder
	if err := svc.Export(context.Background(), &buf); err != nil {
		t.Fatalf("Export returned error: %v", err)
	}
	if !strings.Contains(buf.String(), `"fullBloomThreshold": 11`) {
		t.Errorf("expected the default snapshot with threshold 11, got:\n%s", buf.String())
	}
}
