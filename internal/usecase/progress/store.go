// Package progress holds the pure transition functions over the progress
// snapshot. Every function takes a snapshot value and returns a new one;
// callers chain transitions and persist the final value in one save.
package progress

import (
	"time"

	"github.com/petalsoft/sakuradrill/internal/entity"
	"github.com/petalsoft/sakuradrill/internal/usecase/srs"
)

const dateLayout = "2006-01-02"

// RecordReview applies one answer to an item, default-initialising the
// record on first contact and appending to its history.
func RecordReview(snap entity.ProgressSnapshot, itemID string, quality int) entity.ProgressSnapshot {
	return RecordReviewAt(snap, itemID, quality, time.Now())
}

// RecordReviewAt is RecordReview with an explicit answer time, used by bulk
// import to replay historical results.
func RecordReviewAt(snap entity.ProgressSnapshot, itemID string, quality int, at time.Time) entity.ProgressSnapshot {
	out := snap.Clone()

	rec, ok := out.Reviews[itemID]
	if !ok {
		rec = entity.NewReviewRecord()
	}
	next := srs.NextReview(rec, quality, at)
	next.LastReviewDate = at
	next.History = append(next.History, entity.HistoryEntry{
		Date:    at,
		Quality: quality,
		Correct: quality >= entity.QualityHesitant,
	})
	out.Reviews[itemID] = next
	return out
}

// UpdateStreak marks today active. The first activity of a day either
// extends a streak that was active yesterday or starts over at 1; the same
// day twice is a no-op.
func UpdateStreak(snap entity.ProgressSnapshot, now time.Time) entity.ProgressSnapshot {
	today := now.Format(dateLayout)
	if snap.Streak.LastActiveDate == today {
		return snap
	}

	out := snap.Clone()
	yesterday := now.AddDate(0, 0, -1).Format(dateLayout)
	if out.Streak.LastActiveDate == yesterday {
		out.Streak.CurrentStreak++
	} else {
		out.Streak.CurrentStreak = 1
	}
	if out.Streak.CurrentStreak > out.Streak.LongestStreak {
		out.Streak.LongestStreak = out.Streak.CurrentStreak
	}
	out.Streak.LastActiveDate = today
	return out
}

// AddBloom awards one bloom; filling the tree rolls it over into a full
// bloom. A single bloom triggers at most one rollover.
func AddBloom(snap entity.ProgressSnapshot) entity.ProgressSnapshot {
	out := snap.Clone()
	out.Sakura.TotalBlooms++
	out.Sakura.CurrentTreeBlooms++
	if out.Sakura.CurrentTreeBlooms >= out.Sakura.FullBloomThreshold {
		out.Sakura.CurrentTreeBlooms = 0
		out.Sakura.FullBloomCount++
	}
	return out
}

// AdvanceFlashcard moves a card up one box, capped at the mastered box.
func AdvanceFlashcard(snap entity.ProgressSnapshot, cardID string) entity.ProgressSnapshot {
	out := snap.Clone()
	entry, ok := out.Flashcards.Boxes[cardID]
	if !ok {
		entry = entity.BoxEntry{Box: entity.DemotedBox, LastSeenSession: out.Flashcards.SessionCount}
	}
	if entry.Box < entity.MaxBox {
		entry.Box++
	}
	entry.LastSeenSession = out.Flashcards.SessionCount
	out.Flashcards.Boxes[cardID] = entry
	return out
}

// DemoteFlashcard drops a missed card back to box 1 (not 0, which is
// reserved for never-seen cards).
func DemoteFlashcard(snap entity.ProgressSnapshot, cardID string) entity.ProgressSnapshot {
	out := snap.Clone()
	out.Flashcards.Boxes[cardID] = entity.BoxEntry{
		Box:             entity.DemotedBox,
		LastSeenSession: out.Flashcards.SessionCount,
	}
	return out
}

// IncrementSession bumps the Leitner session counter.
func IncrementSession(snap entity.ProgressSnapshot) entity.ProgressSnapshot {
	out := snap.Clone()
	out.Flashcards.SessionCount++
	return out
}

// StatsDelta carries one session's flashcard outcomes into the cumulative
// stats.
type StatsDelta struct {
	TotalCorrect  int
	TotalSeen     int
	BestCombo     int
	MasteredCount int
}

// UpdateFlashcardStats folds a delta into the stats. Totals accumulate,
// BestCombo is max-merged, and MasteredCount is overwritten: it is a fresh
// census of the boxes, not a delta.
func UpdateFlashcardStats(snap entity.ProgressSnapshot, delta StatsDelta) entity.ProgressSnapshot {
	out := snap.Clone()
	out.Flashcards.Stats.TotalCorrect += delta.TotalCorrect
	out.Flashcards.Stats.TotalSeen += delta.TotalSeen
	if delta.BestCombo > out.Flashcards.Stats.BestCombo {
		out.Flashcards.Stats.BestCombo = delta.BestCombo
	}
	out.Flashcards.Stats.MasteredCount = delta.MasteredCount
	return out
}
