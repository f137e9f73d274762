// Package sync reconciles divergent progress snapshots between the local
// store and the shared family remote. Merging is per-field, not
// newest-wins: review records and the streak follow the later timestamp,
// counters and box levels follow the monotonic maximum.
package sync

import "github.com/petalsoft/sakuradrill/internal/entity"

// Merge combines a local and a remote snapshot. remote may be nil, in which
// case the local snapshot is authoritative as-is. Neither input is mutated,
// and merge(S, S) == S for any snapshot S.
func Merge(local entity.ProgressSnapshot, remote *entity.ProgressSnapshot) entity.ProgressSnapshot {
	out := local.Clone()
	if remote == nil {
		return out
	}

	for id, theirs := range remote.Reviews {
		ours, ok := out.Reviews[id]
		if !ok || theirs.LastReviewDate.After(ours.LastReviewDate) {
			out.Reviews[id] = theirs.Clone()
		}
	}

	// Sakura counters are correlated, so the object moves as a whole when
	// the remote counted strictly more blooms.
	if remote.Sakura.TotalBlooms > out.Sakura.TotalBlooms {
		out.Sakura = remote.Sakura
	}

	longest := out.Streak.LongestStreak
	if remote.Streak.LongestStreak > longest {
		longest = remote.Streak.LongestStreak
	}
	if remote.Streak.LastActiveDate > out.Streak.LastActiveDate {
		out.Streak = remote.Streak
	}
	out.Streak.LongestStreak = longest

	for id, theirs := range remote.Flashcards.Boxes {
		ours, ok := out.Flashcards.Boxes[id]
		if !ok || theirs.Box > ours.Box {
			out.Flashcards.Boxes[id] = theirs
		}
	}
	if remote.Flashcards.SessionCount > out.Flashcards.SessionCount {
		out.Flashcards.SessionCount = remote.Flashcards.SessionCount
	}
	out.Flashcards.Stats = mergeStats(out.Flashcards.Stats, remote.Flashcards.Stats)

	return out
}

func mergeStats(a, b entity.FlashcardStats) entity.FlashcardStats {
	return entity.FlashcardStats{
		TotalCorrect:  maxInt(a.TotalCorrect, b.TotalCorrect),
		TotalSeen:     maxInt(a.TotalSeen, b.TotalSeen),
		BestCombo:     maxInt(a.BestCombo, b.BestCombo),
		MasteredCount: maxInt(a.MasteredCount, b.MasteredCount),
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
