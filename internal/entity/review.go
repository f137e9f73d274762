package entity

import "time"

// Review qualities: a three-valued self-assessment of an answer.
const (
	QualityFailed    = 1 // could not solve it
	QualityHesitant  = 3 // solved, but shaky
	QualityConfident = 5 // solved with confidence
)

// ValidQuality reports whether q is one of the three supported levels.
func ValidQuality(q int) bool {
	return q == QualityFailed || q == QualityHesitant || q == QualityConfident
}

// Default scheduling parameters for a freshly created review record.
const (
	InitialEaseFactor = 2.5
	MinEaseFactor     = 1.3
)

// ReviewRecord is the per-item learning state driven by the SM-2 variant.
// NextReviewDate is always normalised to local midnight; due comparisons are
// date-only.
type ReviewRecord struct {
	EaseFactor     float64        `json:"easeFactor"`
	Interval       int            `json:"interval"`
	Repetitions    int            `json:"repetitions"`
	NextReviewDate time.Time      `json:"nextReviewDate"`
	LastReviewDate time.Time      `json:"lastReviewDate"`
	History        []HistoryEntry `json:"history"`
}

// HistoryEntry is one answer in a record's append-only history.
type HistoryEntry struct {
	Date    time.Time `json:"date"`
	Quality int       `json:"quality"`
	Correct bool      `json:"correct"`
}

// NewReviewRecord returns the state an item has before its first answer.
func NewReviewRecord() ReviewRecord {
	return ReviewRecord{
		EaseFactor:  InitialEaseFactor,
		Interval:    0,
		Repetitions: 0,
		History:     []HistoryEntry{},
	}
}

// Accuracy is the historical pass rate of the record, or 0.5 when there is
// no history yet (neutral default for weakest-first ordering).
func (r ReviewRecord) Accuracy() float64 {
	if len(r.History) == 0 {
		return 0.5
	}
	correct := 0
	for _, h := range r.History {
		if h.Correct {
			correct++
		}
	}
	return float64(correct) / float64(len(r.History))
}

// Clone returns a deep copy; History is copied so the original stays
// append-only under concurrent snapshots.
func (r ReviewRecord) Clone() ReviewRecord {
	out := r
	out.History = make([]HistoryEntry, len(r.History))
	copy(out.History, r.History)
	return out
}
