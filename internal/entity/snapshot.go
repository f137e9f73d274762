package entity

// DefaultFullBloomThreshold is how many blooms fill one tree.
const DefaultFullBloomThreshold = 11

// SakuraState holds the gamification counters. CurrentTreeBlooms stays below
// the threshold after Normalize; the other counters never decrease.
type SakuraState struct {
	TotalBlooms        int `json:"totalBlooms"`
	CurrentTreeBlooms  int `json:"currentTreeBlooms"`
	FullBloomCount     int `json:"fullBloomCount"`
	FullBloomThreshold int `json:"fullBloomThreshold"`
}

// StreakState tracks consecutive active days. LastActiveDate is a local
// calendar date in ISO form ("2006-01-02"), empty when never active.
type StreakState struct {
	CurrentStreak  int    `json:"currentStreak"`
	LastActiveDate string `json:"lastActiveDate"`
	LongestStreak  int    `json:"longestStreak"`
}

// ProgressSnapshot is the full persisted learning state, serialised as one
// JSON document both locally and on the remote store.
type ProgressSnapshot struct {
	Reviews    map[string]ReviewRecord `json:"reviews"`
	Sakura     SakuraState             `json:"sakura"`
	Streak     StreakState             `json:"streak"`
	Flashcards FlashcardState          `json:"flashcards"`
}

// NewProgressSnapshot returns the default empty snapshot.
func NewProgressSnapshot(fullBloomThreshold int) ProgressSnapshot {
	if fullBloomThreshold <= 0 {
		fullBloomThreshold = DefaultFullBloomThreshold
	}
	return ProgressSnapshot{
		Reviews:    map[string]ReviewRecord{},
		Sakura:     SakuraState{FullBloomThreshold: fullBloomThreshold},
		Flashcards: NewFlashcardState(),
	}
}

// Clone returns a deep copy; transitions operate on copies so a caller's
// snapshot value is never mutated.
func (p ProgressSnapshot) Clone() ProgressSnapshot {
	out := p
	out.Reviews = make(map[string]ReviewRecord, len(p.Reviews))
	for id, rec := range p.Reviews {
		out.Reviews[id] = rec.Clone()
	}
	out.Flashcards = p.Flashcards.Clone()
	return out
}

// Normalize migrates a loaded snapshot forward: the configured full-bloom
// threshold always wins, excess tree blooms convert into full blooms, and an
// older document without a flashcards section gets the default one.
func (p ProgressSnapshot) Normalize(fullBloomThreshold int) ProgressSnapshot {
	out := p.Clone()
	if fullBloomThreshold <= 0 {
		fullBloomThreshold = DefaultFullBloomThreshold
	}
	out.Sakura.FullBloomThreshold = fullBloomThreshold
	for out.Sakura.CurrentTreeBlooms >= fullBloomThreshold {
		out.Sakura.CurrentTreeBlooms -= fullBloomThreshold
		out.Sakura.FullBloomCount++
	}
	if out.Reviews == nil {
		out.Reviews = map[string]ReviewRecord{}
	}
	if out.Flashcards.Boxes == nil {
		out.Flashcards = NewFlashcardState()
	}
	return out
}
