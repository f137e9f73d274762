package entity

// Leitner box bounds: 0 means never seen, MaxBox means mastered and out of
// the regular rotation.
const (
	MaxBox            = 5
	DemotedBox        = 1
	DefaultSessionCap = 15
)

// BoxEntry is the per-card Leitner state.
type BoxEntry struct {
	Box             int `json:"box"`
	LastSeenSession int `json:"lastSeenSession"`
}

// FlashcardStats are cumulative flashcard counters. MasteredCount is a
// recomputed census, not an accumulator; the rest only ever grow.
type FlashcardStats struct {
	TotalCorrect  int `json:"totalCorrect"`
	TotalSeen     int `json:"totalSeen"`
	BestCombo     int `json:"bestCombo"`
	MasteredCount int `json:"masteredCount"`
}

// FlashcardState is the Leitner section of the progress snapshot.
type FlashcardState struct {
	Boxes        map[string]BoxEntry `json:"boxes"`
	SessionCount int                 `json:"sessionCount"`
	Stats        FlashcardStats      `json:"stats"`
}

// NewFlashcardState returns the default (empty) Leitner section.
func NewFlashcardState() FlashcardState {
	return FlashcardState{Boxes: map[string]BoxEntry{}}
}

// BoxOf returns the card's current box, 0 when the card was never seen.
func (f FlashcardState) BoxOf(cardID string) int {
	if e, ok := f.Boxes[cardID]; ok {
		return e.Box
	}
	return 0
}

// MasteredCount counts cards that reached the top box.
func (f FlashcardState) MasteredCount() int {
	n := 0
	for _, e := range f.Boxes {
		if e.Box >= MaxBox {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of the Leitner section.
func (f FlashcardState) Clone() FlashcardState {
	out := f
	out.Boxes = make(map[string]BoxEntry, len(f.Boxes))
	for id, e := range f.Boxes {
		out.Boxes[id] = e
	}
	return out
}
