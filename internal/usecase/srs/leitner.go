package srs

import (
	"math/rand"
	"sort"

	"github.com/petalsoft/sakuradrill/internal/entity"
)

// boxWeights maps a Leitner box to its sampling weight. Unseen and shaky
// cards dominate; mastered cards still surface, just rarely.
var boxWeights = [entity.MaxBox + 1]int{8, 6, 4, 2, 1, 1}

// sessionIntervals is how many sessions a box waits between exposures in
// session-due selection. Box 5 is mastered and excluded there.
var sessionIntervals = map[int]int{1: 1, 2: 2, 3: 5, 4: 10}

// SelectWeighted draws up to limit cards by weighted sampling without
// replacement, then shuffles the draw so the sampling order leaves no
// box-ordering bias. Cards in higher boxes are picked less often but are
// never excluded.
func SelectWeighted(cards []entity.Flashcard, boxes map[string]entity.BoxEntry, limit int, rng *rand.Rand) []entity.Flashcard {
	if len(cards) == 0 {
		return []entity.Flashcard{}
	}
	if limit <= 0 {
		limit = entity.DefaultSessionCap
	}

	pool := make([]entity.Flashcard, len(cards))
	copy(pool, cards)
	weights := make([]int, len(pool))
	total := 0
	for i, c := range pool {
		w := boxWeights[boxOf(boxes, c.ID)]
		weights[i] = w
		total += w
	}

	n := limit
	if len(pool) < n {
		n = len(pool)
	}

	picked := make([]entity.Flashcard, 0, n)
	for len(picked) < n {
		draw := rng.Intn(total)
		idx := 0
		for acc := weights[0]; acc <= draw; {
			idx++
			acc += weights[idx]
		}
		picked = append(picked, pool[idx])
		total -= weights[idx]
		pool = append(pool[:idx], pool[idx+1:]...)
		weights = append(weights[:idx], weights[idx+1:]...)
	}

	for i := len(picked) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		picked[i], picked[j] = picked[j], picked[i]
	}
	return picked
}

// SelectSessionDue is the interval-based Leitner draw: a card is due when
// enough sessions have passed for its box. Mastered cards are excluded,
// struggling cards sort first, and the result is capped.
func SelectSessionDue(cards []entity.Flashcard, boxes map[string]entity.BoxEntry, sessionCount, limit int) []entity.Flashcard {
	if limit <= 0 {
		limit = entity.DefaultSessionCap
	}

	due := make([]entity.Flashcard, 0, len(cards))
	for _, c := range cards {
		info, ok := boxes[c.ID]
		if !ok {
			due = append(due, c)
			continue
		}
		if info.Box >= entity.MaxBox {
			continue
		}
		interval, ok := sessionIntervals[info.Box]
		if !ok {
			interval = 1
		}
		if sessionCount-info.LastSeenSession >= interval {
			due = append(due, c)
		}
	}

	sort.SliceStable(due, func(i, j int) bool {
		return boxOf(boxes, due[i].ID) < boxOf(boxes, due[j].ID)
	})

	if len(due) > limit {
		due = due[:limit]
	}
	return due
}

func boxOf(boxes map[string]entity.BoxEntry, id string) int {
	if e, ok := boxes[id]; ok {
		if e.Box < 0 {
			return 0
		}
		if e.Box > entity.MaxBox {
			return entity.MaxBox
		}
		return e.Box
	}
	return 0
}
