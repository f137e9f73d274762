package srs

import (
	"math/rand"
	"regexp"

	"github.com/petalsoft/sakuradrill/internal/entity"
)

// Default batch bounds for one drill sitting.
const (
	DefaultMinBatch = 5
	DefaultMaxBatch = 10
)

type problemGroup struct {
	key      string
	problems []entity.Problem
}

// SelectBatch cuts one practice batch out of an ordered due list.
//
// Items are grouped by parent question, the warm-up section (group keys
// matching warmupRe) always leads, and group order is shuffled within each
// class while the sub-question order inside a group stays untouched. Whole
// groups are accumulated until the next one would push past maxSize once
// minSize is reached; a group is never split, so a single large group can
// overshoot maxSize.
func SelectBatch(due []entity.Problem, minSize, maxSize int, warmupRe *regexp.Regexp, rng *rand.Rand) []entity.Problem {
	if len(due) == 0 {
		return []entity.Problem{}
	}
	if minSize <= 0 {
		minSize = DefaultMinBatch
	}
	if maxSize < minSize {
		maxSize = minSize
	}

	groupIdx := make(map[string]int, len(due))
	groups := make([]*problemGroup, 0, len(due))
	for _, p := range due {
		key := p.GroupKey()
		idx, ok := groupIdx[key]
		if !ok {
			idx = len(groups)
			groupIdx[key] = idx
			groups = append(groups, &problemGroup{key: key})
		}
		groups[idx].problems = append(groups[idx].problems, p)
	}

	var warmup, others []*problemGroup
	for _, g := range groups {
		if warmupRe != nil && warmupRe.MatchString(g.key) {
			warmup = append(warmup, g)
		} else {
			others = append(others, g)
		}
	}
	shuffleGroups(warmup, rng)
	shuffleGroups(others, rng)
	ordered := append(warmup, others...)

	if len(due) <= maxSize {
		out := make([]entity.Problem, 0, len(due))
		for _, g := range ordered {
			out = append(out, g.problems...)
		}
		return out
	}

	batch := make([]entity.Problem, 0, maxSize)
	for _, g := range ordered {
		if len(batch) >= minSize && len(batch)+len(g.problems) > maxSize {
			break
		}
		batch = append(batch, g.problems...)
	}
	if len(batch) == 0 {
		batch = append(batch, ordered[0].problems...)
	}
	return batch
}

// shuffleGroups is an in-place Fisher–Yates over group order only.
func shuffleGroups(groups []*problemGroup, rng *rand.Rand) {
	if rng == nil {
		return
	}
	for i := len(groups) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		groups[i], groups[j] = groups[j], groups[i]
	}
}
