package srs

import (
	"sort"
	"time"

	"github.com/petalsoft/sakuradrill/internal/entity"
)

// Difficulty bands per drill mode, in catalog correctRate percent.
const (
	normalMinRate    = 50
	highLevelMinRate = 30
)

// DueList is the outcome of due selection. IsDue=false means nothing was
// scheduled for today and Problems holds the whole band weakest-first for
// free practice instead.
type DueList struct {
	Problems []entity.Problem
	IsDue    bool
}

// SelectDue picks and orders today's items for one difficulty mode.
//
// Never-studied items come first (easier ones leading), then studied items
// by ascending due date. Each due item is preceded by its prerequisite
// chain as a warm-up, grouped by parent question in first-appearance order.
// today is compared date-only.
func SelectDue(problems []entity.Problem, reviews map[string]entity.ReviewRecord, mode entity.DrillMode, today time.Time) DueList {
	day := Midnight(today)

	filtered := make([]entity.Problem, 0, len(problems))
	for _, p := range problems {
		if inBand(p.CorrectRate, mode) {
			filtered = append(filtered, p)
		}
	}

	due := make([]entity.Problem, 0, len(filtered))
	for _, p := range filtered {
		rec, ok := reviews[p.ID]
		if !ok || !rec.NextReviewDate.After(day) {
			due = append(due, p)
		}
	}

	sort.SliceStable(due, func(i, j int) bool {
		a, b := due[i], due[j]
		recA, okA := reviews[a.ID]
		recB, okB := reviews[b.ID]

		// Unseen material first, easiest leading.
		if !okA && okB {
			return true
		}
		if okA && !okB {
			return false
		}
		if !okA && !okB {
			return a.CorrectRate > b.CorrectRate
		}

		if !recA.NextReviewDate.Equal(recB.NextReviewDate) {
			return recA.NextReviewDate.Before(recB.NextReviewDate)
		}
		return a.CorrectRate > b.CorrectRate
	})

	if len(due) > 0 {
		return DueList{Problems: expandPrerequisites(due, problems), IsDue: true}
	}

	// Nothing scheduled: offer the whole band, weakest first.
	practice := make([]entity.Problem, len(filtered))
	copy(practice, filtered)
	sort.SliceStable(practice, func(i, j int) bool {
		return accuracyOf(reviews, practice[i].ID) < accuracyOf(reviews, practice[j].ID)
	})
	return DueList{Problems: expandPrerequisites(practice, problems), IsDue: false}
}

func inBand(rate int, mode entity.DrillMode) bool {
	if mode == entity.ModeHighLevel {
		return rate >= highLevelMinRate && rate < normalMinRate
	}
	return rate >= normalMinRate
}

func accuracyOf(reviews map[string]entity.ReviewRecord, id string) float64 {
	if rec, ok := reviews[id]; ok {
		return rec.Accuracy()
	}
	return 0.5
}

// expandPrerequisites walks the ordered list grouped by parent question and
// emits each item's prerequisites (when the catalog still has them) before
// the item itself, each id at most once overall.
func expandPrerequisites(ordered, catalog []entity.Problem) []entity.Problem {
	byID := make(map[string]entity.Problem, len(catalog))
	for _, p := range catalog {
		byID[p.ID] = p
	}

	groupOrder := make([]string, 0, len(ordered))
	groups := make(map[string][]entity.Problem)
	for _, p := range ordered {
		key := p.GroupKey()
		if _, ok := groups[key]; !ok {
			groupOrder = append(groupOrder, key)
		}
		groups[key] = append(groups[key], p)
	}

	emitted := make(map[string]bool, len(ordered))
	result := make([]entity.Problem, 0, len(ordered))
	for _, key := range groupOrder {
		for _, p := range groups[key] {
			for _, prereqID := range p.Prerequisites {
				prereq, exists := byID[prereqID]
				if !exists || emitted[prereqID] {
					// Unknown ids are edited-out catalog entries; skip.
					continue
				}
				emitted[prereqID] = true
				result = append(result, prereq)
			}
			if !emitted[p.ID] {
				emitted[p.ID] = true
				result = append(result, p)
			}
		}
	}
	return result
}
