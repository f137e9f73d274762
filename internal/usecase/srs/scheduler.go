// Package srs holds the pure scheduling algorithms: the simplified SM-2
// transition, due-item selection, group batching and Leitner sampling.
// Everything here is deterministic given its inputs; randomness, where
// needed, is an injected *rand.Rand.
package srs

import (
	"math"
	"time"

	"github.com/petalsoft/sakuradrill/internal/entity"
)

// hesitantDamp shrinks the earned interval after a shaky pass; a hesitant
// answer should not get full SM-2 spacing credit.
const hesitantDamp = 0.7

// NextReview applies one answer to a review record and returns the new
// record. quality must be one of the entity.Quality* levels; now supplies
// the wall clock so the transition itself stays pure.
func NextReview(rec entity.ReviewRecord, quality int, now time.Time) entity.ReviewRecord {
	out := rec.Clone()

	if quality >= entity.QualityHesitant {
		switch rec.Repetitions {
		case 0:
			out.Interval = 1
		case 1:
			out.Interval = 3
		default:
			out.Interval = int(math.Round(float64(rec.Interval) * rec.EaseFactor))
		}
		out.Repetitions = rec.Repetitions + 1
	} else {
		out.Repetitions = 0
		out.Interval = 1
	}

	q := float64(quality)
	ease := rec.EaseFactor + (0.1 - (5-q)*(0.08+(5-q)*0.02))
	if ease < entity.MinEaseFactor {
		ease = entity.MinEaseFactor
	}
	out.EaseFactor = math.Round(ease*100) / 100

	if quality == entity.QualityHesitant && out.Interval > 1 {
		damped := int(math.Round(float64(out.Interval) * hesitantDamp))
		if damped < 1 {
			damped = 1
		}
		out.Interval = damped
	}

	out.NextReviewDate = Midnight(now.AddDate(0, 0, out.Interval))
	return out
}

// Midnight truncates t to its local calendar date.
func Midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
