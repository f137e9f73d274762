package usecase

import (
	"context"

	"github.com/petalsoft/sakuradrill/internal/entity"
)

type fakeCatalog struct {
	problems   []entity.Problem
	flashcards []entity.Flashcard
}

func (c *fakeCatalog) Problems(ctx context.Context) ([]entity.Problem, error) {
	return c.problems, nil
}

func (c *fakeCatalog) ProblemByID(ctx context.Context, id string) (*entity.Problem, error) {
	for i := range c.problems {
		if c.problems[i].ID == id {
			return &c.problems[i], nil
		}
	}
	return nil, entity.ErrProblemNotFound
}

func (c *fakeCatalog) Tags(ctx context.Context) ([]entity.Tag, error) {
	return nil, nil
}

func (c *fakeCatalog) Flashcards(ctx context.Context) ([]entity.Flashcard, error) {
	return c.flashcards, nil
}

func (c *fakeCatalog) FlashcardByID(ctx context.Context, id string) (*entity.Flashcard, error) {
	for i := range c.flashcards {
		if c.flashcards[i].ID == id {
			return &c.flashcards[i], nil
		}
	}
	return nil, entity.ErrFlashcardNotFound
}

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
