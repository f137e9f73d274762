package repository

import (
	"context"

	"github.com/petalsoft/sakuradrill/internal/entity"
)

// Catalog supplies the immutable item content. Implementations load once at
// session start; items never mutate.
type Catalog interface {
	Problems(ctx context.Context) ([]entity.Problem, error)
	ProblemByID(ctx context.Context, id string) (*entity.Problem, error)
	Tags(ctx context.Context) ([]entity.Tag, error)
	Flashcards(ctx context.Context) ([]entity.Flashcard, error)
	FlashcardByID(ctx context.Context, id string) (*entity.Flashcard, error)
}
