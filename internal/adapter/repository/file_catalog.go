package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/samber/lo"

	"github.com/petalsoft/sakuradrill/internal/entity"
	"github.com/petalsoft/sakuradrill/internal/repository"
)

type problemsDoc struct {
	Problems []entity.Problem `json:"problems"`
	Tags     []entity.Tag     `json:"tags"`
}

type flashcardsDoc struct {
	Cards      []entity.Flashcard         `json:"cards"`
	Categories []entity.FlashcardCategory `json:"categories"`
}

// FileCatalog serves the immutable item content from two JSON documents,
// loaded once on first use.
type FileCatalog struct {
	problemsPath   string
	flashcardsPath string

	once sync.Once
	err  error

	problems   []entity.Problem
	tags       []entity.Tag
	cards      []entity.Flashcard
	categories []entity.FlashcardCategory
	byProblem  map[string]entity.Problem
	byCard     map[string]entity.Flashcard
}

var _ repository.Catalog = (*FileCatalog)(nil)

// NewFileCatalog points the catalog at its two content files; nothing is
// read until the first query.
func NewFileCatalog(problemsPath, flashcardsPath string) *FileCatalog {
	return &FileCatalog{problemsPath: problemsPath, flashcardsPath: flashcardsPath}
}

func (c *FileCatalog) load() error {
	c.once.Do(func() {
		var pdoc problemsDoc
		if err := readJSON(c.problemsPath, &pdoc); err != nil {
			c.err = err
			return
		}
		var fdoc flashcardsDoc
		if err := readJSON(c.flashcardsPath, &fdoc); err != nil {
			c.err = err
			return
		}

		c.problems = pdoc.Problems
		c.tags = pdoc.Tags
		c.cards = fdoc.Cards
		c.categories = fdoc.Categories
		c.byProblem = lo.KeyBy(pdoc.Problems, func(p entity.Problem) string { return p.ID })
		c.byCard = lo.KeyBy(fdoc.Cards, func(f entity.Flashcard) string { return f.ID })
	})
	return c.err
}

func readJSON(path string, dst any) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read catalog %s: %w", path, err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("parse catalog %s: %w", path, err)
	}
	return nil
}

func (c *FileCatalog) Problems(ctx context.Context) ([]entity.Problem, error) {
	if err := c.load(); err != nil {
		return nil, err
	}
	return c.problems, nil
}

func (c *FileCatalog) ProblemByID(ctx context.Context, id string) (*entity.Problem, error) {
	if err := c.load(); err != nil {
		return nil, err
	}
	if p, ok := c.byProblem[id]; ok {
		return &p, nil
	}
	return nil, entity.ErrProblemNotFound
}

func (c *FileCatalog) Tags(ctx context.Context) ([]entity.Tag, error) {
	if err := c.load(); err != nil {
		return nil, err
	}
	return c.tags, nil
}

func (c *FileCatalog) Flashcards(ctx context.Context) ([]entity.Flashcard, error) {
	if err := c.load(); err != nil {
		return nil, err
	}
	return c.cards, nil
}

func (c *FileCatalog) FlashcardByID(ctx context.Context, id string) (*entity.Flashcard, error) {
	if err := c.load(); err != nil {
		return nil, err
	}
	if f, ok := c.byCard[id]; ok {
		return &f, nil
	}
	return nil, entity.ErrFlashcardNotFound
}

// Categories lists the flashcard groupings (not part of the Catalog
// interface; the problems command uses it for display).
func (c *FileCatalog) Categories(ctx context.Context) ([]entity.FlashcardCategory, error) {
	if err := c.load(); err != nil {
		return nil, err
	}
	return c.categories, nil
}
