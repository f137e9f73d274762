package entity

import "errors"

// Domain errors for drill scheduling and progress state.
var (
	ErrProblemNotFound   = errors.New("problem not found")
	ErrFlashcardNotFound = errors.New("flashcard not found")
	ErrInvalidQuality    = errors.New("quality must be 1, 3 or 5")
	ErrInvalidDrillMode  = errors.New("drill mode must be normal or highlevel")
	ErrRemoteDisabled    = errors.New("remote store is not configured")
	ErrInvalidImport     = errors.New("invalid import payload")
)
