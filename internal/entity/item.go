package entity

import (
	"regexp"
	"strings"
)

// DrillMode selects which difficulty band of the catalog a drill draws from.
type DrillMode string

const (
	ModeNormal    DrillMode = "normal"
	ModeHighLevel DrillMode = "highlevel"
)

// ParseDrillMode validates a user-supplied mode string.
func ParseDrillMode(s string) (DrillMode, error) {
	switch DrillMode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeNormal:
		return ModeNormal, nil
	case ModeHighLevel:
		return ModeHighLevel, nil
	}
	return "", ErrInvalidDrillMode
}

// Problem is an immutable catalog entry for a practice item.
type Problem struct {
	ID            string   `json:"id"`
	Source        string   `json:"source"`
	Question      string   `json:"question,omitempty"`
	Answer        string   `json:"answer,omitempty"`
	Tags          []string `json:"tags,omitempty"`
	CorrectRate   int      `json:"correctRate"`
	Prerequisites []string `json:"prerequisites,omitempty"`
}

// subIndexRe strips a trailing parenthesised sub-question index,
// half- or full-width: "第405回 大問4(1)" → "第405回 大問4".
var subIndexRe = regexp.MustCompile(`[\(（][0-9０-９]+[\)）]$`)

// GroupKey returns the parent-question identifier shared by sub-items of a
// multi-part problem.
func (p Problem) GroupKey() string {
	return strings.TrimSpace(subIndexRe.ReplaceAllString(p.Source, ""))
}

// Tag is a category label for catalog items.
type Tag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Flashcard is an immutable catalog entry for the Leitner rotation.
type Flashcard struct {
	ID       string `json:"id"`
	Category string `json:"category"`
	Front    string `json:"front"`
	Back     string `json:"back"`
}

// FlashcardCategory describes a catalog flashcard grouping.
type FlashcardCategory struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
