package model

import "time"

// GameID uniquely identifies a game session
type GameID string

// Game is one player's word-search session: a fixed board plus the words
// found and score accumulated so far
type Game struct {
	ID       GameID
	PlayerID PlayerID
	Variant  Variant
	Board    *Board

	// FoundWords holds normalized (uppercase) accepted words. It only grows
	// within a session.
	FoundWords map[string]bool
	Score      int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasFound returns true if the normalized word was already accepted
func (g *Game) HasFound(word string) bool {
	return g.FoundWords[word]
}

// Words returns the accepted words (unordered)
func (g *Game) Words() []string {
	words := make([]string, 0, len(g.FoundWords))
	for w := range g.FoundWords {
		words = append(words, w)
	}
	return words
}

// RejectReason classifies why a submission was not accepted
type RejectReason string

const (
	RejectTooShort        RejectReason = "too_short"
	RejectAlreadyFound    RejectReason = "already_found"
	RejectNotInDictionary RejectReason = "not_in_dictionary"
	RejectNotOnBoard      RejectReason = "not_on_board"
)

// SubmitResult is the typed outcome of one word submission. Rejections are
// normal-path results, not errors: invalid words are an expected part of play.
type SubmitResult struct {
	Word     string
	Accepted bool
	Reason   RejectReason // set only when rejected
	Points   int          // points awarded for this word
	Score    int          // session total after this submission
}
