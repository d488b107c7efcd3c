package response

import (
	"sort"
	"time"

	"github.com/dkahl/bogglegame-go/internal/model"
	"github.com/dkahl/bogglegame-go/internal/services/auth"
)

// Player represents a player in API responses
type Player struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	IsGuest     bool   `json:"is_guest"`
}

// PlayerFromModel converts a model.Player to a response Player
func PlayerFromModel(p *model.Player) Player {
	return Player{
		ID:          string(p.ID),
		DisplayName: p.DisplayName,
		IsGuest:     p.IsGuest,
	}
}

// AuthResponse is the response for authentication endpoints
type AuthResponse struct {
	Player       Player `json:"player"`
	SessionToken string `json:"session_token"`
}

// AuthResponseFromSession creates an AuthResponse from a session
func AuthResponseFromSession(s *auth.Session) AuthResponse {
	return AuthResponse{
		Player:       PlayerFromModel(&s.Player),
		SessionToken: s.Token,
	}
}

// Board is the rendered grid: per-cell display text, row-major
type Board struct {
	Size  int        `json:"size"`
	Cells [][]string `json:"cells"`
}

// BoardFromModel converts a model.Board to its rendered form
func BoardFromModel(b *model.Board) Board {
	return Board{
		Size:  b.Size,
		Cells: b.Display(),
	}
}

// GameState represents a game session in API responses
type GameState struct {
	ID         string    `json:"id"`
	Variant    string    `json:"variant"`
	Board      Board     `json:"board"`
	FoundWords []string  `json:"found_words"`
	Score      int       `json:"score"`
	CreatedAt  time.Time `json:"created_at"`
}

// GameStateFromModel converts a model.Game to a GameState
func GameStateFromModel(g *model.Game) GameState {
	words := g.Words()
	sort.Strings(words)
	return GameState{
		ID:         string(g.ID),
		Variant:    string(g.Variant),
		Board:      BoardFromModel(g.Board),
		FoundWords: words,
		Score:      g.Score,
		CreatedAt:  g.CreatedAt,
	}
}

// SubmitOutcome represents the result of a word submission
type SubmitOutcome struct {
	Word     string `json:"word"`
	Accepted bool   `json:"accepted"`
	Reason   string `json:"reason,omitempty"`
	Points   int    `json:"points"`
	Score    int    `json:"score"`
}

// SubmitOutcomeFromModel converts a model.SubmitResult
func SubmitOutcomeFromModel(r *model.SubmitResult) SubmitOutcome {
	return SubmitOutcome{
		Word:     r.Word,
		Accepted: r.Accepted,
		Reason:   string(r.Reason),
		Points:   r.Points,
		Score:    r.Score,
	}
}
