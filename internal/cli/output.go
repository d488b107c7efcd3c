package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Player:
		o.printPlayer(v)
	case AuthResult:
		o.printAuthResult(v)
	case GameState:
		o.printGameState(v)
	case SubmitOutcome:
		o.printSubmitOutcome(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Player response type (matches API)
type Player struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	IsGuest     bool   `json:"is_guest"`
}

// AuthResult combines player and token
type AuthResult struct {
	Player       Player `json:"player"`
	SessionToken string `json:"session_token"`
}

// Board response type
type Board struct {
	Size  int        `json:"size"`
	Cells [][]string `json:"cells"`
}

// GameState response type
type GameState struct {
	ID         string   `json:"id"`
	Variant    string   `json:"variant"`
	Board      Board    `json:"board"`
	FoundWords []string `json:"found_words"`
	Score      int      `json:"score"`
}

// SubmitOutcome response type
type SubmitOutcome struct {
	Word     string `json:"word"`
	Accepted bool   `json:"accepted"`
	Reason   string `json:"reason,omitempty"`
	Points   int    `json:"points"`
	Score    int    `json:"score"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printPlayer(p Player) {
	guestStr := "no"
	if p.IsGuest {
		guestStr = "yes"
	}
	fmt.Printf("Player: %s (%s)\n", p.DisplayName, p.ID)
	fmt.Printf("Guest: %s\n", guestStr)
}

func (o *Output) printAuthResult(a AuthResult) {
	o.printPlayer(a.Player)
	fmt.Printf("Token: %s\n", a.SessionToken)
}

func (o *Output) printGameState(g GameState) {
	fmt.Printf("Game: %s\n", g.ID)
	fmt.Printf("Variant: %s\n", g.Variant)
	fmt.Printf("Score: %d\n", g.Score)
	o.printBoard(g.Board)
	if len(g.FoundWords) > 0 {
		fmt.Printf("Found words (%d): %s\n", len(g.FoundWords), strings.Join(g.FoundWords, ", "))
	}
}

func (o *Output) printBoard(b Board) {
	for _, row := range b.Cells {
		cells := make([]string, len(row))
		for i, cell := range row {
			// Pad single letters so digraph columns line up
			cells[i] = fmt.Sprintf("%-2s", cell)
		}
		fmt.Printf("  %s\n", strings.Join(cells, " "))
	}
}

func (o *Output) printSubmitOutcome(r SubmitOutcome) {
	if r.Accepted {
		fmt.Printf("Accepted: %s (+%d points, total %d)\n", r.Word, r.Points, r.Score)
		return
	}
	fmt.Printf("Rejected: %s (%s)\n", r.Word, strings.ReplaceAll(r.Reason, "_", " "))
	fmt.Printf("Score: %d\n", r.Score)
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
