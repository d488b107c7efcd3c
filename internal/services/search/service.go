package search

import (
	"strings"

	"github.com/dkahl/bogglegame-go/internal/model"
)

// neighborOffsets covers all 8 directions, including diagonals
var neighborOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Service answers whether a word can be traced on a board as a path of
// adjacent, non-repeating tiles. It performs pure grid-geometry
// verification; length and dictionary policy belong to the caller.
type Service struct{}

// New creates a new SearchService
func New() *Service {
	return &Service{}
}

// Exists reports whether word can be traced on the board. The word is
// expected pre-normalized to uppercase with whitespace trimmed. Words
// shorter than 3 characters do not exist on any board.
func (s *Service) Exists(board *model.Board, word string) bool {
	if len(word) < 3 {
		return false
	}

	visited := make([][]bool, board.Size)
	for i := range visited {
		visited[i] = make([]bool, board.Size)
	}

	for r := 0; r < board.Size; r++ {
		for c := 0; c < board.Size; c++ {
			if s.match(board, visited, model.Position{Row: r, Col: c}, word) {
				return true
			}
		}
	}
	return false
}

// match attempts to consume suffix starting at pos. Visited state is
// attempt-local: every cell marked here is unmarked before returning, so
// sibling branches and other starting cells see a clean grid.
func (s *Service) match(board *model.Board, visited [][]bool, pos model.Position, suffix string) bool {
	if suffix == "" {
		return true
	}
	if !board.IsValidPosition(pos) || visited[pos.Row][pos.Col] {
		return false
	}

	tile := board.Get(pos)
	consumed := consumes(tile, suffix)
	if consumed == 0 {
		return false
	}

	rest := suffix[consumed:]
	if rest == "" {
		return true
	}

	visited[pos.Row][pos.Col] = true
	for _, off := range neighborOffsets {
		next := model.Position{Row: pos.Row + off[0], Col: pos.Col + off[1]}
		if s.match(board, visited, next, rest) {
			visited[pos.Row][pos.Col] = false
			return true
		}
	}
	visited[pos.Row][pos.Col] = false
	return false
}

// consumes returns how many leading characters of suffix the tile matches:
// a digraph consumes its full text when it prefixes the suffix, a letter
// consumes one matching character, and a blank consumes nothing. Digraph
// consumption applies only when the physical tile is a digraph; it is never
// a retroactive grouping of two ordinary tiles.
func consumes(tile model.Tile, suffix string) int {
	switch tile.Kind {
	case model.TileDigraph:
		if strings.HasPrefix(suffix, tile.Text) {
			return len(tile.Text)
		}
	case model.TileLetter:
		if suffix[:1] == tile.Text {
			return 1
		}
	}
	return 0
}

// Interface for dependency injection
type ServiceInterface interface {
	Exists(board *model.Board, word string) bool
}

var _ ServiceInterface = (*Service)(nil)
