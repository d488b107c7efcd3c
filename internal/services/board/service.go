package board

import (
	"github.com/dkahl/bogglegame-go/internal/dependencies/random"
	"github.com/dkahl/bogglegame-go/internal/model"
)

// letterMultiset is the weighted single-letter distribution every ordinary
// cell is drawn from. Letter counts follow the standard English dice
// frequencies, so "E" is far more common than "Q" or "Z".
const letterMultiset = "AAAAAAAAABBCCDDDD" +
	"EEEEEEEEEEEEFFGGGHHH" +
	"IIIIIIIIIJKLLLLMMM" +
	"NNNNNNOOOOOOOOPPQ" +
	"RRRRRRSSSSSTTTTTT" +
	"UUUUVVWWXYYZ"

// Service generates boards from a variant's tile configuration
type Service struct {
	random random.Random
}

// New creates a new BoardService
func New(random random.Random) *Service {
	return &Service{
		random: random,
	}
}

// Generate fills a fresh grid for the variant: the configured number of
// digraph and blank tiles land on distinct random cells, every remaining
// cell is sampled independently from the weighted letter multiset.
// Generation never consults the dictionary.
func (s *Service) Generate(cfg model.VariantConfig) *model.Board {
	board := model.NewBoard(cfg.GridSize)

	for _, pos := range s.pickDistinctPositions(cfg.GridSize, cfg.DigraphCount+cfg.BlankCount) {
		if cfg.DigraphCount > 0 {
			board.Set(pos, model.NewDigraphTile(cfg.DigraphText))
			cfg.DigraphCount--
			continue
		}
		board.Set(pos, model.NewBlankTile())
	}

	for r := 0; r < board.Size; r++ {
		for c := 0; c < board.Size; c++ {
			pos := model.Position{Row: r, Col: c}
			if board.Get(pos).Text == "" && !board.Get(pos).IsBlank() {
				board.Set(pos, model.NewLetterTile(s.sampleLetter()))
			}
		}
	}

	return board
}

// sampleLetter draws one letter from the weighted multiset
func (s *Service) sampleLetter() rune {
	return rune(letterMultiset[s.random.Intn(len(letterMultiset))])
}

// pickDistinctPositions chooses count distinct cells on a size x size grid.
// Special tiles must not collide, so positions are drawn without replacement
// from the remaining free cells.
func (s *Service) pickDistinctPositions(size, count int) []model.Position {
	free := make([]model.Position, 0, size*size)
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			free = append(free, model.Position{Row: r, Col: c})
		}
	}

	positions := make([]model.Position, 0, count)
	for i := 0; i < count && len(free) > 0; i++ {
		j := s.random.Intn(len(free))
		positions = append(positions, free[j])
		free[j] = free[len(free)-1]
		free = free[:len(free)-1]
	}
	return positions
}

// Interface for dependency injection
type ServiceInterface interface {
	Generate(cfg model.VariantConfig) *model.Board
}

var _ ServiceInterface = (*Service)(nil)
