package search

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/dkahl/bogglegame-go/internal/model"
)

type ServiceSuite struct {
	suite.Suite
	service *Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.service = New()
}

// boardFromRows builds a board of letter tiles from equal-length strings.
// '#' becomes a blank tile.
func (s *ServiceSuite) boardFromRows(rows ...string) *model.Board {
	board := model.NewBoard(len(rows))
	for r, row := range rows {
		s.Require().Len(row, len(rows))
		for c, letter := range row {
			pos := model.Position{Row: r, Col: c}
			if letter == '#' {
				board.Set(pos, model.NewBlankTile())
			} else {
				board.Set(pos, model.NewLetterTile(letter))
			}
		}
	}
	return board
}

func (s *ServiceSuite) TestWordsShorterThanThreeNeverExist() {
	board := s.boardFromRows(
		"CATS",
		"ATSC",
		"TSCA",
		"SCAT",
	)

	s.False(s.service.Exists(board, ""))
	s.False(s.service.Exists(board, "C"))
	s.False(s.service.Exists(board, "CA"))
}

func (s *ServiceSuite) TestStraightLineWord() {
	board := s.boardFromRows(
		"CATX",
		"XXXX",
		"XXXX",
		"XXXX",
	)

	s.True(s.service.Exists(board, "CAT"))
}

func (s *ServiceSuite) TestDiagonalAdjacencyCounts() {
	board := s.boardFromRows(
		"CXXX",
		"XAXX",
		"XXTX",
		"XXXX",
	)

	s.True(s.service.Exists(board, "CAT"))
}

func (s *ServiceSuite) TestWindingPath() {
	board := s.boardFromRows(
		"QXXX",
		"XUXX",
		"XEXX",
		"TSXX",
	)

	s.True(s.service.Exists(board, "QUEST"))
}

func (s *ServiceSuite) TestMissingLetterFails() {
	board := s.boardFromRows(
		"CATX",
		"XXXX",
		"XXXX",
		"XXXX",
	)

	s.False(s.service.Exists(board, "CATS"))
}

func (s *ServiceSuite) TestNonAdjacentLettersFail() {
	board := s.boardFromRows(
		"CXXT",
		"XAXX",
		"XXXX",
		"XXXX",
	)

	// T exists but is not adjacent to A
	s.False(s.service.Exists(board, "CAT"))
}

func (s *ServiceSuite) TestCellReuseIsIllegal() {
	// "TAT" needs two T cells; the board has only one, so the only
	// letter-matching route revisits it
	board := s.boardFromRows(
		"TAXX",
		"XXXX",
		"XXXX",
		"XXXX",
	)

	s.False(s.service.Exists(board, "TAT"))
}

func (s *ServiceSuite) TestRepeatedLetterOnDistinctCells() {
	board := s.boardFromRows(
		"TATX",
		"XXXX",
		"XXXX",
		"XXXX",
	)

	s.True(s.service.Exists(board, "TAT"))
}

func (s *ServiceSuite) TestBacktrackingDoesNotLeakVisitedState() {
	// The first E branch from T is a dead end; the search must unwind it
	// and still find the path through the other E
	board := s.boardFromRows(
		"ETEX",
		"XXSX",
		"XXXX",
		"XXXX",
	)

	s.True(s.service.Exists(board, "TES"))
}

func (s *ServiceSuite) TestBlankTileIsNeverAnEmptyMatch() {
	// A blank is a hole, not a free step: the route C -> blank -> A -> T
	// must not spell CAT by skipping over the hole
	board := s.boardFromRows(
		"C#AT",
		"####",
		"XXXX",
		"XXXX",
	)

	s.False(s.service.Exists(board, "CAT"))
}

func (s *ServiceSuite) TestDigraphTileConsumesTwoCharacters() {
	board := model.NewBoard(4)
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			board.Set(model.Position{Row: r, Col: c}, model.NewLetterTile('X'))
		}
	}
	board.Set(model.Position{Row: 0, Col: 0}, model.NewDigraphTile("QU"))
	board.Set(model.Position{Row: 0, Col: 1}, model.NewLetterTile('E'))
	board.Set(model.Position{Row: 1, Col: 1}, model.NewLetterTile('S'))
	board.Set(model.Position{Row: 2, Col: 1}, model.NewLetterTile('T'))

	s.True(s.service.Exists(board, "QUEST"))
}

func (s *ServiceSuite) TestDigraphLettersAcrossTwoOrdinaryTiles() {
	// No digraph tile: Q and U are separate cells and must both be stepped
	board := s.boardFromRows(
		"QUES",
		"XXTX",
		"XXXX",
		"XXXX",
	)

	s.True(s.service.Exists(board, "QUEST"))
}

func (s *ServiceSuite) TestDigraphTileDoesNotMatchSingleLetter() {
	board := model.NewBoard(4)
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			board.Set(model.Position{Row: r, Col: c}, model.NewLetterTile('X'))
		}
	}
	// Only way to spell "QAT" would be Q alone on the digraph tile
	board.Set(model.Position{Row: 0, Col: 0}, model.NewDigraphTile("QU"))
	board.Set(model.Position{Row: 0, Col: 1}, model.NewLetterTile('A'))
	board.Set(model.Position{Row: 0, Col: 2}, model.NewLetterTile('T'))

	s.False(s.service.Exists(board, "QAT"))
}

func (s *ServiceSuite) TestWordEndingOnDigraph() {
	board := model.NewBoard(4)
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			board.Set(model.Position{Row: r, Col: c}, model.NewLetterTile('X'))
		}
	}
	board.Set(model.Position{Row: 0, Col: 0}, model.NewLetterTile('A'))
	board.Set(model.Position{Row: 0, Col: 1}, model.NewDigraphTile("QU"))

	s.True(s.service.Exists(board, "AQU"))
}
