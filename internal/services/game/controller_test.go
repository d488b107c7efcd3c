package game

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/dkahl/bogglegame-go/internal/dependencies/mocks"
	"github.com/dkahl/bogglegame-go/internal/model"
	"github.com/dkahl/bogglegame-go/internal/services/board"
	"github.com/dkahl/bogglegame-go/internal/services/dictionary"
	"github.com/dkahl/bogglegame-go/internal/services/scoring"
	"github.com/dkahl/bogglegame-go/internal/services/search"
	"github.com/dkahl/bogglegame-go/internal/storage/memory"
	"github.com/dkahl/bogglegame-go/internal/testutil"
)

type ControllerSuite struct {
	suite.Suite
	storage    *memory.Storage
	clock      *mocks.MockClock
	random     *mocks.MockRandom
	dictionary *dictionary.Service
	controller *Controller
	ctx        context.Context
}

func TestControllerSuite(t *testing.T) {
	suite.Run(t, new(ControllerSuite))
}

func (s *ControllerSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.random = mocks.NewMockRandom()
	s.dictionary = dictionary.New(s.storage)
	s.controller = NewController(
		s.storage,
		board.New(s.random),
		search.New(),
		scoring.New(),
		s.dictionary,
		s.clock,
		testutil.NopLogger(),
	)
	s.ctx = context.Background()

	s.Require().NoError(s.dictionary.LoadWords([]string{
		"cat", "cats", "dog", "tac",
	}))
}

// fixedGame creates a game for the player and pins its board to the given
// rows so word submissions are deterministic
func (s *ControllerSuite) fixedGame(playerID model.PlayerID, rows ...string) *model.Game {
	game, err := s.controller.CreateGame(s.ctx, playerID, model.VariantClassic)
	s.Require().NoError(err)

	fixed := model.NewBoard(len(rows))
	for r, row := range rows {
		for c, ch := range row {
			fixed.Set(model.Position{Row: r, Col: c}, model.NewLetterTile(ch))
		}
	}
	game.Board = fixed
	s.Require().NoError(s.storage.SaveGame(s.ctx, game))
	return game
}

func (s *ControllerSuite) submit(game *model.Game, word string) *model.SubmitResult {
	result, err := s.controller.SubmitWord(s.ctx, game.ID, game.PlayerID, word)
	s.Require().NoError(err)
	return result
}

func (s *ControllerSuite) TestCreateGame() {
	game, err := s.controller.CreateGame(s.ctx, "player-1", model.VariantClassic)
	s.Require().NoError(err)

	s.NotEmpty(game.ID)
	s.Equal(model.PlayerID("player-1"), game.PlayerID)
	s.Equal(model.VariantClassic, game.Variant)
	s.Equal(4, game.Board.Size)
	s.Empty(game.FoundWords)
	s.Equal(0, game.Score)
	s.Equal(s.clock.CurrentTime, game.CreatedAt)
	s.Equal(s.clock.CurrentTime, game.UpdatedAt)

	stored, err := s.storage.GetGame(s.ctx, game.ID)
	s.Require().NoError(err)
	s.Equal(game.ID, stored.ID)
}

func (s *ControllerSuite) TestCreateGameInvalidVariant() {
	_, err := s.controller.CreateGame(s.ctx, "player-1", model.Variant("giant"))
	s.ErrorIs(err, model.ErrInvalidVariant)
}

func (s *ControllerSuite) TestGetGameEnforcesOwnership() {
	game, err := s.controller.CreateGame(s.ctx, "player-1", model.VariantClassic)
	s.Require().NoError(err)

	_, err = s.controller.GetGame(s.ctx, game.ID, "player-2")
	s.ErrorIs(err, model.ErrNotGameOwner)

	got, err := s.controller.GetGame(s.ctx, game.ID, "player-1")
	s.Require().NoError(err)
	s.Equal(game.ID, got.ID)
}

func (s *ControllerSuite) TestGetGameNotFound() {
	_, err := s.controller.GetGame(s.ctx, "missing", "player-1")
	s.ErrorIs(err, model.ErrGameNotFound)
}

func (s *ControllerSuite) TestDeleteGame() {
	game, err := s.controller.CreateGame(s.ctx, "player-1", model.VariantClassic)
	s.Require().NoError(err)

	s.Require().NoError(s.controller.DeleteGame(s.ctx, game.ID, "player-1"))

	_, err = s.storage.GetGame(s.ctx, game.ID)
	s.ErrorIs(err, model.ErrGameNotFound)
}

func (s *ControllerSuite) TestDeleteGameByNonOwnerFails() {
	game, err := s.controller.CreateGame(s.ctx, "player-1", model.VariantClassic)
	s.Require().NoError(err)

	err = s.controller.DeleteGame(s.ctx, game.ID, "player-2")
	s.ErrorIs(err, model.ErrNotGameOwner)

	_, err = s.storage.GetGame(s.ctx, game.ID)
	s.NoError(err)
}

func (s *ControllerSuite) TestSubmitAcceptedWord() {
	game := s.fixedGame("player-1",
		"CATS",
		"XXXX",
		"XXXX",
		"XXXX",
	)

	result := s.submit(game, "cat")

	s.True(result.Accepted)
	s.Equal("CAT", result.Word)
	s.Equal(1, result.Points)
	s.Equal(1, result.Score)

	stored, err := s.storage.GetGame(s.ctx, game.ID)
	s.Require().NoError(err)
	s.True(stored.HasFound("CAT"))
	s.Equal(1, stored.Score)
}

func (s *ControllerSuite) TestSubmitNormalizesInput() {
	game := s.fixedGame("player-1",
		"CATS",
		"XXXX",
		"XXXX",
		"XXXX",
	)

	result := s.submit(game, "  cAt \n")
	s.True(result.Accepted)
	s.Equal("CAT", result.Word)
}

func (s *ControllerSuite) TestSubmitTooShort() {
	game := s.fixedGame("player-1",
		"CATS",
		"XXXX",
		"XXXX",
		"XXXX",
	)

	result := s.submit(game, "ca")
	s.False(result.Accepted)
	s.Equal(model.RejectTooShort, result.Reason)
	s.Equal(0, result.Score)
}

func (s *ControllerSuite) TestSubmitDuplicateLeavesScoreUnchanged() {
	game := s.fixedGame("player-1",
		"CATS",
		"XXXX",
		"XXXX",
		"XXXX",
	)

	first := s.submit(game, "cat")
	s.True(first.Accepted)

	second := s.submit(game, "CAT")
	s.False(second.Accepted)
	s.Equal(model.RejectAlreadyFound, second.Reason)
	s.Equal(1, second.Score)
}

func (s *ControllerSuite) TestSubmitNotInDictionary() {
	game := s.fixedGame("player-1",
		"CATS",
		"XXXX",
		"XXXX",
		"XXXX",
	)

	result := s.submit(game, "cts")
	s.False(result.Accepted)
	s.Equal(model.RejectNotInDictionary, result.Reason)
}

func (s *ControllerSuite) TestSubmitNotOnBoard() {
	game := s.fixedGame("player-1",
		"CATS",
		"XXXX",
		"XXXX",
		"XXXX",
	)

	// Valid word, no path on this board
	result := s.submit(game, "dog")
	s.False(result.Accepted)
	s.Equal(model.RejectNotOnBoard, result.Reason)
}

func (s *ControllerSuite) TestDictionaryCheckPrecedesBoardCheck() {
	game := s.fixedGame("player-1",
		"CATS",
		"XXXX",
		"XXXX",
		"XXXX",
	)

	// "zzz" fails both checks; the dictionary runs first
	result := s.submit(game, "zzz")
	s.Equal(model.RejectNotInDictionary, result.Reason)
}

func (s *ControllerSuite) TestScoreAccumulatesAcrossSubmissions() {
	game := s.fixedGame("player-1",
		"CATS",
		"XXXX",
		"XXXX",
		"XXXX",
	)

	s.Equal(1, s.submit(game, "cat").Score)
	s.Equal(2, s.submit(game, "cats").Score)
	s.Equal(3, s.submit(game, "tac").Score)

	stored, err := s.storage.GetGame(s.ctx, game.ID)
	s.Require().NoError(err)
	s.Equal(3, stored.Score)
	s.ElementsMatch([]string{"CAT", "CATS", "TAC"}, stored.Words())
}

func (s *ControllerSuite) TestAcceptedSubmissionUpdatesTimestamp() {
	game := s.fixedGame("player-1",
		"CATS",
		"XXXX",
		"XXXX",
		"XXXX",
	)
	created := game.UpdatedAt

	s.clock.Advance(5 * time.Minute)
	s.submit(game, "cat")

	stored, err := s.storage.GetGame(s.ctx, game.ID)
	s.Require().NoError(err)
	s.Equal(created.Add(5*time.Minute), stored.UpdatedAt)
}

func (s *ControllerSuite) TestSubmitWithoutDictionaryFails() {
	game, err := s.controller.CreateGame(s.ctx, "player-1", model.VariantClassic)
	s.Require().NoError(err)

	bare := NewController(
		s.storage,
		board.New(s.random),
		search.New(),
		scoring.New(),
		dictionary.New(s.storage),
		s.clock,
		testutil.NopLogger(),
	)

	_, err = bare.SubmitWord(s.ctx, game.ID, "player-1", "cat")
	s.ErrorIs(err, model.ErrDictionaryNotLoaded)
}

func (s *ControllerSuite) TestSubmitToAnotherPlayersGameFails() {
	game := s.fixedGame("player-1",
		"CATS",
		"XXXX",
		"XXXX",
		"XXXX",
	)

	_, err := s.controller.SubmitWord(s.ctx, game.ID, "player-2", "cat")
	s.ErrorIs(err, model.ErrNotGameOwner)
}
