package game

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/dkahl/bogglegame-go/internal/dependencies/clock"
	"github.com/dkahl/bogglegame-go/internal/model"
	"github.com/dkahl/bogglegame-go/internal/services/board"
	"github.com/dkahl/bogglegame-go/internal/services/dictionary"
	"github.com/dkahl/bogglegame-go/internal/services/scoring"
	"github.com/dkahl/bogglegame-go/internal/services/search"
	"github.com/dkahl/bogglegame-go/internal/storage"
)

// Controller manages game sessions: board creation and word submission
type Controller struct {
	storage           storage.Storage
	boardService      board.ServiceInterface
	searchService     search.ServiceInterface
	scoringService    scoring.ServiceInterface
	dictionaryService *dictionary.Service
	clock             clock.Clock
	logger            *slog.Logger
}

// NewController creates a new GameController
func NewController(
	storage storage.Storage,
	boardService board.ServiceInterface,
	searchService search.ServiceInterface,
	scoringService scoring.ServiceInterface,
	dictionaryService *dictionary.Service,
	clock clock.Clock,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage:           storage,
		boardService:      boardService,
		searchService:     searchService,
		scoringService:    scoringService,
		dictionaryService: dictionaryService,
		clock:             clock,
		logger:            logger,
	}
}

// CreateGame starts a new session for the player on a freshly generated
// board. The variant and its scoring rules are validated here; an invalid
// configuration is rejected outright, there is no recovery path.
func (c *Controller) CreateGame(ctx context.Context, playerID model.PlayerID, variant model.Variant) (*model.Game, error) {
	cfg, err := variant.Config()
	if err != nil {
		return nil, err
	}
	if err := cfg.Rules.Validate(); err != nil {
		return nil, err
	}

	now := c.clock.Now()
	game := &model.Game{
		ID:         model.GameID(uuid.NewString()),
		PlayerID:   playerID,
		Variant:    variant,
		Board:      c.boardService.Generate(cfg),
		FoundWords: make(map[string]bool),
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := c.storage.SaveGame(ctx, game); err != nil {
		c.logger.Error("failed to save game",
			slog.String("game_id", string(game.ID)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	c.logger.Info("game created",
		slog.String("game_id", string(game.ID)),
		slog.String("player_id", string(playerID)),
		slog.String("variant", string(variant)),
		slog.Int("grid_size", cfg.GridSize),
	)

	return game, nil
}

// GetGame retrieves a session, enforcing that the caller owns it
func (c *Controller) GetGame(ctx context.Context, gameID model.GameID, playerID model.PlayerID) (*model.Game, error) {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if game.PlayerID != playerID {
		return nil, model.ErrNotGameOwner
	}
	return game, nil
}

// DeleteGame forfeits and removes a session
func (c *Controller) DeleteGame(ctx context.Context, gameID model.GameID, playerID model.PlayerID) error {
	if _, err := c.GetGame(ctx, gameID, playerID); err != nil {
		return err
	}
	return c.storage.DeleteGame(ctx, gameID)
}

// SubmitWord processes one word submission. The checks run in a fixed
// order and short-circuit: length, duplicate, dictionary, then board path.
// The first failing check determines the rejection reason.
func (c *Controller) SubmitWord(ctx context.Context, gameID model.GameID, playerID model.PlayerID, rawWord string) (*model.SubmitResult, error) {
	if !c.dictionaryService.IsLoaded() {
		return nil, model.ErrDictionaryNotLoaded
	}

	game, err := c.GetGame(ctx, gameID, playerID)
	if err != nil {
		return nil, err
	}

	word := strings.ToUpper(strings.TrimSpace(rawWord))

	if reason, ok := c.rejectWord(game, word); !ok {
		return &model.SubmitResult{
			Word:   word,
			Reason: reason,
			Score:  game.Score,
		}, nil
	}

	cfg, err := game.Variant.Config()
	if err != nil {
		return nil, err
	}

	points := c.scoringService.Points(len(word), cfg.Rules)
	game.FoundWords[word] = true
	game.Score += points
	game.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveGame(ctx, game); err != nil {
		return nil, err
	}

	c.logger.Info("word accepted",
		slog.String("game_id", string(game.ID)),
		slog.String("word", word),
		slog.Int("points", points),
		slog.Int("score", game.Score),
	)

	return &model.SubmitResult{
		Word:     word,
		Accepted: true,
		Points:   points,
		Score:    game.Score,
	}, nil
}

// rejectWord applies the ordered submission checks. It returns ok=false and
// the reason for the first check that fails.
func (c *Controller) rejectWord(game *model.Game, word string) (model.RejectReason, bool) {
	switch {
	case len(word) < dictionary.MinWordLength:
		return model.RejectTooShort, false
	case game.HasFound(word):
		return model.RejectAlreadyFound, false
	case !c.dictionaryService.IsValidWord(word):
		return model.RejectNotInDictionary, false
	case !c.searchService.Exists(game.Board, word):
		return model.RejectNotOnBoard, false
	}
	return "", true
}
