package model

import "errors"

// Common errors used across the application
var (
	// Player errors
	ErrPlayerNotFound = errors.New("player not found")

	// Game errors
	ErrGameNotFound = errors.New("game not found")
	ErrNotGameOwner = errors.New("game belongs to another player")

	// Configuration errors (fatal at game creation)
	ErrInvalidVariant      = errors.New("invalid game variant")
	ErrInvalidScoringRules = errors.New("invalid scoring rules")

	// Dictionary errors
	ErrDictionaryNotLoaded = errors.New("dictionary not loaded")
)
