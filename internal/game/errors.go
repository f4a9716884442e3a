package game

import "errors"

var (
	ErrNotStarted          = errors.New("game: session not started")
	ErrAlreadyStarted      = errors.New("game: session already started")
	ErrUnknownMode         = errors.New("game: unknown mode")
	ErrInsufficientPoints  = errors.New("game: not enough points")
	ErrPrestigeUnavailable = errors.New("game: prestige not available")
	ErrNoUpgradeOffer      = errors.New("game: no upgrade on offer")
)
