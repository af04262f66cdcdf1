package domain

import (
	"errors"
	"fmt"
)

// Error kinds shared by both authorities. Callers match them with errors.Is.
var (
	ErrNotFound          = errors.New("not found")
	ErrExhausted         = errors.New("all numbers drawn")
	ErrRemoteUnavailable = errors.New("validation authority unavailable")
	ErrInvalidMark       = errors.New("invalid mark")
)

var (
	ErrGameNotFound    = fmt.Errorf("game %w", ErrNotFound)
	ErrPlayerNotFound  = fmt.Errorf("player %w", ErrNotFound)
	ErrPlayerNotInGame = fmt.Errorf("player not in game: %w", ErrNotFound)

	ErrNotDrawn  = fmt.Errorf("%w: number not drawn", ErrInvalidMark)
	ErrNotOnCard = fmt.Errorf("%w: number not on card", ErrInvalidMark)

	ErrOutOfRange    = errors.New("number out of range")
	ErrAlreadyDrawn  = errors.New("number already drawn")
	ErrDuplicateGame = errors.New("game id already exists")
)
