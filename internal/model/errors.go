package model

import "errors"

// Common errors used across the application
var (
	// Directory errors
	ErrEmptyDirectory = errors.New("directory yielded no usable people")

	// Game errors
	ErrNoActiveGame  = errors.New("no active game")
	ErrGameComplete  = errors.New("game is already complete")
	ErrNoCurrentCard = errors.New("no card is being shown")
	ErrAnswerLocked  = errors.New("answer already submitted for this card")

	// Storage errors
	ErrSessionNotFound = errors.New("no saved session")
	ErrMasteryNotFound = errors.New("no mastery data")
)
