package quiz

import "errors"

var (
	ErrEmptyPool    = errors.New("track pool is empty")
	ErrInvalidState = errors.New("invalid session state transition")
	ErrInvalidGuess = errors.New("invalid guess")
	ErrNotFound     = errors.New("session not found")
)
