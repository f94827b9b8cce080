package game

import "errors"

var (
	// ErrInvalidConfig marks a config rejected at construction time.
	ErrInvalidConfig = errors.New("invalid config")
	// ErrInvalidSetup marks an illegal initial-placement set.
	ErrInvalidSetup = errors.New("invalid setup")
	// ErrInvalidActions marks an agent-submitted action set that is
	// incomplete, targets an unowned territory, an illegal destination,
	// or over-commits stones. Resolution rejects the whole turn before
	// consuming any randomness.
	ErrInvalidActions = errors.New("invalid actions")
)
