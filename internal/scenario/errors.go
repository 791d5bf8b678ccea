package scenario

import "errors"

var (
	ErrUnknownScenario = errors.New("unknown scenario")
	ErrUnknownCategory = errors.New("unknown category")
	ErrInvalidInput    = errors.New("invalid input")
)
