package world

import "errors"

// Sentinel errors forming the entity contract. The map loader translates
// these into its own format error when they arise from user-supplied data.
var (
	ErrTooHigh      = errors.New("too high")
	ErrTooLow       = errors.New("too low")
	ErrInvalidBlock = errors.New("invalid block")
	ErrNoExit       = errors.New("no exit")
	ErrUnknownBlock = errors.New("unknown block type")
)
