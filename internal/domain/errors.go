package domain

import "errors"

var (
	// ErrCallReverted is returned by the contract reader when a read-only
	// call reverts; callers treat the value as unavailable, never as fatal
	ErrCallReverted = errors.New("contract call reverted")

	// ErrUnknownEvent is returned when a decoded message names an event the
	// projector does not consume
	ErrUnknownEvent = errors.New("unknown event")
)
