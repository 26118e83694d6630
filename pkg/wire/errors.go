package wire

import "errors"

var (
	// ErrBadLength is returned when a datagram does not match the fixed
	// size of its stream's format.
	ErrBadLength = errors.New("datagram length mismatch")
)
