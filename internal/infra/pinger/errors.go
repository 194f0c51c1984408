package pinger

import "errors"

var (
	ErrNilPinger               = errors.New("nil pinger")
	ErrPingerAlreadyRegistered = errors.New("pinger already registered")

	// ErrNotPinged is the status of a pinger before its first round.
	ErrNotPinged = errors.New("not pinged yet")
)
