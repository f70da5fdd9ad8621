package fft

import "errors"

var (
	// ErrInvalidOrder is returned when a plan is constructed with an order
	// that does not yield a valid power-of-two transform size.
	ErrInvalidOrder = errors.New("fft: invalid order")

	// ErrLengthMismatch is returned when a slice passed to a plan does not
	// match the size the plan was constructed for.
	ErrLengthMismatch = errors.New("fft: slice length mismatch")
)
