package experience

import "errors"

var (
	// ErrNegativeGain indicates a negative experience amount was supplied.
	ErrNegativeGain = errors.New("negative experience gain")
	// ErrInvalidLevel indicates a level below 1.
	ErrInvalidLevel = errors.New("invalid level")
)
