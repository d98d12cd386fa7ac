package validation

import "errors"

// Reason strings are part of the outbound report contract, hence the casing.
var (
	ErrInvalidPrice      = errors.New("Invalid Price")
	ErrInvalidSize       = errors.New("Invalid Size")
	ErrInvalidInstrument = errors.New("Invalid Instrument")
	ErrInvalidSide       = errors.New("Invalid Side")
)
