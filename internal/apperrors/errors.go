package apperrors

import "errors"

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrInvalidTerm indicates a loan term of zero or fewer months.
var ErrInvalidTerm = errors.New("invalid loan term")

// ErrInvalidRate indicates a negative interest rate on a liability.
var ErrInvalidRate = errors.New("invalid interest rate")

// ErrInvalidHorizon indicates a projection horizon that is not positive or
// exceeds the configured maximum.
var ErrInvalidHorizon = errors.New("invalid projection horizon")

// ErrMalformedInput indicates a snapshot record with a missing or nonsensical
// numeric field.
var ErrMalformedInput = errors.New("malformed input")
