package agenda

import "errors"

var (
	ErrInvalidDate        = errors.New("invalid date")
	ErrInvalidRange       = errors.New("invalid date range")
	ErrUnsupportedFormat  = errors.New("unsupported file format")
	ErrNoEvents           = errors.New("no events found in file")
	ErrInvalidStrategy    = errors.New("invalid import strategy")
	ErrInvalidRule        = errors.New("invalid agenda rule")
	ErrInvalidWarningMode = errors.New("invalid warning mode")
)
