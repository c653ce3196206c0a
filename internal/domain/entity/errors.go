package entity

import "errors"

var (
	ErrReferenceUnavailable = errors.New("reference image unavailable")
	ErrFetch                = errors.New("live frame fetch failed")
	ErrDetection            = errors.New("vehicle detection failed")
	ErrEmptyZone            = errors.New("detection zone is empty")
	ErrDimensionMismatch    = errors.New("zone mask and frame dimensions differ")
	ErrUnknownCamera        = errors.New("unknown camera")
)
