package ecc

import "github.com/pkg/errors"

// Error kinds returned by the curve and point layer. They are wrapped with
// context before being returned; match them with errors.Is.
var (
	// ErrUnknownCurve is returned for a catalog lookup of a name that is
	// not in the catalog.
	ErrUnknownCurve = errors.New("ecc: unknown curve")

	// ErrInvalidPoint is returned when a point fails the curve equation at
	// any validation gate.
	ErrInvalidPoint = errors.New("ecc: point is not on the curve")

	// ErrCurvesMismatch is returned when a binary operation receives points
	// on curves with different parameters.
	ErrCurvesMismatch = errors.New("ecc: curves do not match")

	// ErrInvalidArgument is returned for malformed calls, such as a Sum of
	// fewer than two points or incomplete curve parameters.
	ErrInvalidArgument = errors.New("ecc: invalid argument")
)
