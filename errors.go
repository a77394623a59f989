package spline

import "errors"

// Errors returned by insertion and evaluation. Contract violations around
// object lifetime (double release, use after destroy) panic instead; they are
// programming errors, not recoverable runtime conditions.
var (
	// ErrUnknownKind indicates a Kind value outside the supported set.
	ErrUnknownKind = errors.New("unknown spline kind")

	// ErrExtensionMismatch indicates an insertion whose extension data does
	// not match the variant's declared extension kind.
	ErrExtensionMismatch = errors.New("extension data does not match spline kind")

	// ErrBadDimension indicates a control-point vector whose component count
	// is outside [MinTerms, MaxTerms] or differs from the spline's terms.
	ErrBadDimension = errors.New("invalid control point dimension")

	// ErrNoEntries indicates an evaluation of a spline with no control points.
	ErrNoEntries = errors.New("spline has no control points")

	// ErrTooFewEntries indicates an evaluation of a variant with fewer
	// control points than its window requires.
	ErrTooFewEntries = errors.New("not enough control points")

	// ErrBadSampleCount indicates a Sample request for a non-positive
	// number of samples.
	ErrBadSampleCount = errors.New("invalid sample count")
)
