package deeplink

import "ridingcourse/internal/errors"

// ClassificationError is returned when the input matches none of the known link dialects.
type ClassificationError struct {
	Raw string
}

func (e *ClassificationError) Error() string {
	return "map-sharing link not recognized"
}

// MissingDestinationError is returned when a schema dialect link lacks usable dlat/dlng.
type MissingDestinationError struct {
	Field string
	Err   error
}

func (e *MissingDestinationError) Error() string {
	if e.Err != nil {
		return "destination coordinates missing: " + e.Field + ": " + e.Err.Error()
	}

	return "destination coordinates missing: " + e.Field
}

func (e *MissingDestinationError) Unwrap() error {
	return e.Err
}

// IsClassificationError reports whether err is a ClassificationError.
func IsClassificationError(err error) bool {
	var target *ClassificationError

	return errors.As(err, &target)
}

// IsMissingDestinationError reports whether err is a MissingDestinationError.
func IsMissingDestinationError(err error) bool {
	var target *MissingDestinationError

	return errors.As(err, &target)
}
