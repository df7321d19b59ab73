package wayfinder

import (
	"errors"

	"github.com/wayfinder-nav/wayfinder/internal/wferr"
)

// Sentinel errors for common error conditions.
// Use errors.Is() to check for these errors.
var (
	// ErrMissingManifest is returned when no manifest path is provided.
	ErrMissingManifest = errors.New("wayfinder: manifest path required")
)

// IsSchemaError reports whether err is a schema error: the descriptor or
// manifest is malformed for the codec's assumptions. Schema errors surface at
// graph-construction time and should be treated as startup-fatal.
func IsSchemaError(err error) bool {
	return wferr.IsSchema(err)
}

// IsEncodingError reports whether err is an encoding error: a required field
// held a null or unrepresentable value when client code tried to navigate.
func IsEncodingError(err error) bool {
	return wferr.IsEncoding(err)
}

// IsDecodingError reports whether err is a decoding error: the bundle and the
// registered schema disagree. This indicates a routing bug; there is nothing
// to retry, every operation is deterministic.
func IsDecodingError(err error) bool {
	return wferr.IsDecoding(err)
}
