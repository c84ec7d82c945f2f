package uri

import "github.com/ghettovoice/gouri/internal/errorutil"

// Error is a constant error type of the package.
// See [errorutil.Error].
type Error = errorutil.Error

const (
	// ErrNoMatch is returned when the input does not match the URI grammar.
	// It wraps [grammar.ErrEmptyInput] or [grammar.ErrMalformedInput].
	ErrNoMatch Error = "no match"
	// ErrMissingScheme is returned when the matched captures have no scheme,
	// or when a URI without scheme is rendered.
	ErrMissingScheme Error = "missing scheme"
	// ErrMissingHost is returned when a URI without host is rendered.
	ErrMissingHost Error = "missing host"
)
