package ulid

import (
	"github.com/oklog/ulid/v2"
)

// NewULID generates a new ULID string.
var NewULID = func() string {
	return ulid.Make().String()
}

// NewPrefixed generates a ULID tagged with a short kind prefix, e.g. "dsp_01J...".
func NewPrefixed(prefix string) string {
	return prefix + "_" + NewULID()
}
