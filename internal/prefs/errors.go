package prefs

import (
	"errors"
)

// ErrUnknownBackground is returned when a background preset is not known.
var ErrUnknownBackground = errors.New("unknown background preset")
