package decode

import (
	"errors"
	"fmt"

	"fretpath/fingering"
)

// ErrCancelled reports that Decode stopped early because its context was
// cancelled. Decode returns a nil result alongside this error — no partial
// sequence is produced.
var ErrCancelled = errors.New("decode: cancelled")

// NoFingeringError is an alias of fingering.NoFingeringError, the error
// Decode returns when the chord at ChordIndex has no playable fingering at
// all, so no sequence can be decoded.
type NoFingeringError = fingering.NoFingeringError

func wrapCancellation(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %v", ErrCancelled, err)
}
