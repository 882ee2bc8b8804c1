package stream

import "errors"

// ErrEndOfStream is returned by Current when the cursor is past the
// last visible token.
var ErrEndOfStream = errors.New("end of stream")
