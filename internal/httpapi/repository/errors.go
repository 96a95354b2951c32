package repository

import "errors"

// ErrStaleRecord is returned when an optimistic-revision write finds the row
// already modified by a concurrent request.
var ErrStaleRecord = errors.New("record was modified concurrently")
