package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound marks a lookup for an id the store does not hold.
var ErrNotFound = errors.New("subscription not found")

// ErrLimitReached rejects a create when the free tier is full and the
// user has no premium entitlement. Expected and recoverable, not a
// fault: the UI answers it with the paywall.
var ErrLimitReached = errors.New("free tier subscription limit reached")

// InvalidDateError marks an anchor date that does not parse to a valid
// calendar date.
type InvalidDateError struct {
	Value string
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("invalid first payment date %q", e.Value)
}
