package scheduling

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidScheduleInput marks malformed schedule fields (bad HH:MM,
	// end before start, duration out of range). Always wrapped with detail.
	ErrInvalidScheduleInput = errors.New("invalid schedule input")

	// ErrMissingOfferingReference marks an availability or conflict lookup
	// whose offering/center/date identifiers are absent. Distinct from
	// "no slots" so callers can surface a configuration problem.
	ErrMissingOfferingReference = errors.New("missing offering reference")
)

// ConflictError carries the complete list of overlap descriptions found
// against sibling offerings. The save must be rejected as a whole.
type ConflictError struct {
	Conflicts []string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("schedule overlaps %d sibling window(s)", len(e.Conflicts))
}
