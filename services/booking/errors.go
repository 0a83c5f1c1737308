package booking

import (
	"errors"
	"fmt"
	"strings"
)

// ErrSessionNotFound marks a missing or expired booking session.
var ErrSessionNotFound = errors.New("booking session not found or expired")

// ValidationError carries every missing required field of a draft so the
// customer can fix all problems in one pass.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("booking draft is incomplete: %s", strings.Join(e.Missing, "; "))
}
