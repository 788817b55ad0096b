package sim

import (
	"errors"
	"fmt"
)

// DaysExceededError reports a run request beyond the configured limit.
type DaysExceededError struct {
	Days  int
	Limit int
}

func (e *DaysExceededError) Error() string {
	return fmt.Sprintf("requested %d days exceeds limit of %d", e.Days, e.Limit)
}

// IsDaysExceeded reports whether err wraps a DaysExceededError.
func IsDaysExceeded(err error) bool {
	var de *DaysExceededError
	return errors.As(err, &de)
}
