package app

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidMonth    = errors.New("invalid month")
	ErrMissingOperator = errors.New("operator is required")
)

// ValidateMonth accepts 0 (no filter) or 1-12.
func ValidateMonth(m time.Month) error {
	if m < 0 || m > time.December {
		return fmt.Errorf("%w: %d", ErrInvalidMonth, int(m))
	}
	return nil
}

// Failure describes one unit of a batch that could not be processed. The
// rest of the batch still runs.
type Failure struct {
	Subject string
	Err     error
}

func (f Failure) String() string {
	return f.Subject + ": " + f.Err.Error()
}
