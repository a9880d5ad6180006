package usecase

import (
	"errors"
	"fmt"

	"github.com/riskibarqy/club-stats/internal/domain/uow"
)

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrInconsistent          = errors.New("inconsistent data")
	ErrParse                 = errors.New("parse error")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)

// ConsistencyError reports a goal total that does not add up to the match score.
type ConsistencyError struct {
	Expected int
	Actual   int
}

func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("%s: sum of player goals (%d) does not match our score (%d)", ErrInconsistent, e.Actual, e.Expected)
}

func (e *ConsistencyError) Unwrap() error {
	return ErrInconsistent
}

// storeError translates store sentinels into use case errors.
func storeError(op string, err error) error {
	switch {
	case errors.Is(err, uow.ErrReferenceNotFound):
		return fmt.Errorf("%w: %s: %v", ErrNotFound, op, err)
	case errors.Is(err, uow.ErrConflict):
		return fmt.Errorf("%w: %s: %v", ErrInvalidInput, op, err)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
