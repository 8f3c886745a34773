package store

import (
	"errors"

	"bookreview/middleware"
)

// Store failure kinds. All are terminal for the request that hit them; the
// controllers map each onto an HTTP status. ErrStorageUnavailable is the
// only one produced after an internal retry: mutations re-run a transient
// storage failure exactly once before giving up.
var (
	ErrValidation         = errors.New("validation failed")
	ErrNotFound           = errors.New("record not found")
	ErrDuplicateReview    = errors.New("user has already reviewed this book")
	ErrStorageUnavailable = errors.New("storage unavailable")
	ErrAggregateStale     = errors.New("aggregate recomputation failed")
)

// isTerminal reports whether err is a business failure that must not be
// retried. Anything else is treated as a transient storage fault.
func isTerminal(err error) bool {
	return errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrDuplicateReview) ||
		errors.Is(err, middleware.ErrNotOwner) ||
		errors.Is(err, middleware.ErrNotAdmin)
}
