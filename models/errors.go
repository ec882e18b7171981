package models

import "errors"

// Domain errors. The store translates driver errors into these and the
// controllers map them onto HTTP status codes; raw database error text is
// never sent to clients.
var (
	ErrPlayerNotFound     = errors.New("player not found")
	ErrReasonNotFound     = errors.New("reason not found")
	ErrFineNotFound       = errors.New("fine not found")
	ErrDuplicateName      = errors.New("a player with this name already exists")
	ErrDuplicateReason    = errors.New("a reason with this description already exists")
	ErrInvalidName        = errors.New("name must not be empty")
	ErrInvalidReason      = errors.New("description must not be empty")
	ErrInvalidAmount      = errors.New("amount must be a positive number with at most two decimals")
	ErrCredentialNotFound = errors.New("admin credential not found")
	ErrStoreUnavailable   = errors.New("database unavailable")
)
