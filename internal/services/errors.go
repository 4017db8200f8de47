package services

import "errors"

// Business-rule outcomes. Handlers recover these at the boundary and map
// them to client responses; anything else that bubbles out of a service is
// a persistence failure and aborts the request with a generic error.
var (
	// ErrNotFound means the target entity does not exist (or is hidden by
	// soft deletion from the caller's tier).
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists is the no-op outcome: the duplicate follow, block or
	// like was declined without side effects.
	ErrAlreadyExists = errors.New("already exists")

	// ErrSelfRelation rejects self-follow and self-block.
	ErrSelfRelation = errors.New("cannot target yourself")

	// ErrBlocked suppresses an action because a block exists in either
	// direction between the two users involved.
	ErrBlocked = errors.New("action not allowed due to a block")

	// ErrInsufficientPrivilege means the role or ownership gate failed.
	ErrInsufficientPrivilege = errors.New("insufficient privilege")

	// ErrPrecondition means a state-dependent rule failed, e.g. demoting a
	// user who is not an admin.
	ErrPrecondition = errors.New("precondition failed")
)

// Identity-layer outcomes.
var (
	ErrUsernameTaken      = errors.New("username already taken")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid or expired refresh token")
)

// IsPersistenceError reports whether err falls outside the business-rule
// taxonomy, i.e. an underlying store failure that must surface as a generic
// server error without leaking storage details.
func IsPersistenceError(err error) bool {
	for _, known := range []error{
		ErrNotFound, ErrAlreadyExists, ErrSelfRelation, ErrBlocked,
		ErrInsufficientPrivilege, ErrPrecondition,
		ErrUsernameTaken, ErrEmailTaken, ErrInvalidCredentials, ErrInvalidToken,
	} {
		if errors.Is(err, known) {
			return false
		}
	}
	return true
}
