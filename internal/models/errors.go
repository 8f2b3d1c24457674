package models

import "errors"

// Domain errors returned by services and the store. Handlers map these to
// HTTP status codes with errors.Is; everything else is treated as an
// unexpected storage failure.
var (
	// ErrUnauthenticated means no verified actor was supplied at all.
	ErrUnauthenticated = errors.New("authentication required")

	// ErrAccountNotFound means a verified actor id has no matching account
	// (orphaned credential) or a referenced account does not exist.
	ErrAccountNotFound = errors.New("account not found")

	// ErrNotFound means a referenced entity id does not exist.
	ErrNotFound = errors.New("not found")

	// ErrForbidden means the entity exists but the acting account lacks
	// rights over it (ownership or role mismatch).
	ErrForbidden = errors.New("forbidden")

	// ErrValidation means malformed or out-of-range input. Always wrapped
	// with the specific reason.
	ErrValidation = errors.New("validation failed")

	// ErrDuplicateName means a group-scoped display name is already taken.
	ErrDuplicateName = errors.New("name already in use")

	// ErrDuplicatePartner means the owner already has a partner with that name.
	ErrDuplicatePartner = errors.New("partner with this name already exists")

	// ErrLinkedAccountNotFound means a partner link target does not exist.
	ErrLinkedAccountNotFound = errors.New("linked account not found")

	// ErrInvalidInviteCode means the invite code resolves to no group.
	ErrInvalidInviteCode = errors.New("invalid invite code")

	// ErrSelfRemoval means an admin tried to remove their own account.
	ErrSelfRemoval = errors.New("cannot remove own account")

	// ErrInvalidCredentials means login failed. Deliberately vague.
	ErrInvalidCredentials = errors.New("invalid account or password")
)
