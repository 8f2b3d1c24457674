package models

// Group represents one private circle of mutually-trusting accounts.
type Group struct {
	// ID is the unique identifier for the group (UUID format).
	ID string

	// Name is the display name of the group (e.g., "College Friends").
	Name string

	// InviteCode is the rotating high-entropy token used to join the group.
	// Unique across all groups; regenerating it invalidates the old code
	// immediately.
	InviteCode string

	// CreatedAt is the Unix timestamp when the group was created.
	CreatedAt int64
}
