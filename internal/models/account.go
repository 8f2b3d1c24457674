package models

// Role determines what group-level operations an account may perform.
type Role string

const (
	// RoleAdmin may rename the group, rotate the invite code and remove members.
	RoleAdmin Role = "ADMIN"
	// RoleMember is the default role for accounts joining via invite.
	RoleMember Role = "MEMBER"
)

// Account represents a registered member of a group.
type Account struct {
	// ID is the unique identifier for the account (UUID format).
	ID string

	// Name is the display name, unique within the group.
	Name string

	// PasswordHash is the bcrypt hash of the account's password.
	// Never exposed outside the auth layer.
	PasswordHash string

	// GroupID is the group this account belongs to. Exactly one.
	GroupID string

	// Role is either RoleAdmin or RoleMember.
	Role Role

	// CreatedAt is the Unix timestamp when the account was created.
	CreatedAt int64

	// UpdatedAt is the Unix timestamp of the last profile change.
	UpdatedAt int64
}
