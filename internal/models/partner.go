package models

// Partner is a named counterparty as recorded in one account's address book.
//
// A partner with an empty LinkedAccountID represents an external,
// unregistered counterparty (cash-only tracking). When the linked account is
// removed from the group the link is cleared, not the partner: historical
// transactions stay addressable.
type Partner struct {
	// ID is the unique identifier for the partner (UUID format).
	ID string

	// OwnerID is the account that owns this address-book entry. Exactly one.
	OwnerID string

	// Name is the counterparty's display name, unique per owner.
	Name string

	// LinkedAccountID is a weak reference to the registered account this
	// partner stands for, or empty if the counterparty is not a member.
	LinkedAccountID string

	// CreatedAt is the Unix timestamp when the partner was created.
	CreatedAt int64
}
