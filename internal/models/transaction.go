package models

// DateLayout is the calendar-date format used for transaction dates.
// Lexicographic order equals chronological order, which the store relies on
// when sorting statements.
const DateLayout = "2006-01-02"

// Amount bounds for a single transaction, in currency minor units.
const (
	MinAmount int64 = -10_000_000
	MaxAmount int64 = 10_000_000
)

// MaxDescriptionLen is the longest accepted free-text description.
const MaxDescriptionLen = 100

// Transaction is one signed monetary entry in an account's private ledger.
//
// Positive amounts mean the owner considers the money lent (the partner owes
// the owner); negative amounts mean borrowed or a repayment. Each side of a
// lending relationship keeps its own independent ledger; there is no shared
// transaction row.
type Transaction struct {
	// ID is the unique identifier for the transaction (UUID format).
	ID string

	// OwnerID is the account that created and controls this entry.
	OwnerID string

	// PartnerID is the counterparty entry this transaction is recorded
	// against. Must belong to the same owner.
	PartnerID string

	// Amount is the signed amount. Non-zero, within [MinAmount, MaxAmount].
	Amount int64

	// Description is optional free text, at most MaxDescriptionLen chars.
	Description string

	// Date is the calendar date of the transaction in DateLayout format.
	// Never in the future.
	Date string

	// CreatedAt is the Unix timestamp when the entry was recorded.
	CreatedAt int64

	// UpdatedAt is the Unix timestamp of the last edit.
	UpdatedAt int64
}
