// Package models defines the core domain records for Kashikari.
//
// # Records
//
//   - Group: a trust boundary of mutually-visible accounts joined via invite code
//   - Account: a registered member of exactly one group
//   - Partner: a named counterparty in one account's private address book
//   - Transaction: one signed monetary entry owned by one account
//
// # Ownership and linking
//
// Partners and transactions are strongly owned by one account: only the owner
// may read them as "my ledger" or mutate them. A partner may additionally
// carry a weak link to another registered account; the link is what makes the
// reverse ("from members") view possible and is cleared, never cascaded, when
// the linked account leaves the group.
//
// Relationships are expressed as ID strings rather than pointers to avoid
// circular references between records.
package models
