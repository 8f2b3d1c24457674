// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"

	"github.com/aokihara/kashikari/internal/models"
)

// PartnerBalance is one row of a per-partner balance aggregate: the signed
// sum of the owner's transactions against that partner.
type PartnerBalance struct {
	PartnerID   string
	PartnerName string
	Balance     int64
}

// MemberBalance is one row of the reverse-view aggregate: what another
// account has recorded against the partner linked to a given account.
type MemberBalance struct {
	AccountID string
	Name      string
	Balance   int64
}

// TransactionFromMember is a transaction another member recorded toward a
// given account, annotated with the recording member's identity.
type TransactionFromMember struct {
	ID          string
	Amount      int64
	Description string
	Date        string
	MemberID    string
	MemberName  string
}

// Store defines the persistence operations the services depend on.
//
// Get* methods return (nil, nil) when the record does not exist; callers
// translate absence into the appropriate domain error. Multi-row mutations
// (CreateGroup, CreateMember, RemoveAccount) are atomic: partial application
// is never observable.
type Store interface {
	// CreateGroup persists a new group together with its founding admin
	// account in one transaction.
	CreateGroup(ctx context.Context, group *models.Group, admin *models.Account) error

	// GetGroup retrieves a group by ID.
	GetGroup(ctx context.Context, id string) (*models.Group, error)

	// GetGroupByInviteCode retrieves the group whose current invite code
	// matches. A rotated-away code matches nothing.
	GetGroupByInviteCode(ctx context.Context, code string) (*models.Group, error)

	// UpdateGroupName renames a group.
	UpdateGroupName(ctx context.Context, id, name string) error

	// UpdateInviteCode replaces a group's invite code.
	UpdateInviteCode(ctx context.Context, id, code string) error

	// GetAccount retrieves an account by ID.
	GetAccount(ctx context.Context, id string) (*models.Account, error)

	// GetAccountByName retrieves an account by its group-scoped name.
	GetAccountByName(ctx context.Context, groupID, name string) (*models.Account, error)

	// ListGroupAccounts returns all accounts in a group, oldest first.
	ListGroupAccounts(ctx context.Context, groupID string) ([]*models.Account, error)

	// ListAccounts returns every account, oldest first. Feeds the
	// login-screen picker; deployments are small by design.
	ListAccounts(ctx context.Context) ([]*models.Account, error)

	// UpdateAccount persists profile changes (name, password hash).
	UpdateAccount(ctx context.Context, account *models.Account) error

	// CreateMember persists a joining account together with its mutual
	// partner pairs in one transaction. If any insert fails nothing is kept.
	CreateMember(ctx context.Context, account *models.Account, partners []*models.Partner) error

	// RemoveAccount clears every partner link referencing the account, in
	// both directions, then deletes the account row — all in one
	// transaction. Partner and transaction rows are retained.
	RemoveAccount(ctx context.Context, id string) error

	// CreatePartner persists a new address-book entry.
	CreatePartner(ctx context.Context, partner *models.Partner) error

	// GetPartner retrieves a partner by ID.
	GetPartner(ctx context.Context, id string) (*models.Partner, error)

	// GetPartnerByName retrieves a partner by its owner-scoped name.
	GetPartnerByName(ctx context.Context, ownerID, name string) (*models.Partner, error)

	// ListPartners returns an account's partners ordered by name, then ID.
	ListPartners(ctx context.Context, ownerID string) ([]*models.Partner, error)

	// CreateTransaction persists a new ledger entry.
	CreateTransaction(ctx context.Context, tx *models.Transaction) error

	// GetTransaction retrieves a transaction by ID.
	GetTransaction(ctx context.Context, id string) (*models.Transaction, error)

	// UpdateTransaction persists amount/description/date changes.
	UpdateTransaction(ctx context.Context, tx *models.Transaction) error

	// DeleteTransaction permanently removes a transaction.
	DeleteTransaction(ctx context.Context, id string) error

	// ListPartnerTransactions returns the owner's transactions against one
	// partner, newest date first.
	ListPartnerTransactions(ctx context.Context, ownerID, partnerID string) ([]*models.Transaction, error)

	// PartnerBalances sums the owner's transactions grouped by partner.
	// Partners without transactions are omitted; order is unspecified.
	PartnerBalances(ctx context.Context, ownerID string) ([]PartnerBalance, error)

	// MemberBalancesToward sums, per recording member, the transactions
	// recorded against partners linked to the given account. This is the
	// reverse data path: it never touches the account's own transactions.
	MemberBalancesToward(ctx context.Context, accountID string) ([]MemberBalance, error)

	// ListTransactionsToward returns transactions other members recorded
	// against partners linked to the given account, newest date first.
	// memberID narrows the result to one recording member; empty means all.
	ListTransactionsToward(ctx context.Context, accountID, memberID string) ([]TransactionFromMember, error)

	// TopDescriptions returns the owner's most frequently used non-empty
	// transaction descriptions, usage count descending, at most limit.
	TopDescriptions(ctx context.Context, ownerID string, limit int) ([]string, error)

	// Close releases any resources held by the store.
	Close() error
}
