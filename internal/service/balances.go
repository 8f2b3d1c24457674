package service

import (
	"context"
	"fmt"

	"github.com/aokihara/kashikari/internal/balance"
	"github.com/aokihara/kashikari/internal/models"
	"github.com/aokihara/kashikari/internal/storage"
)

// BalanceService computes the read-side aggregates: per-partner balances,
// totals, and the reverse ("from members") view. It never mutates the store.
type BalanceService struct {
	store storage.Store
}

// NewBalanceService creates a new BalanceService.
func NewBalanceService(store storage.Store) *BalanceService {
	return &BalanceService{store: store}
}

// PartnerBalances returns the actor's per-partner balances sorted by
// absolute balance descending, with the total. Zero balances are retained;
// an empty ledger totals to 0.
func (s *BalanceService) PartnerBalances(ctx context.Context, ownerID string) ([]storage.PartnerBalance, int64, error) {
	if _, err := requireAccount(ctx, s.store, ownerID); err != nil {
		return nil, 0, err
	}

	balances, err := s.store.PartnerBalances(ctx, ownerID)
	if err != nil {
		return nil, 0, err
	}
	balance.SortPartners(balances)
	return balances, balance.TotalPartners(balances), nil
}

// MemberBalancesForMe returns, per fellow member, what that member has
// recorded toward the actor. This reads the partner-link relation in the
// opposite direction from PartnerBalances and aggregates *their*
// transactions — never the actor's own. The two views may legitimately
// disagree; reconciliation is a manual process.
func (s *BalanceService) MemberBalancesForMe(ctx context.Context, actorID string) ([]storage.MemberBalance, int64, error) {
	if _, err := requireAccount(ctx, s.store, actorID); err != nil {
		return nil, 0, err
	}

	balances, err := s.store.MemberBalancesToward(ctx, actorID)
	if err != nil {
		return nil, 0, err
	}
	balance.SortMembers(balances)
	return balances, balance.TotalMembers(balances), nil
}

// TransactionsForMe returns every transaction fellow members recorded
// toward the actor, newest first. Read-only: the actor cannot edit another
// member's ledger.
func (s *BalanceService) TransactionsForMe(ctx context.Context, actorID string) ([]storage.TransactionFromMember, error) {
	if _, err := requireAccount(ctx, s.store, actorID); err != nil {
		return nil, err
	}
	return s.store.ListTransactionsToward(ctx, actorID, "")
}

// MemberStatement is one member's recorded history toward the actor.
type MemberStatement struct {
	Member       *models.Account
	Transactions []storage.TransactionFromMember
	Balance      int64
}

// TransactionsFromMember returns the reverse statement for one member: the
// transactions that member recorded toward the actor, with their balance.
// Members outside the actor's group are reported as not found.
func (s *BalanceService) TransactionsFromMember(ctx context.Context, actorID, memberID string) (*MemberStatement, error) {
	member, err := s.requireFellowMember(ctx, actorID, memberID)
	if err != nil {
		return nil, err
	}

	transactions, err := s.store.ListTransactionsToward(ctx, actorID, memberID)
	if err != nil {
		return nil, err
	}

	var total int64
	for _, tx := range transactions {
		total += tx.Amount
	}

	return &MemberStatement{
		Member:       member,
		Transactions: transactions,
		Balance:      total,
	}, nil
}

// MemberDashboard is a fellow member's own ledger overview.
type MemberDashboard struct {
	Member   *models.Account
	Balances []storage.PartnerBalance
	Total    int64
}

// Dashboard computes a fellow member's per-partner balances and total,
// exactly as PartnerBalances does for the actor. Visibility is restricted
// to the actor's own group.
func (s *BalanceService) Dashboard(ctx context.Context, actorID, memberID string) (*MemberDashboard, error) {
	member, err := s.requireFellowMember(ctx, actorID, memberID)
	if err != nil {
		return nil, err
	}

	balances, err := s.store.PartnerBalances(ctx, memberID)
	if err != nil {
		return nil, err
	}
	balance.SortPartners(balances)

	return &MemberDashboard{
		Member:   member,
		Balances: balances,
		Total:    balance.TotalPartners(balances),
	}, nil
}

// Members returns the actor's fellow group members, each with that member's
// own total balance, sorted by absolute balance descending.
func (s *BalanceService) Members(ctx context.Context, actorID string) ([]storage.MemberBalance, error) {
	actor, err := requireAccount(ctx, s.store, actorID)
	if err != nil {
		return nil, err
	}

	accounts, err := s.store.ListGroupAccounts(ctx, actor.GroupID)
	if err != nil {
		return nil, err
	}

	var members []storage.MemberBalance
	for _, account := range accounts {
		if account.ID == actorID {
			continue
		}
		balances, err := s.store.PartnerBalances(ctx, account.ID)
		if err != nil {
			return nil, err
		}
		members = append(members, storage.MemberBalance{
			AccountID: account.ID,
			Name:      account.Name,
			Balance:   balance.TotalPartners(balances),
		})
	}
	balance.SortMembers(members)
	return members, nil
}

// requireFellowMember resolves memberID and enforces the same-group
// visibility rule. Accounts in other groups are indistinguishable from
// nonexistent ones.
func (s *BalanceService) requireFellowMember(ctx context.Context, actorID, memberID string) (*models.Account, error) {
	actor, err := requireAccount(ctx, s.store, actorID)
	if err != nil {
		return nil, err
	}

	member, err := s.store.GetAccount(ctx, memberID)
	if err != nil {
		return nil, err
	}
	if member == nil || member.GroupID != actor.GroupID {
		return nil, fmt.Errorf("member %s: %w", memberID, models.ErrNotFound)
	}
	return member, nil
}
