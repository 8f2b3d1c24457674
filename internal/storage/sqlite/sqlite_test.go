package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/aokihara/kashikari/internal/models"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	store, err := New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

// seedGroup creates a group with an admin account.
func seedGroup(t *testing.T, store *SQLiteStore, code string) (*models.Group, *models.Account) {
	t.Helper()

	group := &models.Group{Name: "Test Group", InviteCode: code}
	admin := &models.Account{Name: "Alice", PasswordHash: "hash", Role: models.RoleAdmin}
	if err := store.CreateGroup(context.Background(), group, admin); err != nil {
		t.Fatalf("CreateGroup failed: %v", err)
	}
	return group, admin
}

func TestCreateGroup_Atomic(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	group, admin := seedGroup(t, store, "code-1")

	got, err := store.GetGroup(ctx, group.ID)
	if err != nil {
		t.Fatalf("GetGroup failed: %v", err)
	}
	if got == nil || got.InviteCode != "code-1" {
		t.Fatalf("unexpected group: %+v", got)
	}

	account, err := store.GetAccount(ctx, admin.ID)
	if err != nil {
		t.Fatalf("GetAccount failed: %v", err)
	}
	if account == nil || account.Role != models.RoleAdmin || account.GroupID != group.ID {
		t.Fatalf("unexpected admin: %+v", account)
	}
}

func TestGetGroupByInviteCode_Missing(t *testing.T) {
	store := newTestStore(t)

	group, err := store.GetGroupByInviteCode(context.Background(), "nope")
	if err != nil {
		t.Fatalf("GetGroupByInviteCode failed: %v", err)
	}
	if group != nil {
		t.Errorf("expected nil for unknown code, got %+v", group)
	}
}

func TestCreateMember_RollsBackOnFailure(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	group, admin := seedGroup(t, store, "code-1")

	member := &models.Account{Name: "Bob", PasswordHash: "hash", GroupID: group.ID}
	// The second partner row violates the owner-scoped name constraint, which
	// must roll back the account and the first partner row too.
	bad := []*models.Partner{
		{OwnerID: admin.ID, Name: "Bob"},
		{OwnerID: admin.ID, Name: "Bob"},
	}

	if err := store.CreateMember(ctx, member, bad); err == nil {
		t.Fatal("expected constraint violation")
	}

	account, err := store.GetAccountByName(ctx, group.ID, "Bob")
	if err != nil {
		t.Fatalf("GetAccountByName failed: %v", err)
	}
	if account != nil {
		t.Error("account should have been rolled back")
	}

	partners, err := store.ListPartners(ctx, admin.ID)
	if err != nil {
		t.Fatalf("ListPartners failed: %v", err)
	}
	if len(partners) != 0 {
		t.Errorf("partner rows should have been rolled back, got %d", len(partners))
	}
}

func TestCreatePartner_DuplicateNamePerOwner(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, admin := seedGroup(t, store, "code-1")

	if err := store.CreatePartner(ctx, &models.Partner{OwnerID: admin.ID, Name: "Taro"}); err != nil {
		t.Fatalf("CreatePartner failed: %v", err)
	}
	if err := store.CreatePartner(ctx, &models.Partner{OwnerID: admin.ID, Name: "Taro"}); err == nil {
		t.Error("expected UNIQUE violation for duplicate partner name")
	}
}

func TestRemoveAccount_SeversBothDirections(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	group, admin := seedGroup(t, store, "code-1")

	bob := &models.Account{Name: "Bob", PasswordHash: "hash", GroupID: group.ID}
	if err := store.CreateMember(ctx, bob, nil); err != nil {
		t.Fatalf("CreateMember failed: %v", err)
	}

	inbound := &models.Partner{OwnerID: admin.ID, Name: "Bob", LinkedAccountID: bob.ID}
	outbound := &models.Partner{OwnerID: bob.ID, Name: "Alice", LinkedAccountID: admin.ID}
	for _, p := range []*models.Partner{inbound, outbound} {
		if err := store.CreatePartner(ctx, p); err != nil {
			t.Fatalf("CreatePartner failed: %v", err)
		}
	}

	tx := &models.Transaction{OwnerID: bob.ID, PartnerID: outbound.ID, Amount: 500, Date: "2026-08-01"}
	if err := store.CreateTransaction(ctx, tx); err != nil {
		t.Fatalf("CreateTransaction failed: %v", err)
	}

	if err := store.RemoveAccount(ctx, bob.ID); err != nil {
		t.Fatalf("RemoveAccount failed: %v", err)
	}

	account, err := store.GetAccount(ctx, bob.ID)
	if err != nil {
		t.Fatalf("GetAccount failed: %v", err)
	}
	if account != nil {
		t.Error("account should be deleted")
	}

	// Inbound link (admin -> bob) cleared, row kept.
	p, err := store.GetPartner(ctx, inbound.ID)
	if err != nil {
		t.Fatalf("GetPartner failed: %v", err)
	}
	if p == nil {
		t.Fatal("inbound partner row should be retained")
	}
	if p.LinkedAccountID != "" {
		t.Errorf("inbound link should be cleared, got %q", p.LinkedAccountID)
	}

	// Outbound link (bob -> admin) cleared too, and Bob's transaction stays.
	p, err = store.GetPartner(ctx, outbound.ID)
	if err != nil {
		t.Fatalf("GetPartner failed: %v", err)
	}
	if p == nil || p.LinkedAccountID != "" {
		t.Errorf("outbound link should be cleared, got %+v", p)
	}

	kept, err := store.GetTransaction(ctx, tx.ID)
	if err != nil {
		t.Fatalf("GetTransaction failed: %v", err)
	}
	if kept == nil {
		t.Error("transactions of a removed account must be retained")
	}
}

func TestRemoveAccount_Missing(t *testing.T) {
	store := newTestStore(t)
	seedGroup(t, store, "code-1")

	if err := store.RemoveAccount(context.Background(), "nonexistent-id"); err == nil {
		t.Error("expected error for unknown account")
	}
}

func TestPartnerBalances_GroupsByPartner(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, admin := seedGroup(t, store, "code-1")

	p1 := &models.Partner{OwnerID: admin.ID, Name: "P1"}
	p2 := &models.Partner{OwnerID: admin.ID, Name: "P2"}
	for _, p := range []*models.Partner{p1, p2} {
		if err := store.CreatePartner(ctx, p); err != nil {
			t.Fatalf("CreatePartner failed: %v", err)
		}
	}

	entries := []*models.Transaction{
		{OwnerID: admin.ID, PartnerID: p1.ID, Amount: 500, Date: "2026-08-01"},
		{OwnerID: admin.ID, PartnerID: p1.ID, Amount: -200, Date: "2026-08-02"},
		{OwnerID: admin.ID, PartnerID: p2.ID, Amount: 1000, Date: "2026-08-03"},
	}
	for _, e := range entries {
		if err := store.CreateTransaction(ctx, e); err != nil {
			t.Fatalf("CreateTransaction failed: %v", err)
		}
	}

	balances, err := store.PartnerBalances(ctx, admin.ID)
	if err != nil {
		t.Fatalf("PartnerBalances failed: %v", err)
	}
	if len(balances) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(balances))
	}

	sums := map[string]int64{}
	for _, b := range balances {
		sums[b.PartnerName] = b.Balance
	}
	if sums["P1"] != 300 || sums["P2"] != 1000 {
		t.Errorf("unexpected sums: %v", sums)
	}
}

func TestListPartnerTransactions_NewestFirst(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, admin := seedGroup(t, store, "code-1")
	partner := &models.Partner{OwnerID: admin.ID, Name: "Taro"}
	if err := store.CreatePartner(ctx, partner); err != nil {
		t.Fatalf("CreatePartner failed: %v", err)
	}

	dates := []string{"2026-08-02", "2026-08-10", "2026-08-01"}
	for _, d := range dates {
		tx := &models.Transaction{OwnerID: admin.ID, PartnerID: partner.ID, Amount: 100, Date: d}
		if err := store.CreateTransaction(ctx, tx); err != nil {
			t.Fatalf("CreateTransaction failed: %v", err)
		}
	}

	transactions, err := store.ListPartnerTransactions(ctx, admin.ID, partner.ID)
	if err != nil {
		t.Fatalf("ListPartnerTransactions failed: %v", err)
	}
	want := []string{"2026-08-10", "2026-08-02", "2026-08-01"}
	for i, tx := range transactions {
		if tx.Date != want[i] {
			t.Fatalf("order: expected %v, got position %d = %s", want, i, tx.Date)
		}
	}
}

func TestUpdateInviteCode(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	group, _ := seedGroup(t, store, "code-1")

	if err := store.UpdateInviteCode(ctx, group.ID, "code-2"); err != nil {
		t.Fatalf("UpdateInviteCode failed: %v", err)
	}

	old, err := store.GetGroupByInviteCode(ctx, "code-1")
	if err != nil {
		t.Fatalf("GetGroupByInviteCode failed: %v", err)
	}
	if old != nil {
		t.Error("old code should no longer resolve")
	}

	current, err := store.GetGroupByInviteCode(ctx, "code-2")
	if err != nil {
		t.Fatalf("GetGroupByInviteCode failed: %v", err)
	}
	if current == nil || current.ID != group.ID {
		t.Errorf("new code should resolve to the group, got %+v", current)
	}
}

func TestTopDescriptions_OrderAndLimit(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, admin := seedGroup(t, store, "code-1")
	partner := &models.Partner{OwnerID: admin.ID, Name: "Taro"}
	if err := store.CreatePartner(ctx, partner); err != nil {
		t.Fatalf("CreatePartner failed: %v", err)
	}

	descriptions := []string{"lunch", "lunch", "lunch", "coffee", "coffee", "rent", ""}
	for _, d := range descriptions {
		tx := &models.Transaction{OwnerID: admin.ID, PartnerID: partner.ID, Amount: 100, Date: "2026-08-01", Description: d}
		if err := store.CreateTransaction(ctx, tx); err != nil {
			t.Fatalf("CreateTransaction failed: %v", err)
		}
	}

	top, err := store.TopDescriptions(ctx, admin.ID, 2)
	if err != nil {
		t.Fatalf("TopDescriptions failed: %v", err)
	}
	if len(top) != 2 || top[0] != "lunch" || top[1] != "coffee" {
		t.Errorf("expected [lunch coffee], got %v", top)
	}
}
