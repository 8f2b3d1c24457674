package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/aokihara/kashikari/internal/auth"
	"github.com/aokihara/kashikari/internal/models"
	"github.com/aokihara/kashikari/internal/storage"
	"github.com/aokihara/kashikari/internal/storage/sqlite"
)

const testPassword = "password123"

// fixture is a seeded group with an admin account and the services wired to
// a temp-file SQLite store.
type fixture struct {
	store    storage.Store
	identity *IdentityService
	partners *PartnerService
	ledger   *LedgerService
	balances *BalanceService
	groups   *GroupService
	group    *models.Group
	admin    *models.Account
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	hash, err := auth.HashPassword(testPassword)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	group := &models.Group{Name: "Shared House", InviteCode: "invite-code-1"}
	admin := &models.Account{Name: "Alice", PasswordHash: hash, Role: models.RoleAdmin}
	if err := store.CreateGroup(context.Background(), group, admin); err != nil {
		t.Fatalf("failed to create group: %v", err)
	}

	jwtManager := auth.NewJWTManager("test-secret", time.Hour)

	return &fixture{
		store:    store,
		identity: NewIdentityService(store, jwtManager),
		partners: NewPartnerService(store),
		ledger:   NewLedgerService(store),
		balances: NewBalanceService(store),
		groups:   NewGroupService(store),
		group:    group,
		admin:    admin,
	}
}

// join adds a member through the real invite flow.
func (f *fixture) join(t *testing.T, name string) *models.Account {
	t.Helper()
	account, err := f.groups.Join(context.Background(), f.group.InviteCode, name, testPassword)
	if err != nil {
		t.Fatalf("Join(%s) failed: %v", name, err)
	}
	return account
}

// addPartner creates an unlinked partner for the given owner.
func (f *fixture) addPartner(t *testing.T, ownerID, name string) *models.Partner {
	t.Helper()
	partner, err := f.partners.Create(context.Background(), ownerID, name, "")
	if err != nil {
		t.Fatalf("Create partner %s failed: %v", name, err)
	}
	return partner
}

// record creates a transaction dated today.
func (f *fixture) record(t *testing.T, ownerID, partnerID string, amount int64, description string) *models.Transaction {
	t.Helper()
	tx, err := f.ledger.Create(context.Background(), ownerID, partnerID, TransactionInput{
		Amount:      amount,
		Description: description,
		Date:        today(),
	})
	if err != nil {
		t.Fatalf("Create transaction failed: %v", err)
	}
	return tx
}

// partnerOf finds the partner row owner keeps for the named counterparty.
func (f *fixture) partnerOf(t *testing.T, ownerID, name string) *models.Partner {
	t.Helper()
	partner, err := f.store.GetPartnerByName(context.Background(), ownerID, name)
	if err != nil {
		t.Fatalf("GetPartnerByName failed: %v", err)
	}
	if partner == nil {
		t.Fatalf("expected partner %q for owner %s", name, ownerID)
	}
	return partner
}

func today() string {
	return time.Now().Format(models.DateLayout)
}
