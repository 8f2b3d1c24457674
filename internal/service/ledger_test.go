package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/aokihara/kashikari/internal/models"
)

func TestCreateTransaction(t *testing.T) {
	f := newFixture(t)
	partner := f.addPartner(t, f.admin.ID, "Taro")

	tx := f.record(t, f.admin.ID, partner.ID, 1500, "concert tickets")

	if tx.ID == "" {
		t.Error("expected non-empty transaction ID")
	}
	if tx.OwnerID != f.admin.ID {
		t.Errorf("owner: expected %s, got %s", f.admin.ID, tx.OwnerID)
	}
	if tx.CreatedAt == 0 {
		t.Error("expected non-zero CreatedAt")
	}
}

func TestCreateTransaction_Validation(t *testing.T) {
	f := newFixture(t)
	partner := f.addPartner(t, f.admin.ID, "Taro")
	ctx := context.Background()

	tomorrow := time.Now().AddDate(0, 0, 1).Format(models.DateLayout)

	cases := []struct {
		name  string
		input TransactionInput
	}{
		{"zero amount", TransactionInput{Amount: 0, Date: today()}},
		{"above max", TransactionInput{Amount: models.MaxAmount + 1, Date: today()}},
		{"below min", TransactionInput{Amount: models.MinAmount - 1, Date: today()}},
		{"long description", TransactionInput{Amount: 100, Description: strings.Repeat("x", 101), Date: today()}},
		{"bad date", TransactionInput{Amount: 100, Date: "2024/01/01"}},
		{"future date", TransactionInput{Amount: 100, Date: tomorrow}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.ledger.Create(ctx, f.admin.ID, partner.ID, tc.input)
			if !errors.Is(err, models.ErrValidation) {
				t.Errorf("expected ErrValidation, got %v", err)
			}
		})
	}
}

func TestCreateTransaction_BoundaryAmounts(t *testing.T) {
	f := newFixture(t)
	partner := f.addPartner(t, f.admin.ID, "Taro")

	f.record(t, f.admin.ID, partner.ID, models.MaxAmount, "")
	f.record(t, f.admin.ID, partner.ID, models.MinAmount, "")

	statement, err := f.ledger.Statement(context.Background(), f.admin.ID, partner.ID)
	if err != nil {
		t.Fatalf("Statement failed: %v", err)
	}
	if statement.Balance != 0 {
		t.Errorf("expected balance 0, got %d", statement.Balance)
	}
}

func TestCreateTransaction_TodayAllowed(t *testing.T) {
	f := newFixture(t)
	partner := f.addPartner(t, f.admin.ID, "Taro")

	if _, err := f.ledger.Create(context.Background(), f.admin.ID, partner.ID, TransactionInput{
		Amount: 100,
		Date:   today(),
	}); err != nil {
		t.Errorf("today's date should be accepted, got %v", err)
	}
}

func TestCreateTransaction_ForeignPartner(t *testing.T) {
	f := newFixture(t)
	bob := f.join(t, "Bob")
	bobsPartner := f.addPartner(t, bob.ID, "Taro")

	_, err := f.ledger.Create(context.Background(), f.admin.ID, bobsPartner.ID, TransactionInput{
		Amount: 100,
		Date:   today(),
	})
	if !errors.Is(err, models.ErrForbidden) {
		t.Errorf("expected ErrForbidden, got %v", err)
	}
}

func TestCreateTransaction_UnknownPartner(t *testing.T) {
	f := newFixture(t)

	_, err := f.ledger.Create(context.Background(), f.admin.ID, "nonexistent-id", TransactionInput{
		Amount: 100,
		Date:   today(),
	})
	if !errors.Is(err, models.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateTransaction(t *testing.T) {
	f := newFixture(t)
	partner := f.addPartner(t, f.admin.ID, "Taro")
	tx := f.record(t, f.admin.ID, partner.ID, 1000, "lunch")

	updated, err := f.ledger.Update(context.Background(), f.admin.ID, tx.ID, TransactionInput{
		Amount:      -1000,
		Description: "repaid",
		Date:        today(),
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Amount != -1000 || updated.Description != "repaid" {
		t.Errorf("unexpected update result: %+v", updated)
	}
	if updated.PartnerID != partner.ID {
		t.Error("partner linkage must not change on update")
	}
}

func TestUpdateTransaction_ForeignOwner(t *testing.T) {
	f := newFixture(t)
	bob := f.join(t, "Bob")
	partner := f.addPartner(t, f.admin.ID, "Taro")
	tx := f.record(t, f.admin.ID, partner.ID, 1000, "")

	_, err := f.ledger.Update(context.Background(), bob.ID, tx.ID, TransactionInput{
		Amount: 5,
		Date:   today(),
	})
	if !errors.Is(err, models.ErrForbidden) {
		t.Errorf("expected ErrForbidden, got %v", err)
	}
}

func TestDeleteTransaction(t *testing.T) {
	f := newFixture(t)
	partner := f.addPartner(t, f.admin.ID, "Taro")
	tx := f.record(t, f.admin.ID, partner.ID, 1000, "")
	ctx := context.Background()

	if err := f.ledger.Delete(ctx, f.admin.ID, tx.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	if err := f.ledger.Delete(ctx, f.admin.ID, tx.ID); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("expected ErrNotFound on second delete, got %v", err)
	}

	statement, err := f.ledger.Statement(ctx, f.admin.ID, partner.ID)
	if err != nil {
		t.Fatalf("Statement failed: %v", err)
	}
	if statement.Balance != 0 {
		t.Errorf("expected balance 0 after delete, got %d", statement.Balance)
	}
}

func TestStatement_ForeignPartnerNotFound(t *testing.T) {
	f := newFixture(t)
	bob := f.join(t, "Bob")
	bobsPartner := f.addPartner(t, bob.ID, "Taro")

	_, err := f.ledger.Statement(context.Background(), f.admin.ID, bobsPartner.ID)
	if !errors.Is(err, models.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestSuggestions(t *testing.T) {
	f := newFixture(t)
	partner := f.addPartner(t, f.admin.ID, "Taro")
	ctx := context.Background()

	f.record(t, f.admin.ID, partner.ID, 100, "lunch")
	f.record(t, f.admin.ID, partner.ID, 200, "lunch")
	f.record(t, f.admin.ID, partner.ID, 300, "coffee")
	f.record(t, f.admin.ID, partner.ID, 400, "")

	suggestions, err := f.ledger.Suggestions(ctx, f.admin.ID)
	if err != nil {
		t.Fatalf("Suggestions failed: %v", err)
	}

	if len(suggestions) != 2 {
		t.Fatalf("expected 2 suggestions, got %d: %v", len(suggestions), suggestions)
	}
	if suggestions[0] != "lunch" {
		t.Errorf("expected most frequent first, got %v", suggestions)
	}
}
