package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/aokihara/kashikari/internal/models"
	"github.com/aokihara/kashikari/internal/storage"
)

// suggestionLimit caps the description autocomplete list.
const suggestionLimit = 10

// LedgerService owns create/update/delete of monetary entries and the
// per-partner statement view.
type LedgerService struct {
	store storage.Store
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(store storage.Store) *LedgerService {
	return &LedgerService{store: store}
}

// TransactionInput carries the mutable fields of a ledger entry.
type TransactionInput struct {
	Amount      int64
	Description string
	Date        string // models.DateLayout
}

func (in TransactionInput) validate() error {
	if in.Amount == 0 {
		return fmt.Errorf("%w: amount must be non-zero", models.ErrValidation)
	}
	if in.Amount < models.MinAmount || in.Amount > models.MaxAmount {
		return fmt.Errorf("%w: amount must be within %d..%d",
			models.ErrValidation, models.MinAmount, models.MaxAmount)
	}
	if utf8.RuneCountInString(in.Description) > models.MaxDescriptionLen {
		return fmt.Errorf("%w: description must be at most %d characters",
			models.ErrValidation, models.MaxDescriptionLen)
	}
	date, err := time.ParseInLocation(models.DateLayout, in.Date, time.Local)
	if err != nil {
		return fmt.Errorf("%w: date must be in %s format", models.ErrValidation, models.DateLayout)
	}
	// A date parses to local midnight, so today always passes and tomorrow
	// never does.
	if date.After(time.Now()) {
		return fmt.Errorf("%w: date must not be in the future", models.ErrValidation)
	}
	return nil
}

// Create records a new transaction for the actor against one of the actor's
// own partners. Posting against someone else's partner is Forbidden; an
// unknown partner id is NotFound.
func (s *LedgerService) Create(ctx context.Context, actorID, partnerID string, input TransactionInput) (*models.Transaction, error) {
	if _, err := requireAccount(ctx, s.store, actorID); err != nil {
		return nil, err
	}
	if err := input.validate(); err != nil {
		return nil, err
	}

	partner, err := s.store.GetPartner(ctx, partnerID)
	if err != nil {
		return nil, err
	}
	if partner == nil {
		return nil, fmt.Errorf("partner %s: %w", partnerID, models.ErrNotFound)
	}
	if partner.OwnerID != actorID {
		return nil, fmt.Errorf("partner %s: %w", partnerID, models.ErrForbidden)
	}

	tx := &models.Transaction{
		OwnerID:     actorID,
		PartnerID:   partnerID,
		Amount:      input.Amount,
		Description: input.Description,
		Date:        input.Date,
	}
	if err := s.store.CreateTransaction(ctx, tx); err != nil {
		return nil, err
	}

	slog.Info("Transaction created",
		"transaction_id", tx.ID,
		"owner_id", actorID,
		"partner_id", partnerID,
		"amount", tx.Amount,
	)
	return tx, nil
}

// Update edits amount, description and date of an existing transaction.
// Ownership and partner linkage are immutable after creation.
func (s *LedgerService) Update(ctx context.Context, actorID, transactionID string, input TransactionInput) (*models.Transaction, error) {
	if _, err := requireAccount(ctx, s.store, actorID); err != nil {
		return nil, err
	}
	if err := input.validate(); err != nil {
		return nil, err
	}

	tx, err := s.requireOwnedTransaction(ctx, actorID, transactionID)
	if err != nil {
		return nil, err
	}

	tx.Amount = input.Amount
	tx.Description = input.Description
	tx.Date = input.Date
	if err := s.store.UpdateTransaction(ctx, tx); err != nil {
		return nil, err
	}

	slog.Info("Transaction updated", "transaction_id", tx.ID, "owner_id", actorID)
	return tx, nil
}

// Delete permanently removes one of the actor's own transactions.
func (s *LedgerService) Delete(ctx context.Context, actorID, transactionID string) error {
	if _, err := requireAccount(ctx, s.store, actorID); err != nil {
		return err
	}

	tx, err := s.requireOwnedTransaction(ctx, actorID, transactionID)
	if err != nil {
		return err
	}

	if err := s.store.DeleteTransaction(ctx, tx.ID); err != nil {
		return err
	}

	slog.Info("Transaction deleted", "transaction_id", tx.ID, "owner_id", actorID)
	return nil
}

func (s *LedgerService) requireOwnedTransaction(ctx context.Context, actorID, transactionID string) (*models.Transaction, error) {
	tx, err := s.store.GetTransaction(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction %s: %w", transactionID, models.ErrNotFound)
	}
	if tx.OwnerID != actorID {
		return nil, fmt.Errorf("transaction %s: %w", transactionID, models.ErrForbidden)
	}
	return tx, nil
}

// Suggestions returns the actor's most frequently used descriptions for
// autocomplete, at most suggestionLimit entries.
func (s *LedgerService) Suggestions(ctx context.Context, actorID string) ([]string, error) {
	if _, err := requireAccount(ctx, s.store, actorID); err != nil {
		return nil, err
	}
	return s.store.TopDescriptions(ctx, actorID, suggestionLimit)
}

// PartnerStatement is one partner's transaction history with its balance.
type PartnerStatement struct {
	Partner      *models.Partner
	Transactions []*models.Transaction
	Balance      int64
}

// Statement returns the actor's transaction history against one of their
// partners, newest first, with the running balance. Partners of other
// accounts are reported as not found.
func (s *LedgerService) Statement(ctx context.Context, actorID, partnerID string) (*PartnerStatement, error) {
	if _, err := requireAccount(ctx, s.store, actorID); err != nil {
		return nil, err
	}

	partner, err := s.store.GetPartner(ctx, partnerID)
	if err != nil {
		return nil, err
	}
	if partner == nil || partner.OwnerID != actorID {
		return nil, fmt.Errorf("partner %s: %w", partnerID, models.ErrNotFound)
	}

	transactions, err := s.store.ListPartnerTransactions(ctx, actorID, partnerID)
	if err != nil {
		return nil, err
	}

	var total int64
	for _, tx := range transactions {
		total += tx.Amount
	}

	return &PartnerStatement{
		Partner:      partner,
		Transactions: transactions,
		Balance:      total,
	}, nil
}
