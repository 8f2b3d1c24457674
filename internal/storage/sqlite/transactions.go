package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/aokihara/kashikari/internal/models"
	"github.com/aokihara/kashikari/internal/storage"
)

// CreateTransaction persists a new ledger entry.
func (s *SQLiteStore) CreateTransaction(ctx context.Context, tx *models.Transaction) error {
	if tx.ID == "" {
		tx.ID = uuid.New().String()
	}
	now := time.Now().Unix()
	if tx.CreatedAt == 0 {
		tx.CreatedAt = now
	}
	if tx.UpdatedAt == 0 {
		tx.UpdatedAt = tx.CreatedAt
	}

	var description any
	if tx.Description != "" {
		description = tx.Description
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO transactions (id, owner_id, partner_id, amount, description, date, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		tx.ID, tx.OwnerID, tx.PartnerID, tx.Amount, description, tx.Date, tx.CreatedAt, tx.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}
	return nil
}

const transactionColumns = "id, owner_id, partner_id, amount, description, date, created_at, updated_at"

func scanTransaction(row interface{ Scan(...any) error }) (*models.Transaction, error) {
	tx := &models.Transaction{}
	var description sql.NullString
	err := row.Scan(
		&tx.ID,
		&tx.OwnerID,
		&tx.PartnerID,
		&tx.Amount,
		&description,
		&tx.Date,
		&tx.CreatedAt,
		&tx.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if description.Valid {
		tx.Description = description.String
	}
	return tx, nil
}

// GetTransaction retrieves a transaction by ID.
func (s *SQLiteStore) GetTransaction(ctx context.Context, id string) (*models.Transaction, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+transactionColumns+" FROM transactions WHERE id = ?", id)
	tx, err := scanTransaction(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return tx, nil
}

// UpdateTransaction persists amount/description/date changes. Ownership and
// partner linkage are immutable and deliberately not part of the statement.
func (s *SQLiteStore) UpdateTransaction(ctx context.Context, tx *models.Transaction) error {
	tx.UpdatedAt = time.Now().Unix()

	var description any
	if tx.Description != "" {
		description = tx.Description
	}

	res, err := s.db.ExecContext(ctx,
		"UPDATE transactions SET amount = ?, description = ?, date = ?, updated_at = ? WHERE id = ?",
		tx.Amount, description, tx.Date, tx.UpdatedAt, tx.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update transaction: %w", err)
	}
	return requireRow(res, "transaction", tx.ID)
}

// DeleteTransaction permanently removes a transaction.
func (s *SQLiteStore) DeleteTransaction(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM transactions WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	return requireRow(res, "transaction", id)
}

// ListPartnerTransactions returns the owner's transactions against one
// partner, newest date first.
func (s *SQLiteStore) ListPartnerTransactions(ctx context.Context, ownerID, partnerID string) ([]*models.Transaction, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+transactionColumns+` FROM transactions
		 WHERE owner_id = ? AND partner_id = ?
		 ORDER BY date DESC, created_at DESC`,
		ownerID, partnerID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list partner transactions: %w", err)
	}
	defer rows.Close()

	var transactions []*models.Transaction
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		transactions = append(transactions, tx)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transactions: %w", err)
	}
	return transactions, nil
}

// PartnerBalances sums the owner's transactions grouped by partner.
// Integer SUM in SQLite is exact, so no precision is lost.
func (s *SQLiteStore) PartnerBalances(ctx context.Context, ownerID string) ([]storage.PartnerBalance, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT p.id, p.name, SUM(t.amount)
		 FROM transactions t
		 JOIN partners p ON p.id = t.partner_id
		 WHERE t.owner_id = ?
		 GROUP BY p.id, p.name`,
		ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate partner balances: %w", err)
	}
	defer rows.Close()

	var balances []storage.PartnerBalance
	for rows.Next() {
		var b storage.PartnerBalance
		if err := rows.Scan(&b.PartnerID, &b.PartnerName, &b.Balance); err != nil {
			return nil, fmt.Errorf("failed to scan partner balance: %w", err)
		}
		balances = append(balances, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate partner balances: %w", err)
	}
	return balances, nil
}

// MemberBalancesToward aggregates the reverse view: per recording member,
// the sum of their transactions against partners linked to accountID. The
// query starts from partner rows owned by other accounts and never touches
// accountID's own transactions.
func (s *SQLiteStore) MemberBalancesToward(ctx context.Context, accountID string) ([]storage.MemberBalance, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT t.owner_id, a.name, SUM(t.amount)
		 FROM transactions t
		 JOIN partners p ON p.id = t.partner_id
		 JOIN accounts a ON a.id = t.owner_id
		 WHERE p.linked_account_id = ?
		 GROUP BY t.owner_id, a.name`,
		accountID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate member balances: %w", err)
	}
	defer rows.Close()

	var balances []storage.MemberBalance
	for rows.Next() {
		var b storage.MemberBalance
		if err := rows.Scan(&b.AccountID, &b.Name, &b.Balance); err != nil {
			return nil, fmt.Errorf("failed to scan member balance: %w", err)
		}
		balances = append(balances, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate member balances: %w", err)
	}
	return balances, nil
}

// ListTransactionsToward returns transactions other members recorded against
// partners linked to accountID, newest date first. memberID narrows the
// result to one recording member; empty means all.
func (s *SQLiteStore) ListTransactionsToward(ctx context.Context, accountID, memberID string) ([]storage.TransactionFromMember, error) {
	query := `SELECT t.id, t.amount, t.description, t.date, t.owner_id, a.name
		 FROM transactions t
		 JOIN partners p ON p.id = t.partner_id
		 JOIN accounts a ON a.id = t.owner_id
		 WHERE p.linked_account_id = ?`
	args := []any{accountID}
	if memberID != "" {
		query += " AND t.owner_id = ?"
		args = append(args, memberID)
	}
	query += " ORDER BY t.date DESC, t.created_at DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions toward account: %w", err)
	}
	defer rows.Close()

	var transactions []storage.TransactionFromMember
	for rows.Next() {
		var t storage.TransactionFromMember
		var description sql.NullString
		if err := rows.Scan(&t.ID, &t.Amount, &description, &t.Date, &t.MemberID, &t.MemberName); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		if description.Valid {
			t.Description = description.String
		}
		transactions = append(transactions, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transactions: %w", err)
	}
	return transactions, nil
}

// TopDescriptions returns the owner's most frequently used non-empty
// descriptions, usage count descending, name ascending as tie-break.
func (s *SQLiteStore) TopDescriptions(ctx context.Context, ownerID string, limit int) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT description, COUNT(*) AS uses
		 FROM transactions
		 WHERE owner_id = ? AND description IS NOT NULL
		 GROUP BY description
		 ORDER BY uses DESC, description
		 LIMIT ?`,
		ownerID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate descriptions: %w", err)
	}
	defer rows.Close()

	var descriptions []string
	for rows.Next() {
		var description string
		var uses int
		if err := rows.Scan(&description, &uses); err != nil {
			return nil, fmt.Errorf("failed to scan description: %w", err)
		}
		descriptions = append(descriptions, description)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate descriptions: %w", err)
	}
	return descriptions, nil
}
