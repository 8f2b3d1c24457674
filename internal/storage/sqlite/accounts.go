package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/aokihara/kashikari/internal/models"
)

// execer is satisfied by both *sql.DB and *sql.Tx, so single-row inserts can
// participate in larger transactions.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func insertAccount(ctx context.Context, db execer, account *models.Account) error {
	if account.ID == "" {
		account.ID = uuid.New().String()
	}
	now := time.Now().Unix()
	if account.CreatedAt == 0 {
		account.CreatedAt = now
	}
	if account.UpdatedAt == 0 {
		account.UpdatedAt = account.CreatedAt
	}
	if account.Role == "" {
		account.Role = models.RoleMember
	}

	_, err := db.ExecContext(ctx,
		`INSERT INTO accounts (id, name, password_hash, group_id, role, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		account.ID, account.Name, account.PasswordHash, account.GroupID,
		string(account.Role), account.CreatedAt, account.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert account: %w", err)
	}
	return nil
}

const accountColumns = "id, name, password_hash, group_id, role, created_at, updated_at"

func scanAccount(row interface{ Scan(...any) error }) (*models.Account, error) {
	account := &models.Account{}
	var role string
	err := row.Scan(
		&account.ID,
		&account.Name,
		&account.PasswordHash,
		&account.GroupID,
		&role,
		&account.CreatedAt,
		&account.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	account.Role = models.Role(role)
	return account, nil
}

// GetAccount retrieves an account by ID.
func (s *SQLiteStore) GetAccount(ctx context.Context, id string) (*models.Account, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+accountColumns+" FROM accounts WHERE id = ?", id)
	account, err := scanAccount(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return account, nil
}

// GetAccountByName retrieves an account by its group-scoped name.
func (s *SQLiteStore) GetAccountByName(ctx context.Context, groupID, name string) (*models.Account, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+accountColumns+" FROM accounts WHERE group_id = ? AND name = ?", groupID, name)
	account, err := scanAccount(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get account by name: %w", err)
	}
	return account, nil
}

// ListGroupAccounts returns all accounts in a group, oldest first.
func (s *SQLiteStore) ListGroupAccounts(ctx context.Context, groupID string) ([]*models.Account, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+accountColumns+" FROM accounts WHERE group_id = ? ORDER BY created_at, id", groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to list group accounts: %w", err)
	}
	defer rows.Close()

	var accounts []*models.Account
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		accounts = append(accounts, account)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate accounts: %w", err)
	}
	return accounts, nil
}

// ListAccounts returns every account, oldest first.
func (s *SQLiteStore) ListAccounts(ctx context.Context) ([]*models.Account, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+accountColumns+" FROM accounts ORDER BY created_at, id")
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	defer rows.Close()

	var accounts []*models.Account
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		accounts = append(accounts, account)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate accounts: %w", err)
	}
	return accounts, nil
}

// UpdateAccount persists profile changes (name, password hash).
func (s *SQLiteStore) UpdateAccount(ctx context.Context, account *models.Account) error {
	account.UpdatedAt = time.Now().Unix()
	res, err := s.db.ExecContext(ctx,
		"UPDATE accounts SET name = ?, password_hash = ?, updated_at = ? WHERE id = ?",
		account.Name, account.PasswordHash, account.UpdatedAt, account.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update account: %w", err)
	}
	return requireRow(res, "account", account.ID)
}

// CreateMember persists a joining account together with its mutual partner
// pairs in one transaction. A failure on any row rolls back everything, so a
// one-sided partner link is never observable.
func (s *SQLiteStore) CreateMember(ctx context.Context, account *models.Account, partners []*models.Partner) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := insertAccount(ctx, tx, account); err != nil {
		return err
	}

	for _, partner := range partners {
		if err := insertPartner(ctx, tx, partner); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// RemoveAccount severs partner links referencing the account, in both
// directions, then deletes the account row — all in one transaction.
// Partner and transaction rows are retained for audit continuity.
func (s *SQLiteStore) RemoveAccount(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// Partners owned by others that point at the removed account.
	_, err = tx.ExecContext(ctx,
		"UPDATE partners SET linked_account_id = NULL WHERE linked_account_id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to sever inbound partner links: %w", err)
	}

	// Partners the removed account owns.
	_, err = tx.ExecContext(ctx,
		"UPDATE partners SET linked_account_id = NULL WHERE owner_id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to sever outbound partner links: %w", err)
	}

	res, err := tx.ExecContext(ctx, "DELETE FROM accounts WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}
	if err := requireRow(res, "account", id); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
