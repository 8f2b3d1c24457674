package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/aokihara/kashikari/internal/models"
)

// CreateGroup persists a new group and its founding admin account in one
// transaction.
func (s *SQLiteStore) CreateGroup(ctx context.Context, group *models.Group, admin *models.Account) error {
	if group.ID == "" {
		group.ID = uuid.New().String()
	}
	if group.CreatedAt == 0 {
		group.CreatedAt = time.Now().Unix()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		"INSERT INTO groups (id, name, invite_code, created_at) VALUES (?, ?, ?, ?)",
		group.ID, group.Name, group.InviteCode, group.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert group: %w", err)
	}

	admin.GroupID = group.ID
	if err := insertAccount(ctx, tx, admin); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetGroup retrieves a group by ID.
func (s *SQLiteStore) GetGroup(ctx context.Context, id string) (*models.Group, error) {
	return s.getGroup(ctx, "SELECT id, name, invite_code, created_at FROM groups WHERE id = ?", id)
}

// GetGroupByInviteCode retrieves the group whose current invite code matches.
func (s *SQLiteStore) GetGroupByInviteCode(ctx context.Context, code string) (*models.Group, error) {
	return s.getGroup(ctx, "SELECT id, name, invite_code, created_at FROM groups WHERE invite_code = ?", code)
}

func (s *SQLiteStore) getGroup(ctx context.Context, query string, arg any) (*models.Group, error) {
	group := &models.Group{}
	err := s.db.QueryRowContext(ctx, query, arg).Scan(
		&group.ID,
		&group.Name,
		&group.InviteCode,
		&group.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get group: %w", err)
	}
	return group, nil
}

// UpdateGroupName renames a group.
func (s *SQLiteStore) UpdateGroupName(ctx context.Context, id, name string) error {
	res, err := s.db.ExecContext(ctx, "UPDATE groups SET name = ? WHERE id = ?", name, id)
	if err != nil {
		return fmt.Errorf("failed to update group name: %w", err)
	}
	return requireRow(res, "group", id)
}

// UpdateInviteCode replaces a group's invite code. The old code stops
// resolving as soon as this commits.
func (s *SQLiteStore) UpdateInviteCode(ctx context.Context, id, code string) error {
	res, err := s.db.ExecContext(ctx, "UPDATE groups SET invite_code = ? WHERE id = ?", code, id)
	if err != nil {
		return fmt.Errorf("failed to update invite code: %w", err)
	}
	return requireRow(res, "group", id)
}

// requireRow converts a zero-row UPDATE/DELETE into a not-found error.
func requireRow(res sql.Result, entity, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%s not found: %s", entity, id)
	}
	return nil
}
