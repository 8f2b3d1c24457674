package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/aokihara/kashikari/internal/models"
)

func insertPartner(ctx context.Context, db execer, partner *models.Partner) error {
	if partner.ID == "" {
		partner.ID = uuid.New().String()
	}
	if partner.CreatedAt == 0 {
		partner.CreatedAt = time.Now().Unix()
	}

	var linked any
	if partner.LinkedAccountID != "" {
		linked = partner.LinkedAccountID
	}

	_, err := db.ExecContext(ctx,
		`INSERT INTO partners (id, owner_id, name, linked_account_id, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		partner.ID, partner.OwnerID, partner.Name, linked, partner.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert partner: %w", err)
	}
	return nil
}

// CreatePartner persists a new address-book entry.
func (s *SQLiteStore) CreatePartner(ctx context.Context, partner *models.Partner) error {
	return insertPartner(ctx, s.db, partner)
}

const partnerColumns = "id, owner_id, name, linked_account_id, created_at"

func scanPartner(row interface{ Scan(...any) error }) (*models.Partner, error) {
	partner := &models.Partner{}
	var linked sql.NullString
	err := row.Scan(
		&partner.ID,
		&partner.OwnerID,
		&partner.Name,
		&linked,
		&partner.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if linked.Valid {
		partner.LinkedAccountID = linked.String
	}
	return partner, nil
}

// GetPartner retrieves a partner by ID.
func (s *SQLiteStore) GetPartner(ctx context.Context, id string) (*models.Partner, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+partnerColumns+" FROM partners WHERE id = ?", id)
	partner, err := scanPartner(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get partner: %w", err)
	}
	return partner, nil
}

// GetPartnerByName retrieves a partner by its owner-scoped name.
func (s *SQLiteStore) GetPartnerByName(ctx context.Context, ownerID, name string) (*models.Partner, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+partnerColumns+" FROM partners WHERE owner_id = ? AND name = ?", ownerID, name)
	partner, err := scanPartner(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get partner by name: %w", err)
	}
	return partner, nil
}

// ListPartners returns an account's partners ordered by name, then ID.
func (s *SQLiteStore) ListPartners(ctx context.Context, ownerID string) ([]*models.Partner, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+partnerColumns+" FROM partners WHERE owner_id = ? ORDER BY name, id", ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list partners: %w", err)
	}
	defer rows.Close()

	var partners []*models.Partner
	for rows.Next() {
		partner, err := scanPartner(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan partner: %w", err)
		}
		partners = append(partners, partner)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate partners: %w", err)
	}
	return partners, nil
}
