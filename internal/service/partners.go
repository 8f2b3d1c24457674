package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aokihara/kashikari/internal/models"
	"github.com/aokihara/kashikari/internal/storage"
)

// PartnerService maintains each account's partner address book and the
// bidirectional links that connect it to other accounts in the group.
type PartnerService struct {
	store storage.Store
}

// NewPartnerService creates a new PartnerService.
func NewPartnerService(store storage.Store) *PartnerService {
	return &PartnerService{store: store}
}

// List returns the owner's partners, name ascending with id as tie-break.
func (s *PartnerService) List(ctx context.Context, ownerID string) ([]*models.Partner, error) {
	if _, err := requireAccount(ctx, s.store, ownerID); err != nil {
		return nil, err
	}
	return s.store.ListPartners(ctx, ownerID)
}

// Create adds a partner to the owner's address book. The name must be
// unique per owner; a supplied linked account must exist.
func (s *PartnerService) Create(ctx context.Context, ownerID, name, linkedAccountID string) (*models.Partner, error) {
	if _, err := requireAccount(ctx, s.store, ownerID); err != nil {
		return nil, err
	}

	name, err := validateName(name)
	if err != nil {
		return nil, err
	}

	existing, err := s.store.GetPartnerByName(ctx, ownerID, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("partner %q: %w", name, models.ErrDuplicatePartner)
	}

	if linkedAccountID != "" {
		linked, err := s.store.GetAccount(ctx, linkedAccountID)
		if err != nil {
			return nil, err
		}
		if linked == nil {
			return nil, fmt.Errorf("account %s: %w", linkedAccountID, models.ErrLinkedAccountNotFound)
		}
	}

	partner := &models.Partner{
		OwnerID:         ownerID,
		Name:            name,
		LinkedAccountID: linkedAccountID,
	}
	if err := s.store.CreatePartner(ctx, partner); err != nil {
		return nil, err
	}

	slog.Info("Partner created", "partner_id", partner.ID, "owner_id", ownerID)
	return partner, nil
}

// MutualPairs builds the symmetric partner rows that connect a joining
// account with every existing member: one row owned by the newcomer
// pointing at each member, and one row owned by each member pointing back.
// The caller persists the whole batch atomically (storage.Store.CreateMember).
func MutualPairs(newAccount *models.Account, existingMembers []*models.Account) []*models.Partner {
	pairs := make([]*models.Partner, 0, 2*len(existingMembers))
	for _, member := range existingMembers {
		pairs = append(pairs,
			&models.Partner{
				OwnerID:         member.ID,
				Name:            newAccount.Name,
				LinkedAccountID: newAccount.ID,
			},
			&models.Partner{
				OwnerID:         newAccount.ID,
				Name:            member.Name,
				LinkedAccountID: member.ID,
			},
		)
	}
	return pairs
}
