package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/aokihara/kashikari/internal/auth"
	"github.com/aokihara/kashikari/internal/models"
	"github.com/aokihara/kashikari/internal/storage"
)

// GroupService owns the group lifecycle: invite codes, joining, renaming
// and member removal.
type GroupService struct {
	store storage.Store
}

// NewGroupService creates a new GroupService.
func NewGroupService(store storage.Store) *GroupService {
	return &GroupService{store: store}
}

// GroupByInviteCode resolves an invite code for the public join page.
func (s *GroupService) GroupByInviteCode(ctx context.Context, code string) (*models.Group, error) {
	group, err := s.store.GetGroupByInviteCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, models.ErrInvalidInviteCode
	}
	return group, nil
}

// Join registers a new member via invite code and bootstraps the mutual
// partner graph: for each of the N existing members, one partner row owned
// by the newcomer and one pointing back, 2N rows total, committed together
// with the account in a single store transaction. If any validation fails
// after the code resolved, nothing is created.
func (s *GroupService) Join(ctx context.Context, code, name, password string) (*models.Account, error) {
	group, err := s.GroupByInviteCode(ctx, code)
	if err != nil {
		return nil, err
	}

	name, err = validateName(name)
	if err != nil {
		return nil, err
	}
	if err := auth.ValidatePassword(password); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrValidation, err)
	}

	existing, err := s.store.GetAccountByName(ctx, group.ID, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("account name %q: %w", name, models.ErrDuplicateName)
	}

	members, err := s.store.ListGroupAccounts(ctx, group.ID)
	if err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	account := &models.Account{
		// Assigned up front so the partner pairs can reference it.
		ID:           uuid.New().String(),
		Name:         name,
		PasswordHash: hash,
		GroupID:      group.ID,
		Role:         models.RoleMember,
	}

	pairs := MutualPairs(account, members)
	if err := s.store.CreateMember(ctx, account, pairs); err != nil {
		return nil, err
	}

	slog.Info("Member joined",
		"account_id", account.ID,
		"group_id", group.ID,
		"partner_pairs", len(members),
	)
	return account, nil
}

// Info returns the actor's group and its member list.
func (s *GroupService) Info(ctx context.Context, actorID string) (*models.Group, []*models.Account, error) {
	actor, err := requireAccount(ctx, s.store, actorID)
	if err != nil {
		return nil, nil, err
	}

	group, err := s.store.GetGroup(ctx, actor.GroupID)
	if err != nil {
		return nil, nil, err
	}
	if group == nil {
		return nil, nil, fmt.Errorf("group %s: %w", actor.GroupID, models.ErrNotFound)
	}

	members, err := s.store.ListGroupAccounts(ctx, actor.GroupID)
	if err != nil {
		return nil, nil, err
	}
	return group, members, nil
}

// RegenerateInviteCode rotates the actor's group invite code. Admin only;
// the old code stops resolving as soon as this returns.
func (s *GroupService) RegenerateInviteCode(ctx context.Context, actorID string) (string, error) {
	actor, err := s.requireAdmin(ctx, actorID)
	if err != nil {
		return "", err
	}

	code := uuid.New().String()
	if err := s.store.UpdateInviteCode(ctx, actor.GroupID, code); err != nil {
		return "", err
	}

	slog.Info("Invite code rotated", "group_id", actor.GroupID, "admin_id", actor.ID)
	return code, nil
}

// UpdateGroupName renames the actor's group. Admin only.
func (s *GroupService) UpdateGroupName(ctx context.Context, actorID, name string) error {
	actor, err := s.requireAdmin(ctx, actorID)
	if err != nil {
		return err
	}

	name, err = validateName(name)
	if err != nil {
		return err
	}

	if err := s.store.UpdateGroupName(ctx, actor.GroupID, name); err != nil {
		return err
	}

	slog.Info("Group renamed", "group_id", actor.GroupID, "admin_id", actor.ID)
	return nil
}

// RemoveMember removes a fellow member from the actor's group. Admin only,
// never self. Partner links referencing the member are severed in both
// directions and the account row is deleted, all atomically; the member's
// transactions and the partner rows themselves are retained.
func (s *GroupService) RemoveMember(ctx context.Context, actorID, targetID string) error {
	actor, err := s.requireAdmin(ctx, actorID)
	if err != nil {
		return err
	}
	if targetID == actorID {
		return models.ErrSelfRemoval
	}

	target, err := s.store.GetAccount(ctx, targetID)
	if err != nil {
		return err
	}
	if target == nil {
		return fmt.Errorf("account %s: %w", targetID, models.ErrNotFound)
	}
	if target.GroupID != actor.GroupID {
		return fmt.Errorf("account %s is in a different group: %w", targetID, models.ErrForbidden)
	}

	if err := s.store.RemoveAccount(ctx, targetID); err != nil {
		return err
	}

	slog.Info("Member removed",
		"account_id", targetID,
		"group_id", actor.GroupID,
		"admin_id", actor.ID,
	)
	return nil
}

func (s *GroupService) requireAdmin(ctx context.Context, actorID string) (*models.Account, error) {
	actor, err := requireAccount(ctx, s.store, actorID)
	if err != nil {
		return nil, err
	}
	if actor.Role != models.RoleAdmin {
		return nil, fmt.Errorf("admin role required: %w", models.ErrForbidden)
	}
	return actor, nil
}
