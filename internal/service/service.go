// Package service implements the core operations of the ledger: identity
// resolution, the partner graph, the transaction ledger, balance
// aggregation, and the group/invite lifecycle.
//
// Every operation takes the acting account's id as an explicit argument —
// there is no ambient session state. Services hold no mutable state of their
// own; every aggregate is recomputed from the store on each read.
package service

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/aokihara/kashikari/internal/models"
	"github.com/aokihara/kashikari/internal/storage"
)

// maxNameLen bounds display names for accounts, partners and groups.
const maxNameLen = 50

// validateName trims the name and checks the 1..maxNameLen length rule.
func validateName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%w: name is required", models.ErrValidation)
	}
	if utf8.RuneCountInString(name) > maxNameLen {
		return "", fmt.Errorf("%w: name must be at most %d characters", models.ErrValidation, maxNameLen)
	}
	return name, nil
}

// requireAccount loads an account and turns absence into ErrAccountNotFound.
func requireAccount(ctx context.Context, store storage.Store, id string) (*models.Account, error) {
	if id == "" {
		return nil, models.ErrUnauthenticated
	}
	account, err := store.GetAccount(ctx, id)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, fmt.Errorf("account %s: %w", id, models.ErrAccountNotFound)
	}
	return account, nil
}
