// Command seed bootstraps a database with one group, its admin account and
// optional members, printing the invite code for further joins.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/aokihara/kashikari/internal/auth"
	"github.com/aokihara/kashikari/internal/models"
	"github.com/aokihara/kashikari/internal/service"
	"github.com/aokihara/kashikari/internal/storage/sqlite"
	"github.com/aokihara/kashikari/pkg/logging"
)

func main() {
	logging.Setup()

	var (
		dbPath    = flag.String("db", "./data/kashikari.db", "path to the SQLite database")
		groupName = flag.String("group", "Family", "name of the group to create")
		adminName = flag.String("admin", "admin", "name of the founding admin account")
		password  = flag.String("password", "", "password for every seeded account (min 8 chars)")
		members   = flag.String("members", "", "comma-separated member names to join after the admin")
	)
	flag.Parse()

	if *password == "" {
		slog.Error("-password is required")
		os.Exit(1)
	}

	store, err := sqlite.New(*dbPath)
	if err != nil {
		slog.Error("Failed to open database", "path", *dbPath, "error", err)
		os.Exit(1)
	}
	defer store.Close()

	ctx := context.Background()

	if err := auth.ValidatePassword(*password); err != nil {
		slog.Error("Rejected password", "error", err)
		os.Exit(1)
	}
	hash, err := auth.HashPassword(*password)
	if err != nil {
		slog.Error("Failed to hash password", "error", err)
		os.Exit(1)
	}

	group := &models.Group{
		Name:       *groupName,
		InviteCode: uuid.New().String(),
	}
	admin := &models.Account{
		Name:         *adminName,
		PasswordHash: hash,
		Role:         models.RoleAdmin,
	}
	if err := store.CreateGroup(ctx, group, admin); err != nil {
		slog.Error("Failed to create group", "error", err)
		os.Exit(1)
	}
	slog.Info("Group created",
		"group_id", group.ID,
		"admin_id", admin.ID,
		"invite_code", group.InviteCode,
	)

	groups := service.NewGroupService(store)
	for _, name := range strings.Split(*members, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		account, err := groups.Join(ctx, group.InviteCode, name, *password)
		if err != nil {
			slog.Error("Failed to add member", "name", name, "error", err)
			os.Exit(1)
		}
		slog.Info("Member added", "account_id", account.ID, "name", name)
	}
}
