package bootstrap

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/OriDaer/Portfolio/internal/database"
	"github.com/OriDaer/Portfolio/internal/repositories"
	"github.com/OriDaer/Portfolio/internal/utils"

	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
)

func newTestUserRepo(t *testing.T) repositories.UserRepository {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on")
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	if err := database.ApplySchema(db); err != nil {
		t.Fatalf("failed to apply schema: %v", err)
	}
	return repositories.NewUserRepository(db, zap.NewNop())
}

func TestSeedOwnerCreatesAccount(t *testing.T) {
	repo := newTestUserRepo(t)
	ctx := context.Background()

	if err := SeedOwner(ctx, repo, zap.NewNop()); err != nil {
		t.Fatalf("SeedOwner returned error: %v", err)
	}

	owner, err := repo.FindByUsername(ctx, SeedUsername)
	if err != nil {
		t.Fatalf("FindByUsername returned error: %v", err)
	}
	if owner == nil {
		t.Fatal("owner account was not created")
	}
	if owner.NombrePublico != SeedNombrePublico {
		t.Errorf("NombrePublico = %q, want %q", owner.NombrePublico, SeedNombrePublico)
	}
	if owner.ProfileImage != SeedProfileImage {
		t.Errorf("ProfileImage = %q, want %q", owner.ProfileImage, SeedProfileImage)
	}
	if owner.AcercaDeMi != SeedAcercaDeMi {
		t.Errorf("AcercaDeMi = %q, want the first-boot greeting", owner.AcercaDeMi)
	}
	if !utils.CheckPasswordHash(SeedPassword, owner.PasswordHash) {
		t.Error("seed password does not verify against the stored hash")
	}
	if owner.PasswordHash == SeedPassword {
		t.Error("seed password stored in plaintext")
	}
}

// A second boot must not touch the existing row, even if the stored values
// have diverged from the seed constants.
func TestSeedOwnerIdempotent(t *testing.T) {
	repo := newTestUserRepo(t)
	ctx := context.Background()

	if err := SeedOwner(ctx, repo, zap.NewNop()); err != nil {
		t.Fatalf("first SeedOwner returned error: %v", err)
	}
	owner, err := repo.FindByUsername(ctx, SeedUsername)
	if err != nil || owner == nil {
		t.Fatalf("owner lookup failed: %v", err)
	}
	if err := repo.UpdateProfile(ctx, owner.ID, "Nombre Cambiado"); err != nil {
		t.Fatalf("UpdateProfile returned error: %v", err)
	}

	if err := SeedOwner(ctx, repo, zap.NewNop()); err != nil {
		t.Fatalf("second SeedOwner returned error: %v", err)
	}

	after, err := repo.FindByUsername(ctx, SeedUsername)
	if err != nil || after == nil {
		t.Fatalf("owner lookup failed: %v", err)
	}
	if after.ID != owner.ID {
		t.Errorf("owner id changed from %d to %d", owner.ID, after.ID)
	}
	if after.NombrePublico != "Nombre Cambiado" {
		t.Errorf("re-seed overwrote NombrePublico: %q", after.NombrePublico)
	}
}
