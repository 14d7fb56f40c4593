package service

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/mmynk/petlinks/internal/models"
	"github.com/mmynk/petlinks/internal/storage"
	"github.com/mmynk/petlinks/internal/storage/sqlite"
)

// setupTestService creates a KennelService backed by a temp SQLite database
func setupTestService(t *testing.T) *KennelService {
	t.Helper()

	// Create temp database
	tmpFile, err := os.CreateTemp("", "test-*.db")
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	tmpFile.Close()

	store, err := sqlite.New(tmpFile.Name())
	if err != nil {
		os.Remove(tmpFile.Name())
		t.Fatalf("failed to create store: %v", err)
	}

	t.Cleanup(func() {
		store.Close()
		os.Remove(tmpFile.Name())
	})

	return NewKennelService(store)
}

func TestSeedDemo(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	fido, err := svc.SeedDemo(ctx)
	if err != nil {
		t.Fatalf("SeedDemo failed: %v", err)
	}

	owners, err := svc.Owners(ctx, fido)
	if err != nil {
		t.Fatalf("Owners failed: %v", err)
	}

	if len(owners) != 2 {
		t.Fatalf("expected 2 owners, got %d", len(owners))
	}

	found := map[string]bool{}
	for _, o := range owners {
		found[o.String()] = true
	}
	if !found["Alice Smith"] {
		t.Error("expected Alice Smith to be an owner")
	}
	if !found["Bob Smith"] {
		t.Error("expected Bob Smith to be an owner")
	}
	if found["Dr Charles The Vet"] {
		t.Error("Dr Charles The Vet must not be an owner")
	}

	links, err := svc.DogLinks(ctx, fido.ID)
	if err != nil {
		t.Fatalf("DogLinks failed: %v", err)
	}
	if len(links) != 3 {
		t.Errorf("expected 3 links for Fido, got %d", len(links))
	}
}

func TestSeedDemoTwice(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	first, err := svc.SeedDemo(ctx)
	if err != nil {
		t.Fatalf("SeedDemo failed: %v", err)
	}
	second, err := svc.SeedDemo(ctx)
	if err != nil {
		t.Fatalf("second SeedDemo failed: %v", err)
	}

	if first.ID == second.ID {
		t.Error("expected a new dog for each seed")
	}

	owners, err := svc.Owners(ctx, first)
	if err != nil {
		t.Fatalf("Owners failed: %v", err)
	}
	if len(owners) != 2 {
		t.Errorf("expected 2 owners of the first Fido, got %d", len(owners))
	}
}

func TestRegisterDuplicateLink(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	alice := models.NewPerson("Alice")
	fido := models.NewDog("Fido")
	if err := svc.Register(ctx, alice, fido, models.NewLink(alice, fido, true)); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	err := svc.Register(ctx, models.NewLink(alice, fido, true))
	if !errors.Is(err, storage.ErrConstraint) {
		t.Fatalf("expected ErrConstraint, got %v", err)
	}

	links, err := svc.PersonLinks(ctx, alice.ID)
	if err != nil {
		t.Fatalf("PersonLinks failed: %v", err)
	}
	if len(links) != 1 {
		t.Errorf("expected 1 link for Alice, got %d", len(links))
	}
}

func TestDog(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	fido, err := svc.SeedDemo(ctx)
	if err != nil {
		t.Fatalf("SeedDemo failed: %v", err)
	}

	got, err := svc.Dog(ctx, fido.ID)
	if err != nil {
		t.Fatalf("Dog failed: %v", err)
	}
	if got.Name != "Fido" {
		t.Errorf("name: expected 'Fido', got '%s'", got.Name)
	}

	if _, err := svc.Dog(ctx, fido.ID+100); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestOwnersNoOwners(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	vet := models.NewPerson("Dr Charles The Vet")
	stray := models.NewDog("Stray")
	if err := svc.Register(ctx, vet, stray, models.NewLink(vet, stray, false)); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	owners, err := svc.Owners(ctx, stray)
	if err != nil {
		t.Fatalf("Owners failed: %v", err)
	}
	if len(owners) != 0 {
		t.Errorf("expected no owners, got %d", len(owners))
	}
}
