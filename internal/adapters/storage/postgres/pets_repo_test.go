package postgres

import (
	"context"
	"os"
	"testing"

	"pet-hotel-registry/internal/domain/pets"
)

// Necesita una base real: DB_DSN=postgres://... go test ./internal/adapters/storage/postgres
func openTestDB(t *testing.T) *PetsRepo {
	t.Helper()
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		t.Skip("DB_DSN not set")
	}
	db, err := Open(dsn)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := Migrate(context.Background(), db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return NewPetsRepo(db)
}

func TestPetsRepo_SessionScopedPrepend(t *testing.T) {
	repo := openTestDB(t)
	ctx := context.Background()

	seed, err := pets.DefaultSeed()
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	if err := repo.Add(ctx, pets.Pet{ID: "early"}); err != ErrNotInitialized {
		t.Fatalf("expected ErrNotInitialized, got %v", err)
	}
	if err := repo.Initialize(ctx, seed); err != nil {
		t.Fatalf("initialize: %v", err)
	}
	if err := repo.Initialize(ctx, seed); err != pets.ErrAlreadyInitialized {
		t.Fatalf("expected ErrAlreadyInitialized, got %v", err)
	}

	added := seed[0]
	added.ID = "new-1"
	added.Name = "Max"
	if err := repo.Add(ctx, added); err != nil {
		t.Fatalf("add: %v", err)
	}

	items, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != len(seed)+1 || items[0].ID != "new-1" || items[1].ID != seed[0].ID {
		t.Fatalf("unexpected order, got %d items starting with %q", len(items), items[0].ID)
	}
	if len(items[0].Vaccines) != len(seed[0].Vaccines) {
		t.Fatalf("vaccines not round-tripped: %+v", items[0].Vaccines)
	}

	// Otra sesión sobre la misma base no ve estas filas.
	other := NewPetsRepo(repo.db)
	if err := other.Initialize(ctx, nil); err != nil {
		t.Fatalf("initialize other: %v", err)
	}
	otherItems, err := other.List(ctx)
	if err != nil {
		t.Fatalf("list other: %v", err)
	}
	if len(otherItems) != 0 {
		t.Fatalf("expected empty registry for a new session, got %d", len(otherItems))
	}
}
