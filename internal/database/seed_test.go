package database

import (
	"testing"

	"github.com/pressly/goose/v3"
)

func TestSeedIdempotent(t *testing.T) {
	db, err := Connect(testDSN())
	if err != nil {
		t.Skipf("skipping: DB not available: %v", err)
	}
	defer db.Close()

	if err := Migrate(db); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	goose.SetBaseFS(nil)

	// Seed creates data only when no categories exist, so calling it
	// twice must not duplicate anything. The database is not cleared
	// first because other test packages may share it.
	if err := Seed(db); err != nil {
		t.Fatalf("first Seed: %v", err)
	}
	if err := Seed(db); err != nil {
		t.Fatalf("second Seed: %v", err)
	}

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM categories").Scan(&count); err != nil {
		t.Fatalf("count categories: %v", err)
	}
	if count < 1 {
		t.Errorf("expected at least 1 category after seeding, got %d", count)
	}
}
