// Package test provides a sqlite-backed store for use in tests.
package test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/verdantlabs/greensense/internal/profile"
	"github.com/verdantlabs/greensense/store"
	"github.com/verdantlabs/greensense/store/db"
)

// NewTestingStore creates a migrated sqlite store in a temp directory. The
// database is torn down with the test.
func NewTestingStore(ctx context.Context, t *testing.T) *store.Store {
	dir := t.TempDir()
	testProfile := &profile.Profile{
		Mode:   "dev",
		Data:   dir,
		Driver: "sqlite",
		DSN:    filepath.Join(dir, "greensense_test.db"),
	}

	dbDriver, err := db.NewDBDriver(testProfile)
	if err != nil {
		t.Fatalf("failed to create db driver: %v", err)
	}

	testStore := store.New(dbDriver, testProfile)
	if err := testStore.Migrate(ctx); err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}
	t.Cleanup(func() {
		if err := testStore.Close(); err != nil {
			t.Logf("failed to close store: %v", err)
		}
	})
	return testStore
}
