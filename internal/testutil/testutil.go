// Package testutil provides helpers for integration tests.
package testutil

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/usergate/usergate/internal/repository"
)

// RequireEnv returns an environment variable or skips the test if missing.
func RequireEnv(t testing.TB, key string) string {
	t.Helper()
	value := os.Getenv(key)
	if value == "" {
		t.Skipf("%s not set", key)
	}
	return value
}

// TestDatabase is the database name used by integration tests.
// Kept separate from any development database so cleanup is safe.
const TestDatabase = "usergate_test"

// NewTestRepository connects to the store named by MONGO_URI and resets the
// users collection. The connection is closed and the collection cleared again
// when the test finishes.
func NewTestRepository(t testing.TB, ctx context.Context) *repository.Repository {
	t.Helper()

	uri := RequireEnv(t, "MONGO_URI")

	repo, err := repository.New(ctx, uri, TestDatabase)
	if err != nil {
		t.Fatalf("connect test store: %v", err)
	}

	if err := repo.DeleteAllUsers(ctx); err != nil {
		t.Fatalf("reset users collection: %v", err)
	}

	t.Cleanup(func() {
		if err := repo.DeleteAllUsers(ctx); err != nil {
			fmt.Fprintln(os.Stderr, "cleanup users collection:", err)
		}
		if err := repo.Close(ctx); err != nil {
			fmt.Fprintln(os.Stderr, "close test store:", err)
		}
	})

	return repo
}
