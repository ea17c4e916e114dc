package testutil

import (
	"context"
	"testing"

	"github.com/nhle/taskflow/internal/store"
)

// NewTestStore creates an in-memory SQLiteStore with all migrations applied.
// It automatically closes the store when the test completes.
func NewTestStore(t *testing.T) *store.SQLiteStore {
	t.Helper()

	s, err := store.NewSQLiteStore(":memory:")
	if err != nil {
		t.Fatalf("creating test store: %v", err)
	}

	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("closing test store: %v", err)
		}
	})

	return s
}

// CreateTestUser registers a throwaway account and returns its user ID.
// Plans reference users, so most store tests need one.
func CreateTestUser(t *testing.T, s *store.SQLiteStore) string {
	t.Helper()

	userID, err := s.CreateUser(context.Background(), "Test User", "test@example.com", "digest")
	if err != nil {
		t.Fatalf("creating test user: %v", err)
	}
	return userID
}
