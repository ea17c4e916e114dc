package store_test

import (
	"context"
	"errors"
	"testing"

	"github.com/nhle/taskflow/internal/model"
	"github.com/nhle/taskflow/tests/testutil"
)

func TestCreateUserAndLookup(t *testing.T) {
	ctx := context.Background()
	s := testutil.NewTestStore(t)

	userID, err := s.CreateUser(ctx, "Alice", "alice@example.com", "digest1")
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if userID != "u0001" {
		t.Errorf("expected first user id u0001, got %s", userID)
	}

	byEmail, err := s.GetUserByEmail(ctx, "alice@example.com")
	if err != nil {
		t.Fatalf("GetUserByEmail: %v", err)
	}
	if byEmail.UserID != userID || byEmail.Username != "Alice" || byEmail.Password != "digest1" {
		t.Errorf("unexpected user: %+v", byEmail)
	}
	if byEmail.Theme != "Light" {
		t.Errorf("expected default Light theme, got %s", byEmail.Theme)
	}

	byID, err := s.GetUserByID(ctx, userID)
	if err != nil {
		t.Fatalf("GetUserByID: %v", err)
	}
	if byID.Email != "alice@example.com" {
		t.Errorf("unexpected email %s", byID.Email)
	}
}

func TestCreateUserEmailTaken(t *testing.T) {
	ctx := context.Background()
	s := testutil.NewTestStore(t)

	if _, err := s.CreateUser(ctx, "Alice", "alice@example.com", "digest1"); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	_, err := s.CreateUser(ctx, "Alice Again", "alice@example.com", "digest2")
	if !errors.Is(err, model.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestGetUserNotFound(t *testing.T) {
	ctx := context.Background()
	s := testutil.NewTestStore(t)

	if _, err := s.GetUserByEmail(ctx, "ghost@example.com"); !errors.Is(err, model.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	if _, err := s.GetUserByID(ctx, "u9999"); !errors.Is(err, model.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUpdateUserTheme(t *testing.T) {
	ctx := context.Background()
	s := testutil.NewTestStore(t)

	userID, err := s.CreateUser(ctx, "Alice", "alice@example.com", "digest1")
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if err := s.UpdateUserTheme(ctx, userID, "Dark"); err != nil {
		t.Fatalf("UpdateUserTheme: %v", err)
	}
	user, err := s.GetUserByID(ctx, userID)
	if err != nil {
		t.Fatalf("GetUserByID: %v", err)
	}
	if user.Theme != "Dark" {
		t.Errorf("expected Dark theme, got %s", user.Theme)
	}

	if err := s.UpdateUserTheme(ctx, "u9999", "Dark"); !errors.Is(err, model.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
