package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/nhle/taskflow/internal/model"
)

// CreateUser registers an account and returns the generated user ID. The
// uniqueness check, ID allocation, and insert share one transaction, with
// the UNIQUE(email) constraint backing the check.
func (s *SQLiteStore) CreateUser(ctx context.Context, username, email, digest string) (string, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return "", &model.DataError{Op: "creating user", Err: err}
	}
	defer tx.Rollback()

	var existing int
	err = tx.GetContext(ctx, &existing,
		"SELECT COUNT(*) FROM users WHERE email = ?", email)
	if err != nil {
		return "", &model.DataError{Op: "checking existing email", Err: err}
	}
	if existing > 0 {
		return "", model.ErrEmailTaken
	}

	var maxSuffix int
	err = tx.GetContext(ctx, &maxSuffix,
		"SELECT COALESCE(MAX(CAST(SUBSTR(user_id, 2) AS INTEGER)), 0) FROM users")
	if err != nil {
		return "", &model.DataError{Op: "allocating user id", Err: err}
	}
	userID := model.FormatUserID(maxSuffix + 1)

	_, err = tx.ExecContext(ctx, `
		INSERT INTO users (user_id, username, email, password, theme, created_at)
		VALUES (?, ?, ?, ?, 'Light', ?)`,
		userID, username, email, digest, time.Now().UTC(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return "", model.ErrEmailTaken
		}
		return "", &model.DataError{Op: "inserting user", Err: err}
	}

	if err := tx.Commit(); err != nil {
		return "", &model.DataError{Op: "committing user", Err: err}
	}
	return userID, nil
}

// GetUserByEmail looks up an account by email.
func (s *SQLiteStore) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := s.db.GetContext(ctx, &user,
		"SELECT user_id, username, email, password, theme, created_at FROM users WHERE email = ?",
		email,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrUserNotFound
	}
	if err != nil {
		return nil, &model.DataError{Op: "querying user by email", Err: err}
	}
	return &user, nil
}

// GetUserByID looks up an account by its user ID.
func (s *SQLiteStore) GetUserByID(ctx context.Context, userID string) (*model.User, error) {
	var user model.User
	err := s.db.GetContext(ctx, &user,
		"SELECT user_id, username, email, password, theme, created_at FROM users WHERE user_id = ?",
		userID,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrUserNotFound
	}
	if err != nil {
		return nil, &model.DataError{Op: "querying user by id", Err: err}
	}
	return &user, nil
}

// UpdateUserTheme stores the user's display theme preference.
func (s *SQLiteStore) UpdateUserTheme(ctx context.Context, userID, theme string) error {
	result, err := s.db.ExecContext(ctx,
		"UPDATE users SET theme = ? WHERE user_id = ?", theme, userID)
	if err != nil {
		return &model.DataError{Op: "updating user theme", Err: err}
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return model.ErrUserNotFound
	}
	return nil
}
