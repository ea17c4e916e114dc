// Package auth covers account registration, credential verification, and
// login-session tokens. Its only contract with the rest of the system is
// handing a verified user_id to the session layer.
package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/nhle/taskflow/internal/model"
	"github.com/nhle/taskflow/internal/store"
)

// Service performs signup and login against the user store.
type Service struct {
	store store.Store
}

// NewService creates an auth Service backed by st.
func NewService(st store.Store) *Service {
	return &Service{store: st}
}

// SignUp validates the registration input, digests the password, and
// creates the account, returning the generated user ID. A registered
// email yields model.ErrEmailTaken.
func (s *Service) SignUp(ctx context.Context, name, email, password string) (string, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)

	if err := ValidateName(name); err != nil {
		return "", err
	}
	if err := ValidateEmail(email); err != nil {
		return "", err
	}
	if err := ValidatePassword(password); err != nil {
		return "", err
	}

	return s.store.CreateUser(ctx, name, email, DigestPassword(email, password))
}

// SignIn verifies credentials and returns the account. Unknown emails
// and wrong passwords both yield model.ErrInvalidCredentials.
func (s *Service) SignIn(ctx context.Context, email, password string) (*model.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, model.ErrInvalidCredentials
	}

	user, err := s.store.GetUserByEmail(ctx, email)
	if errors.Is(err, model.ErrUserNotFound) {
		return nil, model.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if user.Password != DigestPassword(email, password) {
		return nil, model.ErrInvalidCredentials
	}
	return user, nil
}
