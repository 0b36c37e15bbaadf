package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"userProfileManagement/models"
	"userProfileManagement/repository"
)

// ErrInvalidCredentials is returned when a login attempt fails. The message
// is deliberately identical for unknown users and wrong passwords.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AdminLogin verifies an admin's password against the stored bcrypt hash and
// issues a bearer token with kind "admin". Non-admin users cannot log in this
// way regardless of credentials.
func AdminLogin(ctx context.Context, users repository.UserRepositoryI, admins repository.AdminRepositoryI,
	secret, username, password string, ttl time.Duration) (string, error) {
	u, err := users.GetByUsername(ctx, username)
	if err != nil {
		return "", fmt.Errorf("get user: %w", err)
	}
	if u == nil || strings.ToLower(strings.TrimSpace(u.Role)) != models.RoleAdmin {
		return "", ErrInvalidCredentials
	}
	ok, err := admins.Verify(ctx, u.ID, password)
	if err != nil {
		return "", fmt.Errorf("verify credentials: %w", err)
	}
	if !ok {
		return "", ErrInvalidCredentials
	}
	return IssueHS256(secret, u.Username, KindAdmin, ttl)
}
