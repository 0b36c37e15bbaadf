package profile

import (
	"context"
	"errors"
	"fmt"

	"userProfileManagement/internal/clock"
	"userProfileManagement/models"
	"userProfileManagement/repository"
)

// ErrNotFound is returned when the requested user does not exist.
var ErrNotFound = errors.New("user not found")

// Service derives profile values for stored users. The clock is injected so
// age computations are deterministic under test.
type Service struct {
	users repository.UserRepositoryI
	clk   clock.Clock
}

func NewService(users repository.UserRepositoryI, clk clock.Clock) *Service {
	if clk == nil {
		clk = clock.System{}
	}
	return &Service{users: users, clk: clk}
}

// Age returns the user's age in whole years at the clock's current date.
// Parse failures from the model propagate unchanged.
func (s *Service) Age(ctx context.Context, username string) (int, error) {
	u, err := s.get(ctx, username)
	if err != nil {
		return 0, err
	}
	return u.Age(s.clk.Now())
}

// AboutMe returns the user's formatted self-description.
// Missing-field and parse failures from the model propagate unchanged.
func (s *Service) AboutMe(ctx context.Context, username string) (string, error) {
	u, err := s.get(ctx, username)
	if err != nil {
		return "", err
	}
	return u.AboutMe(s.clk.Now())
}

func (s *Service) get(ctx context.Context, username string) (*models.User, error) {
	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if u == nil {
		return nil, ErrNotFound
	}
	return u, nil
}
