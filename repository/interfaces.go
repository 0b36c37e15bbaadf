package repository

import (
	"context"

	"userProfileManagement/models"
)

// UserRepositoryI defines operations on User entities.
type UserRepositoryI interface {
	Create(ctx context.Context, username string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	List(ctx context.Context, limit, offset int) ([]models.User, error)
	UpdateProfile(ctx context.Context, username, email, bio, birthdate string) error
	UpdateRoleByUsername(ctx context.Context, username, role string) error
	Delete(ctx context.Context, id int64) error
}

// AdminRepositoryI defines operations on admin credentials.
type AdminRepositoryI interface {
	SetPassword(ctx context.Context, userID int64, password string) error
	Verify(ctx context.Context, userID int64, password string) (bool, error)
	Delete(ctx context.Context, userID int64) error
}
