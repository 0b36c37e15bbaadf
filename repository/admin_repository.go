package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// AdminRepository stores admin login credentials. Only the bcrypt hash of a
// password ever touches the database; plaintext stays on the model.
type AdminRepository struct {
	db *sql.DB
}

func NewAdminRepository(db *sql.DB) *AdminRepository {
	return &AdminRepository{db: db}
}

// SetPassword hashes the plaintext password and upserts it for the user.
func (r *AdminRepository) SetPassword(ctx context.Context, userID int64, password string) error {
	if password == "" {
		return errors.New("password is empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	_, err = r.db.ExecContext(ctx, `INSERT INTO admin_credentials (user_id, password_hash) VALUES (?, ?)
		ON CONFLICT(user_id) DO UPDATE SET password_hash = excluded.password_hash, updated_at = CURRENT_TIMESTAMP`,
		userID, string(hash))
	return err
}

// Verify reports whether the plaintext password matches the stored hash.
// A user with no stored credential never verifies.
func (r *AdminRepository) Verify(ctx context.Context, userID int64, password string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var hash string
	err := r.db.QueryRowContext(ctx, `SELECT password_hash FROM admin_credentials WHERE user_id = ?`, userID).Scan(&hash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return false, nil
	}
	return true, nil
}

// Delete removes the stored credential for the user, if any.
func (r *AdminRepository) Delete(ctx context.Context, userID int64) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	_, err := r.db.ExecContext(ctx, `DELETE FROM admin_credentials WHERE user_id = ?`, userID)
	return err
}
