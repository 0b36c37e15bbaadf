package testutil

import (
	"context"
	"database/sql"
	"testing"

	jwt "github.com/golang-jwt/jwt/v5"
	"google.golang.org/grpc/metadata"

	"userProfileManagement/internal/db"
	"userProfileManagement/models"
	"userProfileManagement/repository"
)

// OpenInMemoryDB opens an in-memory SQLite database and applies migrations.
// Caller is responsible for closing the DB, typically via t.Cleanup.
func OpenInMemoryDB(t *testing.T, name string) *sql.DB {
	t.Helper()
	// Shared cache memory database so that multiple connections share the same DB if needed.
	d, err := db.Open("file:" + name + "?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { _ = d.Close() })
	return d
}

// SeedProfile creates a user and fills in the fields AboutMe needs, returning
// the stored record. Birthdate uses the models.BirthdateLayout form.
func SeedProfile(t *testing.T, users *repository.UserRepository, username, email, bio, birthdate string) *models.User {
	t.Helper()
	ctx := context.Background()
	u, err := users.Create(ctx, username)
	if err != nil {
		t.Fatalf("seed user %s: %v", username, err)
	}
	if err := users.UpdateProfile(ctx, username, email, bio, birthdate); err != nil {
		t.Fatalf("seed profile %s: %v", username, err)
	}
	u.Email, u.Bio, u.Birthdate = email, bio, birthdate
	return u
}

// GenerateJWTHS256 returns a signed JWT string with minimal claims used by the app.
func GenerateJWTHS256(t *testing.T, secret, name, kind string) string {
	t.Helper()
	claims := jwt.MapClaims{
		"name": name,
		"kind": kind,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return s
}

// CtxWithBearer returns a context containing gRPC metadata Authorization header with the given token.
func CtxWithBearer(ctx context.Context, token string) context.Context {
	md := metadata.Pairs("authorization", "Bearer "+token)
	return metadata.NewIncomingContext(ctx, md)
}
