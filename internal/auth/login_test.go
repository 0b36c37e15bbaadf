package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"userProfileManagement/internal/testutil"
	"userProfileManagement/models"
	"userProfileManagement/repository"
)

func TestAdminLogin(t *testing.T) {
	d := testutil.OpenInMemoryDB(t, "adminlogin")
	users := repository.NewUserRepository(d)
	admins := repository.NewAdminRepository(d)
	ctx := context.Background()

	u, err := users.Create(ctx, "alice")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := users.UpdateRoleByUsername(ctx, "alice", models.RoleAdmin); err != nil {
		t.Fatalf("promote: %v", err)
	}
	if err := admins.SetPassword(ctx, u.ID, "secret"); err != nil {
		t.Fatalf("set password: %v", err)
	}

	tok, err := AdminLogin(ctx, users, admins, testSecret, "alice", "secret", time.Hour)
	if err != nil {
		t.Fatalf("AdminLogin: %v", err)
	}
	p, err := parseJWT(tok, testSecret)
	if err != nil || p.Name != "alice" || p.Kind != KindAdmin {
		t.Fatalf("issued token invalid: %+v err=%v", p, err)
	}

	// Wrong password
	if _, err := AdminLogin(ctx, users, admins, testSecret, "alice", "nope", time.Hour); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	// Unknown user
	if _, err := AdminLogin(ctx, users, admins, testSecret, "ghost", "secret", time.Hour); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAdminLogin_NonAdminRejected(t *testing.T) {
	d := testutil.OpenInMemoryDB(t, "adminlogin2")
	users := repository.NewUserRepository(d)
	admins := repository.NewAdminRepository(d)
	ctx := context.Background()

	u, err := users.Create(ctx, "bob")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	// A credential row alone must not grant admin login while the role says otherwise.
	if err := admins.SetPassword(ctx, u.ID, "secret"); err != nil {
		t.Fatalf("set password: %v", err)
	}
	if _, err := AdminLogin(ctx, users, admins, testSecret, "bob", "secret", time.Hour); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for non-admin, got %v", err)
	}
}
