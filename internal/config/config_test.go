package config

import (
	"os"
	"strings"
	"testing"
	"time"
)

func TestLoadWithDefaults_Succeeds(t *testing.T) {
	// Ensure envs are clean to use defaults
	os.Unsetenv("DB_PATH")
	os.Unsetenv("GRPC_ADDRESS")
	os.Unsetenv("JWT_SECRET")
	os.Unsetenv("TOKEN_TTL_MINUTES")
	cfg, err := LoadWithDefaults()
	if err != nil {
		t.Fatalf("LoadWithDefaults: %v", err)
	}
	if cfg.GRPC.Address == "" || cfg.Database.Path == "" || cfg.Auth.JWTSecret == "" {
		t.Fatalf("unexpected empty defaults: %+v", cfg)
	}
	if cfg.Auth.TokenTTL != time.Hour {
		t.Fatalf("default TokenTTL = %s, want 1h", cfg.Auth.TokenTTL)
	}
}

func TestLoad_RequiresJWTSecret(t *testing.T) {
	// Clear JWT_SECRET ensures error
	os.Unsetenv("JWT_SECRET")
	// Other vars can be set or default
	t.Setenv("DB_PATH", "test.db")
	t.Setenv("GRPC_ADDRESS", ":1234")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error when JWT_SECRET is not set")
	}
	// When set, it should succeed
	t.Setenv("JWT_SECRET", "x")
	if _, err := Load(); err != nil {
		t.Fatalf("Load with secret set: %v", err)
	}
}

func TestLoad_InvalidTTLRejected(t *testing.T) {
	t.Setenv("JWT_SECRET", "x")
	t.Setenv("TOKEN_TTL_MINUTES", "not-a-number")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid TOKEN_TTL_MINUTES")
	}
}

func TestConfig_StringMasksSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "super-secret-value")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	s := cfg.String()
	if s == "" {
		t.Fatalf("empty String()")
	}
	if strings.Contains(s, "super-secret-value") {
		t.Fatalf("secret leaked in String(): %s", s)
	}
}
