package auth

import (
	"context"
	"testing"
	"time"

	"userProfileManagement/internal/testutil"
)

const testSecret = "test-secret"

func TestParseFromMD_ValidBearer(t *testing.T) {
	tok := testutil.GenerateJWTHS256(t, testSecret, "alice", "enduser")
	ctx := testutil.CtxWithBearer(context.Background(), tok)
	p, err := ParseFromMD(ctx, testSecret)
	if err != nil {
		t.Fatalf("ParseFromMD: %v", err)
	}
	if p.Name != "alice" || p.Kind != KindEndUser {
		t.Fatalf("principal mismatch: %+v", p)
	}
}

func TestParseFromMD_MissingHeader(t *testing.T) {
	_, err := ParseFromMD(context.Background(), testSecret)
	if err == nil {
		t.Fatalf("expected error for missing metadata")
	}
}

func TestParseJWT_WrongSecret(t *testing.T) {
	tok := testutil.GenerateJWTHS256(t, testSecret, "bob", "admin")
	if _, err := parseJWT(tok, "wrong"); err == nil {
		t.Fatalf("expected error for wrong secret")
	}
}

func TestParseJWT_ClaimsValidation(t *testing.T) {
	// Missing name/kind -> invalid
	tok := testutil.GenerateJWTHS256(t, testSecret, "", "")
	if _, err := parseJWT(tok, testSecret); err == nil {
		t.Fatalf("expected invalid claims error")
	}
}

func TestIssueHS256_RoundTrip(t *testing.T) {
	tok, err := IssueHS256(testSecret, "alice", KindAdmin, time.Hour)
	if err != nil {
		t.Fatalf("IssueHS256: %v", err)
	}
	p, err := parseJWT(tok, testSecret)
	if err != nil {
		t.Fatalf("parse issued token: %v", err)
	}
	if p.Name != "alice" || p.Kind != KindAdmin {
		t.Fatalf("principal mismatch: %+v", p)
	}
}

func TestIssueHS256_ExpiredToken(t *testing.T) {
	tok, err := IssueHS256(testSecret, "alice", KindAdmin, -time.Minute)
	if err != nil {
		t.Fatalf("IssueHS256: %v", err)
	}
	if _, err := parseJWT(tok, testSecret); err == nil {
		t.Fatalf("expected error for expired token")
	}
}

func TestIssueHS256_ZeroTTLDoesNotLiveForever(t *testing.T) {
	// A misconfigured zero lifetime must not mint an eternal token.
	tok, err := IssueHS256(testSecret, "alice", KindAdmin, 0)
	if err != nil {
		t.Fatalf("IssueHS256: %v", err)
	}
	if _, err := parseJWT(tok, testSecret); err == nil {
		t.Fatalf("zero-ttl token still validates")
	}
}

func TestIssueHS256_EmptySecret(t *testing.T) {
	if _, err := IssueHS256("", "alice", KindAdmin, time.Hour); err == nil {
		t.Fatalf("expected error for empty secret")
	}
}
