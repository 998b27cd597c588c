package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/realcore/spendenapp/internal/apperror"
)

// testService spins up a miniredis-backed auth service with a plaintext
// credential.
func testService(t *testing.T, password string, ttl time.Duration) (AuthService, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return NewAuthService(NewChecker(password, ""), rdb, ttl), mr
}

func assertAppError(t *testing.T, err error, expectedCode int) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error with code %d, got nil", expectedCode)
	}
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *apperror.AppError, got %T: %v", err, err)
	}
	if appErr.Code != expectedCode {
		t.Errorf("expected status %d, got %d (message: %s)", expectedCode, appErr.Code, appErr.Message)
	}
}

// --- Login Tests ---

func TestLogin_Success(t *testing.T) {
	svc, _ := testService(t, "geheim", time.Hour)

	token, err := svc.Login(context.Background(), "geheim", "203.0.113.9")
	if err != nil {
		t.Fatalf("expected login to succeed, got %v", err)
	}
	if len(token) != sessionTokenBytes*2 {
		t.Errorf("expected %d-char hex token, got %d chars", sessionTokenBytes*2, len(token))
	}

	session, err := svc.ValidateSession(context.Background(), token)
	if err != nil {
		t.Fatalf("expected fresh session to validate, got %v", err)
	}
	if session.ClientIP != "203.0.113.9" {
		t.Errorf("expected client ip recorded, got %q", session.ClientIP)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, _ := testService(t, "geheim", time.Hour)

	_, err := svc.Login(context.Background(), "falsch", "203.0.113.9")
	assertAppError(t, err, 401)
}

func TestLogin_EmptyConfiguredPasswordRejectsEverything(t *testing.T) {
	svc, _ := testService(t, "", time.Hour)

	_, err := svc.Login(context.Background(), "", "203.0.113.9")
	assertAppError(t, err, 401)
}

func TestLogin_TokensAreUnique(t *testing.T) {
	svc, _ := testService(t, "geheim", time.Hour)

	t1, err := svc.Login(context.Background(), "geheim", "ip")
	if err != nil {
		t.Fatal(err)
	}
	t2, err := svc.Login(context.Background(), "geheim", "ip")
	if err != nil {
		t.Fatal(err)
	}
	if t1 == t2 {
		t.Error("expected distinct session tokens per login")
	}
}

// --- Session Tests ---

func TestValidateSession_UnknownToken(t *testing.T) {
	svc, _ := testService(t, "geheim", time.Hour)

	_, err := svc.ValidateSession(context.Background(), "deadbeef")
	assertAppError(t, err, 401)
}

func TestValidateSession_EmptyToken(t *testing.T) {
	svc, _ := testService(t, "geheim", time.Hour)

	_, err := svc.ValidateSession(context.Background(), "")
	assertAppError(t, err, 401)
}

func TestValidateSession_ExpiresWithTTL(t *testing.T) {
	svc, mr := testService(t, "geheim", time.Minute)

	token, err := svc.Login(context.Background(), "geheim", "ip")
	if err != nil {
		t.Fatal(err)
	}

	mr.FastForward(2 * time.Minute)

	_, err = svc.ValidateSession(context.Background(), token)
	assertAppError(t, err, 401)
}

func TestDestroySession(t *testing.T) {
	svc, _ := testService(t, "geheim", time.Hour)

	token, err := svc.Login(context.Background(), "geheim", "ip")
	if err != nil {
		t.Fatal(err)
	}

	if err := svc.DestroySession(context.Background(), token); err != nil {
		t.Fatalf("expected destroy to succeed, got %v", err)
	}

	_, err = svc.ValidateSession(context.Background(), token)
	assertAppError(t, err, 401)
}

func TestDestroySession_EmptyTokenIsNoop(t *testing.T) {
	svc, _ := testService(t, "geheim", time.Hour)
	if err := svc.DestroySession(context.Background(), ""); err != nil {
		t.Fatalf("expected no-op, got %v", err)
	}
}
