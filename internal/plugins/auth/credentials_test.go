package auth

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"testing"

	"golang.org/x/crypto/argon2"
)

// hashForTest produces a PHC-format argon2id hash with small parameters so
// the test stays fast.
func hashForTest(t *testing.T, password string) string {
	t.Helper()
	salt := make([]byte, 16)
	if _, err := rand.Read(salt); err != nil {
		t.Fatalf("generating salt: %v", err)
	}
	hash := argon2.IDKey([]byte(password), salt, 1, 8*1024, 1, 32)
	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, 8*1024, 1, 1,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(hash))
}

func TestPlainChecker(t *testing.T) {
	c := NewChecker("geheim", "")
	if !c.Check("geheim") {
		t.Error("expected matching password to pass")
	}
	if c.Check("falsch") {
		t.Error("expected wrong password to fail")
	}
	if c.Check("") {
		t.Error("expected empty password to fail")
	}
}

func TestPlainChecker_EmptyConfiguredSecret(t *testing.T) {
	c := NewChecker("", "")
	if c.Check("") {
		t.Error("an unset credential must never authenticate")
	}
}

func TestArgonChecker(t *testing.T) {
	c := NewChecker("", hashForTest(t, "geheim"))
	if !c.Check("geheim") {
		t.Error("expected matching password to verify")
	}
	if c.Check("falsch") {
		t.Error("expected wrong password to fail")
	}
}

func TestArgonChecker_MalformedHash(t *testing.T) {
	for _, encoded := range []string{
		"",
		"not-a-hash",
		"$argon2id$v=19$m=65536,t=3,p=4$onlyonesection",
		"$argon2i$v=19$m=65536,t=3,p=4$c2FsdA$aGFzaA",
		"$argon2id$v=19$m=x,t=y,p=z$c2FsdA$aGFzaA",
	} {
		c := NewChecker("", encoded)
		if c.Check("geheim") {
			t.Errorf("expected malformed hash %q to reject everything", encoded)
		}
	}
}

func TestNewChecker_HashWinsOverPlaintext(t *testing.T) {
	c := NewChecker("plaintext-secret", hashForTest(t, "hashed-secret"))
	if c.Check("plaintext-secret") {
		t.Error("expected plaintext to be ignored when a hash is configured")
	}
	if !c.Check("hashed-secret") {
		t.Error("expected hash credential to win")
	}
}
