package auth

import (
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// CredentialChecker validates the shared admin password. Two
// implementations exist: a constant-time plaintext comparison for the
// ADMIN_PASSWORD variable, and an argon2id verifier for deployments that
// prefer ADMIN_PASSWORD_HASH so the secret never sits in the environment
// in clear text.
type CredentialChecker interface {
	Check(password string) bool
}

// NewChecker picks the implementation for the configured credential pair.
// A non-empty hash wins over a plaintext password.
func NewChecker(plaintext, hash string) CredentialChecker {
	if hash != "" {
		return argonChecker{encoded: hash}
	}
	return plainChecker{password: plaintext}
}

// plainChecker compares against a plaintext secret in constant time.
type plainChecker struct {
	password string
}

func (p plainChecker) Check(password string) bool {
	if p.password == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(p.password), []byte(password)) == 1
}

// argonChecker verifies against a PHC-format argon2id hash:
// $argon2id$v=19$m=65536,t=3,p=4$<salt>$<hash>
type argonChecker struct {
	encoded string
}

func (a argonChecker) Check(password string) bool {
	parts := strings.Split(a.encoded, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return false
	}

	var memory, iterations uint32
	var parallelism uint8
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &iterations, &parallelism); err != nil {
		return false
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return false
	}
	expected, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return false
	}

	computed := argon2.IDKey([]byte(password), salt, iterations, memory, parallelism, uint32(len(expected)))
	return subtle.ConstantTimeCompare(expected, computed) == 1
}
