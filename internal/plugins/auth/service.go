package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/realcore/spendenapp/internal/apperror"
)

// sessionKeyPrefix is the Redis key prefix for session data.
const sessionKeyPrefix = "admin_session:"

// sessionTokenBytes is the number of random bytes in a session token.
// 32 bytes = 256 bits of entropy, hex-encoded to 64 characters.
const sessionTokenBytes = 32

// AuthService defines the business logic contract for the admin gate.
type AuthService interface {
	// Login checks the password and opens a session, returning its token.
	// No rate limiting here: the shared credential is the only account,
	// and the reverse proxy fronting the service handles abuse.
	Login(ctx context.Context, password, clientIP string) (string, error)

	// ValidateSession reports whether a token belongs to a live session.
	ValidateSession(ctx context.Context, token string) (*Session, error)

	// DestroySession removes a session, logging the admin out everywhere
	// that cookie was used.
	DestroySession(ctx context.Context, token string) error

	// SessionTTL exposes the configured lifetime so the handler can align
	// the cookie MaxAge with the Redis expiry.
	SessionTTL() time.Duration
}

// authService implements AuthService with Redis-backed sessions.
type authService struct {
	checker    CredentialChecker
	redis      *redis.Client
	sessionTTL time.Duration
}

// NewAuthService creates a new auth service.
func NewAuthService(checker CredentialChecker, rdb *redis.Client, sessionTTL time.Duration) AuthService {
	return &authService{
		checker:    checker,
		redis:      rdb,
		sessionTTL: sessionTTL,
	}
}

func (s *authService) Login(ctx context.Context, password, clientIP string) (string, error) {
	if !s.checker.Check(password) {
		slog.Warn("admin login rejected", slog.String("client_ip", clientIP))
		return "", apperror.NewUnauthorized("Falsches Passwort")
	}

	token, err := generateSessionToken()
	if err != nil {
		return "", apperror.NewInternal(fmt.Errorf("generating session token: %w", err))
	}

	session := Session{
		CreatedAt: time.Now().UTC(),
		ClientIP:  clientIP,
	}
	data, err := json.Marshal(session)
	if err != nil {
		return "", apperror.NewInternal(fmt.Errorf("marshaling session: %w", err))
	}

	if err := s.redis.Set(ctx, sessionKeyPrefix+token, data, s.sessionTTL).Err(); err != nil {
		return "", apperror.NewInternal(fmt.Errorf("storing session in Redis: %w", err))
	}

	slog.Info("admin logged in", slog.String("client_ip", clientIP))
	return token, nil
}

func (s *authService) ValidateSession(ctx context.Context, token string) (*Session, error) {
	if token == "" {
		return nil, apperror.NewUnauthorized("Nicht autorisiert")
	}

	data, err := s.redis.Get(ctx, sessionKeyPrefix+token).Bytes()
	if err == redis.Nil {
		return nil, apperror.NewUnauthorized("Nicht autorisiert")
	}
	if err != nil {
		return nil, apperror.NewInternal(fmt.Errorf("reading session from Redis: %w", err))
	}

	var session Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, apperror.NewInternal(fmt.Errorf("unmarshaling session: %w", err))
	}
	return &session, nil
}

func (s *authService) DestroySession(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := s.redis.Del(ctx, sessionKeyPrefix+token).Err(); err != nil {
		return apperror.NewInternal(fmt.Errorf("deleting session from Redis: %w", err))
	}
	return nil
}

func (s *authService) SessionTTL() time.Duration {
	return s.sessionTTL
}

// generateSessionToken creates a cryptographically random hex-encoded token.
func generateSessionToken() (string, error) {
	b := make([]byte, sessionTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
