package auth

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/boetepot/boetepot-backend/models"
	"github.com/boetepot/boetepot-backend/store"
)

// Errors
var (
	ErrInvalidCredentials = errors.New("invalid password")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

// RoleAdmin is the role embedded in tokens that unlocks admin routes.
const RoleAdmin = "admin"

// Service verifies the shared admin password and issues self-expiring
// bearer tokens. Tokens carry the role and expiry; nothing is kept
// server-side, so every admin request is re-validated from the token alone
// and logout is just the client discarding it.
type Service struct {
	store  *store.Store
	secret []byte
	ttl    time.Duration
}

func New(st *store.Store, secret string, ttl time.Duration) *Service {
	if ttl == 0 {
		ttl = 24 * time.Hour
	}
	return &Service{store: st, secret: []byte(secret), ttl: ttl}
}

// Login checks the password against the stored credential hash and, on
// success, returns a signed token plus its expiry.
func (s *Service) Login(ctx context.Context, password string) (string, time.Time, error) {
	cred, err := s.store.AdminCredential(ctx)
	if err != nil {
		if errors.Is(err, models.ErrCredentialNotFound) {
			return "", time.Time{}, ErrInvalidCredentials
		}
		return "", time.Time{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(password)); err != nil {
		return "", time.Time{}, ErrInvalidCredentials
	}

	now := time.Now()
	expiresAt := now.Add(s.ttl)
	claims := jwt.MapClaims{
		"role": cred.Role,
		"iat":  now.Unix(),
		"exp":  expiresAt.Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return token, expiresAt, nil
}

// Validate parses a bearer token and returns its role. Tampered, expired or
// otherwise malformed tokens fail with ErrInvalidToken.
func (s *Service) Validate(tokenString string) (string, error) {
	parsed, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !parsed.Valid {
		return "", ErrInvalidToken
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidToken
	}
	role, ok := claims["role"].(string)
	if !ok || role == "" {
		return "", ErrInvalidToken
	}
	return role, nil
}
