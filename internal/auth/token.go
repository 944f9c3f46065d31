package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken covers every verification failure: bad signature,
// malformed token, expiry. Callers must not distinguish between them.
var ErrInvalidToken = errors.New("invalid or expired token")

// Identity is what a verified token proves about the caller.
type Identity struct {
	UserID   string
	UserType string
}

type claims struct {
	UserID   string `json:"user_id"`
	UserType string `json:"user_type"`
	jwt.RegisteredClaims
}

// TokenManager issues and verifies stateless HS256 bearer tokens.
// There is no server-side session table and no refresh mechanism.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	return &TokenManager{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Issue creates a signed token embedding the user's identity and variant,
// valid for the configured TTL.
func (m *TokenManager) Issue(userID, userType string) (string, error) {
	now := time.Now()
	c := claims{
		UserID:   userID,
		UserType: userType,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// Verify checks signature and expiry and returns the embedded identity.
// Any failure collapses to ErrInvalidToken.
func (m *TokenManager) Verify(tokenStr string) (*Identity, error) {
	var c claims
	token, err := jwt.ParseWithClaims(tokenStr, &c, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	if c.UserID == "" || c.UserType == "" {
		return nil, ErrInvalidToken
	}

	return &Identity{
		UserID:   c.UserID,
		UserType: c.UserType,
	}, nil
}
