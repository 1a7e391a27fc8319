package helpers

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrTokenGeneration is returned when a token cannot be issued.
	ErrTokenGeneration = errors.New("could not generate token")
	// ErrInvalidToken is returned for any malformed, tampered or mis-signed
	// token. Callers never learn which of the checks failed.
	ErrInvalidToken = errors.New("bad token")
)

// TokenManager issues and verifies signed bearer tokens. The signing secret
// is injected at construction so tests can run with their own keys.
type TokenManager struct {
	secret []byte
}

func NewTokenManager(secret string) *TokenManager {
	return &TokenManager{secret: []byte(secret)}
}

// Claims carried by a bearer token. A token binds to a user id only; no
// expiry is set, so it stays valid for the lifetime of the signing secret.
type Claims struct {
	UserID string `json:"id"`
	jwt.RegisteredClaims
}

// Issue signs a token asserting the given user id.
func (m *TokenManager) Issue(userID string) (string, error) {
	if userID == "" {
		return "", ErrTokenGeneration
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{UserID: userID})
	s, err := t.SignedString(m.secret)
	if err != nil {
		return "", ErrTokenGeneration
	}
	return s, nil
}

// Verify checks a token's signature against the configured secret and
// returns its claims.
func (m *TokenManager) Verify(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	tkn, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secret, nil
	})
	if err != nil || !tkn.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
