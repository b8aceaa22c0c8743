package services

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"shortlink/domain/models"
)

// Tokens issues and verifies the signed bearer credential that carries a
// user identity.
type Tokens struct {
	secretKey []byte
	expire    time.Duration
}

func NewTokens(secretKey string, expire time.Duration) (*Tokens, error) {
	if secretKey == "" {
		return nil, fmt.Errorf("token secret key must not be empty")
	}
	if expire <= 0 {
		return nil, fmt.Errorf("token expiration must be positive")
	}

	return &Tokens{
		secretKey: []byte(secretKey),
		expire:    expire,
	}, nil
}

// Issue signs a token embedding the user identifier.
func (t *Tokens) Issue(userID uuid.UUID) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(t.expire)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(t.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify validates signature and expiration and returns the embedded user
// identifier. Any failure collapses into ErrUnauthorized.
func (t *Tokens) Verify(tokenString string) (uuid.UUID, error) {
	claims := &jwt.RegisteredClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return t.secretKey, nil
	})
	if err != nil || !token.Valid {
		return uuid.Nil, fmt.Errorf("%w: invalid or expired token", models.ErrUnauthorized)
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: malformed token subject", models.ErrUnauthorized)
	}

	return userID, nil
}
