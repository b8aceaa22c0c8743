package models

import (
	"crypto/md5"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

type (
	// User is an account that may own short links. PasswordHash is a bcrypt
	// hash and must never be serialized outward.
	User struct {
		ID           uuid.UUID
		Name         string
		Email        string
		PasswordHash string
		Avatar       string
		CreatedAt    time.Time
	}

	// ShortLink maps a short code to a destination URL. UserID == uuid.Nil
	// means the link was created anonymously.
	ShortLink struct {
		ID        uuid.UUID
		FullURL   string
		ShortCode string
		Clicks    int64
		UserID    uuid.UUID
		CreatedAt time.Time
	}
)

var (
	ErrInvalidData  = errors.New("invalid input data")
	ErrUnfound      = errors.New("not found")
	ErrConflict     = errors.New("already exists")
	ErrUnauthorized = errors.New("unauthorized")
)

// NormalizeEmail applies the canonical email form used for storage and lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// AvatarURL derives a stable gravatar address from a normalized email.
func AvatarURL(email string) string {
	sum := md5.Sum([]byte(NormalizeEmail(email)))
	return "https://www.gravatar.com/avatar/" + hex.EncodeToString(sum[:]) + "?d=identicon"
}

// Anonymous reports whether the link has no owner.
func (l ShortLink) Anonymous() bool {
	return l.UserID == uuid.Nil
}

// Destination returns the redirect target, prefixing https:// when the stored
// URL carries no scheme. The prefix is applied at redirect time, not at
// creation time.
func (l ShortLink) Destination() string {
	if strings.HasPrefix(l.FullURL, "http://") || strings.HasPrefix(l.FullURL, "https://") {
		return l.FullURL
	}
	return "https://" + l.FullURL
}
