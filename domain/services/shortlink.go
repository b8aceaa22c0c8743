package services

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"shortlink/domain/models"
)

const (
	maxAttempts  = 3
	codeLength   = 7
	codeAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ_abcdefghijklmnopqrstuvwxyz-"
)

var slugRe = regexp.MustCompile(`^[A-Za-z0-9_-]{3,30}$`)

//go:generate mockgen -destination=../../mocks/link_storage_mock.go -package=mocks shortlink/domain/services LinkStorage
type LinkStorage interface {
	ShortLinkCreate(ctx context.Context, link models.ShortLink) (models.ShortLink, error)
	ShortLinkGetByCode(ctx context.Context, shortCode string) (models.ShortLink, error)
	ShortLinkIncrementClicks(ctx context.Context, shortCode string) (models.ShortLink, error)
	ShortLinkListByUser(ctx context.Context, userID uuid.UUID) ([]models.ShortLink, error)
	Ping(ctx context.Context) error
}

// Shortener implements the short-link lifecycle: creation, redirect
// resolution with click accounting, and owner-scoped listing.
type Shortener struct {
	storage LinkStorage
	baseURL string
}

func NewShortener(storage LinkStorage, baseURL string) *Shortener {
	return &Shortener{
		storage: storage,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// ShortURL returns the absolute public address of a short code.
func (s *Shortener) ShortURL(shortCode string) string {
	return fmt.Sprintf("%s/%s", s.baseURL, shortCode)
}

// Create persists a link under a generated code. userID == uuid.Nil creates
// an anonymous link.
func (s *Shortener) Create(ctx context.Context, fullURL string, userID uuid.UUID) (models.ShortLink, error) {
	fullURL = strings.TrimSpace(fullURL)
	if fullURL == "" {
		return models.ShortLink{}, fmt.Errorf("%w: url is required", models.ErrInvalidData)
	}

	return s.createWithGeneratedCode(ctx, fullURL, userID)
}

// CreateCustom persists an owned link under a caller-supplied slug, falling
// back to a generated code when the slug is empty.
func (s *Shortener) CreateCustom(ctx context.Context, fullURL, slug string, userID uuid.UUID) (models.ShortLink, error) {
	fullURL = strings.TrimSpace(fullURL)
	if fullURL == "" {
		return models.ShortLink{}, fmt.Errorf("%w: full_url is required", models.ErrInvalidData)
	}
	if userID == uuid.Nil {
		return models.ShortLink{}, fmt.Errorf("%w: owner is required", models.ErrUnauthorized)
	}

	slug = strings.TrimSpace(slug)
	if slug == "" {
		return s.createWithGeneratedCode(ctx, fullURL, userID)
	}
	if !slugRe.MatchString(slug) {
		return models.ShortLink{}, fmt.Errorf("%w: slug must be 3-30 characters of A-Za-z0-9_-", models.ErrInvalidData)
	}

	// Pre-check gives the caller a friendly conflict; the unique index
	// still backs it up against races.
	if _, err := s.storage.ShortLinkGetByCode(ctx, slug); err == nil {
		return models.ShortLink{}, fmt.Errorf("%w: short code already taken", models.ErrConflict)
	} else if !errors.Is(err, models.ErrUnfound) {
		return models.ShortLink{}, fmt.Errorf("failed to check short code: %w", err)
	}

	return s.create(ctx, fullURL, slug, userID)
}

// Resolve looks up a code, accounts the click and returns the link.
func (s *Shortener) Resolve(ctx context.Context, shortCode string) (models.ShortLink, error) {
	if shortCode == "" {
		return models.ShortLink{}, models.ErrInvalidData
	}

	link, err := s.storage.ShortLinkIncrementClicks(ctx, shortCode)
	if err != nil {
		if errors.Is(err, models.ErrUnfound) {
			return models.ShortLink{}, fmt.Errorf("%w: short code not found", models.ErrUnfound)
		}
		return models.ShortLink{}, fmt.Errorf("failed to resolve short code: %w", err)
	}

	return link, nil
}

// ListByUser returns the caller's links, most recent first.
func (s *Shortener) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.ShortLink, error) {
	if userID == uuid.Nil {
		return nil, fmt.Errorf("%w: owner is required", models.ErrUnauthorized)
	}
	return s.storage.ShortLinkListByUser(ctx, userID)
}

// PingStorage reports storage health.
func (s *Shortener) PingStorage(ctx context.Context) error {
	if err := s.storage.Ping(ctx); err != nil {
		return fmt.Errorf("storage ping failed: %w", err)
	}
	return nil
}

func (s *Shortener) createWithGeneratedCode(ctx context.Context, fullURL string, userID uuid.UUID) (models.ShortLink, error) {
	// Bounded retry: a fresh random code per attempt, and the store's
	// unique index decides races the pre-check cannot see.
	for i := 0; i < maxAttempts; i++ {
		code := generateRandomCode()

		if _, err := s.storage.ShortLinkGetByCode(ctx, code); err == nil {
			continue
		} else if !errors.Is(err, models.ErrUnfound) {
			return models.ShortLink{}, fmt.Errorf("failed to check short code: %w", err)
		}

		link, err := s.create(ctx, fullURL, code, userID)
		if err == nil {
			return link, nil
		}
		if !errors.Is(err, models.ErrConflict) {
			return models.ShortLink{}, err
		}
	}

	return models.ShortLink{}, fmt.Errorf("%w: failed to generate unique code after %d attempts", models.ErrConflict, maxAttempts)
}

func (s *Shortener) create(ctx context.Context, fullURL, shortCode string, userID uuid.UUID) (models.ShortLink, error) {
	link := models.ShortLink{
		ID:        uuid.New(),
		FullURL:   fullURL,
		ShortCode: shortCode,
		UserID:    userID,
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.storage.ShortLinkCreate(ctx, link)
	if err != nil {
		if errors.Is(err, models.ErrConflict) {
			return models.ShortLink{}, fmt.Errorf("%w: short code already taken", models.ErrConflict)
		}
		return models.ShortLink{}, fmt.Errorf("failed to create short link: %w", err)
	}

	return created, nil
}

func generateRandomCode() string {
	b := make([]byte, codeLength)
	letterCount := big.NewInt(int64(len(codeAlphabet)))

	for i := range b {
		n, _ := rand.Int(rand.Reader, letterCount)
		b[i] = codeAlphabet[n.Int64()]
	}
	return string(b)
}
