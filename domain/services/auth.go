package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"shortlink/domain/models"
)

const (
	minNameLength     = 2
	minPasswordLength = 6
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

//go:generate mockgen -destination=../../mocks/user_storage_mock.go -package=mocks shortlink/domain/services UserStorage
type UserStorage interface {
	UserCreate(ctx context.Context, user models.User) (models.User, error)
	UserGetByEmail(ctx context.Context, email string) (models.User, error)
	UserGetByID(ctx context.Context, id uuid.UUID) (models.User, error)
}

// Authentication orchestrates registration and login. Passwords only ever
// exist here in bcrypt-hashed form.
type Authentication struct {
	storage UserStorage
	tokens  *Tokens
}

func NewAuthentication(storage UserStorage, tokens *Tokens) *Authentication {
	return &Authentication{
		storage: storage,
		tokens:  tokens,
	}
}

// Register validates the input, creates the account and issues a token.
func (a *Authentication) Register(ctx context.Context, name, email, password string) (models.User, string, error) {
	name = strings.TrimSpace(name)
	email = models.NormalizeEmail(email)

	if len(name) < minNameLength {
		return models.User{}, "", fmt.Errorf("%w: name must be at least %d characters", models.ErrInvalidData, minNameLength)
	}
	if len(password) < minPasswordLength {
		return models.User{}, "", fmt.Errorf("%w: password must be at least %d characters", models.ErrInvalidData, minPasswordLength)
	}
	if !emailRe.MatchString(email) {
		return models.User{}, "", fmt.Errorf("%w: invalid email address", models.ErrInvalidData)
	}

	// Friendly pre-check; a concurrent insert still surfaces the store's
	// conflict below.
	if _, err := a.storage.UserGetByEmail(ctx, email); err == nil {
		return models.User{}, "", fmt.Errorf("%w: user already exists", models.ErrConflict)
	} else if !errors.Is(err, models.ErrUnfound) {
		return models.User{}, "", fmt.Errorf("failed to check existing user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Avatar:       models.AvatarURL(email),
		CreatedAt:    time.Now().UTC(),
	}

	created, err := a.storage.UserCreate(ctx, user)
	if err != nil {
		if errors.Is(err, models.ErrConflict) {
			return models.User{}, "", fmt.Errorf("%w: user already exists", models.ErrConflict)
		}
		return models.User{}, "", fmt.Errorf("failed to create user: %w", err)
	}

	token, err := a.tokens.Issue(created.ID)
	if err != nil {
		return models.User{}, "", fmt.Errorf("failed to issue token: %w", err)
	}

	return created, token, nil
}

// Login verifies the credentials and issues a token. Unknown email and wrong
// password produce the same error, so accounts cannot be enumerated.
func (a *Authentication) Login(ctx context.Context, email, password string) (models.User, string, error) {
	email = models.NormalizeEmail(email)
	if email == "" || password == "" {
		return models.User{}, "", fmt.Errorf("%w: email and password are required", models.ErrInvalidData)
	}

	user, err := a.storage.UserGetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, models.ErrUnfound) {
			return models.User{}, "", fmt.Errorf("%w: invalid credentials", models.ErrUnauthorized)
		}
		return models.User{}, "", fmt.Errorf("failed to get user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return models.User{}, "", fmt.Errorf("%w: invalid credentials", models.ErrUnauthorized)
	}

	token, err := a.tokens.Issue(user.ID)
	if err != nil {
		return models.User{}, "", fmt.Errorf("failed to issue token: %w", err)
	}

	return user, token, nil
}

// ValidateAndGetUser resolves a bearer token to the account it names.
func (a *Authentication) ValidateAndGetUser(ctx context.Context, token string) (models.User, error) {
	userID, err := a.tokens.Verify(token)
	if err != nil {
		return models.User{}, err
	}

	user, err := a.storage.UserGetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, models.ErrUnfound) {
			return models.User{}, fmt.Errorf("%w: user not found", models.ErrUnauthorized)
		}
		return models.User{}, fmt.Errorf("failed to get user: %w", err)
	}

	return user, nil
}
