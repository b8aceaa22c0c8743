package repository

import (
	"context"

	"github.com/google/uuid"

	"shortlink/domain/models"
)

type (
	// UserStorage persists account records. Emails are stored in their
	// normalized form and are unique.
	UserStorage interface {
		UserCreate(ctx context.Context, user models.User) (models.User, error)
		UserGetByEmail(ctx context.Context, email string) (models.User, error)
		UserGetByID(ctx context.Context, id uuid.UUID) (models.User, error)
	}

	// LinkStorage persists short links. ShortCode is unique across all
	// records; violating it yields models.ErrConflict.
	LinkStorage interface {
		ShortLinkCreate(ctx context.Context, link models.ShortLink) (models.ShortLink, error)
		ShortLinkGetByCode(ctx context.Context, shortCode string) (models.ShortLink, error)
		// ShortLinkIncrementClicks bumps the click counter by one and
		// returns the updated record.
		ShortLinkIncrementClicks(ctx context.Context, shortCode string) (models.ShortLink, error)
		// ShortLinkListByUser returns the owner's links, most recent first.
		ShortLinkListByUser(ctx context.Context, userID uuid.UUID) ([]models.ShortLink, error)

		Ping(ctx context.Context) error
		Close() error
	}
)
