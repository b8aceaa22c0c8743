package inmemory

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shortlink/domain/models"
)

func TestStorage_Users(t *testing.T) {
	ctx := context.Background()
	storage := NewStorage()

	user := models.User{
		ID:        uuid.New(),
		Name:      "Alice",
		Email:     "alice@example.com",
		CreatedAt: time.Now(),
	}

	created, err := storage.UserCreate(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, user, created)

	byEmail, err := storage.UserGetByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)

	byID, err := storage.UserGetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Email, byID.Email)

	// Duplicate normalized email conflicts even under a fresh ID.
	_, err = storage.UserCreate(ctx, models.User{ID: uuid.New(), Email: "alice@example.com"})
	assert.ErrorIs(t, err, models.ErrConflict)

	_, err = storage.UserGetByEmail(ctx, "ghost@example.com")
	assert.ErrorIs(t, err, models.ErrUnfound)

	_, err = storage.UserGetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, models.ErrUnfound)
}

func TestStorage_ShortLinks(t *testing.T) {
	ctx := context.Background()
	storage := NewStorage()

	link := models.ShortLink{
		ID:        uuid.New(),
		FullURL:   "https://example.com",
		ShortCode: "abc1234",
		CreatedAt: time.Now(),
	}

	created, err := storage.ShortLinkCreate(ctx, link)
	require.NoError(t, err)
	assert.Equal(t, link, created)

	_, err = storage.ShortLinkCreate(ctx, models.ShortLink{
		ID:        uuid.New(),
		FullURL:   "https://other.example.com",
		ShortCode: "abc1234",
	})
	assert.ErrorIs(t, err, models.ErrConflict)

	got, err := storage.ShortLinkGetByCode(ctx, "abc1234")
	require.NoError(t, err)
	assert.Equal(t, int64(0), got.Clicks)

	bumped, err := storage.ShortLinkIncrementClicks(ctx, "abc1234")
	require.NoError(t, err)
	assert.Equal(t, int64(1), bumped.Clicks)

	bumped, err = storage.ShortLinkIncrementClicks(ctx, "abc1234")
	require.NoError(t, err)
	assert.Equal(t, int64(2), bumped.Clicks)

	_, err = storage.ShortLinkGetByCode(ctx, "missing")
	assert.ErrorIs(t, err, models.ErrUnfound)

	_, err = storage.ShortLinkIncrementClicks(ctx, "missing")
	assert.ErrorIs(t, err, models.ErrUnfound)
}

func TestStorage_ShortLinkListByUser(t *testing.T) {
	ctx := context.Background()
	storage := NewStorage()

	owner := uuid.New()
	other := uuid.New()
	base := time.Now()

	older := models.ShortLink{ID: uuid.New(), FullURL: "https://a.test", ShortCode: "older12", UserID: owner, CreatedAt: base}
	newer := models.ShortLink{ID: uuid.New(), FullURL: "https://b.test", ShortCode: "newer12", UserID: owner, CreatedAt: base.Add(time.Minute)}
	foreign := models.ShortLink{ID: uuid.New(), FullURL: "https://c.test", ShortCode: "foreign", UserID: other, CreatedAt: base}
	anon := models.ShortLink{ID: uuid.New(), FullURL: "https://d.test", ShortCode: "anonymo", CreatedAt: base}

	for _, l := range []models.ShortLink{older, newer, foreign, anon} {
		_, err := storage.ShortLinkCreate(ctx, l)
		require.NoError(t, err)
	}

	links, err := storage.ShortLinkListByUser(ctx, owner)
	require.NoError(t, err)
	require.Len(t, links, 2)

	// Most recent first, and never another user's links.
	assert.Equal(t, "newer12", links[0].ShortCode)
	assert.Equal(t, "older12", links[1].ShortCode)
}
