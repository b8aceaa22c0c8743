package inmemory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"shortlink/domain/models"
)

// Storage keeps users and short links in process memory. It backs the tests
// and any deployment started without DATABASE_DSN.
type Storage struct {
	mu    sync.RWMutex
	users map[uuid.UUID]models.User
	links map[string]models.ShortLink
}

func NewStorage() *Storage {
	return &Storage{
		users: make(map[uuid.UUID]models.User),
		links: make(map[string]models.ShortLink),
	}
}

func (s *Storage) UserCreate(ctx context.Context, user models.User) (models.User, error) {
	if err := ctx.Err(); err != nil {
		return models.User{}, err
	}
	if user.ID == uuid.Nil || user.Email == "" {
		return models.User{}, models.ErrInvalidData
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Email == user.Email {
			return models.User{}, models.ErrConflict
		}
	}

	s.users[user.ID] = user
	return user, nil
}

func (s *Storage) UserGetByEmail(ctx context.Context, email string) (models.User, error) {
	if err := ctx.Err(); err != nil {
		return models.User{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.Email == email {
			return user, nil
		}
	}
	return models.User{}, models.ErrUnfound
}

func (s *Storage) UserGetByID(ctx context.Context, id uuid.UUID) (models.User, error) {
	if err := ctx.Err(); err != nil {
		return models.User{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	user, exists := s.users[id]
	if !exists {
		return models.User{}, models.ErrUnfound
	}
	return user, nil
}

func (s *Storage) ShortLinkCreate(ctx context.Context, link models.ShortLink) (models.ShortLink, error) {
	if err := ctx.Err(); err != nil {
		return models.ShortLink{}, err
	}
	if link.ID == uuid.Nil || link.ShortCode == "" || link.FullURL == "" {
		return models.ShortLink{}, models.ErrInvalidData
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.links[link.ShortCode]; exists {
		return models.ShortLink{}, models.ErrConflict
	}

	s.links[link.ShortCode] = link
	return link, nil
}

func (s *Storage) ShortLinkGetByCode(ctx context.Context, shortCode string) (models.ShortLink, error) {
	if err := ctx.Err(); err != nil {
		return models.ShortLink{}, err
	}
	if shortCode == "" {
		return models.ShortLink{}, models.ErrInvalidData
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	link, exists := s.links[shortCode]
	if !exists {
		return models.ShortLink{}, models.ErrUnfound
	}
	return link, nil
}

func (s *Storage) ShortLinkIncrementClicks(ctx context.Context, shortCode string) (models.ShortLink, error) {
	if err := ctx.Err(); err != nil {
		return models.ShortLink{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	link, exists := s.links[shortCode]
	if !exists {
		return models.ShortLink{}, models.ErrUnfound
	}

	link.Clicks++
	s.links[shortCode] = link
	return link, nil
}

func (s *Storage) ShortLinkListByUser(ctx context.Context, userID uuid.UUID) ([]models.ShortLink, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if userID == uuid.Nil {
		return nil, models.ErrInvalidData
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	links := make([]models.ShortLink, 0)
	for _, link := range s.links {
		if link.UserID == userID {
			links = append(links, link)
		}
	}

	// Most recent first is part of the listing contract.
	sort.Slice(links, func(i, j int) bool {
		return links[i].CreatedAt.After(links[j].CreatedAt)
	})

	return links, nil
}

func (s *Storage) Ping(ctx context.Context) error {
	return ctx.Err()
}

func (s *Storage) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users = make(map[uuid.UUID]models.User)
	s.links = make(map[string]models.ShortLink)
	return nil
}
