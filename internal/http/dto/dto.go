package dto

import (
	"time"

	"shortlink/domain/models"
)

// Request
type (
	RegisterRequest struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	LoginRequest struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	CreateLinkRequest struct {
		URL string `json:"url"`
	}

	CustomLinkRequest struct {
		FullURL  string `json:"full_url"`
		ShortURL string `json:"short_url"`
	}
)

// Response
type (
	// UserResponse deliberately has no password field.
	UserResponse struct {
		ID        string    `json:"_id"`
		Name      string    `json:"name"`
		Email     string    `json:"email"`
		Avatar    string    `json:"avatar"`
		CreatedAt time.Time `json:"created_at"`
	}

	AuthResponse struct {
		Message string       `json:"message"`
		User    UserResponse `json:"user"`
		Token   string       `json:"token"`
	}

	MeResponse struct {
		User UserResponse `json:"user"`
	}

	MessageResponse struct {
		Message string `json:"message"`
	}

	ShortURLResponse struct {
		ShortURL string `json:"shortUrl"`
	}

	CustomLinkResponse struct {
		ShortURL string `json:"shortUrl"`
		Message  string `json:"message"`
	}

	ShortLinkResponse struct {
		ID        string    `json:"_id"`
		FullURL   string    `json:"full_url"`
		ShortURL  string    `json:"short_url"`
		Clicks    int64     `json:"clicks"`
		User      string    `json:"user,omitempty"`
		CreatedAt time.Time `json:"created_at"`
	}
)

// Domain → Response
func UserToResponse(user models.User) UserResponse {
	return UserResponse{
		ID:        user.ID.String(),
		Name:      user.Name,
		Email:     user.Email,
		Avatar:    user.Avatar,
		CreatedAt: user.CreatedAt,
	}
}

func LinkToResponse(link models.ShortLink) ShortLinkResponse {
	resp := ShortLinkResponse{
		ID:        link.ID.String(),
		FullURL:   link.FullURL,
		ShortURL:  link.ShortCode,
		Clicks:    link.Clicks,
		CreatedAt: link.CreatedAt,
	}
	if !link.Anonymous() {
		resp.User = link.UserID.String()
	}
	return resp
}

func LinksToResponse(links []models.ShortLink) []ShortLinkResponse {
	responses := make([]ShortLinkResponse, len(links))
	for i, link := range links {
		responses[i] = LinkToResponse(link)
	}
	return responses
}
