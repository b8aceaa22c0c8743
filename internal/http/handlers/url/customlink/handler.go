package customlink

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"shortlink/domain/models"
	"shortlink/internal/http/dto"
	"shortlink/internal/http/handlers/middlewares/auth"
	"shortlink/internal/http/httputils"
)

type Shortener interface {
	CreateCustom(ctx context.Context, fullURL, slug string, userID uuid.UUID) (models.ShortLink, error)
	ShortURL(shortCode string) string
}

// HandlerCustomLink creates an owned link under a caller-chosen slug. An
// omitted slug falls back to a generated code.
func HandlerCustomLink(svc Shortener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		user, ok := auth.UserFromContext(ctx)
		if !ok {
			httputils.WriteJSONError(w, http.StatusUnauthorized, "authentication required")
			return
		}

		var req dto.CustomLinkRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httputils.WriteJSONError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if req.FullURL == "" {
			httputils.WriteJSONError(w, http.StatusBadRequest, "full_url is required.")
			return
		}

		link, err := svc.CreateCustom(ctx, req.FullURL, req.ShortURL, user.ID)
		if err != nil {
			if errors.Is(err, models.ErrConflict) {
				httputils.WriteJSONError(w, http.StatusConflict, "Short URL already exists. Try another.")
				return
			}
			status := httputils.StatusFromError(err)
			if status == http.StatusInternalServerError {
				httputils.WriteJSONError(w, status, "failed to create short link")
				return
			}
			httputils.WriteJSONError(w, status, err.Error())
			return
		}

		httputils.WriteJSONResponse(w, http.StatusCreated, dto.CustomLinkResponse{
			ShortURL: svc.ShortURL(link.ShortCode),
			Message:  "Short URL created successfully",
		})
	}
}
