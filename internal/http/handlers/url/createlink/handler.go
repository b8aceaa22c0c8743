package createlink

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"shortlink/domain/models"
	"shortlink/internal/http/dto"
	"shortlink/internal/http/httputils"
)

type Shortener interface {
	Create(ctx context.Context, fullURL string, userID uuid.UUID) (models.ShortLink, error)
	ShortURL(shortCode string) string
}

// HandlerCreateLink shortens a URL for an anonymous caller.
func HandlerCreateLink(svc Shortener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req dto.CreateLinkRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httputils.WriteJSONError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if req.URL == "" {
			httputils.WriteJSONError(w, http.StatusBadRequest, "URL is required")
			return
		}

		link, err := svc.Create(ctx, req.URL, uuid.Nil)
		if err != nil {
			status := httputils.StatusFromError(err)
			if status == http.StatusInternalServerError {
				httputils.WriteJSONError(w, status, "failed to create short link")
				return
			}
			httputils.WriteJSONError(w, status, err.Error())
			return
		}

		httputils.WriteJSONResponse(w, http.StatusOK, dto.ShortURLResponse{
			ShortURL: svc.ShortURL(link.ShortCode),
		})
	}
}
