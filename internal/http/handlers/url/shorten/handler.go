package shorten

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"shortlink/domain/models"
	"shortlink/internal/http/dto"
	"shortlink/internal/http/handlers/middlewares/auth"
	"shortlink/internal/http/httputils"
)

type Shortener interface {
	Create(ctx context.Context, fullURL string, userID uuid.UUID) (models.ShortLink, error)
	ShortURL(shortCode string) string
}

// HandlerShorten shortens a URL on behalf of the authenticated caller, who
// becomes the link's owner.
func HandlerShorten(svc Shortener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		user, ok := auth.UserFromContext(ctx)
		if !ok {
			httputils.WriteJSONError(w, http.StatusUnauthorized, "authentication required")
			return
		}

		var req dto.CreateLinkRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httputils.WriteJSONError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if req.URL == "" {
			httputils.WriteJSONError(w, http.StatusBadRequest, "URL is required")
			return
		}

		link, err := svc.Create(ctx, req.URL, user.ID)
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
