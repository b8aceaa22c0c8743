package listlinks

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"shortlink/domain/models"
	"shortlink/internal/http/dto"
	"shortlink/internal/http/handlers/middlewares/auth"
	"shortlink/internal/http/httputils"
)

type Shortener interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.ShortLink, error)
}

// HandlerListLinks returns the caller's links, most recent first.
func HandlerListLinks(svc Shortener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		user, ok := auth.UserFromContext(ctx)
		if !ok {
			httputils.WriteJSONError(w, http.StatusUnauthorized, "authentication required")
			return
		}

		links, err := svc.ListByUser(ctx, user.ID)
		if err != nil {
			httputils.WriteJSONError(w, http.StatusInternalServerError, "failed to fetch links")
			return
		}

		httputils.WriteJSONResponse(w, http.StatusOK, dto.LinksToResponse(links))
	}
}
