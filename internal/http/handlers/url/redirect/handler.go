package redirect

import (
	"context"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"shortlink/domain/models"
	"shortlink/internal/http/httputils"
)

type Shortener interface {
	Resolve(ctx context.Context, shortCode string) (models.ShortLink, error)
}

// HandlerRedirect resolves a short code, accounts the click and redirects to
// the destination.
func HandlerRedirect(svc Shortener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		code := mux.Vars(r)["code"]

		link, err := svc.Resolve(ctx, code)
		if err != nil {
			if errors.Is(err, models.ErrUnfound) || errors.Is(err, models.ErrInvalidData) {
				httputils.WriteTextError(w, http.StatusNotFound, "URL not found")
				return
			}
			httputils.WriteTextError(w, http.StatusInternalServerError, "Server error")
			return
		}

		http.Redirect(w, r, link.Destination(), http.StatusFound)
	}
}
