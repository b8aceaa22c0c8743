package getping

import (
	"context"
	"net/http"

	"shortlink/internal/http/httputils"
)

type Shortener interface {
	PingStorage(ctx context.Context) error
}

// HandlerPing reports storage health.
func HandlerPing(svc Shortener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.PingStorage(r.Context()); err != nil {
			httputils.WriteTextError(w, http.StatusInternalServerError, "storage unavailable")
			return
		}
		w.WriteHeader(http.StatusOK)
	}
}
