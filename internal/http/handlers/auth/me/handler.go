package me

import (
	"net/http"

	"shortlink/internal/http/dto"
	"shortlink/internal/http/handlers/middlewares/auth"
	"shortlink/internal/http/httputils"
)

// HandlerMe returns the authenticated caller's account.
func HandlerMe() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := auth.UserFromContext(r.Context())
		if !ok {
			httputils.WriteJSONError(w, http.StatusUnauthorized, "authentication required")
			return
		}

		httputils.WriteJSONResponse(w, http.StatusOK, dto.MeResponse{
			User: dto.UserToResponse(user),
		})
	}
}
