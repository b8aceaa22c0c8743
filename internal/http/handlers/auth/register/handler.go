package register

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"shortlink/domain/models"
	"shortlink/internal/http/dto"
	"shortlink/internal/http/httputils"
)

type Authentication interface {
	Register(ctx context.Context, name, email, password string) (models.User, string, error)
}

// HandlerRegister creates an account and hands back the token both as a
// cookie and in the response body.
func HandlerRegister(auth Authentication, cookieMaxAge time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req dto.RegisterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httputils.WriteJSONError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		user, token, err := auth.Register(ctx, req.Name, req.Email, req.Password)
		if err != nil {
			status := httputils.StatusFromError(err)
			if status == http.StatusInternalServerError {
				httputils.WriteJSONError(w, status, "registration failed")
				return
			}
			if errors.Is(err, models.ErrConflict) {
				httputils.WriteJSONError(w, status, "User already exists")
				return
			}
			httputils.WriteJSONError(w, status, err.Error())
			return
		}

		httputils.SetAccessTokenCookie(w, token, cookieMaxAge)
		httputils.WriteJSONResponse(w, http.StatusOK, dto.AuthResponse{
			Message: "Registration successful!",
			User:    dto.UserToResponse(user),
			Token:   token,
		})
	}
}
