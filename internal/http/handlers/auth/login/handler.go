package login

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
	Login(ctx context.Context, email, password string) (models.User, string, error)
}

func HandlerLogin(auth Authentication, cookieMaxAge time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req dto.LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httputils.WriteJSONError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		user, token, err := auth.Login(ctx, req.Email, req.Password)
		if err != nil {
			// The same message covers unknown email and wrong password.
			if errors.Is(err, models.ErrUnauthorized) {
				httputils.WriteJSONError(w, http.StatusUnauthorized, "Invalid credentials")
				return
			}
			status := httputils.StatusFromError(err)
			if status == http.StatusInternalServerError {
				httputils.WriteJSONError(w, status, "login failed")
				return
			}
			httputils.WriteJSONError(w, status, err.Error())
			return
		}

		httputils.SetAccessTokenCookie(w, token, cookieMaxAge)
		httputils.WriteJSONResponse(w, http.StatusOK, dto.AuthResponse{
			Message: "Login successful!",
			User:    dto.UserToResponse(user),
			Token:   token,
		})
	}
}
