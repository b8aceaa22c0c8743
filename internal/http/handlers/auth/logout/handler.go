package logout

import (
	"net/http"

	"shortlink/internal/http/dto"
	"shortlink/internal/http/httputils"
)

// HandlerLogout clears the access-token cookie. Tokens themselves stay valid
// until expiry; there is no revocation list.
func HandlerLogout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httputils.ClearAccessTokenCookie(w)
		httputils.WriteJSONResponse(w, http.StatusOK, dto.MessageResponse{
			Message: "Logged out successfully",
		})
	}
}
