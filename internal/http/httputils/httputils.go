package httputils

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"shortlink/domain/models"
)

// MIME: https://developer.mozilla.org/en-US/docs/Web/HTTP/Guides/MIME_types/Common_types

const (
	HeaderContentType     = "Content-Type"
	HeaderContentEncoding = "Content-Encoding"
	HeaderAcceptEncoding  = "Accept-Encoding"
	HeaderContentLength   = "Content-Length"
	HeaderAuthorization   = "Authorization"

	MIMEApplicationJSON = "application/json"
	MIMETextHTML        = "text/html"
	MIMETextPlain       = "text/plain"

	EncodingGzip = "gzip"
)

// AccessTokenCookie is the cookie the token travels in; the Authorization
// header is the fallback channel.
const AccessTokenCookie = "accessToken"

// StatusFromError maps domain sentinels to HTTP statuses.
func StatusFromError(err error) int {
	switch {
	case errors.Is(err, models.ErrInvalidData):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, models.ErrUnfound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func WriteTextError(w http.ResponseWriter, status int, message string) {
	w.Header().Set(HeaderContentType, MIMETextPlain)
	w.WriteHeader(status)
	w.Write([]byte(message))
}

// WriteJSONError serializes an error as {"message": ...}. Internal detail
// belongs in the operator log, not here.
func WriteJSONError(w http.ResponseWriter, status int, message string) {
	w.Header().Set(HeaderContentType, MIMEApplicationJSON)
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(struct {
		Message string `json:"message"`
	}{Message: message})
}

func WriteJSONResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set(HeaderContentType, MIMEApplicationJSON)
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// SetAccessTokenCookie attaches the token with the hardened attribute set:
// http-only, secure, same-site Lax, root path.
func SetAccessTokenCookie(w http.ResponseWriter, token string, maxAge time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     AccessTokenCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearAccessTokenCookie expires the cookie immediately.
func ClearAccessTokenCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     AccessTokenCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	})
}
