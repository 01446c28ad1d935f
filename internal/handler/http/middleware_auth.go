package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/selisih-berat/internal/app"
	"github.com/MKhiriev/selisih-berat/internal/utils"
	"github.com/MKhiriev/selisih-berat/models"
)

// auth enforces JWT authentication.
//
// The bearer token from the "Authorization" header is validated with
// [service.AuthService.ParseAccessToken]; on success its claims are stored
// in the request context (see [utils.WithClaims]). Any failure ends the
// request with 401.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString, err := getTokenFromAuthHeader(r.Header.Get("Authorization"))
		if err != nil {
			h.writeError(w, r, err, "*Handler.auth")
			return
		}

		ctx := r.Context()
		claims, err := h.services.AuthService.ParseAccessToken(ctx, tokenString)
		if err != nil {
			h.writeError(w, r, err, "*Handler.auth")
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithClaims(ctx, claims)))
	})
}

// requireAdmin rejects authenticated non-admin users with 403.
// It must run after auth.
func (h *Handler) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := utils.GetClaimsFromContext(r.Context())
		if !ok {
			h.writeError(w, r, ErrMissingClaims, "*Handler.requireAdmin")
			return
		}
		if !claims.IsAdmin() {
			writeFailure(w, http.StatusForbidden, app.MsgAdminOnly)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// getTokenFromAuthHeader extracts the token from an "Authorization: Bearer
// <token>" header value.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	if authHeader == "" {
		return "", ErrEmptyAuthorizationHeader
	}
	token, err := utils.ParseBearerToken(authHeader)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidAuthorizationHeader, err)
	}
	return token, nil
}

// actor returns the claims stored by auth.
func actor(r *http.Request) (models.Claims, error) {
	claims, ok := utils.GetClaimsFromContext(r.Context())
	if !ok {
		return models.Claims{}, ErrMissingClaims
	}
	return claims, nil
}
