package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/selisih-berat/internal/app"
	"github.com/MKhiriev/selisih-berat/internal/utils"
	"github.com/MKhiriev/selisih-berat/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---- getTokenFromAuthHeader ----

func TestGetTokenFromAuthHeader_TableTest(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		wantToken string
		wantErr   error
	}{
		{name: "valid Bearer token", header: "Bearer my-jwt-token", wantToken: "my-jwt-token"},
		{name: "lowercase scheme", header: "bearer my-jwt-token", wantToken: "my-jwt-token"},
		{name: "empty header", header: "", wantErr: ErrEmptyAuthorizationHeader},
		{name: "scheme only", header: "Bearer", wantErr: ErrInvalidAuthorizationHeader},
		{name: "wrong scheme", header: "Basic dXNlcjpwYXNz", wantErr: ErrInvalidAuthorizationHeader},
		{name: "extra parts", header: "Bearer a b", wantErr: ErrInvalidAuthorizationHeader},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := getTokenFromAuthHeader(tt.header)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, token)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}

// ---- auth ----

func TestAuth_StoresClaims(t *testing.T) {
	h, _ := newRoutedHandler(t)

	var got models.Claims
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var ok bool
		got, ok = utils.GetClaimsFromContext(r.Context())
		require.True(t, ok)
		w.WriteHeader(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	rr := serve(h.auth(next), req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, adminClaims, got)
}

func TestAuth_Rejections(t *testing.T) {
	tests := []struct {
		name        string
		header      string
		wantMessage string
	}{
		{"no header", "", app.MsgTokenMissing},
		{"malformed header", "Token abc", app.MsgTokenIsExpiredOrInvalid},
		{"rejected token", "Bearer expired", app.MsgTokenIsExpiredOrInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newRoutedHandler(t)
			called := false
			next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) { called = true })

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rr := serve(h.auth(next), req)

			assert.False(t, called)
			assert.Equal(t, http.StatusUnauthorized, rr.Code)
			assert.Equal(t, tt.wantMessage, decodeEnvelope(t, rr).Message)
		})
	}
}

// ---- requireAdmin ----

func TestRequireAdmin(t *testing.T) {
	tests := []struct {
		name       string
		claims     *models.Claims
		wantStatus int
	}{
		{"admin passes", &adminClaims, http.StatusNoContent},
		{"user is forbidden", &userClaims, http.StatusForbidden},
		{"no claims", nil, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newRoutedHandler(t)
			next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusNoContent) })

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.claims != nil {
				req = req.WithContext(utils.WithClaims(req.Context(), *tt.claims))
			}
			rr := serve(h.requireAdmin(next), req)

			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

func TestActor(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, err := actor(req)
	assert.True(t, errors.Is(err, ErrMissingClaims))

	req = req.WithContext(utils.WithClaims(req.Context(), userClaims))
	claims, err := actor(req)
	require.NoError(t, err)
	assert.Equal(t, "budi", claims.Username)
}
