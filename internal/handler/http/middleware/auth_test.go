package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/opsdesk/opsdesk-backend-go/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProtectedRouter(jwtService jwt.Service) http.Handler {
	r := chi.NewRouter()
	r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
	r.Use(AuthRequired(jwtService))
	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return r
}

func TestAuthRequired_RejectsRevokedAccessToken(t *testing.T) {
	jwtService := jwt.NewJWTService("test-secret-key-for-jwt", "1h", "24h")
	router := newProtectedRouter(jwtService)

	token, _, err := jwtService.GenerateAccessToken("user-1", "user@example.com")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	jwtService.RevokeToken(token)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthRequired_RejectsRefreshTokenAsAccess(t *testing.T) {
	jwtService := jwt.NewJWTService("test-secret-key-for-jwt", "1h", "24h")
	router := newProtectedRouter(jwtService)

	token, _, err := jwtService.GenerateRefreshToken("user-1")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthRequired_RejectsMissingToken(t *testing.T) {
	jwtService := jwt.NewJWTService("test-secret-key-for-jwt", "1h", "24h")
	router := newProtectedRouter(jwtService)

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
