package http

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/opsdesk/opsdesk-backend-go/internal/domain/auth"
)

// subjectID resolves the acting user from the verified bearer token.
// Every service call receives it explicitly; no service reads claims
// from ambient state.
func subjectID(r *http.Request) (string, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", auth.ErrInvalidToken
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", auth.ErrInvalidToken
	}

	return userID, nil
}
