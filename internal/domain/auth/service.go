package auth

import "context"

// AuthService defines business logic for authentication
type AuthService interface {
	// Register creates a new user with a hashed password
	Register(ctx context.Context, req RegisterRequest) (RegisterResponse, error)

	// Login verifies credentials and issues an access/refresh token pair
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)

	// Refresh exchanges a valid refresh token for a new access token
	Refresh(ctx context.Context, refreshToken string) (TokenResponse, error)

	// Logout revokes the given tokens
	Logout(ctx context.Context, accessToken string, refreshToken string) error
}
