package auth

import (
	"context"
	"net/http"
)

// AuthService exposes authentication flows. Refresh and logout read the
// refresh token from its cookie, so they take the raw request.
type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, *http.Cookie, error)
	Refresh(ctx context.Context, refreshToken string) (RefreshResponse, error)
	Logout(ctx context.Context, accessToken, refreshToken string) error

	// Google OAuth login.
	GoogleLoginURL(userAgent string) string
	GoogleCallback(ctx context.Context, code string) (LoginResponse, *http.Cookie, error)
}
