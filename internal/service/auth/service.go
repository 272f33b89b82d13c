package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"github.com/appdotbuilder/hrd-manager/internal/domain/auth"
	"github.com/appdotbuilder/hrd-manager/internal/domain/user"
	"github.com/appdotbuilder/hrd-manager/internal/pkg/jwt"
	"github.com/appdotbuilder/hrd-manager/internal/pkg/oauth"
)

type AuthServiceImpl struct {
	userRepo      user.UserRepository
	jwtService    jwt.Service
	googleService oauth.GoogleService
}

func NewAuthService(userRepo user.UserRepository, jwtService jwt.Service, googleService oauth.GoogleService) auth.AuthService {
	return &AuthServiceImpl{
		userRepo:      userRepo,
		jwtService:    jwtService,
		googleService: googleService,
	}
}

// Login implements auth.AuthService.
func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, *http.Cookie, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, nil, err
	}

	u, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrEmployeeNotFound) {
			return auth.LoginResponse{}, nil, user.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, nil, user.ErrInvalidCredentials
	}

	return s.issueTokens(u)
}

// Refresh implements auth.AuthService.
func (s *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string) (auth.RefreshResponse, error) {
	if refreshToken == "" {
		return auth.RefreshResponse{}, auth.ErrInvalidToken
	}
	if s.jwtService.IsTokenRevoked(refreshToken) {
		return auth.RefreshResponse{}, auth.ErrTokenRevoked
	}

	token, err := jwtauthVerify(s.jwtService, refreshToken)
	if err != nil {
		return auth.RefreshResponse{}, auth.ErrInvalidToken
	}

	tokenType, _ := token.Get("type")
	if tokenType != "refresh" {
		return auth.RefreshResponse{}, auth.ErrInvalidToken
	}

	userIDValue, _ := token.Get("user_id")
	userID, ok := userIDValue.(string)
	if !ok || userID == "" {
		return auth.RefreshResponse{}, auth.ErrInvalidToken
	}

	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return auth.RefreshResponse{}, auth.ErrInvalidToken
	}
	if !u.IsActive() {
		return auth.RefreshResponse{}, auth.ErrAccountInactive
	}

	accessToken, _, err := s.jwtService.GenerateAccessToken(u.ID, u.Email, u.Role)
	if err != nil {
		return auth.RefreshResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	return auth.RefreshResponse{AccessToken: accessToken}, nil
}

// Logout implements auth.AuthService.
func (s *AuthServiceImpl) Logout(ctx context.Context, accessToken, refreshToken string) error {
	if accessToken != "" {
		s.jwtService.RevokeToken(accessToken)
	}
	if refreshToken != "" {
		s.jwtService.RevokeToken(refreshToken)
	}
	return nil
}

// GoogleLoginURL implements auth.AuthService.
func (s *AuthServiceImpl) GoogleLoginURL(userAgent string) string {
	state := s.googleService.GenerateState(userAgent)
	return s.googleService.RedirectURL(state)
}

// GoogleCallback implements auth.AuthService.
func (s *AuthServiceImpl) GoogleCallback(ctx context.Context, code string) (auth.LoginResponse, *http.Cookie, error) {
	token, err := s.googleService.VerifyToken(ctx, code)
	if err != nil {
		return auth.LoginResponse{}, nil, auth.ErrOAuthFailed
	}

	info, err := s.googleService.VerifyUser(ctx, token)
	if err != nil || !info.VerifiedEmail {
		return auth.LoginResponse{}, nil, auth.ErrOAuthFailed
	}

	u, err := s.userRepo.GetByEmail(ctx, info.Email)
	if err != nil {
		if errors.Is(err, user.ErrEmployeeNotFound) {
			return auth.LoginResponse{}, nil, user.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, nil, err
	}

	return s.issueTokens(u)
}

func (s *AuthServiceImpl) issueTokens(u user.User) (auth.LoginResponse, *http.Cookie, error) {
	if !u.IsActive() {
		return auth.LoginResponse{}, nil, auth.ErrAccountInactive
	}

	accessToken, _, err := s.jwtService.GenerateAccessToken(u.ID, u.Email, u.Role)
	if err != nil {
		return auth.LoginResponse{}, nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, refreshExpiresAt, err := s.jwtService.GenerateRefreshToken(u.ID)
	if err != nil {
		return auth.LoginResponse{}, nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	resp := auth.LoginResponse{
		AccessToken: accessToken,
		User:        user.NewEmployeeResponse(u),
	}

	return resp, s.jwtService.RefreshTokenCookie(refreshToken, refreshExpiresAt), nil
}
