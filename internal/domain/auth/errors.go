package auth

import "errors"

var (
	ErrInvalidToken    = errors.New("invalid or expired token")
	ErrTokenRevoked    = errors.New("token has been revoked")
	ErrAccountInactive = errors.New("this account is not active")
	ErrOAuthFailed     = errors.New("google authentication failed")
)
