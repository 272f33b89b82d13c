package authz

import (
	"context"
	"fmt"

	"github.com/go-chi/jwtauth/v5"

	"github.com/appdotbuilder/hrd-manager/internal/domain/user"
)

// RequesterFromContext builds the requester from the verified JWT claims
// placed on the context by the auth middleware.
func RequesterFromContext(ctx context.Context) (Requester, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return Requester{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return Requester{}, fmt.Errorf("user_id claim is missing or invalid")
	}

	role, ok := claims["role"].(string)
	if !ok || role == "" {
		return Requester{}, fmt.Errorf("role claim is missing or invalid")
	}

	return Requester{ID: userID, Role: user.Role(role)}, nil
}
