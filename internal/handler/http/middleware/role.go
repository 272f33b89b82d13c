package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/appdotbuilder/hrd-manager/internal/domain/user"
	"github.com/appdotbuilder/hrd-manager/internal/handler/http/response"
)

// RequireHr requires the hr role
func RequireHr(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, user.ErrHrAccessRequired)
			return
		}

		role, ok := claims["role"].(string)
		if !ok {
			response.HandleError(w, user.ErrHrAccessRequired)
			return
		}

		if role != string(user.RoleHr) {
			response.HandleError(w, user.ErrHrAccessRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RequireStaff requires the hr or manager role
func RequireStaff(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, user.ErrStaffAccessRequired)
			return
		}

		roleStr, ok := claims["role"].(string)
		if !ok {
			response.HandleError(w, user.ErrStaffAccessRequired)
			return
		}

		role := user.Role(roleStr)
		if role != user.RoleHr && role != user.RoleManager {
			response.HandleError(w, user.ErrStaffAccessRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
