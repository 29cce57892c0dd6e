package middleware

import (
	"fmt"
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/rudratic/hr-backend-go/internal/domain/user"
	"github.com/rudratic/hr-backend-go/internal/handler/http/response"
)

func roleFromClaims(r *http.Request) (user.Role, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", err
	}

	roleStr, ok := claims["role"].(string)
	if !ok {
		return "", fmt.Errorf("role claim missing")
	}

	return user.NormalizeRole(roleStr), nil
}

// RequireAdmin gates a route to the admin role family.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, err := roleFromClaims(r)
		if err != nil || !user.IsAdminRole(role) {
			response.HandleError(w, user.ErrAdminPrivilegeRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RequireApprover gates a route to roles that may decide leave requests.
func RequireApprover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, err := roleFromClaims(r)
		if err != nil || !user.IsApproverRole(role) {
			response.HandleError(w, user.ErrApproverRoleRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RequirePermission gates a route on a single permission flag.
func RequirePermission(check func(user.Permissions) bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, err := roleFromClaims(r)
			if err != nil || !user.HasPermission(role, check) {
				response.HandleError(w, user.ErrInsufficientPermissions)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
