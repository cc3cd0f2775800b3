package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/clearops/payroll/pkg/utils"
)

type ContextKey string

const AdminIDKey ContextKey = "adminID"

// Middleware rejects requests without a valid bearer token and stores the admin id in the request context.
func Middleware(jwtService JWTServiceInterface) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
				utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			token := strings.TrimPrefix(authHeader, "Bearer ")
			claims, err := jwtService.ValidateToken(token)
			if err != nil {
				utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			ctx := context.WithValue(r.Context(), AdminIDKey, claims.AdminID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AdminID returns the authenticated admin stored by Middleware.
func AdminID(ctx context.Context) (int, bool) {
	id, ok := ctx.Value(AdminIDKey).(int)
	return id, ok
}
