// Package requestid tags every request with an id that is echoed back to the caller.
package requestid

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const Header = "X-Request-ID"

type ctxKey struct{}

// Middleware reuses the caller's X-Request-ID or generates a new one.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(Header)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(Header, id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKey{}, id)))
	})
}

func FromContext(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}

// Field is a zap field carrying the request id of ctx.
func Field(ctx context.Context) zap.Field {
	return zap.String("request_id", FromContext(ctx))
}
