package httpapi

import (
	"context"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/weatherhub/internal/server/auth"
	"github.com/google/uuid"
)

type ctxKey string

const userIDKey ctxKey = "userID"

// userIDFromContext returns the id stashed by requireToken. Handlers behind
// the middleware trust this value; nothing downstream re-checks the store.
func userIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey).(int64)
	return id, ok
}

// requireToken extracts the bearer token from the Authorization header,
// verifies it and puts the caller's user id into the request context.
// A missing token is 403, a bad one is 500 — kept exactly as the API has
// always responded.
func (s *HTTPServer) requireToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		var token string
		if h := r.Header.Get("Authorization"); h != "" {
			parts := strings.SplitN(h, " ", 2)
			if len(parts) == 2 {
				token = parts[1]
			}
		}
		if token == "" {
			http.Error(w, "No token provided.", http.StatusForbidden)
			return
		}

		userID, err := auth.ParseUserID(token, s.jwtSecret)
		if err != nil {
			s.logger.Warn(r.Context(), "token rejected", "error", err.Error())
			http.Error(w, "Failed to authenticate token.", http.StatusInternalServerError)
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// withRequestID tags every request with a uuid and logs it once served.
func (s *HTTPServer) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := uuid.NewString()
		w.Header().Set("X-Request-Id", reqID)

		log := s.logger.With("request_id", reqID)
		log.Info(r.Context(), "request", "method", r.Method, "path", r.URL.Path)

		next.ServeHTTP(w, r)
	})
}
