package middlewares

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/avdeev89/chatbot-server/internal/jwt"
	"github.com/avdeev89/chatbot-server/internal/logger"
)

// Tokener defines the minimal interface needed by the middleware
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// AuthErrorResponse is the uniform body rendered for every token failure.
type AuthErrorResponse struct {
	Msg   string `json:"msg"`
	Error string `json:"error"`
}

// contextKey is an unexported type for keys in context
type contextKey struct{}

var userIDKey = contextKey{}

// WithUserID returns a context carrying the authenticated user id.
func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// GetUserID retrieves the authenticated user id from the context. Returns 0
// if the request did not pass the auth middleware.
func GetUserID(ctx context.Context) int64 {
	id, _ := ctx.Value(userIDKey).(int64)
	return id
}

// AuthMiddleware returns a middleware that validates the bearer token and
// stores the embedded user id in the request context. All token failures are
// rendered centrally as a uniform 401 response.
func AuthMiddleware(tokener Tokener) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				writeAuthError(w, err)
				return
			}

			claims, err := tokener.GetClaims(ctx, tokenString)
			if err != nil {
				writeAuthError(w, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(ctx, claims.UserID)))
		})
	}
}

func writeAuthError(w http.ResponseWriter, err error) {
	logger.Log.Infow("authorization failed", "err", err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(AuthErrorResponse{
		Msg:   err.Error(),
		Error: "jwt_error",
	})
}
