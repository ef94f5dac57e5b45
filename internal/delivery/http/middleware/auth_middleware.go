package middleware

import (
	"context"
	"net/http"
	"strings"

	"hospital-replica-sync/pkg/jwt"
	"hospital-replica-sync/pkg/response"
)

type contextKey string

const (
	TokenSubjectKey contextKey = "token_subject"
	TokenIDKey      contextKey = "token_id"
	RequestIDKey    contextKey = "request_id"
)

type AuthMiddleware struct {
	jwtService *jwt.JWTService
}

func NewAuthMiddleware(jwtService *jwt.JWTService) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
	}
}

// RequireSyncToken guards the sync trigger. Without a configured secret
// every request passes through.
func (m *AuthMiddleware) RequireSyncToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !m.jwtService.Enabled() {
			next.ServeHTTP(w, r)
			return
		}

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			response.Unauthorized(w, "Authorization header is required")
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(w, "Invalid authorization header format")
			return
		}

		claims, err := m.jwtService.ValidateToken(parts[1])
		if err != nil {
			response.Unauthorized(w, "Invalid or expired token")
			return
		}

		if claims.Scope != jwt.ScopeSync {
			response.Forbidden(w, "Token does not allow sync")
			return
		}

		ctx := context.WithValue(r.Context(), TokenSubjectKey, claims.Subject)
		ctx = context.WithValue(ctx, TokenIDKey, claims.TokenID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetTokenSubjectFromContext extracts the token subject from context
func GetTokenSubjectFromContext(ctx context.Context) (string, bool) {
	subject, ok := ctx.Value(TokenSubjectKey).(string)
	return subject, ok
}

// GetRequestIDFromContext extracts the request id from context
func GetRequestIDFromContext(ctx context.Context) (string, bool) {
	requestID, ok := ctx.Value(RequestIDKey).(string)
	return requestID, ok
}
