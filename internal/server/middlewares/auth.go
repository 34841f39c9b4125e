package middlewares

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/collabsec/admin-console/internal/util"
)

// Claims carried by console tokens. The subject is the employee id.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

type tokenContextKey struct{}

// ContextWithToken stows a raw bearer token in the context so the backend
// client can forward the caller's identity upstream.
func ContextWithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenContextKey{}, token)
}

// TokenFromContext returns the bearer token stowed by the authenticator.
func TokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenContextKey{}).(string)
	return token, ok
}

// Authenticator validates HS256 bearer tokens and requires the role claim to
// be one of allowedRoles. Rejections reuse the backend's response shape:
// 401 for a missing or invalid token, 403 for a valid token with the wrong
// role, both with an "Unauthorized" error body.
func Authenticator(secret []byte, allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := bearerToken(c.GetHeader("Authorization"))
		if raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		claims := &Claims{}
		if _, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %s", t.Method.Alg())
			}
			return secret, nil
		}); err != nil {
			zap.S().Named("auth").Debugw("rejected token", "error", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		if !util.Contains(allowedRoles, strings.ToLower(claims.Role)) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Unauthorized"})
			return
		}

		c.Set("employee_id", claims.Subject)
		c.Set("role", claims.Role)
		c.Request = c.Request.WithContext(ContextWithToken(c.Request.Context(), raw))

		c.Next()
	}
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return header[len(prefix):]
	}
	return ""
}
