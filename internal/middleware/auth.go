package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/todo-tracker-api/internal/auth"
	"github.com/yukikurage/todo-tracker-api/internal/constants"
	apierrors "github.com/yukikurage/todo-tracker-api/internal/errors"
)

// TokenVerifier checks a bearer token and returns its claims.
type TokenVerifier interface {
	Verify(token string) (*auth.Claims, error)
}

// Authenticate verifies a bearer token when one is presented and stores its
// claims in the context. Requests without a token pass through unless
// required is set; a presented but invalid token is always rejected.
func Authenticate(verifier TokenVerifier, required bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			if required {
				apierrors.Unauthorized(c, "")
				return
			}
			c.Next()
			return
		}

		scheme, token, ok := strings.Cut(header, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			apierrors.Unauthorized(c, "Invalid authorization header")
			return
		}

		claims, err := verifier.Verify(strings.TrimSpace(token))
		if err != nil {
			apierrors.Unauthorized(c, "Invalid token")
			return
		}

		// Store claims in context for easy access in handlers
		c.Set(constants.ContextKeyClaims, claims)
		c.Next()
	}
}

// GetClaims retrieves the caller's verified claims from context
func GetClaims(c *gin.Context) (*auth.Claims, bool) {
	value, exists := c.Get(constants.ContextKeyClaims)
	if !exists {
		return nil, false
	}
	claims, ok := value.(*auth.Claims)
	return claims, ok
}

// GetActorID returns the authenticated caller's identity ID, or "" for an
// anonymous request.
func GetActorID(c *gin.Context) string {
	if claims, ok := GetClaims(c); ok {
		return claims.Subject
	}
	return ""
}
