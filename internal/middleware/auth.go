package middleware

import (
	"net/http"
	"strings"

	"stylelove/internal/auth"
	"stylelove/internal/models"

	"github.com/gin-gonic/gin"
)

const identityKey = "identity"

// TokenValidator is satisfied by *auth.Tokens.
type TokenValidator interface {
	Validate(tokenString string) (*auth.Claims, error)
}

// RequireAuth rejects requests without a valid bearer token.
func RequireAuth(tokens TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		if !authenticate(c, tokens, authHeader) {
			return
		}
		c.Next()
	}
}

// OptionalAuth lets guests through. A header that is present but invalid is
// still rejected so a stale token is not silently treated as a guest.
func OptionalAuth(tokens TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}
		if !authenticate(c, tokens, authHeader) {
			return
		}
		c.Next()
	}
}

func authenticate(c *gin.Context, tokens TokenValidator, authHeader string) bool {
	if !strings.HasPrefix(authHeader, "Bearer ") {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
		return false
	}

	claims, err := tokens.Validate(strings.TrimPrefix(authHeader, "Bearer "))
	if err != nil {
		if auth.IsExpired(err) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token has expired"})
			return false
		}
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
		return false
	}
	SetIdentity(c, IdentityFromClaims(claims))
	return true
}

func IdentityFromClaims(claims *auth.Claims) models.Identity {
	return models.Identity{UserID: claims.UserID(), Email: claims.Email, Name: claims.Name}
}

func SetIdentity(c *gin.Context, id models.Identity) {
	c.Set(identityKey, id)
}

// IdentityFrom returns the caller's identity; ok is false for guests.
func IdentityFrom(c *gin.Context) (models.Identity, bool) {
	v, exists := c.Get(identityKey)
	if !exists {
		return models.Identity{}, false
	}
	id, ok := v.(models.Identity)
	return id, ok && id.UserID != ""
}
