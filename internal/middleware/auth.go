package middleware

import (
	"net/http"
	"strings"

	"visitreg/internal/apierror"
	"visitreg/internal/model"
	"visitreg/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	IdentityKey = "identity"
	TokenKey    = "token"
)

// TokenAuth resolves the opaque bearer token on every protected route.
// On success the resolved *model.User is stored in the request context;
// absent, malformed, or revoked tokens are rejected with 401.
func TokenAuth(auth service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Authentication required"))
			return
		}

		token := strings.TrimPrefix(header, "Bearer ")
		identity, err := auth.ResolveIdentity(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Token invalid or revoked"))
			return
		}

		c.Set(IdentityKey, identity)
		c.Set(TokenKey, token)
		c.Next()
	}
}

// RequireRole rejects requests whose resolved identity is not in the allowed
// list. Declared once per route at registration — the single authorization
// predicate for that operation.
func RequireRole(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(c *gin.Context) {
		identity, ok := c.MustGet(IdentityKey).(*model.User)
		if !ok || !allowed[identity.Role] {
			c.AbortWithStatusJSON(http.StatusForbidden, apierror.New("Insufficient permissions"))
			return
		}
		c.Next()
	}
}

// GetIdentity is a helper to retrieve the resolved user from the Gin context.
func GetIdentity(c *gin.Context) *model.User {
	identity, _ := c.MustGet(IdentityKey).(*model.User)
	return identity
}

// GetToken returns the raw bearer token of the current request.
func GetToken(c *gin.Context) string {
	return c.GetString(TokenKey)
}
