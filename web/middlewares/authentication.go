package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"westsiderising.org/timeclock/security"
	"westsiderising.org/timeclock/web/common"
)

const identityKey = "identity"

// Authentication checks for a valid Bearer token (or session cookie) and puts
// the caller's identity into the request context.
func Authentication(jwtSecret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := ""

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			// Try to get from cookie
			cookie, err := c.Cookie("westsiderising.SessionCookie")
			if err != nil {
				// Cookie not found either
				c.AbortWithStatus(http.StatusUnauthorized)
				return
			}

			tokenStr = cookie
		} else {
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				c.AbortWithStatus(http.StatusUnauthorized)
				return
			}

			tokenStr = parts[1]
		}

		identity, err := security.ParseIdentityToken(tokenStr, jwtSecret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, common.NewErrorResponse("invalid or expired token"))
			return
		}

		c.Set(identityKey, identity)
		c.Next()
	}
}

// RequireRole gates a route group to the listed roles. Must run after
// Authentication.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := GetIdentity(c)
		if identity == nil {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		for _, role := range roles {
			if identity.Role == role {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, common.NewErrorResponse("insufficient role"))
	}
}

// GetIdentity returns the authenticated identity, or nil outside an
// authenticated route.
func GetIdentity(c *gin.Context) *security.Identity {
	value, ok := c.Get(identityKey)
	if !ok {
		return nil
	}
	identity, _ := value.(*security.Identity)
	return identity
}
