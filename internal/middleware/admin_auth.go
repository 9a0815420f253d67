package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ourkidney/api-backend/internal/services"
)

// SessionCookieName is the cookie carrying the signed session token.
const SessionCookieName = "admin-token"

// AdminAuthMiddleware is the session gate for admin-area routes. It is
// stateless: every request presents the admin-token cookie, the token is
// re-verified, and the protected handler never executes on failure. The
// SPA redirects to the login page when it sees the 401.
func AdminAuthMiddleware(authService *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Step 1: Extract token from the session cookie
		tokenString, err := c.Cookie(SessionCookieName)
		if err != nil || tokenString == "" {
			unauthorizedResponse(c, "Admin authentication required. Please log in.")
			return
		}

		// Step 2: Verify signature and expiry
		claims, err := authService.ValidateToken(tokenString)
		if err != nil {
			unauthorizedResponse(c, "Invalid or expired session. Please log in again.")
			return
		}

		// Step 3: Store identity in context for use by handlers
		c.Set("admin_id", claims.AdminID)
		c.Set("admin_email", claims.Email)

		// Token is valid, continue to next handler
		c.Next()
	}
}

// unauthorizedResponse is a helper to return 401 responses
func unauthorizedResponse(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, gin.H{
		"error":   "Unauthorized",
		"message": message,
	})
	c.Abort()
}

// AdminID extracts the authenticated admin's id set by the middleware.
func AdminID(c *gin.Context) (uint, bool) {
	v, ok := c.Get("admin_id")
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}
