package middleware

import (
	"context"
	"net/http"
	"strings"

	"clinic-management-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// SessionCookie is the name of the browser session cookie.
const SessionCookie = "session_token"

// SessionResolver resolves an opaque session token into a user id and role.
// Implemented by session.Store.
type SessionResolver interface {
	Get(ctx context.Context, token string) (uint, string, error)
}

// AuthMiddleware authenticates the request and injects the caller's identity
// into the gin context. API clients send a Bearer JWT in the Authorization
// header; browser clients carry the opaque session cookie, validated
// server-side on every protected route.
func AuthMiddleware(sessions SessionResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Bearer token path
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				utils.ErrorResponse(c, http.StatusUnauthorized, "Invalid authorization format. Use: Bearer <token>")
				c.Abort()
				return
			}

			claims, err := utils.ValidateAccessToken(parts[1])
			if err != nil {
				utils.ErrorResponse(c, http.StatusUnauthorized, "Invalid or expired token")
				c.Abort()
				return
			}

			c.Set("userID", claims.UserID)
			c.Set("role", claims.Role)
			c.Next()
			return
		}

		// Session cookie path
		token, err := c.Cookie(SessionCookie)
		if err != nil {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
			c.Abort()
			return
		}

		userID, role, err := sessions.Get(c.Request.Context(), token)
		if err != nil {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Invalid or expired session")
			c.Abort()
			return
		}

		c.Set("userID", userID)
		c.Set("role", role)

		c.Next()
	}
}

// RequireRole checks that the authenticated user has one of the given roles
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
			c.Abort()
			return
		}

		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}

		utils.ErrorResponse(c, http.StatusForbidden, "Access denied for this role")
		c.Abort()
	}
}
