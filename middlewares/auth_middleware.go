package middlewares

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/airavatatech/mings-backend/utils"
)

// AdminAuthMiddleware guards admin-only routes. The token comes from the
// admin_token cookie set at login, with an Authorization header fallback for
// non-browser clients.
func AdminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, _ := c.Cookie("admin_token")
		if token == "" {
			authHeader := c.GetHeader("Authorization")
			token = strings.TrimPrefix(authHeader, "Bearer ")
		}

		if token == "" {
			utils.RespondError(c, http.StatusUnauthorized, errors.New("unauthorized - admin access required"))
			c.Abort()
			return
		}

		if utils.IsTokenBlacklisted(token) {
			utils.RespondError(c, http.StatusUnauthorized, errors.New("unauthorized - admin access required"))
			c.Abort()
			return
		}

		claims, err := utils.ParseAdminToken(token)
		if err != nil || !claims.IsAdmin {
			utils.RespondError(c, http.StatusUnauthorized, errors.New("unauthorized - admin access required"))
			c.Abort()
			return
		}

		c.Set("is_admin", true)
		c.Next()
	}
}
