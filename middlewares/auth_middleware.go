package middlewares

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/sourdough-shop/utils"
)

// AdminAuthMiddleware guards the admin panel routes. The shop has a single
// shared operator identity; the token only proves the password check passed.
func AdminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("Authorization")
		if token == "" {
			token = c.Query("token")
		}

		if token == "" {
			utils.RespondError(c, http.StatusUnauthorized, errors.New("token missing"))
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(token, "Bearer ")
		claims, err := utils.ParseToken(tokenString)
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, err)
			c.Abort()
			return
		}

		if claims.Role != "admin" {
			utils.RespondError(c, http.StatusForbidden, errors.New("admin token required"))
			c.Abort()
			return
		}

		c.Set("role", claims.Role)
		c.Next()
	}
}
