package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	mem "fitbite/pkg/memcache"
	"fitbite/pkg/utils"
)

// JWTAuthMiddleware validates the bearer token and rejects tokens issued
// before the account's last session revocation, so stale claims stop working
// as soon as an admin mutates them.
func JWTAuthMiddleware(revocations mem.RevocationStore) gin.HandlerFunc {

	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondError(c, http.StatusUnauthorized, "Authorization header missing or invalid")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := utils.ValidateToken(tokenString)
		if err != nil {
			if errors.Is(err, utils.ErrExpiredToken) {
				utils.RespondError(c, http.StatusUnauthorized, "Token expired, please log in again")
			} else {
				utils.RespondError(c, http.StatusUnauthorized, "Invalid token")
			}
			c.Abort()
			return
		}

		if revokedAt, ok := revocations.RevokedAt(claims.UserID); ok {
			if claims.IssuedAt == nil || !claims.IssuedAt.Time.After(revokedAt) {
				utils.RespondError(c, http.StatusUnauthorized, "Session revoked, please log in again")
				c.Abort()
				return
			}
		}

		c.Set("user_id", claims.UserID)
		c.Set("Role", claims.Role)
		c.Set("grants", claims.Grants)
		c.Next()
	}
}

// AdminMiddleware requires the admin grant on the caller's claim set.
func AdminMiddleware() gin.HandlerFunc {

	return func(c *gin.Context) {
		grantsVal, exists := c.Get("grants")
		if !exists {
			utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
			c.Abort()
			return
		}

		grants, ok := grantsVal.(utils.TokenGrants)
		if !ok || !grants.Admin {
			utils.RespondError(c, http.StatusForbidden, "Forbidden: insufficient permissions")
			c.Abort()
			return
		}

		c.Next()
	}
}
