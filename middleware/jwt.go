package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/krishnavamsip/pdf-assistant/types"
	"github.com/krishnavamsip/pdf-assistant/utils"
)

const UserContextKey = "user"

// AuthMiddleware requires a valid bearer token and stores the claims on
// the request context so handlers can attribute work to a user.
func AuthMiddleware(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, types.DataResponse{
			Status:  false,
			Message: "Authorization header is required",
		})
		return
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, types.DataResponse{
			Status:  false,
			Message: "Authorization header format must be Bearer {token}",
		})
		return
	}

	claims, err := utils.ParseUserToken(parts[1])
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, types.DataResponse{
			Status:  false,
			Message: "Invalid token",
		})
		return
	}

	c.Set(UserContextKey, claims)
	c.Next()
}

// UserID returns the authenticated user's id, or "" when unauthenticated.
func UserID(c *gin.Context) string {
	value, ok := c.Get(UserContextKey)
	if !ok {
		return ""
	}
	claims, ok := value.(*utils.UserClaims)
	if !ok {
		return ""
	}
	return claims.ID
}
