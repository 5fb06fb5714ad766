package middleware

import (
	"errors"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const loginPath = "/auth/login"

// RequireAuth validates the caller's JWT and stores the user id in the
// context. Unauthenticated callers are sent to the login page rather than
// handed a 401, matching the browsing flow around the basket.
func RequireAuth(c *gin.Context) {
	tokenString := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
	if tokenString == "" {
		c.Redirect(http.StatusFound, loginPath)
		c.Abort()
		return
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid token signing method")
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		c.Redirect(http.StatusFound, loginPath)
		c.Abort()
		return
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		c.Redirect(http.StatusFound, loginPath)
		c.Abort()
		return
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		c.Redirect(http.StatusFound, loginPath)
		c.Abort()
		return
	}

	c.Set("user_id", userID)
	c.Next()
}
