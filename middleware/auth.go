package middleware

import (
	"errors"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

func parseToken(c *gin.Context) (uint, error) {
	tokenString := c.GetHeader("Authorization")
	if tokenString == "" {
		return 0, errors.New("authorization header is missing")
	}
	tokenString = strings.TrimPrefix(tokenString, "Bearer ")

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid token signing method")
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return 0, errors.New("invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, errors.New("invalid token claims")
	}
	id, ok := claims["user_id"].(float64)
	if !ok || id < 1 {
		return 0, errors.New("invalid token claims")
	}
	return uint(id), nil
}

// ValidateToken rejects the request unless it carries a valid token, and
// stores the caller's id as "user_id" in the gin context.
func ValidateToken(c *gin.Context) {
	userID, err := parseToken(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		c.Abort()
		return
	}

	c.Set("user_id", userID)
	c.Next()
}

// OptionalToken sets "user_id" when a valid token is present and lets the
// request through either way. Read endpoints use it so viewer-dependent
// fields resolve for authenticated callers and stay false for anonymous
// ones.
func OptionalToken(c *gin.Context) {
	if userID, err := parseToken(c); err == nil {
		c.Set("user_id", userID)
	}
	c.Next()
}
