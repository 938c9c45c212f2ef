package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"course-platform/config"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// SessionCookie carries the JWT for browser navigations (the checkout
// success redirect has no Authorization header).
const SessionCookie = "auth_token"

func tokenFromRequest(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString != authHeader {
			return strings.TrimSpace(tokenString)
		}
		return ""
	}
	if cookie, err := c.Cookie(SessionCookie); err == nil {
		return cookie
	}
	return ""
}

func parseClaims(tokenString string) (jwt.MapClaims, error) {
	jwtKey := []byte(config.JWT_SECRET)
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return jwtKey, nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("invalid token claims")
	}
	return claims, nil
}

func setSession(c *gin.Context, claims jwt.MapClaims) {
	if sub, ok := claims["sub"].(string); ok {
		c.Set("user_id", sub)
	}
	if email, ok := claims["email"].(string); ok {
		c.Set("email", email)
	}
	if name, ok := claims["name"].(string); ok {
		c.Set("name", name)
	}
}

// AuthMiddleware rejects requests without a valid session token.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if config.JWT_SECRET == "" {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "JWT secret not configured"})
			c.Abort()
			return
		}

		tokenString := tokenFromRequest(c)
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Please sign in to continue"})
			c.Abort()
			return
		}

		claims, err := parseClaims(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		setSession(c, claims)
		c.Next()
	}
}

// OptionalAuthMiddleware populates the session when a valid token is present
// and lets the request through either way. Status and success endpoints work
// for signed-out visitors.
func OptionalAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if config.JWT_SECRET != "" {
			if tokenString := tokenFromRequest(c); tokenString != "" {
				if claims, err := parseClaims(tokenString); err == nil {
					setSession(c, claims)
				}
			}
		}
		c.Next()
	}
}
