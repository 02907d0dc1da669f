package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/lumistudio/backend-studio/config"
)

type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// AdminAuth guards admin routes with a bearer JWT. When no admin
// credentials are configured the guard passes everything through.
func AdminAuth(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !cfg.AdminAuthEnabled() {
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		tokenString := ""
		if authHeader != "" {
			// Extract token from "Bearer <token>"
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				c.JSON(http.StatusUnauthorized, gin.H{
					"success": false,
					"error":   "Invalid authorization header format",
				})
				c.Abort()
				return
			}
			tokenString = parts[1]
		} else {
			cookieToken, err := c.Cookie("token")
			if err != nil || cookieToken == "" {
				c.JSON(http.StatusUnauthorized, gin.H{
					"success": false,
					"error":   "Authorization required",
				})
				c.Abort()
				return
			}
			tokenString = cookieToken
		}

		token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "Invalid or expired token",
			})
			c.Abort()
			return
		}

		claims, ok := token.Claims.(*Claims)
		if !ok || claims.Role != "admin" {
			c.JSON(http.StatusForbidden, gin.H{
				"success": false,
				"error":   "Admin access required",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
