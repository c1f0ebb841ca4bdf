package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"musicapi/internal/models"
	"musicapi/internal/token"
)

// ContextClaimsKey is the gin context key under which the verified token
// claims are stored.
const ContextClaimsKey = "claims"

// AuthMiddleware creates a Gin middleware for JWT authentication. Every
// verification failure is answered directly with a structured 401 body; the
// downstream handler only ever runs with verified claims in the context.
func AuthMiddleware(codec *token.Codec, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":   "invalid_authorization",
				"message": "Authorization header required",
			})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":   "invalid_authorization",
				"message": "Authorization header format must be Bearer <token>",
			})
			return
		}

		claims, err := codec.Verify(parts[1])
		if err != nil {
			switch {
			case errors.Is(err, token.ErrExpired):
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
					"error":   "token_expired",
					"message": "jwt expired",
				})
			case errors.Is(err, token.ErrInvalid):
				logger.Error("Invalid JWT token", zap.Error(err))
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
					"error":   "token_invalid",
					"message": "invalid token",
				})
			default:
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
					"error":   "token_invalid",
					"message": err.Error(),
				})
			}
			return
		}

		c.Set(ContextClaimsKey, claims)
		c.Next()
	}
}

// Claims returns the verified token claims attached by AuthMiddleware.
func Claims(c *gin.Context) *models.Claims {
	return c.MustGet(ContextClaimsKey).(*models.Claims)
}
