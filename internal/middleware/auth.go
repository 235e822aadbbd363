package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/tiagorodrigues47/barbearia-api/internal/config"
)

const (
	ContextUserType = "userType"
	ContextClientID = "clientID"
	ContextBarberID = "barberID"

	UserTypeBarber = "barber"
	UserTypeClient = "client"
)

func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing_authorization_header"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_authorization_header"})
			return
		}

		tokenString := parts[1]

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {

			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenMalformed
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token_claims"})
			return
		}

		sub, ok1 := claims["sub"].(string)
		userType, ok2 := claims["typ"].(string)
		if !ok1 || !ok2 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token_payload"})
			return
		}

		switch userType {
		case UserTypeBarber:
			barberID, err := strconv.ParseUint(sub, 10, 64)
			if err != nil {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token_payload"})
				return
			}
			c.Set(ContextBarberID, uint(barberID))

		case UserTypeClient:
			c.Set(ContextClientID, sub)

		default:
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token_payload"})
			return
		}

		c.Set(ContextUserType, userType)

		c.Next()
	}
}

// RequireBarber bloqueia rotas exclusivas do barbeiro
func RequireBarber() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(ContextUserType) != UserTypeBarber {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "barber_only"})
			return
		}
		c.Next()
	}
}
