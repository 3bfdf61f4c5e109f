package middleware

import (
	"net/http"
	"strings"
	"time"

	"campus-eats-api/config"
	"campus-eats-api/models"
	"campus-eats-api/session"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

type Claims struct {
	AccountID string             `json:"account_id"`
	Email     string             `json:"email"`
	Type      models.AccountType `json:"type"`
	jwt.RegisteredClaims
}

// GenerateToken creates a signed JWT for a given account
func GenerateToken(a *models.Account) (string, error) {
	claims := Claims{
		AccountID: a.ID,
		Email:     a.Email,
		Type:      a.Type,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(config.JWTSecret)
}

// AuthRequired validates the JWT and checks it still names the account
// the session pointer holds. A token outlives its session the moment a
// different account logs in or the session ends — at most one account
// is active at a time.
func AuthRequired(sessions *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required (Bearer <token>)"})
			c.Abort()
			return
		}
		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims := &Claims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
			return config.JWTSecret, nil
		})
		if err != nil || !token.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}
		current, ok := sessions.Current()
		if !ok || current.ID != claims.AccountID {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Session is no longer active"})
			c.Abort()
			return
		}
		c.Set("accountID", current.ID)
		c.Set("email", current.Email)
		c.Set("accountType", string(current.Type))
		c.Next()
	}
}

// GetAccountID extracts the caller's account id from context
func GetAccountID(c *gin.Context) string {
	val, _ := c.Get("accountID")
	return val.(string)
}

// GetAccountType extracts the caller's account type from context
func GetAccountType(c *gin.Context) models.AccountType {
	val, _ := c.Get("accountType")
	return models.AccountType(val.(string))
}
