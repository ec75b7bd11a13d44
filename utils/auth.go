package utils

import (
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
)

type UserClaims struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
}

type contextKey string

const UserContextKey contextKey = "user"

// AuthCookie is the cookie the browser flow rides on; API clients may send
// the same token as a Bearer header instead.
const AuthCookie = "yatube_token"

const tokenLifetime = 7 * 24 * time.Hour

// GetUser returns the authenticated requester, or nil for anonymous.
func GetUser(c *gin.Context) *UserClaims {
	user, exists := c.Get(string(UserContextKey))
	if !exists {
		return nil
	}
	if claims, ok := user.(*UserClaims); ok {
		return claims
	}
	return nil
}

func GenerateToken(userID uint, username, secret string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  userID,
		"username": username,
		"exp":      time.Now().Add(tokenLifetime).Unix(),
	})
	return token.SignedString([]byte(secret))
}

// ParseToken validates the token and extracts the claims; nil means the
// token is missing, expired or forged.
func ParseToken(tokenString, secret string) *UserClaims {
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil || !parsed.Valid {
		return nil
	}

	rawID, ok := claims["user_id"].(float64)
	if !ok {
		return nil
	}
	username, _ := claims["username"].(string)
	return &UserClaims{UserID: uint(rawID), Username: username}
}
