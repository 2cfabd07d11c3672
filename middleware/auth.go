package middleware

import (
	"errors"
	"net/http"
	"time"

	"library/config"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const SESSION_COOKIE = "library_session"
const SESSION_LIFETIME = 12 * time.Hour

// IssueSessionCookie signs a token carrying the role and a fresh session
// id and stores it in the session cookie.
func IssueSessionCookie(c *gin.Context, role string) error {
	claims := jwt.MapClaims{
		"role":       role,
		"session_id": uuid.New().String(),
		"exp":        time.Now().Add(SESSION_LIFETIME).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(config.JwtSecret())
	if err != nil {
		return err
	}

	c.SetCookie(SESSION_COOKIE, signed, int(SESSION_LIFETIME.Seconds()), "/", "", false, true)
	return nil
}

func ClearSessionCookie(c *gin.Context) {
	c.SetCookie(SESSION_COOKIE, "", -1, "/", "", false, true)
}

// RequireRole gates a route group on the role claim of the session
// cookie. Missing or invalid tokens get 401, a mismatched role gets 403.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(SESSION_COOKIE)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "please log in first"})
			return
		}

		claims, err := extractSessionClaims(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "session expired or invalid"})
			return
		}

		if claims["role"] != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "unauthorized access"})
			return
		}

		if sessionId, ok := claims["session_id"].(string); ok {
			c.Set("session_id", sessionId)
		}
		c.Next()
	}
}

func extractSessionClaims(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return config.JwtSecret(), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid session token")
	}

	return claims, nil
}
