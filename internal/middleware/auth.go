package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

type contextKey string

const (
	UserIDKey    contextKey = "user_id"
	UserEmailKey contextKey = "email"
	UserRoleKey  contextKey = "role"
)

var ErrInvalidToken = errors.New("invalid or expired token")

// SetUserContext sets user info into context (called by the auth middleware,
// and by tests that need an authenticated context).
func SetUserContext(ctx context.Context, id uint, email string, role string) context.Context {
	ctx = context.WithValue(ctx, UserIDKey, id)
	ctx = context.WithValue(ctx, UserEmailKey, email)
	ctx = context.WithValue(ctx, UserRoleKey, role)
	return ctx
}

// GetUserIDFromContext retrieves userID safely
func GetUserIDFromContext(ctx context.Context) (uint, bool) {
	id, ok := ctx.Value(UserIDKey).(uint)
	return id, ok
}

func GetUserRoleFromContext(ctx context.Context) string {
	role, _ := ctx.Value(UserRoleKey).(string)
	return role
}

// ValidateToken parses and verifies an HS256 bearer token and returns the
// user id, email and role claims.
func ValidateToken(tokenStr string, secret []byte) (uint, string, string, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return 0, "", "", ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, "", "", ErrInvalidToken
	}

	uid, ok := claims["user_id"].(float64)
	if !ok {
		return 0, "", "", ErrInvalidToken
	}

	email, _ := claims["email"].(string)
	role, _ := claims["role"].(string)

	return uint(uid), email, role, nil
}

// AuthMiddleware resolves the bearer credential to a user identity. Requests
// without a valid token are rejected with 401.
func AuthMiddleware(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenStr == authHeader {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			return
		}

		userID, email, role, err := ValidateToken(tokenStr, secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set("user_id", userID)
		c.Set("user_email", email)
		c.Set("user_role", role)

		ctx := SetUserContext(c.Request.Context(), userID, email, role)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// AdminMiddleware guards catalog administration routes.
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("user_role")
		if role != "admin" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied. Admin role required"})
			return
		}
		c.Next()
	}
}
