package middleware

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"palette-backend/internal/models"
)

const UserIDKey = "user_id"

var errNoToken = errors.New("missing authorization header")

// AuthMiddleware rejects requests without a valid Supabase access token and
// stores the token subject under UserIDKey.
func AuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		sub, err := authenticate(c, jwtSecret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{Message: err.Error()})
			return
		}
		c.Set(UserIDKey, sub)
		c.Next()
	}
}

// OptionalAuthMiddleware lets anonymous requests through but rejects a
// token that is present and invalid.
func OptionalAuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		sub, err := authenticate(c, jwtSecret)
		switch {
		case errors.Is(err, errNoToken):
		case err != nil:
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{Message: err.Error()})
			return
		default:
			c.Set(UserIDKey, sub)
		}
		c.Next()
	}
}

// UserID returns the authenticated subject, if any.
func UserID(c *gin.Context) (string, bool) {
	v, ok := c.Get(UserIDKey)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok && s != ""
}

func authenticate(c *gin.Context, jwtSecret string) (string, error) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", errNoToken
	}

	// Extract token from "Bearer <token>"
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", errors.New("invalid authorization header format")
	}

	tokenString := strings.TrimSpace(parts[1])
	if tokenString == "" {
		return "", errors.New("empty token")
	}

	// Some clients URL-encode the token
	if decoded, err := url.QueryUnescape(tokenString); err == nil {
		tokenString = decoded
	}

	if jwtSecret == "" {
		return "", errors.New("authentication is not configured")
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		// Supabase JWT secret is used directly as the signing key
		return []byte(jwtSecret), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return "", errors.New("token has expired")
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return "", errors.New("token signature is invalid")
		case errors.Is(err, jwt.ErrTokenMalformed):
			return "", errors.New("token is malformed")
		default:
			return "", errors.New("invalid token")
		}
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", errors.New("invalid token claims")
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return "", errors.New("missing user id in token")
	}
	return sub, nil
}
