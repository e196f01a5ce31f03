package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	accessTTL  = 15 * time.Minute
	refreshTTL = 7 * 24 * time.Hour
)

// TokenPair is the login/refresh response body: a short-lived access token
// plus a longer-lived refresh token.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

func NewTokenPair(secret []byte, userID string) (TokenPair, error) {
	access, err := signToken(secret, userID, "access", accessTTL)
	if err != nil {
		return TokenPair{}, err
	}
	refresh, err := signToken(secret, userID, "refresh", refreshTTL)
	if err != nil {
		return TokenPair{}, err
	}
	return TokenPair{Access: access, Refresh: refresh}, nil
}

func signToken(secret []byte, userID, tokenType string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id":    userID,
		"token_type": tokenType,
		"exp":        time.Now().Add(ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

// ParseRefresh validates a refresh token and returns the user id it carries.
func ParseRefresh(secret []byte, tokenStr string) (string, error) {
	return parseToken(secret, tokenStr, "refresh")
}

func parseToken(secret []byte, tokenStr, wantType string) (string, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return "", errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid token")
	}
	if typ, _ := claims["token_type"].(string); typ != wantType {
		return "", errors.New("invalid token")
	}

	rawUID, ok := claims["user_id"].(string)
	if !ok {
		return "", errors.New("invalid token")
	}
	if _, err := uuid.Parse(rawUID); err != nil {
		return "", errors.New("invalid token")
	}
	return rawUID, nil
}

// Middleware guards protected routes. It accepts only non-expired access
// tokens and stores the acting user's id in c.Locals("user_id"); the error
// message never says which part of the credential was wrong.
func Middleware(secret []byte) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "missing token")
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid token")
		}

		userID, err := parseToken(secret, parts[1], "access")
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid token")
		}

		c.Locals("user_id", userID)
		return c.Next()
	}
}

// UserID extracts the authenticated user's id set by Middleware.
func UserID(c *fiber.Ctx) (string, error) {
	val := c.Locals("user_id")
	if uid, ok := val.(string); ok && strings.TrimSpace(uid) != "" {
		return uid, nil
	}
	return "", errors.New("user id missing")
}
