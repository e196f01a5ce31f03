package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret")

const testUserID = "11111111-1111-1111-1111-111111111111"

func protectedApp() *fiber.App {
	app := fiber.New()
	app.Get("/secret", Middleware(testSecret), func(c *fiber.Ctx) error {
		uid, err := UserID(c)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
		}
		return c.JSON(fiber.Map{"user_id": uid})
	})
	return app
}

func TestMiddlewareAcceptsAccessToken(t *testing.T) {
	pair, err := NewTokenPair(testSecret, testUserID)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/secret", nil)
	req.Header.Set("Authorization", "Bearer "+pair.Access)

	resp, err := protectedApp().Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestMiddlewareRejectsRefreshToken(t *testing.T) {
	pair, err := NewTokenPair(testSecret, testUserID)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/secret", nil)
	req.Header.Set("Authorization", "Bearer "+pair.Refresh)

	resp, err := protectedApp().Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestMiddlewareRejectsMissingAndMalformed(t *testing.T) {
	app := protectedApp()

	req := httptest.NewRequest(http.MethodGet, "/secret", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	req = httptest.NewRequest(http.MethodGet, "/secret", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestMiddlewareRejectsExpiredToken(t *testing.T) {
	claims := jwt.MapClaims{
		"user_id":    testUserID,
		"token_type": "access",
		"exp":        time.Now().Add(-time.Minute).Unix(),
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testSecret)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/secret", nil)
	req.Header.Set("Authorization", "Bearer "+expired)

	resp, err := protectedApp().Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestParseRefreshRoundTrip(t *testing.T) {
	pair, err := NewTokenPair(testSecret, testUserID)
	require.NoError(t, err)

	uid, err := ParseRefresh(testSecret, pair.Refresh)
	require.NoError(t, err)
	assert.Equal(t, testUserID, uid)

	_, err = ParseRefresh(testSecret, pair.Access)
	assert.Error(t, err)
}
