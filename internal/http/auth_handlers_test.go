package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KubinSamuvel026/SMART-EXPENSE-TACKER/internal/auth"
	"github.com/KubinSamuvel026/SMART-EXPENSE-TACKER/internal/user"
)

type fakeUserStore struct {
	byEmail map[string]*user.User
	nextID  int
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{byEmail: make(map[string]*user.User)}
}

func (s *fakeUserStore) Create(_ context.Context, email, passwordHash string) (string, error) {
	if _, ok := s.byEmail[email]; ok {
		return "", user.ErrEmailTaken
	}
	s.nextID++
	id := uuidFor(s.nextID)
	s.byEmail[email] = &user.User{ID: id, Email: email, PasswordHash: passwordHash}
	return id, nil
}

func (s *fakeUserStore) GetByEmail(_ context.Context, email string) (*user.User, error) {
	u, ok := s.byEmail[email]
	if !ok {
		return nil, user.ErrNotFound
	}
	return u, nil
}

// uuidFor builds a deterministic valid UUID for test users.
func uuidFor(n int) string {
	return fmt.Sprintf("00000000-0000-0000-0000-%012d", n)
}

func newAuthApp(store UserStore) *fiber.App {
	h := &AuthHandler{Users: store, Secret: []byte("test-secret")}
	app := fiber.New()
	app.Post("/api/auth/register", h.Register)
	app.Post("/api/auth/login", h.Login)
	app.Post("/api/auth/refresh", h.Refresh)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) *http.Response {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestRegisterValidation(t *testing.T) {
	app := newAuthApp(newFakeUserStore())

	resp := postJSON(t, app, "/api/auth/register", fiber.Map{"email": "", "password": "pw"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = postJSON(t, app, "/api/auth/register", fiber.Map{"email": "a@b.com", "password": ""})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	app := newAuthApp(newFakeUserStore())

	resp := postJSON(t, app, "/api/auth/register", fiber.Map{"email": "a@b.com", "password": "secret"})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = postJSON(t, app, "/api/auth/register", fiber.Map{"email": "a@b.com", "password": "other"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestLoginIssuesUsableTokenPair(t *testing.T) {
	store := newFakeUserStore()
	app := newAuthApp(store)

	resp := postJSON(t, app, "/api/auth/register", fiber.Map{"email": "a@b.com", "password": "secret"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = postJSON(t, app, "/api/auth/login", fiber.Map{"email": "a@b.com", "password": "secret"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var pair auth.TokenPair
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&pair))
	assert.NotEmpty(t, pair.Access)
	assert.NotEmpty(t, pair.Refresh)

	// The refresh token must mint a fresh pair.
	resp = postJSON(t, app, "/api/auth/refresh", fiber.Map{"refresh": pair.Refresh})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var renewed auth.TokenPair
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&renewed))
	assert.NotEmpty(t, renewed.Access)
}

func TestLoginBadCredentials(t *testing.T) {
	store := newFakeUserStore()
	app := newAuthApp(store)

	resp := postJSON(t, app, "/api/auth/register", fiber.Map{"email": "a@b.com", "password": "secret"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	// Wrong password and unknown email look identical to the caller.
	respWrongPw := postJSON(t, app, "/api/auth/login", fiber.Map{"email": "a@b.com", "password": "nope"})
	respUnknown := postJSON(t, app, "/api/auth/login", fiber.Map{"email": "who@b.com", "password": "nope"})
	assert.Equal(t, http.StatusUnauthorized, respWrongPw.StatusCode)
	assert.Equal(t, http.StatusUnauthorized, respUnknown.StatusCode)
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	app := newAuthApp(newFakeUserStore())

	pair, err := auth.NewTokenPair([]byte("test-secret"), "11111111-1111-1111-1111-111111111111")
	require.NoError(t, err)

	resp := postJSON(t, app, "/api/auth/refresh", fiber.Map{"refresh": pair.Access})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
