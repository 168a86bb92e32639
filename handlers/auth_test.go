package handlers_test

import (
	"net/http"
	"testing"

	"menuzy-api/config"
	"menuzy-api/middleware"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterThenLogin(t *testing.T) {
	r := setup(t)

	w := do(t, r, http.MethodPost, "/api/auth/register", map[string]interface{}{
		"email":     "a@x.com",
		"password":  "secret1",
		"full_name": "Alice",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code)

	body := decode(t, w)
	tokenStr, _ := body["access_token"].(string)
	require.NotEmpty(t, tokenStr)

	// The issued token carries the customer role.
	claims := &middleware.Claims{}
	_, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return config.JWTSecret, nil
	})
	require.NoError(t, err)
	assert.Equal(t, "customer", string(claims.Role))

	w = do(t, r, http.MethodPost, "/api/auth/login", map[string]interface{}{
		"email":    "a@x.com",
		"password": "secret1",
	}, "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLoginWrongPassword(t *testing.T) {
	r := setup(t)
	createUser(t, "bob@x.com", "customer")

	w := do(t, r, http.MethodPost, "/api/auth/login", map[string]interface{}{
		"email":    "bob@x.com",
		"password": "wrong-password",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(t, r, http.MethodPost, "/api/auth/login", map[string]interface{}{
		"email":    "nobody@x.com",
		"password": "password123",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	r := setup(t)

	payload := map[string]interface{}{
		"email":     "dup@x.com",
		"password":  "secret1",
		"full_name": "Dup",
	}
	require.Equal(t, http.StatusCreated, do(t, r, http.MethodPost, "/api/auth/register", payload, "").Code)
	assert.Equal(t, http.StatusConflict, do(t, r, http.MethodPost, "/api/auth/register", payload, "").Code)
}

func TestGoogleLoginNotImplemented(t *testing.T) {
	r := setup(t)
	w := do(t, r, http.MethodPost, "/api/auth/google", map[string]interface{}{
		"google_token": "provider-token",
	}, "")
	assert.Equal(t, http.StatusNotImplemented, w.Code)
}

func TestProfileRequiresAuth(t *testing.T) {
	r := setup(t)
	assert.Equal(t, http.StatusUnauthorized, do(t, r, http.MethodGet, "/api/auth/me", nil, "").Code)

	_, token := createUser(t, "me@x.com", "customer")
	w := do(t, r, http.MethodGet, "/api/auth/me", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	user, _ := body["user"].(map[string]interface{})
	assert.Equal(t, "me@x.com", user["email"])
	// The password hash never leaves the server.
	assert.NotContains(t, w.Body.String(), "password")
}
