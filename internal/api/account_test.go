package api_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tastebook/backend/internal/testutil"
)

func TestUpdateAccountProfile(t *testing.T) {
	engine, db := setupRouter(t)
	_, token := testutil.CreateUserAndToken(t, db, "Alice", "alice@example.com")

	w := doJSON(t, engine, "PUT", "/api/v1/account", token, map[string]interface{}{
		"name":             "Alice Cooper",
		"email":            "cooper@example.com",
		"current_password": testutil.Password,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	user := decodeBody(t, w)["user"].(map[string]interface{})
	assert.Equal(t, "Alice Cooper", user["name"])
	assert.Equal(t, "cooper@example.com", user["email"])

	// The response never carries the password hash.
	assert.NotContains(t, w.Body.String(), "password_hash")

	// Logging in with the new email still works with the old password.
	w = doJSON(t, engine, "POST", "/api/v1/auth/login", "", map[string]interface{}{
		"email": "cooper@example.com", "password": testutil.Password,
	})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUpdateAccountWrongCurrentPassword(t *testing.T) {
	engine, db := setupRouter(t)
	_, token := testutil.CreateUserAndToken(t, db, "Alice", "alice@example.com")

	w := doJSON(t, engine, "PUT", "/api/v1/account", token, map[string]interface{}{
		"name":             "Mallory",
		"email":            "mallory@example.com",
		"current_password": "wrong-password",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)

	// The profile is unchanged.
	w = doJSON(t, engine, "GET", "/api/v1/account", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "alice@example.com")
}

func TestUpdateAccountEmailTaken(t *testing.T) {
	engine, db := setupRouter(t)
	_, aliceToken := testutil.CreateUserAndToken(t, db, "Alice", "alice@example.com")
	testutil.CreateUserAndToken(t, db, "Bob", "bob@example.com")

	w := doJSON(t, engine, "PUT", "/api/v1/account", aliceToken, map[string]interface{}{
		"name":             "Alice",
		"email":            "bob@example.com",
		"current_password": testutil.Password,
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestUpdatePasswordFlow(t *testing.T) {
	engine, db := setupRouter(t)
	_, token := testutil.CreateUserAndToken(t, db, "Alice", "alice@example.com")

	w := doJSON(t, engine, "PUT", "/api/v1/account/password", token, map[string]interface{}{
		"current_password": testutil.Password,
		"new_password":     "brand-new-pass",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, engine, "POST", "/api/v1/auth/login", "", map[string]interface{}{
		"email": "alice@example.com", "password": testutil.Password,
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, engine, "POST", "/api/v1/auth/login", "", map[string]interface{}{
		"email": "alice@example.com", "password": "brand-new-pass",
	})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUpdatePasswordValidation(t *testing.T) {
	engine, db := setupRouter(t)
	_, token := testutil.CreateUserAndToken(t, db, "Alice", "alice@example.com")

	w := doJSON(t, engine, "PUT", "/api/v1/account/password", token, map[string]interface{}{
		"current_password": testutil.Password,
		"new_password":     "tiny",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, engine, "PUT", "/api/v1/account/password", token, map[string]interface{}{
		"current_password": "wrong-password",
		"new_password":     "brand-new-pass",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
}
