package controllers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	r := setupServer(t)
	registerUser(t, r, "Lumexat")

	w := doRequest(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"username": "Lumexat",
		"password": "spirit2018",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body := decodeBody(t, w)
	assert.NotEmpty(t, body["token"])
	user := body["user"].(map[string]interface{})
	assert.Equal(t, "Lumexat", user["username"])
	assert.NotContains(t, user, "password")
}

func TestRegisterDuplicateUsername(t *testing.T) {
	r := setupServer(t)
	registerUser(t, r, "Lumexat")

	w := doRequest(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"username": "Lumexat",
		"email":    "other@example.com",
		"password": "spirit2018",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoginWrongPassword(t *testing.T) {
	r := setupServer(t)
	registerUser(t, r, "Lumexat")

	w := doRequest(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"username": "Lumexat",
		"password": "not-the-password",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginUnknownUser(t *testing.T) {
	r := setupServer(t)
	w := doRequest(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"username": "ghost",
		"password": "whatever",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
