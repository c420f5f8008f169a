package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskhub_backend/internal/models"
	"taskhub_backend/internal/services/dto"
	"taskhub_backend/test/helpers"
)

func TestUserAdminEndpoints(t *testing.T) {
	ts := GetTestServer(t)

	userToken, user := helpers.CreateAndLoginUser(t, ts, "Plain", "plain@example.com", "password123", models.UserRoleUser)
	adminToken, _ := helpers.CreateAndLoginUser(t, ts, "Admin", "admin@example.com", "password123", models.UserRoleAdmin)

	// Listing is admin only.
	res, _ := ts.SendRequest(t, http.MethodGet, "/users", userToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	res, body := ts.SendRequest(t, http.MethodGet, "/users", adminToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var users []dto.UserDTO
	require.NoError(t, json.Unmarshal([]byte(body), &users))
	assert.Len(t, users, 2)

	// No hash or tokens ever leave the API.
	assert.NotContains(t, body, "password")
	assert.NotContains(t, body, "activation_token")
	assert.NotContains(t, body, "reset_token")

	res, _ = ts.SendRequest(t, http.MethodGet, "/users/"+user.ID, userToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	res, body = ts.SendRequest(t, http.MethodGet, "/users/"+user.ID, adminToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	// Admin promotes the user.
	res, body = ts.SendRequest(t, http.MethodPatch, "/users/"+user.ID, adminToken, map[string]interface{}{
		"role": "admin",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var promoted dto.UserDTO
	require.NoError(t, json.Unmarshal([]byte(body), &promoted))
	assert.Equal(t, models.UserRoleAdmin, promoted.Role)

	res, _ = ts.SendRequest(t, http.MethodDelete, "/users/"+user.ID, adminToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodGet, "/users/"+user.ID, adminToken, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestCreateUserAliasRegisters(t *testing.T) {
	ts := GetTestServer(t)

	// POST /users is the historical alias of /auth/register.
	res, body := ts.SendRequest(t, http.MethodPost, "/users", "", map[string]interface{}{
		"name":     "Via Alias",
		"email":    "alias@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var user models.User
	require.NoError(t, ts.DB.First(&user, "email = ?", "alias@example.com").Error)
	assert.False(t, user.IsActive, "alias-created accounts still need verification")
	assert.Equal(t, models.UserRoleUser, user.Role)
}

func TestUpdateOwnProfile(t *testing.T) {
	ts := GetTestServer(t)

	token, _ := helpers.CreateAndLoginUser(t, ts, "Dana", "dana@example.com", "password123", models.UserRoleUser)

	res, body := ts.SendRequest(t, http.MethodPatch, "/users/profile", token, map[string]interface{}{
		"name": "Dana Renamed",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var updated dto.UserDTO
	require.NoError(t, json.Unmarshal([]byte(body), &updated))
	assert.Equal(t, "Dana Renamed", updated.Name)

	// Self-service role escalation is rejected.
	res, _ = ts.SendRequest(t, http.MethodPatch, "/users/profile", token, map[string]interface{}{
		"role": "admin",
	})
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}

func TestUpdateProfileEmailConflict(t *testing.T) {
	ts := GetTestServer(t)

	token, _ := helpers.CreateAndLoginUser(t, ts, "Eve", "eve@example.com", "password123", models.UserRoleUser)
	helpers.CreateAndLoginUser(t, ts, "Frank", "frank@example.com", "password123", models.UserRoleUser)

	res, _ := ts.SendRequest(t, http.MethodPatch, "/users/profile", token, map[string]interface{}{
		"email": "FRANK@example.com",
	})
	assert.Equal(t, http.StatusConflict, res.StatusCode, "taken email, any case, is a conflict")
}
