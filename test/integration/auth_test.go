package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskhub_backend/internal/models"
	"taskhub_backend/test/helpers"
)

func TestRegisterAndVerifyFlow(t *testing.T) {
	ts := GetTestServer(t)

	registerBody := map[string]interface{}{
		"name":     "Alice",
		"email":    "Alice@Example.com",
		"password": "secret123",
	}

	res, body := ts.SendRequest(t, http.MethodPost, "/auth/register", "", registerBody)
	require.Equal(t, http.StatusCreated, res.StatusCode, "register should answer 201: %s", body)

	var envelope struct {
		Data struct {
			Email    string `json:"email"`
			IsActive bool   `json:"isActive"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &envelope))
	assert.Equal(t, "alice@example.com", envelope.Data.Email, "email should be stored lowercased")
	assert.False(t, envelope.Data.IsActive, "fresh accounts start inactive")

	// Duplicate registration, different case: still a conflict.
	res, _ = ts.SendRequest(t, http.MethodPost, "/auth/register", "", map[string]interface{}{
		"name":     "Alice Again",
		"email":    "ALICE@example.com",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusConflict, res.StatusCode)

	// Login before verification is indistinguishable from bad credentials.
	res, _ = ts.SendRequest(t, http.MethodPost, "/auth/login", "", map[string]interface{}{
		"email":    "alice@example.com",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)

	var user models.User
	require.NoError(t, ts.DB.First(&user, "email = ?", "alice@example.com").Error)
	require.NotEmpty(t, user.ActivationToken)

	res, _ = ts.SendRequest(t, http.MethodGet, "/auth/verify/"+user.ActivationToken, "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	// The token is single-use.
	res, _ = ts.SendRequest(t, http.MethodGet, "/auth/verify/"+user.ActivationToken, "", nil)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	res, body = ts.SendRequest(t, http.MethodPost, "/auth/login", "", map[string]interface{}{
		"email":    "alice@example.com",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusCreated, res.StatusCode, "login after verification: %s", body)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	ts := GetTestServer(t)

	helpers.CreateAndLoginUser(t, ts, "Bob", "bob@example.com", "correct-horse", models.UserRoleUser)

	res, _ := ts.SendRequest(t, http.MethodPost, "/auth/login", "", map[string]interface{}{
		"email":    "bob@example.com",
		"password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodPost, "/auth/login", "", map[string]interface{}{
		"email":    "nobody@example.com",
		"password": "whatever123",
	})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestPasswordResetFlow(t *testing.T) {
	ts := GetTestServer(t)

	helpers.CreateAndLoginUser(t, ts, "Carol", "carol@example.com", "oldpassword", models.UserRoleUser)

	// Unknown emails get the same 200 as known ones.
	res, _ := ts.SendRequest(t, http.MethodPost, "/auth/forgot-password", "", map[string]interface{}{
		"email": "ghost@example.com",
	})
	assert.Equal(t, http.StatusOK, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodPost, "/auth/forgot-password", "", map[string]interface{}{
		"email": "carol@example.com",
	})
	require.Equal(t, http.StatusOK, res.StatusCode)

	var user models.User
	require.NoError(t, ts.DB.First(&user, "email = ?", "carol@example.com").Error)
	require.NotEmpty(t, user.ResetToken)
	require.NotNil(t, user.ResetTokenExp)

	res, body := ts.SendRequest(t, http.MethodPost, "/auth/reset-password/"+user.ResetToken, "", map[string]interface{}{
		"newPassword": "newpassword",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, "reset should succeed: %s", body)

	// Old password dead, new password works.
	res, _ = ts.SendRequest(t, http.MethodPost, "/auth/login", "", map[string]interface{}{
		"email":    "carol@example.com",
		"password": "oldpassword",
	})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodPost, "/auth/login", "", map[string]interface{}{
		"email":    "carol@example.com",
		"password": "newpassword",
	})
	assert.Equal(t, http.StatusCreated, res.StatusCode)

	// The consumed token cannot be replayed.
	res, _ = ts.SendRequest(t, http.MethodPost, "/auth/reset-password/"+user.ResetToken, "", map[string]interface{}{
		"newPassword": "another-one",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestResetPasswordExpiredToken(t *testing.T) {
	ts := GetTestServer(t)

	helpers.CreateAndLoginUser(t, ts, "Gail", "gail@example.com", "oldpassword", models.UserRoleUser)

	res, _ := ts.SendRequest(t, http.MethodPost, "/auth/forgot-password", "", map[string]interface{}{
		"email": "gail@example.com",
	})
	require.Equal(t, http.StatusOK, res.StatusCode)

	var user models.User
	require.NoError(t, ts.DB.First(&user, "email = ?", "gail@example.com").Error)
	require.NotEmpty(t, user.ResetToken)

	expired := time.Now().Add(-time.Minute)
	require.NoError(t, ts.DB.Model(&user).Update("reset_token_exp", expired).Error)

	// The stored token string still matches, but the expiry has passed.
	res, _ = ts.SendRequest(t, http.MethodPost, "/auth/reset-password/"+user.ResetToken, "", map[string]interface{}{
		"newPassword": "newpassword",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	// The password was not touched.
	res, _ = ts.SendRequest(t, http.MethodPost, "/auth/login", "", map[string]interface{}{
		"email":    "gail@example.com",
		"password": "oldpassword",
	})
	assert.Equal(t, http.StatusCreated, res.StatusCode)
}

func TestRegisterValidation(t *testing.T) {
	ts := GetTestServer(t)

	res, _ := ts.SendRequest(t, http.MethodPost, "/auth/register", "", map[string]interface{}{
		"name":     "Short",
		"email":    "short@example.com",
		"password": "12345",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode, "passwords under 6 chars are rejected")

	res, _ = ts.SendRequest(t, http.MethodPost, "/auth/register", "", map[string]interface{}{
		"name":     "No Email",
		"email":    "not-an-email",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}
