package helpers

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"taskhub_backend/internal/auth"
	"taskhub_backend/internal/models"
	"taskhub_backend/internal/services/dto"
)

// CreateUser inserts a user directly, hashing PasswordHash first when it
// holds a raw password. Accounts default to active so they can log in.
func CreateUser(t *testing.T, db *gorm.DB, user *models.User) {
	if user.PasswordHash != "" && !strings.HasPrefix(user.PasswordHash, "$2") {
		hashed, err := auth.HashPassword(user.PasswordHash)
		require.NoError(t, err, "hashing test password")
		user.PasswordHash = hashed
	}
	if user.Role == "" {
		user.Role = models.UserRoleUser
	}
	user.IsActive = true

	require.NoError(t, db.Create(user).Error, "creating test user %s", user.Email)
}

// CreateAndLoginUser inserts an active user and logs in through the API,
// returning the access token.
func CreateAndLoginUser(t *testing.T, ts *TestServer, name, email, password string, role models.UserRole) (string, *models.User) {
	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: password,
		Role:         role,
	}
	CreateUser(t, ts.DB, user)

	loginBody := map[string]interface{}{
		"email":    email,
		"password": password,
	}
	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/auth/login", "", loginBody)
	require.Equal(t, http.StatusCreated, res.StatusCode, "login should succeed, got: %s", bodyStr)

	var envelope struct {
		Data dto.LoginResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &envelope))
	require.NotEmpty(t, envelope.Data.AccessToken)

	return envelope.Data.AccessToken, user
}

// CreateTestTask inserts a task owned by the given user.
func CreateTestTask(t *testing.T, db *gorm.DB, creatorID, title string) *models.Task {
	task := &models.Task{
		Title:       title,
		Description: "integration test task",
		Status:      models.TaskStatusPending,
		CreatedByID: creatorID,
	}
	require.NoError(t, db.Create(task).Error, "creating test task")
	return task
}
