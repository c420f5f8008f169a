package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Email  string `json:"email" validate:"required,email"`
	Name   string `json:"name" validate:"required"`
	Role   string `json:"role" validate:"omitempty,is-user-role"`
	Status string `json:"status" validate:"omitempty,is-task-status"`
}

func TestValidatePasses(t *testing.T) {
	v := New()

	err := v.Validate(&sampleRequest{
		Email:  "ok@example.com",
		Name:   "Someone",
		Role:   "admin",
		Status: "in-progress",
	})
	assert.NoError(t, err)
}

func TestValidateReportsJSONFieldNames(t *testing.T) {
	v := New()

	err := v.Validate(&sampleRequest{Email: "not-an-email"})
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok, "expected *ValidationError, got %T", err)

	assert.Contains(t, vErr.Errors, "email")
	assert.Contains(t, vErr.Errors, "name")
	assert.Equal(t, "Must be a valid email address", vErr.Errors["email"])
	assert.Equal(t, "This field is required", vErr.Errors["name"])
}

func TestCustomRoleRule(t *testing.T) {
	v := New()

	err := v.Validate(&sampleRequest{
		Email: "ok@example.com",
		Name:  "Someone",
		Role:  "superuser",
	})
	require.Error(t, err)

	vErr := err.(*ValidationError)
	assert.Equal(t, "Must be a valid user role", vErr.Errors["role"])
}

func TestCustomStatusRule(t *testing.T) {
	v := New()

	err := v.Validate(&sampleRequest{
		Email:  "ok@example.com",
		Name:   "Someone",
		Status: "paused",
	})
	require.Error(t, err)

	vErr := err.(*ValidationError)
	assert.Equal(t, "Must be a valid task status", vErr.Errors["status"])
}
