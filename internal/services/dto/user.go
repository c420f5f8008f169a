package dto

// UpdateUserRequest is a partial update: nil means "leave unchanged".
// Role changes are rejected for non-admin callers by the service.
type UpdateUserRequest struct {
	Name     *string `json:"name,omitempty" validate:"omitempty,min=1"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
	Password *string `json:"password,omitempty" validate:"omitempty,min=6"`
	Role     *string `json:"role,omitempty" validate:"omitempty,is-user-role"`
}
