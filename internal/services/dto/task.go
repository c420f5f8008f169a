package dto

import "time"

type CreateTaskRequest struct {
	Title       string     `json:"title" validate:"required"`
	Description string     `json:"description,omitempty"`
	Status      string     `json:"status,omitempty" validate:"omitempty,is-task-status"`
	Deadline    *time.Time `json:"deadline,omitempty"`
	AssigneeID  *string    `json:"assignee_id,omitempty" validate:"omitempty,uuid"`
}

// UpdateTaskRequest is partial, same nil convention as UpdateUserRequest.
type UpdateTaskRequest struct {
	Title       *string    `json:"title,omitempty" validate:"omitempty,min=1"`
	Description *string    `json:"description,omitempty"`
	Status      *string    `json:"status,omitempty" validate:"omitempty,is-task-status"`
	Deadline    *time.Time `json:"deadline,omitempty"`
	AssigneeID  *string    `json:"assignee_id,omitempty" validate:"omitempty,uuid"`
}
