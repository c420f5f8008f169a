package models

import "time"

// Task belongs to its creator; CreatedByID is the ownership anchor the
// task service checks for non-admin callers.
type Task struct {
	BaseModel
	Title       string     `gorm:"not null" json:"title"`
	Description string     `json:"description"`
	Status      TaskStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	Deadline    *time.Time `json:"deadline,omitempty"`

	AssigneeID *string `gorm:"type:uuid;index" json:"assignee_id,omitempty"`
	Assignee   *User   `gorm:"foreignKey:AssigneeID" json:"assignee,omitempty"`

	CreatedByID string `gorm:"type:uuid;not null;index" json:"created_by_id"`
	CreatedBy   *User  `gorm:"foreignKey:CreatedByID" json:"-"`
}
