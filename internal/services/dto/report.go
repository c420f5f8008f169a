package dto

// TaskReport mirrors the report endpoint's historical field names.
type TaskReport struct {
	Total      int64 `json:"total"`
	Done       int64 `json:"done"`
	Pending    int64 `json:"pending"`
	InProgress int64 `json:"inProgress"`
}

type UserReport struct {
	Total             int64 `json:"total"`
	Admin             int64 `json:"admin"`
	User              int64 `json:"user"`
	NewUsersLast7Days int64 `json:"newUsersLast7Days"`
}
