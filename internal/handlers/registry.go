package handlers

import (
	"taskhub_backend/internal/services"
	"taskhub_backend/internal/validator"
)

// AppHandlers bundles every HTTP handler for route registration.
type AppHandlers struct {
	Auth    *AuthHandler
	Users   *UserHandler
	Tasks   *TaskHandler
	Reports *ReportHandler
}

func NewAppHandlers(sc *services.ServiceContainer, v *validator.Validator) *AppHandlers {
	base := NewBaseHandler(v)
	return &AppHandlers{
		Auth:    NewAuthHandler(base, sc.AuthService),
		Users:   NewUserHandler(base, sc.UserService),
		Tasks:   NewTaskHandler(base, sc.TaskService),
		Reports: NewReportHandler(base, sc.ReportService),
	}
}
