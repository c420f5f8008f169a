package services

// ServiceContainer bundles every application service for wiring into the
// handler layer.
type ServiceContainer struct {
	AuthService   AuthService
	UserService   UserService
	TaskService   TaskService
	ReportService ReportService
}
