package services

import (
	"time"

	"gorm.io/gorm"

	"taskhub_backend/internal/models"
	"taskhub_backend/internal/repositories"
	"taskhub_backend/internal/services/dto"
	"taskhub_backend/pkg/apperrors"
)

type ReportService interface {
	TaskReport(db *gorm.DB) (*dto.TaskReport, error)
	UserReport(db *gorm.DB) (*dto.UserReport, error)
}

type ReportServiceImpl struct {
	taskRepo repositories.TaskRepository
	userRepo repositories.UserRepository
}

func NewReportService(taskRepo repositories.TaskRepository, userRepo repositories.UserRepository) ReportService {
	return &ReportServiceImpl{taskRepo: taskRepo, userRepo: userRepo}
}

func (s *ReportServiceImpl) TaskReport(db *gorm.DB) (*dto.TaskReport, error) {
	report := &dto.TaskReport{}

	var err error
	if report.Total, err = s.taskRepo.CountAll(db); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if report.Done, err = s.taskRepo.CountByStatus(db, models.TaskStatusDone); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if report.Pending, err = s.taskRepo.CountByStatus(db, models.TaskStatusPending); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if report.InProgress, err = s.taskRepo.CountByStatus(db, models.TaskStatusInProgress); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return report, nil
}

func (s *ReportServiceImpl) UserReport(db *gorm.DB) (*dto.UserReport, error) {
	report := &dto.UserReport{}

	var err error
	if report.Total, err = s.userRepo.CountAll(db); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if report.Admin, err = s.userRepo.CountByRole(db, models.UserRoleAdmin); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if report.User, err = s.userRepo.CountByRole(db, models.UserRoleUser); err != nil {
		return nil, apperrors.InternalError(err)
	}
	weekAgo := time.Now().AddDate(0, 0, -7)
	if report.NewUsersLast7Days, err = s.userRepo.CountCreatedSince(db, weekAgo); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return report, nil
}
