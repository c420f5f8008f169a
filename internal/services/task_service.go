package services

import (
	"gorm.io/gorm"

	"taskhub_backend/internal/auth"
	"taskhub_backend/internal/models"
	"taskhub_backend/internal/repositories"
	"taskhub_backend/internal/services/dto"
	"taskhub_backend/pkg/apperrors"
)

type TaskService interface {
	CreateTask(db *gorm.DB, actor *auth.Claims, req *dto.CreateTaskRequest) (*models.Task, error)
	ListTasks(db *gorm.DB, actor *auth.Claims) ([]models.Task, error)
	GetTask(db *gorm.DB, actor *auth.Claims, id string) (*models.Task, error)
	UpdateTask(db *gorm.DB, actor *auth.Claims, id string, req *dto.UpdateTaskRequest) (*models.Task, error)
	DeleteTask(db *gorm.DB, actor *auth.Claims, id string) error
}

type TaskServiceImpl struct {
	taskRepo repositories.TaskRepository
	userRepo repositories.UserRepository
}

func NewTaskService(taskRepo repositories.TaskRepository, userRepo repositories.UserRepository) TaskService {
	return &TaskServiceImpl{taskRepo: taskRepo, userRepo: userRepo}
}

func (s *TaskServiceImpl) CreateTask(db *gorm.DB, actor *auth.Claims, req *dto.CreateTaskRequest) (*models.Task, error) {
	status := models.TaskStatusPending
	if req.Status != "" {
		status = models.TaskStatus(req.Status)
		if !status.Valid() {
			return nil, apperrors.NewBadRequestError("invalid task status")
		}
	}

	if req.AssigneeID != nil {
		if _, err := s.userRepo.FindByID(db, *req.AssigneeID); err != nil {
			return nil, apperrors.NewBadRequestError("assignee does not exist")
		}
	}

	task := &models.Task{
		Title:       req.Title,
		Description: req.Description,
		Status:      status,
		Deadline:    req.Deadline,
		AssigneeID:  req.AssigneeID,
		CreatedByID: actor.UserID(),
	}

	if err := s.taskRepo.Create(db, task); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return task, nil
}

// ListTasks scopes the listing by role: admins see every task, everyone
// else sees only the tasks they created.
func (s *TaskServiceImpl) ListTasks(db *gorm.DB, actor *auth.Claims) ([]models.Task, error) {
	var (
		tasks []models.Task
		err   error
	)
	if actor.IsAdmin() {
		tasks, err = s.taskRepo.FindAll(db)
	} else {
		tasks, err = s.taskRepo.FindByCreator(db, actor.UserID())
	}
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return tasks, nil
}

func (s *TaskServiceImpl) GetTask(db *gorm.DB, actor *auth.Claims, id string) (*models.Task, error) {
	task, err := s.findOwnedTask(db, actor, id)
	if err != nil {
		return nil, err
	}
	return task, nil
}

func (s *TaskServiceImpl) UpdateTask(db *gorm.DB, actor *auth.Claims, id string, req *dto.UpdateTaskRequest) (*models.Task, error) {
	task, err := s.findOwnedTask(db, actor, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.Status != nil {
		status := models.TaskStatus(*req.Status)
		if !status.Valid() {
			return nil, apperrors.NewBadRequestError("invalid task status")
		}
		task.Status = status
	}
	if req.Deadline != nil {
		task.Deadline = req.Deadline
	}
	if req.AssigneeID != nil {
		if _, err := s.userRepo.FindByID(db, *req.AssigneeID); err != nil {
			return nil, apperrors.NewBadRequestError("assignee does not exist")
		}
		task.AssigneeID = req.AssigneeID
	}

	if err := s.taskRepo.Update(db, task); err != nil {
		if apperrors.Is(err, repositories.ErrTaskNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return task, nil
}

func (s *TaskServiceImpl) DeleteTask(db *gorm.DB, actor *auth.Claims, id string) error {
	if _, err := s.findOwnedTask(db, actor, id); err != nil {
		return err
	}
	if err := s.taskRepo.Delete(db, id); err != nil {
		if apperrors.Is(err, repositories.ErrTaskNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

// findOwnedTask loads the task and enforces the ownership rule shared by
// every single-task operation: the creator or an admin, nobody else.
func (s *TaskServiceImpl) findOwnedTask(db *gorm.DB, actor *auth.Claims, id string) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrTaskNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if !actor.IsAdmin() && task.CreatedByID != actor.UserID() {
		return nil, apperrors.ErrNotOwner
	}
	return task, nil
}
