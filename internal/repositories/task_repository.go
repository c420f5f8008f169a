package repositories

import (
	"errors"

	"gorm.io/gorm"

	"taskhub_backend/internal/models"
)

var ErrTaskNotFound = errors.New("task not found")

type TaskRepository interface {
	Create(db *gorm.DB, task *models.Task) error
	FindByID(db *gorm.DB, id string) (*models.Task, error)
	FindAll(db *gorm.DB) ([]models.Task, error)
	FindByCreator(db *gorm.DB, userID string) ([]models.Task, error)
	Update(db *gorm.DB, task *models.Task) error
	Delete(db *gorm.DB, id string) error

	CountAll(db *gorm.DB) (int64, error)
	CountByStatus(db *gorm.DB, status models.TaskStatus) (int64, error)
}

type TaskRepositoryImpl struct{}

func NewTaskRepository() TaskRepository {
	return &TaskRepositoryImpl{}
}

func (r *TaskRepositoryImpl) Create(db *gorm.DB, task *models.Task) error {
	return db.Create(task).Error
}

func (r *TaskRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Task, error) {
	var task models.Task
	err := db.Preload("Assignee").First(&task, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}
	return &task, nil
}

func (r *TaskRepositoryImpl) FindAll(db *gorm.DB) ([]models.Task, error) {
	var tasks []models.Task
	err := db.Preload("Assignee").Order("created_at DESC").Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepositoryImpl) FindByCreator(db *gorm.DB, userID string) ([]models.Task, error) {
	var tasks []models.Task
	err := db.Preload("Assignee").
		Where("created_by_id = ?", userID).
		Order("created_at DESC").
		Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepositoryImpl) Update(db *gorm.DB, task *models.Task) error {
	result := db.Model(task).Updates(map[string]interface{}{
		"title":       task.Title,
		"description": task.Description,
		"status":      task.Status,
		"deadline":    task.Deadline,
		"assignee_id": task.AssigneeID,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTaskNotFound
	}
	return nil
}

func (r *TaskRepositoryImpl) Delete(db *gorm.DB, id string) error {
	result := db.Delete(&models.Task{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTaskNotFound
	}
	return nil
}

func (r *TaskRepositoryImpl) CountAll(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&models.Task{}).Count(&count).Error
	return count, err
}

func (r *TaskRepositoryImpl) CountByStatus(db *gorm.DB, status models.TaskStatus) (int64, error) {
	var count int64
	err := db.Model(&models.Task{}).Where("status = ?", status).Count(&count).Error
	return count, err
}
