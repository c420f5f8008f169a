// Command seed resets the database to a known demo dataset: two admins
// and five regular users, each user owning two tasks. Intended for local
// development only; it deletes existing users and tasks first.
package main

import (
	"fmt"
	"time"

	"taskhub_backend/database"
	"taskhub_backend/internal/auth"
	"taskhub_backend/internal/config"
	"taskhub_backend/internal/logger"
	"taskhub_backend/internal/models"
)

const seedPassword = "password123"

func main() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)

	db, err := database.ConnectGorm()
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	if err := database.AutoMigrate(); err != nil {
		logger.Fatal("Failed to migrate schema", "error", err)
	}

	if err := db.Exec("DELETE FROM tasks").Error; err != nil {
		logger.Fatal("Failed to clear tasks", "error", err)
	}
	if err := db.Exec("DELETE FROM users").Error; err != nil {
		logger.Fatal("Failed to clear users", "error", err)
	}

	hash, err := auth.HashPassword(seedPassword)
	if err != nil {
		logger.Fatal("Failed to hash seed password", "error", err)
	}

	admins := []models.User{
		{Name: "Admin One", Email: "admin1@example.com", PasswordHash: hash, Role: models.UserRoleAdmin, IsActive: true},
		{Name: "Admin Two", Email: "admin2@example.com", PasswordHash: hash, Role: models.UserRoleAdmin, IsActive: true},
	}
	for i := range admins {
		if err := db.Create(&admins[i]).Error; err != nil {
			logger.Fatal("Failed to create admin", "email", admins[i].Email, "error", err)
		}
	}

	statuses := []models.TaskStatus{
		models.TaskStatusPending,
		models.TaskStatusInProgress,
		models.TaskStatusDone,
	}

	for i := 1; i <= 5; i++ {
		user := models.User{
			Name:         fmt.Sprintf("User %d", i),
			Email:        fmt.Sprintf("user%d@example.com", i),
			PasswordHash: hash,
			Role:         models.UserRoleUser,
			IsActive:     true,
		}
		if err := db.Create(&user).Error; err != nil {
			logger.Fatal("Failed to create user", "email", user.Email, "error", err)
		}

		for j := 1; j <= 2; j++ {
			deadline := time.Now().AddDate(0, 0, 7*j)
			task := models.Task{
				Title:       fmt.Sprintf("Task %d for %s", j, user.Name),
				Description: fmt.Sprintf("Seeded demo task %d", j),
				Status:      statuses[(i+j)%len(statuses)],
				Deadline:    &deadline,
				AssigneeID:  &user.ID,
				CreatedByID: user.ID,
			}
			if err := db.Create(&task).Error; err != nil {
				logger.Fatal("Failed to create task", "title", task.Title, "error", err)
			}
		}
	}

	logger.Info("Seed completed", "admins", len(admins), "users", 5, "tasksPerUser", 2, "password", seedPassword)
}
