package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"taskhub_backend/internal/models"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
	// ErrTokenInvalid means no row matched the token predicates: the token
	// is unknown, already consumed, or (for reset tokens) expired.
	ErrTokenInvalid = errors.New("token invalid or expired")
)

// UserRepository is stateless: every method takes the *gorm.DB to run
// against, which is either the shared pool or a test transaction.
type UserRepository interface {
	Create(db *gorm.DB, user *models.User) error
	FindByID(db *gorm.DB, id string) (*models.User, error)
	FindByEmail(db *gorm.DB, email string) (*models.User, error)
	FindAll(db *gorm.DB) ([]models.User, error)
	Update(db *gorm.DB, user *models.User) error
	Delete(db *gorm.DB, id string) error

	SetResetToken(db *gorm.DB, userID, token string, expiry time.Time) error
	ConsumeResetToken(db *gorm.DB, token, newPasswordHash string) error
	ConsumeActivationToken(db *gorm.DB, token string) error

	CountAll(db *gorm.DB) (int64, error)
	CountByRole(db *gorm.DB, role models.UserRole) (int64, error)
	CountCreatedSince(db *gorm.DB, since time.Time) (int64, error)
}

type UserRepositoryImpl struct{}

func NewUserRepository() UserRepository {
	return &UserRepositoryImpl{}
}

// Create inserts the user. The duplicate check is the email unique
// index itself, so two racing registrations cannot both succeed; the
// loser's unique violation maps to ErrUserAlreadyExists.
func (r *UserRepositoryImpl) Create(db *gorm.DB, user *models.User) error {
	if err := db.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrUserAlreadyExists
		}
		return err
	}
	return nil
}

func (r *UserRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.User, error) {
	var user models.User
	err := db.First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindByEmail(db *gorm.DB, email string) (*models.User, error) {
	var user models.User
	err := db.First(&user, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindAll(db *gorm.DB) ([]models.User, error) {
	var users []models.User
	err := db.Order("created_at DESC").Find(&users).Error
	return users, err
}

func (r *UserRepositoryImpl) Update(db *gorm.DB, user *models.User) error {
	result := db.Model(user).Updates(map[string]interface{}{
		"name":          user.Name,
		"email":         user.Email,
		"password_hash": user.PasswordHash,
		"role":          user.Role,
		"is_active":     user.IsActive,
		"updated_at":    time.Now(),
	})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepositoryImpl) Delete(db *gorm.DB, id string) error {
	result := db.Delete(&models.User{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepositoryImpl) SetResetToken(db *gorm.DB, userID, token string, expiry time.Time) error {
	result := db.Model(&models.User{}).Where("id = ?", userID).Updates(map[string]interface{}{
		"reset_token":     token,
		"reset_token_exp": expiry,
		"updated_at":      time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

// ConsumeResetToken replaces the password and clears the reset fields in a
// single guarded UPDATE. The predicates make the token single-use: if two
// completions race, the loser matches zero rows and gets ErrTokenInvalid.
func (r *UserRepositoryImpl) ConsumeResetToken(db *gorm.DB, token, newPasswordHash string) error {
	result := db.Model(&models.User{}).
		Where("reset_token = ? AND reset_token <> ''", token).
		Where("reset_token_exp > ?", time.Now()).
		Updates(map[string]interface{}{
			"password_hash":   newPasswordHash,
			"reset_token":     "",
			"reset_token_exp": nil,
			"updated_at":      time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTokenInvalid
	}
	return nil
}

// ConsumeActivationToken activates the account and clears the token in one
// guarded UPDATE, same single-use contract as ConsumeResetToken.
func (r *UserRepositoryImpl) ConsumeActivationToken(db *gorm.DB, token string) error {
	result := db.Model(&models.User{}).
		Where("activation_token = ? AND activation_token <> ''", token).
		Updates(map[string]interface{}{
			"is_active":        true,
			"activation_token": "",
			"updated_at":       time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTokenInvalid
	}
	return nil
}

func (r *UserRepositoryImpl) CountAll(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&models.User{}).Count(&count).Error
	return count, err
}

func (r *UserRepositoryImpl) CountByRole(db *gorm.DB, role models.UserRole) (int64, error) {
	var count int64
	err := db.Model(&models.User{}).Where("role = ?", role).Count(&count).Error
	return count, err
}

func (r *UserRepositoryImpl) CountCreatedSince(db *gorm.DB, since time.Time) (int64, error) {
	var count int64
	err := db.Model(&models.User{}).Where("created_at >= ?", since).Count(&count).Error
	return count, err
}
