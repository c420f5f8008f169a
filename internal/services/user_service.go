package services

import (
	"gorm.io/gorm"

	"taskhub_backend/internal/auth"
	"taskhub_backend/internal/models"
	"taskhub_backend/internal/repositories"
	"taskhub_backend/internal/services/dto"
	"taskhub_backend/pkg/apperrors"
)

type UserService interface {
	ListUsers(db *gorm.DB) ([]dto.UserDTO, error)
	GetUser(db *gorm.DB, id string) (*dto.UserDTO, error)
	UpdateUser(db *gorm.DB, actor *auth.Claims, targetID string, req *dto.UpdateUserRequest) (*dto.UserDTO, error)
	DeleteUser(db *gorm.DB, id string) error
}

type UserServiceImpl struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &UserServiceImpl{userRepo: userRepo}
}

func (s *UserServiceImpl) ListUsers(db *gorm.DB) ([]dto.UserDTO, error) {
	users, err := s.userRepo.FindAll(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewUserDTOs(users), nil
}

func (s *UserServiceImpl) GetUser(db *gorm.DB, id string) (*dto.UserDTO, error) {
	user, err := s.userRepo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	userDTO := dto.NewUserDTO(user)
	return &userDTO, nil
}

// UpdateUser applies a partial update. Admins may edit anyone including
// roles; everyone else may edit only their own profile and never the
// role field.
func (s *UserServiceImpl) UpdateUser(db *gorm.DB, actor *auth.Claims, targetID string, req *dto.UpdateUserRequest) (*dto.UserDTO, error) {
	if !actor.IsAdmin() {
		if actor.UserID() != targetID {
			return nil, apperrors.ErrInsufficientPermissions
		}
		if req.Role != nil {
			return nil, apperrors.ErrCannotChangeRole
		}
	}

	user, err := s.userRepo.FindByID(db, targetID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Email != nil {
		newEmail := NormalizeEmail(*req.Email)
		if newEmail != user.Email {
			if _, err := s.userRepo.FindByEmail(db, newEmail); err == nil {
				return nil, apperrors.ErrEmailAlreadyExists
			}
			user.Email = newEmail
		}
	}
	if req.Password != nil {
		if err := auth.ValidatePassword(*req.Password); err != nil {
			return nil, apperrors.ErrWeakPassword
		}
		hash, err := auth.HashPassword(*req.Password)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		user.PasswordHash = hash
	}
	if req.Role != nil {
		role := models.UserRole(*req.Role)
		if !role.Valid() {
			return nil, apperrors.NewBadRequestError("invalid role")
		}
		user.Role = role
	}

	if err := s.userRepo.Update(db, user); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	userDTO := dto.NewUserDTO(user)
	return &userDTO, nil
}

func (s *UserServiceImpl) DeleteUser(db *gorm.DB, id string) error {
	if err := s.userRepo.Delete(db, id); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}
