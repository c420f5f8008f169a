package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskhub_backend/internal/middleware"
	"taskhub_backend/internal/models"
	"taskhub_backend/internal/services"
	"taskhub_backend/internal/services/dto"
)

type UserHandler struct {
	*BaseHandler
	userService services.UserService
}

func NewUserHandler(base *BaseHandler, userService services.UserService) *UserHandler {
	return &UserHandler{
		BaseHandler: base,
		userService: userService,
	}
}

// RegisterRoutes mounts user management. Everything requires a valid
// token; list, get-by-id and delete additionally require the admin role.
func (h *UserHandler) RegisterRoutes(rg *gin.RouterGroup, authn gin.HandlerFunc) {
	users := rg.Group("/users")
	users.Use(authn)

	adminOnly := middleware.RequireRoles(models.UserRoleAdmin)
	{
		users.GET("", adminOnly, h.ListUsers)
		users.PATCH("/profile", h.UpdateProfile)
		users.GET("/:id", adminOnly, h.GetUser)
		users.PATCH("/:id", adminOnly, h.UpdateUser)
		users.DELETE("/:id", adminOnly, h.DeleteUser)
	}
}

// ListUsers godoc
// @Summary      List all users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   dto.UserDTO
// @Failure      403  {object}  apperrors.ErrorResponse
// @Router       /users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	db := h.GetDB(c)

	users, err := h.userService.ListUsers(db)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

// GetUser godoc
// @Summary      Get a user by id
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "User id"
// @Success      200  {object}  dto.UserDTO
// @Failure      404  {object}  apperrors.ErrorResponse
// @Router       /users/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	db := h.GetDB(c)

	user, err := h.userService.GetUser(db, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// UpdateProfile godoc
// @Summary      Update own profile
// @Description  Lets the authenticated user edit their own name, email or password. Role changes are rejected here.
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body  dto.UpdateUserRequest  true  "Fields to change"
// @Success      200  {object}  dto.UserDTO
// @Failure      403  {object}  apperrors.ErrorResponse
// @Router       /users/profile [patch]
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	claims, ok := h.RequireClaims(c)
	if !ok {
		return
	}

	var req dto.UpdateUserRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	user, err := h.userService.UpdateUser(db, claims, claims.UserID(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// UpdateUser godoc
// @Summary      Update any user (admin)
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path  string                 true  "User id"
// @Param        request  body  dto.UpdateUserRequest  true  "Fields to change"
// @Success      200  {object}  dto.UserDTO
// @Failure      404  {object}  apperrors.ErrorResponse
// @Router       /users/{id} [patch]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	claims, ok := h.RequireClaims(c)
	if !ok {
		return
	}

	var req dto.UpdateUserRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	user, err := h.userService.UpdateUser(db, claims, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// DeleteUser godoc
// @Summary      Delete a user (admin)
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "User id"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  apperrors.ErrorResponse
// @Router       /users/{id} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	db := h.GetDB(c)

	if err := h.userService.DeleteUser(db, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully."})
}
