package handlers

import (
	"errors"
	"strings"

	"shoe-tracker/internal/middleware"
	"shoe-tracker/internal/models"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type createAccountRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// CreateAccount — POST /api/create_account (только admin, проверено роутером).
func (h *Handler) CreateAccount(c *gin.Context) {
	var req createAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, ErrValidation, "Invalid request body.")
		return
	}

	req.Username = strings.TrimSpace(req.Username)
	if len(req.Username) < 3 || len(req.Password) < 6 {
		h.fail(c, ErrValidation, "Username or password is too short.")
		return
	}

	role, ok := models.ParseRole(req.Role)
	if !ok {
		h.fail(c, ErrValidation, "Unknown role.")
		return
	}

	var count int64
	if err := h.db.Users.Model(&models.User{}).
		Where("username = ?", req.Username).
		Count(&count).Error; err != nil {
		h.failStorage(c, "check username", err)
		return
	}
	if count > 0 {
		h.fail(c, ErrConflict, "Username already exists.")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		h.failStorage(c, "hash password", err)
		return
	}

	user := models.User{
		Username:     req.Username,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := h.db.Users.Create(&user).Error; err != nil {
		h.failStorage(c, "create account", err)
		return
	}

	if id, ok := middleware.CallerIdentity(c); ok {
		h.db.Audit(id.UserID, "user", user.ID, "create", "created account "+user.Username)
	}

	h.ok(c, "Account created successfully.", nil)
}

// ListUsers — GET /api/users (только admin).
func (h *Handler) ListUsers(c *gin.Context) {
	var users []models.User
	if err := h.db.Users.Order("id asc").Find(&users).Error; err != nil {
		h.failStorage(c, "list users", err)
		return
	}
	c.JSON(200, users)
}

type updateRoleRequest struct {
	UserID  uint   `json:"user_id"`
	NewRole string `json:"new_role"`
}

// UpdateUserRole — POST /api/update_user_role (только admin).
// Роль админской учётки не меняется — зеркало запрета на удаление.
func (h *Handler) UpdateUserRole(c *gin.Context) {
	var req updateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, ErrValidation, "Invalid request body.")
		return
	}

	newRole, ok := models.ParseRole(req.NewRole)
	if !ok {
		h.fail(c, ErrValidation, "Unknown role.")
		return
	}

	var user models.User
	if err := h.db.Users.First(&user, req.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			h.fail(c, ErrNotFound, "User not found.")
			return
		}
		h.failStorage(c, "find user", err)
		return
	}

	if user.Role == models.RoleAdmin {
		h.fail(c, ErrForbidden, "Cannot change the role of admin accounts.")
		return
	}

	if err := h.db.Users.Model(&user).Update("role", newRole).Error; err != nil {
		h.failStorage(c, "update role", err)
		return
	}

	if id, ok := middleware.CallerIdentity(c); ok {
		h.db.Audit(id.UserID, "user", user.ID, "role_change", "set role of "+user.Username+" to "+string(newRole))
	}

	h.ok(c, "User role updated successfully.", nil)
}

type deleteUserRequest struct {
	UserID uint `json:"user_id"`
}

// DeleteUser — POST /api/delete_user (только admin).
// Админские учётки не удаляются никогда, кем бы ни был вызывающий.
func (h *Handler) DeleteUser(c *gin.Context) {
	var req deleteUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, ErrValidation, "Invalid request body.")
		return
	}

	var user models.User
	if err := h.db.Users.First(&user, req.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			h.fail(c, ErrNotFound, "User not found.")
			return
		}
		h.failStorage(c, "find user", err)
		return
	}

	if user.Role == models.RoleAdmin {
		h.fail(c, ErrForbidden, "Cannot delete admin accounts.")
		return
	}

	if err := h.db.Users.Delete(&user).Error; err != nil {
		h.failStorage(c, "delete user", err)
		return
	}

	if id, ok := middleware.CallerIdentity(c); ok {
		h.db.Audit(id.UserID, "user", user.ID, "delete", "deleted account "+user.Username)
	}

	h.ok(c, "User deleted successfully.", nil)
}
