package handlers

import (
	"errors"

	"shoe-tracker/internal/middleware"
	"shoe-tracker/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login — POST /api/login.
// Текст ошибки один на оба случая: не раскрываем, существует ли логин.
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, ErrValidation, "Invalid request body.")
		return
	}

	var user models.User
	err := h.db.Users.Where("username = ?", req.Username).First(&user).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			h.failStorage(c, "login lookup", err)
			return
		}
		h.fail(c, ErrAuthFailed, "Invalid username or password")
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		h.fail(c, ErrAuthFailed, "Invalid username or password")
		return
	}

	sess := sessions.Default(c)
	sess.Set(middleware.SessionUserID, user.ID)
	sess.Set(middleware.SessionUsername, user.Username)
	sess.Set(middleware.SessionRole, string(user.Role))
	if err := sess.Save(); err != nil {
		h.failStorage(c, "save session", err)
		return
	}

	h.log.Info("user logged in", zap.String("username", user.Username), zap.String("role", string(user.Role)))

	h.ok(c, "Logged in successfully.", gin.H{
		"user": gin.H{"username": user.Username, "role": user.Role},
	})
}

// Logout — GET /api/logout. Инвалидирует сессию целиком.
func (h *Handler) Logout(c *gin.Context) {
	sess := sessions.Default(c)
	sess.Clear()
	_ = sess.Save()
	h.ok(c, "Logged out successfully.", nil)
}
