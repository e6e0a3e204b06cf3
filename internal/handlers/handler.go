package handlers

import (
	"errors"
	"net/http"

	"shoe-tracker/internal/config"
	"shoe-tracker/internal/database"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Таксономия ошибок API. Статус ответа выводится отсюда,
// по хендлерам коды не размазываем.
var (
	ErrAuthFailed      = errors.New("authentication failed")
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("conflict")
	ErrValidation      = errors.New("validation failed")
)

func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrAuthFailed), errors.Is(err, ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrConflict), errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

type Handler struct {
	cfg *config.Config
	db  *database.Stores
	log *zap.Logger
}

func New(cfg *config.Config, db *database.Stores, log *zap.Logger) *Handler {
	return &Handler{cfg: cfg, db: db, log: log}
}

func (h *Handler) ok(c *gin.Context, msg string, extra gin.H) {
	body := gin.H{"success": true, "message": msg}
	for k, v := range extra {
		body[k] = v
	}
	c.JSON(http.StatusOK, body)
}

func (h *Handler) fail(c *gin.Context, kind error, msg string) {
	c.JSON(statusFor(kind), gin.H{"success": false, "message": msg})
}

// failStorage — ошибка хранилища: подробности в лог, наружу общий текст.
// Повторов не делаем, пользователь перешлёт запрос сам.
func (h *Handler) failStorage(c *gin.Context, op string, err error) {
	h.log.Error("storage error", zap.String("op", op), zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{
		"success": false,
		"message": "An error occurred. Please try again.",
	})
}
