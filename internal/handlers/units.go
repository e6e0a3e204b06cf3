package handlers

import (
	"errors"
	"strings"
	"time"

	"shoe-tracker/internal/middleware"
	"shoe-tracker/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type shoeEntryRequest struct {
	ModelName    string `json:"model_name"`
	SerialNumber string `json:"serial_number"`
	BatchNumber  string `json:"batch_number"`
}

// ShoeEntry — POST /api/shoe_entry (admin|prodeng).
// Порядок строгий: авторизация (в роутере) → проверка модели → вставка.
// Запись без существующей модели в журнал не попадает.
func (h *Handler) ShoeEntry(c *gin.Context) {
	var req shoeEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, ErrValidation, "Invalid request body.")
		return
	}

	req.ModelName = strings.TrimSpace(req.ModelName)
	req.SerialNumber = strings.TrimSpace(req.SerialNumber)
	if req.ModelName == "" || req.SerialNumber == "" || req.BatchNumber == "" {
		h.fail(c, ErrValidation, "Model name, serial number and batch number are required.")
		return
	}

	var model models.ShoeModel
	err := h.db.Models.Where("model_name = ?", req.ModelName).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			h.fail(c, ErrNotFound, "Model not found.")
			return
		}
		h.failStorage(c, "resolve model", err)
		return
	}

	if h.cfg.UniqueSerials {
		var count int64
		if err := h.db.Shoes.Model(&models.Shoe{}).
			Where("serial_number = ?", req.SerialNumber).
			Count(&count).Error; err != nil {
			h.failStorage(c, "check serial number", err)
			return
		}
		if count > 0 {
			h.fail(c, ErrConflict, "Serial number already recorded.")
			return
		}
	}

	id, _ := middleware.CallerIdentity(c)

	shoe := models.Shoe{
		ShoeModelID:  model.ID,
		SerialNumber: req.SerialNumber,
		BatchNumber:  req.BatchNumber,
		CreatedBy:    id.UserID,
	}
	if err := h.db.Shoes.Create(&shoe).Error; err != nil {
		h.failStorage(c, "record unit", err)
		return
	}

	h.ok(c, "Data sent to database successfully!", gin.H{
		"id":            shoe.ID,
		"model_details": model,
	})
}

// shoeView — запись журнала с развёрнутыми именами из соседних баз.
type shoeView struct {
	ID           uint      `json:"id"`
	ModelName    string    `json:"model_name"`
	SerialNumber string    `json:"serial_number"`
	BatchNumber  string    `json:"batch_number"`
	CreatedAt    time.Time `json:"created_at"`
	CreatedBy    string    `json:"created_by"`
}

// ViewShoes — GET /api/view_shoes (любой аутентифицированный).
func (h *Handler) ViewShoes(c *gin.Context) {
	var shoes []models.Shoe
	if err := h.db.Shoes.Order("id asc").Find(&shoes).Error; err != nil {
		h.failStorage(c, "list units", err)
		return
	}

	usernames, err := h.usernamesByID(collectIDs(shoes, func(s models.Shoe) uint { return s.CreatedBy }))
	if err != nil {
		h.failStorage(c, "resolve operators", err)
		return
	}
	modelNames, err := h.modelNamesByID(collectIDs(shoes, func(s models.Shoe) uint { return s.ShoeModelID }))
	if err != nil {
		h.failStorage(c, "resolve models", err)
		return
	}

	out := make([]shoeView, 0, len(shoes))
	for _, s := range shoes {
		out = append(out, shoeView{
			ID:           s.ID,
			ModelName:    modelNames[s.ShoeModelID],
			SerialNumber: s.SerialNumber,
			BatchNumber:  s.BatchNumber,
			CreatedAt:    s.CreatedAt,
			CreatedBy:    usernames[s.CreatedBy],
		})
	}
	c.JSON(200, out)
}

func collectIDs(shoes []models.Shoe, pick func(models.Shoe) uint) []uint {
	seen := make(map[uint]struct{}, len(shoes))
	ids := make([]uint, 0, len(shoes))
	for _, s := range shoes {
		id := pick(s)
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids
}

func (h *Handler) usernamesByID(ids []uint) (map[uint]string, error) {
	res := make(map[uint]string, len(ids))
	if len(ids) == 0 {
		return res, nil
	}
	var users []models.User
	if err := h.db.Users.Where("id IN ?", ids).Find(&users).Error; err != nil {
		return nil, err
	}
	for _, u := range users {
		res[u.ID] = u.Username
	}
	return res, nil
}

func (h *Handler) modelNamesByID(ids []uint) (map[uint]string, error) {
	res := make(map[uint]string, len(ids))
	if len(ids) == 0 {
		return res, nil
	}
	var list []models.ShoeModel
	if err := h.db.Models.Where("id IN ?", ids).Find(&list).Error; err != nil {
		return nil, err
	}
	for _, m := range list {
		res[m.ID] = m.ModelName
	}
	return res, nil
}
