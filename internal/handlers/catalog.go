package handlers

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"shoe-tracker/internal/middleware"
	"shoe-tracker/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type shoeModelRequest struct {
	ModelName   string  `json:"model_name"`
	Brand       string  `json:"brand"`
	Category    string  `json:"category"`
	Gender      string  `json:"gender"`
	Material    string  `json:"material"`
	SoleType    string  `json:"sole_type"`
	ClosureType string  `json:"closure_type"`
	Color       string  `json:"color"`
	WeightGrams int     `json:"weight_grams"`
	Price       float64 `json:"price"`
	ReleaseDate string  `json:"release_date"`
}

func (r *shoeModelRequest) validate() string {
	r.ModelName = strings.TrimSpace(r.ModelName)
	if r.ModelName == "" {
		return "Model name is required."
	}
	if r.Brand == "" {
		return "Brand is required."
	}
	if r.WeightGrams <= 0 {
		return "Weight must be positive."
	}
	if r.Price < 0 {
		return "Price cannot be negative."
	}
	return ""
}

// ListModels — GET /api/shoe_models (любой аутентифицированный).
func (h *Handler) ListModels(c *gin.Context) {
	var list []models.ShoeModel
	if err := h.db.Models.Order("model_name asc").Find(&list).Error; err != nil {
		h.failStorage(c, "list shoe models", err)
		return
	}
	c.JSON(200, list)
}

// ModelDetails — GET /api/shoe_model_details/:model_name.
func (h *Handler) ModelDetails(c *gin.Context) {
	name := c.Param("model_name")

	var model models.ShoeModel
	err := h.db.Models.Where("model_name = ?", name).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			h.fail(c, ErrNotFound, "Model not found.")
			return
		}
		h.failStorage(c, "find shoe model", err)
		return
	}
	c.JSON(200, model)
}

// AddModel — POST /api/add_shoe_model (admin|prodeng).
func (h *Handler) AddModel(c *gin.Context) {
	var req shoeModelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, ErrValidation, "Invalid request body.")
		return
	}
	if msg := req.validate(); msg != "" {
		h.fail(c, ErrValidation, msg)
		return
	}

	// имя модели должно быть уникально, движок этого не проверяет
	var count int64
	if err := h.db.Models.Model(&models.ShoeModel{}).
		Where("LOWER(model_name) = LOWER(?)", req.ModelName).
		Count(&count).Error; err != nil {
		h.failStorage(c, "check model name", err)
		return
	}
	if count > 0 {
		h.fail(c, ErrConflict, "A model with this name already exists.")
		return
	}

	id, _ := middleware.CallerIdentity(c)

	model := models.ShoeModel{
		ModelName:   req.ModelName,
		Brand:       req.Brand,
		Category:    req.Category,
		Gender:      req.Gender,
		Material:    req.Material,
		SoleType:    req.SoleType,
		ClosureType: req.ClosureType,
		Color:       req.Color,
		WeightGrams: req.WeightGrams,
		Price:       req.Price,
		ReleaseDate: req.ReleaseDate,
		CreatedBy:   id.UserID,
	}
	if err := h.db.Models.Create(&model).Error; err != nil {
		h.failStorage(c, "create shoe model", err)
		return
	}

	h.db.Audit(id.UserID, "shoe_model", model.ID, "create", "added model "+model.ModelName)

	h.ok(c, "Shoe model added successfully!", gin.H{"id": model.ID})
}

// EditModel — PUT /api/edit_shoe_model/:id (admin|prodeng).
func (h *Handler) EditModel(c *gin.Context) {
	modelID, err := strconv.Atoi(c.Param("id"))
	if err != nil || modelID <= 0 {
		h.fail(c, ErrValidation, "Invalid model id.")
		return
	}

	var req shoeModelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, ErrValidation, "Invalid request body.")
		return
	}
	if msg := req.validate(); msg != "" {
		h.fail(c, ErrValidation, msg)
		return
	}

	var model models.ShoeModel
	if err := h.db.Models.First(&model, modelID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			h.fail(c, ErrNotFound, "Model not found.")
			return
		}
		h.failStorage(c, "find shoe model", err)
		return
	}

	// то же имя у другой модели — конфликт
	var count int64
	if err := h.db.Models.Model(&models.ShoeModel{}).
		Where("LOWER(model_name) = LOWER(?) AND id <> ?", req.ModelName, model.ID).
		Count(&count).Error; err != nil {
		h.failStorage(c, "check model name", err)
		return
	}
	if count > 0 {
		h.fail(c, ErrConflict, "A model with this name already exists.")
		return
	}

	id, _ := middleware.CallerIdentity(c)
	now := time.Now()

	model.ModelName = req.ModelName
	model.Brand = req.Brand
	model.Category = req.Category
	model.Gender = req.Gender
	model.Material = req.Material
	model.SoleType = req.SoleType
	model.ClosureType = req.ClosureType
	model.Color = req.Color
	model.WeightGrams = req.WeightGrams
	model.Price = req.Price
	model.ReleaseDate = req.ReleaseDate
	model.UpdatedAt = &now
	model.UpdatedBy = &id.UserID

	if err := h.db.Models.Save(&model).Error; err != nil {
		h.failStorage(c, "update shoe model", err)
		return
	}

	h.db.Audit(id.UserID, "shoe_model", model.ID, "update", "updated model "+model.ModelName)

	h.ok(c, "Shoe model updated successfully!", nil)
}

// DeleteModel — DELETE /api/delete_shoe_model/:id (admin|prodeng).
func (h *Handler) DeleteModel(c *gin.Context) {
	modelID, err := strconv.Atoi(c.Param("id"))
	if err != nil || modelID <= 0 {
		h.fail(c, ErrValidation, "Invalid model id.")
		return
	}

	var model models.ShoeModel
	if err := h.db.Models.First(&model, modelID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			h.fail(c, ErrNotFound, "Model not found.")
			return
		}
		h.failStorage(c, "find shoe model", err)
		return
	}

	if err := h.db.Models.Delete(&model).Error; err != nil {
		h.failStorage(c, "delete shoe model", err)
		return
	}

	id, _ := middleware.CallerIdentity(c)
	h.db.Audit(id.UserID, "shoe_model", model.ID, "delete", "deleted model "+model.ModelName)

	h.ok(c, "Shoe model deleted successfully!", nil)
}
