package handlers

import (
	"time"

	"shoe-tracker/internal/models"

	"github.com/gin-gonic/gin"
)

type creationRow struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// CreationData — GET /api/shoe_creation_data (admin|prodeng).
// Фильтры model_id / operator / start_date / end_date опциональны,
// "all" и пустое значение равнозначны. Конец диапазона включительно,
// по календарному дню.
func (h *Handler) CreationData(c *gin.Context) {
	q := h.db.Shoes.Model(&models.Shoe{}).
		Select("date(created_at) as date, count(*) as count")

	if v := c.Query("model_id"); v != "" && v != "all" {
		q = q.Where("shoe_model_id = ?", v)
	}
	if v := c.Query("operator"); v != "" && v != "all" {
		q = q.Where("created_by = ?", v)
	}
	// границы сравниваем по календарному дню, обе включительно
	if v := c.Query("start_date"); v != "" {
		if _, err := time.Parse("2006-01-02", v); err != nil {
			h.fail(c, ErrValidation, "Invalid start_date, expected YYYY-MM-DD.")
			return
		}
		q = q.Where("date(created_at) >= ?", v)
	}
	if v := c.Query("end_date"); v != "" {
		if _, err := time.Parse("2006-01-02", v); err != nil {
			h.fail(c, ErrValidation, "Invalid end_date, expected YYYY-MM-DD.")
			return
		}
		q = q.Where("date(created_at) <= ?", v)
	}

	var rows []creationRow
	if err := q.Group("date(created_at)").
		Order("date(created_at) asc").
		Scan(&rows).Error; err != nil {
		h.failStorage(c, "aggregate units", err)
		return
	}
	if rows == nil {
		rows = []creationRow{}
	}
	c.JSON(200, rows)
}

type modelOption struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type operatorOption struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

// ModelsAndOperators — GET /api/shoe_models_and_operators (admin|prodeng).
// Списки для выпадающих фильтров отчёта.
func (h *Handler) ModelsAndOperators(c *gin.Context) {
	var list []models.ShoeModel
	if err := h.db.Models.Order("model_name asc").Find(&list).Error; err != nil {
		h.failStorage(c, "list shoe models", err)
		return
	}
	modelOpts := make([]modelOption, 0, len(list))
	for _, m := range list {
		modelOpts = append(modelOpts, modelOption{ID: m.ID, Name: m.ModelName})
	}

	var operatorIDs []uint
	if err := h.db.Shoes.Model(&models.Shoe{}).
		Distinct("created_by").
		Pluck("created_by", &operatorIDs).Error; err != nil {
		h.failStorage(c, "list operators", err)
		return
	}

	usernames, err := h.usernamesByID(operatorIDs)
	if err != nil {
		h.failStorage(c, "resolve operators", err)
		return
	}
	operatorOpts := make([]operatorOption, 0, len(operatorIDs))
	for _, id := range operatorIDs {
		operatorOpts = append(operatorOpts, operatorOption{ID: id, Username: usernames[id]})
	}

	c.JSON(200, gin.H{
		"models":    modelOpts,
		"operators": operatorOpts,
	})
}
