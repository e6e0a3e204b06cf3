package models

import "time"

type ShoeModel struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ModelName   string  `gorm:"size:255;not null;index" json:"model_name"`
	Brand       string  `gorm:"size:100;not null" json:"brand"`
	Category    string  `gorm:"size:100;not null" json:"category"`
	Gender      string  `gorm:"size:20;not null" json:"gender"`
	Material    string  `gorm:"size:100;not null" json:"material"`
	SoleType    string  `gorm:"size:100;not null" json:"sole_type"`
	ClosureType string  `gorm:"size:100;not null" json:"closure_type"`
	Color       string  `gorm:"size:100;not null" json:"color"`
	WeightGrams int     `gorm:"not null" json:"weight_grams"`
	Price       float64 `gorm:"not null" json:"price"`
	ReleaseDate string  `gorm:"size:20;not null" json:"release_date"`

	CreatedAt time.Time  `json:"created_at"`
	CreatedBy uint       `gorm:"not null" json:"created_by"`
	UpdatedAt *time.Time `gorm:"autoUpdateTime:false" json:"updated_at,omitempty"`
	UpdatedBy *uint      `json:"updated_by,omitempty"`
}
