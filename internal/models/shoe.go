package models

import "time"

// Shoe — запись о физической паре в журнале выпуска.
// Журнал append-only: записи не редактируются и не удаляются.
// Ссылки на модель и оператора — только по числовым id; имена
// разворачиваются на чтении, т.к. users/models живут в отдельных файлах.
type Shoe struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	ShoeModelID  uint      `gorm:"not null;index" json:"shoe_model_id"`
	SerialNumber string    `gorm:"size:100;not null;index" json:"serial_number"`
	BatchNumber  string    `gorm:"size:100;not null" json:"batch_number"`
	CreatedAt    time.Time `json:"created_at"`
	CreatedBy    uint      `gorm:"not null;index" json:"created_by"`
}
