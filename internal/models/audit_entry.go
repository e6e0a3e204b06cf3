package models

import "time"

// Журнал действий. Живёт в базе пользователей.
type AuditEntry struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time

	UserID uint

	Entity   string `gorm:"size:50;not null"` // "user", "shoe_model", "shoe"
	EntityID uint
	Action   string `gorm:"size:50;not null"` // "create", "update", "delete", "role_change"
	Details  string `gorm:"type:text"`
}
