package database

import (
	"shoe-tracker/internal/models"

	"go.uber.org/zap"
)

// Audit пишет запись в журнал действий. Ошибка записи не должна
// ломать основную операцию — только лог.
func (s *Stores) Audit(userID uint, entity string, entityID uint, action, details string) {
	entry := models.AuditEntry{
		UserID:   userID,
		Entity:   entity,
		EntityID: entityID,
		Action:   action,
		Details:  details,
	}
	if err := s.Users.Create(&entry).Error; err != nil {
		s.log.Warn("failed to write audit entry",
			zap.String("entity", entity),
			zap.String("action", action),
			zap.Error(err),
		)
	}
}
