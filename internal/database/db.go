package database

import (
	"fmt"
	"os"
	"path/filepath"

	"shoe-tracker/internal/config"
	"shoe-tracker/internal/models"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Stores — три отдельных файла-хранилища. Ссылки между ними
// (shoes → users, shoes → shoe_models) движок не проверяет,
// целостность держим на уровне приложения.
type Stores struct {
	Users  *gorm.DB
	Models *gorm.DB
	Shoes  *gorm.DB

	log *zap.Logger
}

func Open(cfg *config.Config, log *zap.Logger) (*Stores, error) {
	users, err := openFile(cfg.UsersDBPath)
	if err != nil {
		return nil, fmt.Errorf("open users store: %w", err)
	}
	modelsDB, err := openFile(cfg.ModelsDBPath)
	if err != nil {
		return nil, fmt.Errorf("open models store: %w", err)
	}
	shoes, err := openFile(cfg.ShoeDBPath)
	if err != nil {
		return nil, fmt.Errorf("open shoes store: %w", err)
	}

	s := &Stores{Users: users, Models: modelsDB, Shoes: shoes, log: log}

	if err := s.migrate(); err != nil {
		return nil, err
	}
	if err := s.ensureDefaultAdmin(cfg.AdminUsername, cfg.AdminPassword); err != nil {
		return nil, err
	}

	log.Info("stores opened",
		zap.String("users", cfg.UsersDBPath),
		zap.String("models", cfg.ModelsDBPath),
		zap.String("shoes", cfg.ShoeDBPath),
	)
	return s, nil
}

func openFile(path string) (*gorm.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	return gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
}

func (s *Stores) migrate() error {
	if err := s.Users.AutoMigrate(&models.User{}, &models.AuditEntry{}); err != nil {
		return fmt.Errorf("migrate users store: %w", err)
	}
	if err := s.Models.AutoMigrate(&models.ShoeModel{}); err != nil {
		return fmt.Errorf("migrate models store: %w", err)
	}
	if err := s.Shoes.AutoMigrate(&models.Shoe{}); err != nil {
		return fmt.Errorf("migrate shoes store: %w", err)
	}
	return nil
}

// ensureDefaultAdmin создаёт учётку администратора, если ни одной нет.
func (s *Stores) ensureDefaultAdmin(username, password string) error {
	var count int64
	if err := s.Users.Model(&models.User{}).
		Where("role = ?", models.RoleAdmin).
		Count(&count).Error; err != nil {
		return fmt.Errorf("check admin user: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash default admin password: %w", err)
	}

	admin := models.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
	}
	if err := s.Users.Create(&admin).Error; err != nil {
		return fmt.Errorf("create default admin: %w", err)
	}

	s.log.Info("created default admin user", zap.String("username", username))
	return nil
}
