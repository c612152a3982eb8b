package db

import (
	"fmt"

	"vendlink/internal/config"
	"vendlink/internal/models"
	"vendlink/internal/utils"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the database, runs migrations and seeds the bootstrap admin
// account. The returned handle is injected into repositories; there is no
// package-level global.
func Connect(cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
	gormDB, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		// Map driver unique/FK violations onto gorm.ErrDuplicatedKey and
		// friends so repositories never leak raw postgres errors.
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	log.Info("database connection established")

	if err := gormDB.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Vote{},
	); err != nil {
		return nil, fmt.Errorf("migrate database: %w", err)
	}
	log.Info("database migration completed")

	if err := seedAdmin(gormDB, cfg, log); err != nil {
		return nil, err
	}

	return gormDB, nil
}

// seedAdmin creates the configured admin account if it does not exist yet.
// This replaces an open admin-creation endpoint with a startup-time seed.
func seedAdmin(gormDB *gorm.DB, cfg *config.Config, log *zap.Logger) error {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		return nil
	}

	var count int64
	gormDB.Model(&models.User{}).Where("email = ?", cfg.AdminEmail).Count(&count)
	if count > 0 {
		return nil
	}

	hash, err := utils.HashPassword(cfg.AdminPassword)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	admin := models.User{
		Email:    cfg.AdminEmail,
		Username: "admin",
		Password: hash,
		Approved: true,
		Admin:    true,
	}
	if err := gormDB.Create(&admin).Error; err != nil {
		return fmt.Errorf("seed admin user: %w", err)
	}
	log.Info("admin account seeded", zap.String("email", cfg.AdminEmail))
	return nil
}
