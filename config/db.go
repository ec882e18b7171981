package config

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/boetepot/boetepot-backend/models"
	"github.com/boetepot/boetepot-backend/utils/logger"
)

// SetupDatabase connects to Postgres, runs migrations and seeds the admin
// credential.
func SetupDatabase(cfg *Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}
	if err := SeedAdminCredential(db, cfg.AdminPassword); err != nil {
		return nil, err
	}

	logger.Info("Database connected and migrated")
	return db, nil
}

// Migrate creates or updates all relations. AutoMigrate is a no-op for
// relations that already match.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Player{},
		&models.Reason{},
		&models.Fine{},
		&models.AdminCredential{},
		&models.AuditLog{},
	)
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	return nil
}

// SeedAdminCredential inserts the single admin credential row when none
// exists yet. The bootstrap password is stored as a bcrypt hash, never
// plaintext.
func SeedAdminCredential(db *gorm.DB, password string) error {
	var count int64
	if err := db.Model(&models.AdminCredential{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count admin credentials: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}
	cred := models.AdminCredential{PasswordHash: string(hash), Role: "admin"}
	if err := db.Create(&cred).Error; err != nil {
		return fmt.Errorf("seed admin credential: %w", err)
	}

	logger.Info("Seeded admin credential")
	return nil
}
