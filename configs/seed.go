package configs

import (
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Avadhut20/roxiler/entity"
)

// SeedAdmin creates the first admin account from ADMIN_EMAIL/ADMIN_PASSWORD.
// Safe to run on every start: does nothing once the account exists.
func SeedAdmin(db *gorm.DB, cfg *Config) error {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	if err := db.Model(&entity.User{}).Where("email = ?", cfg.AdminEmail).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := entity.User{
		Name:     "System Administrator",
		Email:    cfg.AdminEmail,
		Password: string(hash),
		Role:     entity.RoleAdmin,
	}
	return db.Create(&admin).Error
}
