package auth

import (
	"fmt"

	"gorm.io/gorm"
)

// Init creates the users table if absent.
func Init(db *gorm.DB) error {
	if err := db.AutoMigrate(&User{}); err != nil {
		return fmt.Errorf("migrate users: %w", err)
	}
	return nil
}
