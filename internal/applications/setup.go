package applications

import (
	"fmt"

	"gorm.io/gorm"
)

// Init creates the masters_apps table if absent. On Postgres the user_id
// foreign key cascades deletes; SQLite leaves it unenforced (legacy behavior).
func Init(db *gorm.DB) error {
	if err := db.AutoMigrate(&Application{}); err != nil {
		return fmt.Errorf("migrate masters_apps: %w", err)
	}
	return nil
}
