package contacts

import (
	"fmt"

	"gorm.io/gorm"
)

// Init creates the phd_contacts table if absent. On Postgres the user_id
// foreign key cascades deletes; SQLite leaves it unenforced (legacy behavior).
func Init(db *gorm.DB) error {
	if err := db.AutoMigrate(&Contact{}); err != nil {
		return fmt.Errorf("migrate phd_contacts: %w", err)
	}
	return nil
}
