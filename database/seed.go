package database

import (
	"fmt"

	"course-platform/internal/domain/courses"

	"gorm.io/gorm"
)

// SeedCatalog loads the course catalog into an empty modules table. A
// populated table is left alone, so reseeding on every boot is safe.
func SeedCatalog(db *gorm.DB) error {
	var count int64
	if err := db.Model(&courses.Module{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	fmt.Println("🌱 Seeding course catalog...")

	for _, mod := range courses.FallbackCatalog() {
		if err := db.Create(&mod).Error; err != nil {
			return err
		}
	}

	fmt.Println("✅ Course catalog seeded")
	return nil
}
