package database

import (
	"testing"

	"course-platform/internal/domain/courses"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&courses.Module{}, &courses.Lesson{}))
	return db
}

func TestSeedCatalog(t *testing.T) {
	db := testDB(t)

	require.NoError(t, SeedCatalog(db))

	var moduleCount, lessonCount int64
	require.NoError(t, db.Model(&courses.Module{}).Count(&moduleCount).Error)
	require.NoError(t, db.Model(&courses.Lesson{}).Count(&lessonCount).Error)
	assert.EqualValues(t, 6, moduleCount)
	assert.EqualValues(t, 32, lessonCount)
}

func TestSeedCatalogIdempotent(t *testing.T) {
	db := testDB(t)

	require.NoError(t, SeedCatalog(db))
	require.NoError(t, SeedCatalog(db))

	var moduleCount int64
	require.NoError(t, db.Model(&courses.Module{}).Count(&moduleCount).Error)
	assert.EqualValues(t, 6, moduleCount)
}
