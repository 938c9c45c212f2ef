package modules

import (
	"fmt"
	"net/http"

	"course-platform/database"
	"course-platform/internal/domain/courses"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ListModules returns the ordered course catalog. Persistence trouble of any
// kind degrades to the embedded catalog; callers always get an array.
func ListModules(c *gin.Context) {
	if !database.Available() {
		c.JSON(http.StatusOK, courses.FallbackCatalog())
		return
	}

	var mods []courses.Module
	err := database.DB.
		Order("sort_order ASC").
		Preload("Lessons", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		Find(&mods).Error
	if err != nil {
		fmt.Println("Database error, returning demo modules:", err)
		c.JSON(http.StatusOK, courses.FallbackCatalog())
		return
	}

	if mods == nil {
		mods = []courses.Module{}
	}
	c.JSON(http.StatusOK, mods)
}

// GetLesson returns a single lesson. Access control happens in the
// LessonAccess middleware, which stores the loaded lesson in the context.
func GetLesson(c *gin.Context) {
	value, exists := c.Get("lesson")
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"error": "Lesson not found"})
		return
	}
	lesson, ok := value.(*courses.Lesson)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Lesson not found"})
		return
	}
	c.JSON(http.StatusOK, lesson)
}
