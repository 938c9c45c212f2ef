package courses

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFallbackCatalogShape(t *testing.T) {
	catalog := FallbackCatalog()

	assert.Len(t, catalog, 6)

	for i, mod := range catalog {
		assert.Equal(t, i+1, mod.Order, "module order must match position")
		assert.NotEmpty(t, mod.ID)
		assert.NotEmpty(t, mod.Title)
		assert.NotEmpty(t, mod.Lessons)

		for j, lesson := range mod.Lessons {
			assert.Equal(t, j+1, lesson.Order, "lesson order must match position in %s", mod.Title)
			assert.Equal(t, mod.ID, lesson.ModuleID)
			assert.NotEmpty(t, lesson.Duration)
		}
	}
}

func TestFallbackCatalogFreeLessons(t *testing.T) {
	free := 0
	for _, mod := range FallbackCatalog() {
		for _, lesson := range mod.Lessons {
			if lesson.IsFree {
				free++
				assert.Contains(t, []string{"module-1", "module-2"}, lesson.ModuleID)
			}
		}
	}
	assert.Equal(t, 5, free)
}

func TestFindFallbackLesson(t *testing.T) {
	lesson, found := FindFallbackLesson("lesson-1-1")
	assert.True(t, found)
	assert.Equal(t, "Introduction to UI/UX Design", lesson.Title)
	assert.True(t, lesson.IsFree)

	lesson, found = FindFallbackLesson("lesson-6-5")
	assert.True(t, found)
	assert.False(t, lesson.IsFree)

	_, found = FindFallbackLesson("lesson-9-9")
	assert.False(t, found)
}
