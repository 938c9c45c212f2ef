package courses

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Module struct {
	ID          string `gorm:"primaryKey" json:"id"`
	Order       int    `gorm:"column:sort_order;not null" json:"order"`
	Title       string `gorm:"not null" json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`

	Lessons []Lesson `gorm:"foreignKey:ModuleID" json:"lessons"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

type Lesson struct {
	ID          string `gorm:"primaryKey" json:"id"`
	ModuleID    string `gorm:"not null;index:idx_lessons_module_id" json:"-"`
	Order       int    `gorm:"column:sort_order;not null" json:"order"`
	Title       string `gorm:"not null" json:"title"`
	Description string `json:"description"`
	Duration    string `json:"duration"`
	VideoURL    string `gorm:"column:video_url" json:"videoUrl,omitempty"`
	IsFree      bool   `json:"isFree"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func (m *Module) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

func (l *Lesson) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}
