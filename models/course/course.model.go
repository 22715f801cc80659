package course

import "gorm.io/gorm"

// Course difficulty levels
const (
	DifficultyBeginner     = "BEGINNER"
	DifficultyIntermediate = "INTERMEDIATE"
	DifficultyAdvanced     = "ADVANCED"
)

// Course is the top-level content unit, owning ordered modules
type Course struct {
	gorm.Model
	Title        string `json:"title" gorm:"not null"`
	Description  string `json:"description" gorm:"type:text"`
	Category     string `json:"category"`
	Difficulty   string `json:"difficulty" gorm:"default:'BEGINNER'"` // BEGINNER, INTERMEDIATE, ADVANCED
	ThumbnailURL string `json:"thumbnail_url" gorm:"type:text"`
	Published    bool   `json:"published" gorm:"default:false"`
	CreatedByID  uint   `json:"created_by_id" gorm:"index"`
}
