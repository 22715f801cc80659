package course

import "gorm.io/gorm"

// Module is an ordered grouping of sub-modules within a course
type Module struct {
	gorm.Model
	CourseID   uint   `json:"course_id" gorm:"index;not null"`
	Title      string `json:"title"`
	OrderIndex int    `json:"order_index" gorm:"default:0"` // display order within the course
}
