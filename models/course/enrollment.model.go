package course

import (
	"time"

	"gorm.io/gorm"
)

// Enrollment statuses. Only StatusActive is ever set by current operations;
// COMPLETED and DROPPED are declared for the schema but unreachable.
const (
	StatusActive    = "ACTIVE"
	StatusCompleted = "COMPLETED"
	StatusDropped   = "DROPPED"
)

// Enrollment links a user to a course. The composite unique index closes the
// check-then-insert race on concurrent enroll calls.
type Enrollment struct {
	gorm.Model
	UserID     uint      `json:"user_id" gorm:"uniqueIndex:idx_enrollment_user_course;not null"`
	CourseID   uint      `json:"course_id" gorm:"uniqueIndex:idx_enrollment_user_course;not null"`
	Status     string    `json:"status" gorm:"default:'ACTIVE'"` // ACTIVE, COMPLETED, DROPPED
	EnrolledAt time.Time `json:"enrolled_at"`
}
