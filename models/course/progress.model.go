package course

import (
	"time"

	"gorm.io/gorm"
)

// Progress records a user's completion of one sub-module. Rows are created on
// the first mark-complete and updated in place afterwards; mark-incomplete
// clears the flag rather than deleting the row, so progress survives
// unenroll/re-enroll cycles.
type Progress struct {
	gorm.Model
	UserID      uint       `json:"user_id" gorm:"uniqueIndex:idx_progress_user_sub_module;not null"`
	SubModuleID uint       `json:"sub_module_id" gorm:"uniqueIndex:idx_progress_user_sub_module;not null"`
	Completed   bool       `json:"completed" gorm:"default:false"`
	CompletedAt *time.Time `json:"completed_at"`
}

// TableName keeps the singular table name used by the rest of the schema.
func (Progress) TableName() string {
	return "progress"
}
