package course

import "gorm.io/gorm"

// SubModule is the smallest content unit: lesson text/video plus its questions
type SubModule struct {
	gorm.Model
	ModuleID       uint   `json:"module_id" gorm:"index;not null"`
	Title          string `json:"title"`
	OrderIndex     int    `json:"order_index" gorm:"default:0"` // display order within the module
	IntroContent   string `json:"intro_content" gorm:"type:text"`
	BodyContent    string `json:"body_content" gorm:"type:text"`
	SummaryContent string `json:"summary_content" gorm:"type:text"`
	VideoURL       string `json:"video_url"`
}
