package course

import "gorm.io/gorm"

// McqQuestion is a multiple choice question attached to a sub-module.
// CorrectOption holds the label (A-D) of the right answer and is never
// exposed through learner-facing responses.
type McqQuestion struct {
	gorm.Model
	SubModuleID   uint   `json:"sub_module_id" gorm:"index;not null"`
	Question      string `json:"question" gorm:"type:text;not null"`
	OptionA       string `json:"option_a" gorm:"type:text;not null"`
	OptionB       string `json:"option_b" gorm:"type:text;not null"`
	OptionC       string `json:"option_c" gorm:"type:text"`
	OptionD       string `json:"option_d" gorm:"type:text"`
	CorrectOption string `json:"correct_option" gorm:"not null"`
	OrderIndex    int    `json:"order_index" gorm:"default:0"`
}

// CodingQuestion is a coding exercise attached to a sub-module. Solution is
// instructor-only data kept server-side.
type CodingQuestion struct {
	gorm.Model
	SubModuleID uint   `json:"sub_module_id" gorm:"index;not null"`
	Question    string `json:"question" gorm:"type:text;not null"`
	StarterCode string `json:"starter_code" gorm:"type:text"`
	Solution    string `json:"solution" gorm:"type:text"`
	Hint        string `json:"hint" gorm:"type:text"`
	OrderIndex  int    `json:"order_index" gorm:"default:0"`
}
