package controllers

import (
	"time"

	"lms/models"
	courseModels "lms/models/course"

	"gorm.io/gorm"
)

// CourseResponse is the course shape returned to clients. Modules is only
// populated for the detailed single-course view.
type CourseResponse struct {
	ID              uint             `json:"id"`
	Title           string           `json:"title"`
	Description     string           `json:"description"`
	Category        string           `json:"category"`
	Difficulty      string           `json:"difficulty"`
	ThumbnailURL    string           `json:"thumbnail_url"`
	Published       bool             `json:"published"`
	CreatedByID     uint             `json:"created_by_id"`
	CreatedByName   string           `json:"created_by_name"`
	ModuleCount     int              `json:"module_count"`
	TotalSubModules int              `json:"total_sub_modules"`
	CreatedAt       time.Time        `json:"created_at"`
	Modules         []ModuleResponse `json:"modules,omitempty"`
}

// ModuleResponse carries a module and, on detailed views, its sub-modules
type ModuleResponse struct {
	ID             uint                `json:"id"`
	CourseID       uint                `json:"course_id"`
	Title          string              `json:"title"`
	OrderIndex     int                 `json:"order_index"`
	SubModuleCount int                 `json:"sub_module_count"`
	SubModules     []SubModuleResponse `json:"sub_modules,omitempty"`
}

// SubModuleResponse carries a sub-module. Content fields are filled on module
// and sub-module detail views; question lists only on the sub-module detail.
type SubModuleResponse struct {
	ID              uint                     `json:"id"`
	ModuleID        uint                     `json:"module_id"`
	Title           string                   `json:"title"`
	OrderIndex      int                      `json:"order_index"`
	IntroContent    string                   `json:"intro_content,omitempty"`
	BodyContent     string                   `json:"body_content,omitempty"`
	SummaryContent  string                   `json:"summary_content,omitempty"`
	VideoURL        string                   `json:"video_url,omitempty"`
	McqQuestions    []McqQuestionResponse    `json:"mcq_questions,omitempty"`
	CodingQuestions []CodingQuestionResponse `json:"coding_questions,omitempty"`
}

// McqQuestionResponse deliberately has no correct-option field; the answer
// stays server-side.
type McqQuestionResponse struct {
	ID         uint   `json:"id"`
	Question   string `json:"question"`
	OptionA    string `json:"option_a"`
	OptionB    string `json:"option_b"`
	OptionC    string `json:"option_c"`
	OptionD    string `json:"option_d"`
	OrderIndex int    `json:"order_index"`
}

// CodingQuestionResponse deliberately has no solution field.
type CodingQuestionResponse struct {
	ID          uint   `json:"id"`
	Question    string `json:"question"`
	StarterCode string `json:"starter_code"`
	Hint        string `json:"hint"`
	OrderIndex  int    `json:"order_index"`
}

// EnrollmentResponse is an enrollment row enriched with aggregated progress
type EnrollmentResponse struct {
	ID                  uint      `json:"id"`
	UserID              uint      `json:"user_id"`
	CourseID            uint      `json:"course_id"`
	CourseTitle         string    `json:"course_title"`
	Status              string    `json:"status"`
	ProgressPercentage  int       `json:"progress_percentage"`
	CompletedSubModules int       `json:"completed_sub_modules"`
	TotalSubModules     int       `json:"total_sub_modules"`
	EnrolledAt          time.Time `json:"enrolled_at"`
}

// ProgressResponse is a single per-sub-module progress row
type ProgressResponse struct {
	ID             uint       `json:"id"`
	UserID         uint       `json:"user_id"`
	SubModuleID    uint       `json:"sub_module_id"`
	SubModuleTitle string     `json:"sub_module_title"`
	Completed      bool       `json:"completed"`
	CompletedAt    *time.Time `json:"completed_at"`
}

// orderedScope sorts siblings by their display order. Ties on order_index are
// broken by primary key so the output is deterministic.
const orderedScope = "order_index asc, id asc"

// courseSummary assembles the list-view course shape with child counts only
func courseSummary(db *gorm.DB, c courseModels.Course) CourseResponse {
	var moduleCount int64
	db.Model(&courseModels.Module{}).Where("course_id = ?", c.ID).Count(&moduleCount)

	resp := CourseResponse{
		ID:              c.ID,
		Title:           c.Title,
		Description:     c.Description,
		Category:        c.Category,
		Difficulty:      c.Difficulty,
		ThumbnailURL:    c.ThumbnailURL,
		Published:       c.Published,
		CreatedByID:     c.CreatedByID,
		ModuleCount:     int(moduleCount),
		TotalSubModules: int(countCourseSubModules(db, c.ID)),
		CreatedAt:       c.CreatedAt,
	}

	var author models.User
	if err := db.Select("name").Where("id = ?", c.CreatedByID).First(&author).Error; err == nil {
		resp.CreatedByName = author.Name
	}

	return resp
}

// courseDetail assembles the full nested tree: modules in display order, each
// with its sub-modules reduced to title and order.
func courseDetail(db *gorm.DB, c courseModels.Course) CourseResponse {
	resp := courseSummary(db, c)

	var modules []courseModels.Module
	db.Where("course_id = ?", c.ID).Order(orderedScope).Find(&modules)

	resp.Modules = make([]ModuleResponse, 0, len(modules))
	for _, m := range modules {
		var subs []courseModels.SubModule
		db.Where("module_id = ?", m.ID).Order(orderedScope).Find(&subs)

		mr := ModuleResponse{
			ID:             m.ID,
			CourseID:       c.ID,
			Title:          m.Title,
			OrderIndex:     m.OrderIndex,
			SubModuleCount: len(subs),
			SubModules:     make([]SubModuleResponse, 0, len(subs)),
		}
		for _, sm := range subs {
			mr.SubModules = append(mr.SubModules, SubModuleResponse{
				ID:         sm.ID,
				ModuleID:   m.ID,
				Title:      sm.Title,
				OrderIndex: sm.OrderIndex,
			})
		}
		resp.Modules = append(resp.Modules, mr)
	}

	return resp
}

// moduleDetail assembles a module with its sub-modules' content fields
func moduleDetail(db *gorm.DB, m courseModels.Module) ModuleResponse {
	var subs []courseModels.SubModule
	db.Where("module_id = ?", m.ID).Order(orderedScope).Find(&subs)

	resp := ModuleResponse{
		ID:             m.ID,
		CourseID:       m.CourseID,
		Title:          m.Title,
		OrderIndex:     m.OrderIndex,
		SubModuleCount: len(subs),
		SubModules:     make([]SubModuleResponse, 0, len(subs)),
	}
	for _, sm := range subs {
		resp.SubModules = append(resp.SubModules, subModuleContent(sm))
	}

	return resp
}

// subModuleContent maps the lesson fields without question lists
func subModuleContent(sm courseModels.SubModule) SubModuleResponse {
	return SubModuleResponse{
		ID:             sm.ID,
		ModuleID:       sm.ModuleID,
		Title:          sm.Title,
		OrderIndex:     sm.OrderIndex,
		IntroContent:   sm.IntroContent,
		BodyContent:    sm.BodyContent,
		SummaryContent: sm.SummaryContent,
		VideoURL:       sm.VideoURL,
	}
}

// subModuleDetail assembles the full sub-module view with its question lists.
// MCQ answers and coding solutions are stripped here and never leave the
// server through this shape.
func subModuleDetail(db *gorm.DB, sm courseModels.SubModule) SubModuleResponse {
	resp := subModuleContent(sm)

	var mcqs []courseModels.McqQuestion
	db.Where("sub_module_id = ?", sm.ID).Order(orderedScope).Find(&mcqs)
	for _, q := range mcqs {
		resp.McqQuestions = append(resp.McqQuestions, McqQuestionResponse{
			ID:         q.ID,
			Question:   q.Question,
			OptionA:    q.OptionA,
			OptionB:    q.OptionB,
			OptionC:    q.OptionC,
			OptionD:    q.OptionD,
			OrderIndex: q.OrderIndex,
		})
	}

	var codes []courseModels.CodingQuestion
	db.Where("sub_module_id = ?", sm.ID).Order(orderedScope).Find(&codes)
	for _, q := range codes {
		resp.CodingQuestions = append(resp.CodingQuestions, CodingQuestionResponse{
			ID:          q.ID,
			Question:    q.Question,
			StarterCode: q.StarterCode,
			Hint:        q.Hint,
			OrderIndex:  q.OrderIndex,
		})
	}

	return resp
}

// enrollmentResponse enriches an enrollment row with the course title and the
// aggregated progress counts
func enrollmentResponse(db *gorm.DB, e courseModels.Enrollment) EnrollmentResponse {
	total, completed, percentage := courseProgress(db, e.UserID, e.CourseID)

	resp := EnrollmentResponse{
		ID:                  e.ID,
		UserID:              e.UserID,
		CourseID:            e.CourseID,
		Status:              e.Status,
		ProgressPercentage:  percentage,
		CompletedSubModules: int(completed),
		TotalSubModules:     int(total),
		EnrolledAt:          e.EnrolledAt,
	}

	var course courseModels.Course
	if err := db.Select("title").Where("id = ?", e.CourseID).First(&course).Error; err == nil {
		resp.CourseTitle = course.Title
	}

	return resp
}

// progressResponse maps a progress row with its sub-module title
func progressResponse(db *gorm.DB, p courseModels.Progress) ProgressResponse {
	resp := ProgressResponse{
		ID:          p.ID,
		UserID:      p.UserID,
		SubModuleID: p.SubModuleID,
		Completed:   p.Completed,
		CompletedAt: p.CompletedAt,
	}

	var sub courseModels.SubModule
	if err := db.Select("title").Where("id = ?", p.SubModuleID).First(&sub).Error; err == nil {
		resp.SubModuleTitle = sub.Title
	}

	return resp
}
