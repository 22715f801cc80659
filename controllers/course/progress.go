package controllers

import (
	"math"
	"time"

	"lms/database"
	"lms/middleware"
	"lms/models"
	courseModels "lms/models/course"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// countCourseSubModules counts every sub-module reachable through the
// course's modules
func countCourseSubModules(db *gorm.DB, courseID uint) int64 {
	var total int64
	db.Model(&courseModels.SubModule{}).
		Joins("JOIN modules ON modules.id = sub_modules.module_id").
		Where("modules.course_id = ?", courseID).
		Count(&total)
	return total
}

// courseProgress aggregates a user's completion for one course: total
// sub-modules, completed sub-modules, and the rounded percentage. Percentage
// is 0 for a course with no sub-modules. Read-only.
func courseProgress(db *gorm.DB, userID, courseID uint) (total, completed int64, percentage int) {
	total = countCourseSubModules(db, courseID)

	db.Model(&courseModels.Progress{}).
		Joins("JOIN sub_modules ON sub_modules.id = progress.sub_module_id").
		Joins("JOIN modules ON modules.id = sub_modules.module_id").
		Where("modules.course_id = ? AND progress.user_id = ? AND progress.completed = ?", courseID, userID, true).
		Count(&completed)

	if total > 0 {
		percentage = int(math.Round(float64(completed) / float64(total) * 100))
	}

	return total, completed, percentage
}

// GetUserProgress lists all of the caller's progress rows
func GetUserProgress(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	var rows []courseModels.Progress
	if err := db.Where("user_id = ?", userID).Find(&rows).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch progress!", nil)
	}

	result := make([]ProgressResponse, 0, len(rows))
	for _, p := range rows {
		result = append(result, progressResponse(db, p))
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress fetched successfully!", result)
}

// GetCourseProgress lists the caller's progress rows under one course,
// together with the aggregated counts
func GetCourseProgress(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(uint)
	db := database.Database.Db

	var course courseModels.Course
	if err := db.Where("id = ?", courseID).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var rows []courseModels.Progress
	if err := db.
		Joins("JOIN sub_modules ON sub_modules.id = progress.sub_module_id").
		Joins("JOIN modules ON modules.id = sub_modules.module_id").
		Where("modules.course_id = ? AND progress.user_id = ?", courseID, userID).
		Find(&rows).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch progress!", nil)
	}

	result := make([]ProgressResponse, 0, len(rows))
	for _, p := range rows {
		result = append(result, progressResponse(db, p))
	}

	total, completed, percentage := courseProgress(db, userID, courseID)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress fetched successfully!", fiber.Map{
		"progress":              result,
		"total_sub_modules":     total,
		"completed_sub_modules": completed,
		"progress_percentage":   percentage,
	})
}

// MarkSubModuleComplete upserts the caller's progress row for a sub-module.
// The insert-or-update runs as a single statement against the (user_id,
// sub_module_id) unique index, so concurrent calls converge to one row.
func MarkSubModuleComplete(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	subModuleID := c.Locals("subModuleID").(uint)
	db := database.Database.Db

	var user models.User
	if err := db.Where("id = ?", userID).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	var subModule courseModels.SubModule
	if err := db.Where("id = ?", subModuleID).First(&subModule).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "SubModule not found!", nil)
	}

	now := time.Now()
	progress := courseModels.Progress{
		UserID:      userID,
		SubModuleID: subModuleID,
		Completed:   true,
		CompletedAt: &now,
	}

	if err := db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "sub_module_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"completed":    true,
			"completed_at": now,
			"updated_at":   now,
		}),
	}).Create(&progress).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to mark sub-module complete!", nil)
	}

	// Re-read so the response reflects the stored row after an upsert
	db.Where("user_id = ? AND sub_module_id = ?", userID, subModuleID).First(&progress)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Sub-module marked complete!", progressResponse(db, progress))
}

// MarkSubModuleIncomplete clears the completion flag in place. The row is
// kept so completion history survives.
func MarkSubModuleIncomplete(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	subModuleID := c.Locals("subModuleID").(uint)
	db := database.Database.Db

	var progress courseModels.Progress
	if err := db.Where("user_id = ? AND sub_module_id = ?", userID, subModuleID).First(&progress).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Progress not found!", nil)
	}

	progress.Completed = false
	progress.CompletedAt = nil

	if err := db.Model(&progress).Select("completed", "completed_at").Updates(map[string]interface{}{
		"completed":    false,
		"completed_at": nil,
	}).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to mark sub-module incomplete!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Sub-module marked incomplete!", progressResponse(db, progress))
}
