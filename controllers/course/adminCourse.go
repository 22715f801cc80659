package controllers

import (
	"lms/database"
	"lms/middleware"
	courseModels "lms/models/course"
	"lms/utils"
	courseValidator "lms/validators/course"

	"github.com/gofiber/fiber/v2"
)

// AdminCreateCourse creates a new course owned by the caller
func AdminCreateCourse(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedCourse").(*courseValidator.CourseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	course := courseModels.Course{
		Title:        reqData.Title,
		Description:  reqData.Description,
		Category:     reqData.Category,
		Difficulty:   reqData.Difficulty,
		ThumbnailURL: reqData.ThumbnailURL,
		CreatedByID:  userID,
	}
	if course.Difficulty == "" {
		course.Difficulty = courseModels.DifficultyBeginner
	}
	if reqData.Published != nil {
		course.Published = *reqData.Published
	}

	if err := db.Create(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", courseSummary(db, course))
}

// AdminUpdateCourse updates an existing course
func AdminUpdateCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)

	reqData, ok := c.Locals("validatedCourse").(*courseValidator.CourseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var course courseModels.Course
	if err := db.Where("id = ?", courseID).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	course.Title = reqData.Title
	course.Description = reqData.Description
	course.Category = reqData.Category
	course.ThumbnailURL = reqData.ThumbnailURL
	if reqData.Difficulty != "" {
		course.Difficulty = reqData.Difficulty
	}
	if reqData.Published != nil {
		course.Published = *reqData.Published
	}

	if err := db.Save(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully!", courseSummary(db, course))
}

// AdminDeleteCourse removes a course and its whole subtree: modules,
// sub-modules, questions, progress rows, and enrollments, in one transaction.
func AdminDeleteCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)
	db := database.Database.Db

	var course courseModels.Course
	if err := db.Where("id = ?", courseID).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	tx := db.Begin()

	var moduleIDs []uint
	tx.Model(&courseModels.Module{}).Where("course_id = ?", courseID).Pluck("id", &moduleIDs)

	if len(moduleIDs) > 0 {
		if err := deleteSubModuleTrees(tx, moduleIDs); err != nil {
			tx.Rollback()
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete course!", nil)
		}
		if err := tx.Unscoped().Where("course_id = ?", courseID).Delete(&courseModels.Module{}).Error; err != nil {
			tx.Rollback()
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete course!", nil)
		}
	}

	if err := tx.Unscoped().Where("course_id = ?", courseID).Delete(&courseModels.Enrollment{}).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete course!", nil)
	}

	if err := tx.Unscoped().Delete(&course).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete course!", nil)
	}

	if err := tx.Commit().Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully!", nil)
}

// AdminGetAllCourses lists every course, published or not
func AdminGetAllCourses(c *fiber.Ctx) error {
	db := database.Database.Db

	var courses []courseModels.Course
	if err := db.Order("created_at desc").Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	result := make([]CourseResponse, 0, len(courses))
	for _, course := range courses {
		result = append(result, courseSummary(db, course))
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", result)
}

// AdminGetMyCourses lists the courses authored by the caller
func AdminGetMyCourses(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	var courses []courseModels.Course
	if err := db.Where("created_by_id = ?", userID).Order("created_at desc").Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	result := make([]CourseResponse, 0, len(courses))
	for _, course := range courses {
		result = append(result, courseSummary(db, course))
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", result)
}

// AdminGetCourseDetails returns the full tree regardless of publication state
func AdminGetCourseDetails(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)
	db := database.Database.Db

	var course courseModels.Course
	if err := db.Where("id = ?", courseID).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course details fetched successfully!", courseDetail(db, course))
}

// AdminPublishCourse makes a course visible and open for enrollment
func AdminPublishCourse(c *fiber.Ctx) error {
	return setCoursePublished(c, true, "Course published successfully!")
}

// AdminUnpublishCourse hides a course from learners
func AdminUnpublishCourse(c *fiber.Ctx) error {
	return setCoursePublished(c, false, "Course unpublished successfully!")
}

func setCoursePublished(c *fiber.Ctx, published bool, message string) error {
	courseID := c.Locals("courseID").(uint)
	db := database.Database.Db

	var course courseModels.Course
	if err := db.Where("id = ?", courseID).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	course.Published = published
	if err := db.Model(&course).Update("published", published).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, message, courseSummary(db, course))
}

// AdminUploadThumbnail stores a course thumbnail and returns its public URL
func AdminUploadThumbnail(c *fiber.Ctx) error {
	file, err := c.FormFile("thumbnail")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Thumbnail file is required!", nil)
	}

	path, err := utils.SaveUploadedFile(file)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save thumbnail!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Thumbnail uploaded successfully!", fiber.Map{
		"url": utils.FileURL(path),
	})
}
