package controllers

import (
	"lms/database"
	"lms/middleware"
	courseModels "lms/models/course"

	"github.com/gofiber/fiber/v2"
)

// GetAllCourses lists every published course as a summary shape
func GetAllCourses(c *fiber.Ctx) error {
	db := database.Database.Db

	var courses []courseModels.Course
	if err := db.Where("published = ?", true).Order("created_at desc").Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	result := make([]CourseResponse, 0, len(courses))
	for _, course := range courses {
		result = append(result, courseSummary(db, course))
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", result)
}

// GetCourseDetails returns a course with its full module/sub-module tree
func GetCourseDetails(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)
	db := database.Database.Db

	var course courseModels.Course
	if err := db.Where("id = ?", courseID).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course details fetched successfully!", courseDetail(db, course))
}

// GetCategories lists the distinct non-empty course categories
func GetCategories(c *fiber.Ctx) error {
	var categories []string
	if err := database.Database.Db.Model(&courseModels.Course{}).
		Where("category IS NOT NULL AND category <> ''").
		Distinct().
		Pluck("category", &categories).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch categories!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Categories fetched successfully!", categories)
}

// GetModulesByCourse lists a course's modules with their sub-module content
func GetModulesByCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)
	db := database.Database.Db

	var course courseModels.Course
	if err := db.Where("id = ?", courseID).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var modules []courseModels.Module
	if err := db.Where("course_id = ?", courseID).Order(orderedScope).Find(&modules).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch modules!", nil)
	}

	result := make([]ModuleResponse, 0, len(modules))
	for _, m := range modules {
		result = append(result, moduleDetail(db, m))
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Modules fetched successfully!", result)
}

// GetModuleDetails returns one module with its sub-modules' content fields
func GetModuleDetails(c *fiber.Ctx) error {
	moduleID := c.Locals("moduleID").(uint)
	db := database.Database.Db

	var module courseModels.Module
	if err := db.Where("id = ?", moduleID).First(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module fetched successfully!", moduleDetail(db, module))
}

// GetSubModuleDetails returns one sub-module with its question lists. MCQ
// answers and coding solutions are stripped by the response shape.
func GetSubModuleDetails(c *fiber.Ctx) error {
	subModuleID := c.Locals("subModuleID").(uint)
	db := database.Database.Db

	var subModule courseModels.SubModule
	if err := db.Where("id = ?", subModuleID).First(&subModule).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "SubModule not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "SubModule fetched successfully!", subModuleDetail(db, subModule))
}
