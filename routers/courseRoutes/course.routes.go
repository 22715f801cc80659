package courseRoutes

import (
	controllers "lms/controllers/course"
	"lms/middleware"
	validators "lms/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up all learner-facing routes
func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/course")

	// Course browsing
	courseGroup.Get("/list", middleware.JWTMiddleware, controllers.GetAllCourses)
	courseGroup.Get("/categories", middleware.JWTMiddleware, controllers.GetCategories)
	courseGroup.Get("/:id", middleware.JWTMiddleware, validators.CourseID(), controllers.GetCourseDetails)
	courseGroup.Get("/:id/modules", middleware.JWTMiddleware, validators.CourseID(), controllers.GetModulesByCourse)

	// Enrollment
	courseGroup.Post("/:id/enroll", middleware.JWTMiddleware, validators.CourseID(), controllers.EnrollInCourse)
	courseGroup.Delete("/:id/enroll", middleware.JWTMiddleware, validators.CourseID(), controllers.UnenrollFromCourse)
	courseGroup.Get("/:id/enrollment", middleware.JWTMiddleware, validators.CourseID(), controllers.GetEnrollment)
	courseGroup.Get("/:id/enrollment/check", middleware.JWTMiddleware, validators.CourseID(), controllers.CheckEnrollment)

	// Progress tracking
	courseGroup.Get("/:id/progress", middleware.JWTMiddleware, validators.CourseID(), controllers.GetCourseProgress)

	// Module and sub-module detail
	moduleGroup := app.Group("/module")
	moduleGroup.Get("/:id", middleware.JWTMiddleware, validators.ModuleID(), controllers.GetModuleDetails)

	subModuleGroup := app.Group("/submodule")
	subModuleGroup.Get("/:id", middleware.JWTMiddleware, validators.SubModuleID(), controllers.GetSubModuleDetails)
	subModuleGroup.Post("/:id/complete", middleware.JWTMiddleware, validators.SubModuleID(), controllers.MarkSubModuleComplete)
	subModuleGroup.Post("/:id/incomplete", middleware.JWTMiddleware, validators.SubModuleID(), controllers.MarkSubModuleIncomplete)

	// Enrollments and progress across courses
	userGroup := app.Group("/user")
	userGroup.Get("/enrollments", middleware.JWTMiddleware, controllers.GetUserEnrollments)
	userGroup.Get("/progress", middleware.JWTMiddleware, controllers.GetUserProgress)
}
