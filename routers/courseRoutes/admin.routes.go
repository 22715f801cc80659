package courseRoutes

import (
	controllers "lms/controllers/course"
	"lms/middleware"
	validators "lms/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupAdminCourseRoutes sets up all admin course management routes
func SetupAdminCourseRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin/course", middleware.JWTMiddleware, middleware.AdminOnly)

	// Course CRUD and publication
	adminGroup.Post("/create", validators.CreateCourse(), controllers.AdminCreateCourse)
	adminGroup.Get("/list", controllers.AdminGetAllCourses)
	adminGroup.Get("/my", controllers.AdminGetMyCourses)
	adminGroup.Get("/:id", validators.CourseID(), controllers.AdminGetCourseDetails)
	adminGroup.Put("/:id", validators.UpdateCourse(), controllers.AdminUpdateCourse)
	adminGroup.Delete("/:id", validators.CourseID(), controllers.AdminDeleteCourse)
	adminGroup.Put("/:id/publish", validators.CourseID(), controllers.AdminPublishCourse)
	adminGroup.Put("/:id/unpublish", validators.CourseID(), controllers.AdminUnpublishCourse)

	// Module management
	adminGroup.Post("/:id/module", validators.CreateModule(), controllers.AdminCreateModule)

	moduleGroup := app.Group("/admin/module", middleware.JWTMiddleware, middleware.AdminOnly)
	moduleGroup.Put("/:id", validators.UpdateModule(), controllers.AdminUpdateModule)
	moduleGroup.Delete("/:id", validators.ModuleID(), controllers.AdminDeleteModule)
	moduleGroup.Post("/:id/submodule", validators.CreateSubModule(), controllers.AdminCreateSubModule)

	// Sub-module management
	subModuleGroup := app.Group("/admin/submodule", middleware.JWTMiddleware, middleware.AdminOnly)
	subModuleGroup.Put("/:id", validators.UpdateSubModule(), controllers.AdminUpdateSubModule)
	subModuleGroup.Delete("/:id", validators.SubModuleID(), controllers.AdminDeleteSubModule)

	// Asset upload
	uploadGroup := app.Group("/admin/upload", middleware.JWTMiddleware, middleware.AdminOnly)
	uploadGroup.Post("/thumbnail", controllers.AdminUploadThumbnail)
}
