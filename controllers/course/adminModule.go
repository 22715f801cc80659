package controllers

import (
	"lms/database"
	"lms/middleware"
	courseModels "lms/models/course"
	courseValidator "lms/validators/course"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AdminCreateModule adds a module to a course
func AdminCreateModule(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)

	reqData, ok := c.Locals("validatedModule").(*courseValidator.ModuleRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var course courseModels.Course
	if err := db.Where("id = ?", courseID).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	module := courseModels.Module{
		CourseID:   courseID,
		Title:      reqData.Title,
		OrderIndex: *reqData.OrderIndex,
	}

	if err := db.Create(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create module!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Module created successfully!", ModuleResponse{
		ID:         module.ID,
		CourseID:   module.CourseID,
		Title:      module.Title,
		OrderIndex: module.OrderIndex,
	})
}

// AdminUpdateModule updates a module's title and order
func AdminUpdateModule(c *fiber.Ctx) error {
	moduleID := c.Locals("moduleID").(uint)

	reqData, ok := c.Locals("validatedModule").(*courseValidator.ModuleRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var module courseModels.Module
	if err := db.Where("id = ?", moduleID).First(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	module.Title = reqData.Title
	module.OrderIndex = *reqData.OrderIndex

	if err := db.Save(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update module!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module updated successfully!", moduleDetail(db, module))
}

// AdminDeleteModule removes a module and everything under it: sub-modules,
// their questions, and any progress rows referencing them. One transaction,
// so the subtree never half-disappears.
func AdminDeleteModule(c *fiber.Ctx) error {
	moduleID := c.Locals("moduleID").(uint)
	db := database.Database.Db

	var module courseModels.Module
	if err := db.Where("id = ?", moduleID).First(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	tx := db.Begin()

	if err := deleteSubModuleTrees(tx, []uint{moduleID}); err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete module!", nil)
	}

	if err := tx.Unscoped().Delete(&module).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete module!", nil)
	}

	if err := tx.Commit().Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete module!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module deleted successfully!", nil)
}

// deleteSubModuleTrees removes all sub-modules under the given modules along
// with their questions and progress rows. Runs inside the caller's
// transaction.
func deleteSubModuleTrees(tx *gorm.DB, moduleIDs []uint) error {
	var subModuleIDs []uint
	if err := tx.Model(&courseModels.SubModule{}).Where("module_id IN ?", moduleIDs).Pluck("id", &subModuleIDs).Error; err != nil {
		return err
	}

	if len(subModuleIDs) > 0 {
		if err := tx.Unscoped().Where("sub_module_id IN ?", subModuleIDs).Delete(&courseModels.McqQuestion{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("sub_module_id IN ?", subModuleIDs).Delete(&courseModels.CodingQuestion{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("sub_module_id IN ?", subModuleIDs).Delete(&courseModels.Progress{}).Error; err != nil {
			return err
		}
	}

	return tx.Unscoped().Where("module_id IN ?", moduleIDs).Delete(&courseModels.SubModule{}).Error
}
