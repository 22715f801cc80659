package controllers

import (
	"lms/database"
	"lms/middleware"
	courseModels "lms/models/course"
	courseValidator "lms/validators/course"

	"github.com/gofiber/fiber/v2"
)

// AdminCreateSubModule creates a sub-module together with its nested MCQ and
// coding question lists in a single transaction.
func AdminCreateSubModule(c *fiber.Ctx) error {
	moduleID := c.Locals("moduleID").(uint)

	reqData, ok := c.Locals("validatedSubModule").(*courseValidator.SubModuleRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var module courseModels.Module
	if err := db.Where("id = ?", moduleID).First(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	subModule := courseModels.SubModule{
		ModuleID:       moduleID,
		Title:          reqData.Title,
		OrderIndex:     *reqData.OrderIndex,
		IntroContent:   reqData.IntroContent,
		BodyContent:    reqData.BodyContent,
		SummaryContent: reqData.SummaryContent,
		VideoURL:       reqData.VideoURL,
	}

	tx := db.Begin()

	if err := tx.Create(&subModule).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create sub-module!", nil)
	}

	for _, mcqReq := range reqData.McqQuestions {
		mcq := courseModels.McqQuestion{
			SubModuleID:   subModule.ID,
			Question:      mcqReq.Question,
			OptionA:       mcqReq.OptionA,
			OptionB:       mcqReq.OptionB,
			OptionC:       mcqReq.OptionC,
			OptionD:       mcqReq.OptionD,
			CorrectOption: mcqReq.CorrectOption,
			OrderIndex:    mcqReq.OrderIndex,
		}
		if err := tx.Create(&mcq).Error; err != nil {
			tx.Rollback()
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create sub-module!", nil)
		}
	}

	for _, codeReq := range reqData.CodingQuestions {
		code := courseModels.CodingQuestion{
			SubModuleID: subModule.ID,
			Question:    codeReq.Question,
			StarterCode: codeReq.StarterCode,
			Solution:    codeReq.Solution,
			Hint:        codeReq.Hint,
			OrderIndex:  codeReq.OrderIndex,
		}
		if err := tx.Create(&code).Error; err != nil {
			tx.Rollback()
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create sub-module!", nil)
		}
	}

	if err := tx.Commit().Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create sub-module!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Sub-module created successfully!", subModuleDetail(db, subModule))
}

// AdminUpdateSubModule updates a sub-module's content fields. Question lists
// are not touched here.
func AdminUpdateSubModule(c *fiber.Ctx) error {
	subModuleID := c.Locals("subModuleID").(uint)

	reqData, ok := c.Locals("validatedSubModule").(*courseValidator.SubModuleRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var subModule courseModels.SubModule
	if err := db.Where("id = ?", subModuleID).First(&subModule).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "SubModule not found!", nil)
	}

	subModule.Title = reqData.Title
	subModule.OrderIndex = *reqData.OrderIndex
	subModule.IntroContent = reqData.IntroContent
	subModule.BodyContent = reqData.BodyContent
	subModule.SummaryContent = reqData.SummaryContent
	subModule.VideoURL = reqData.VideoURL

	if err := db.Save(&subModule).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update sub-module!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Sub-module updated successfully!", subModuleContent(subModule))
}

// AdminDeleteSubModule removes a sub-module, its questions, and any progress
// rows referencing it, in one transaction
func AdminDeleteSubModule(c *fiber.Ctx) error {
	subModuleID := c.Locals("subModuleID").(uint)
	db := database.Database.Db

	var subModule courseModels.SubModule
	if err := db.Where("id = ?", subModuleID).First(&subModule).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "SubModule not found!", nil)
	}

	tx := db.Begin()

	if err := tx.Unscoped().Where("sub_module_id = ?", subModuleID).Delete(&courseModels.McqQuestion{}).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete sub-module!", nil)
	}
	if err := tx.Unscoped().Where("sub_module_id = ?", subModuleID).Delete(&courseModels.CodingQuestion{}).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete sub-module!", nil)
	}
	if err := tx.Unscoped().Where("sub_module_id = ?", subModuleID).Delete(&courseModels.Progress{}).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete sub-module!", nil)
	}
	if err := tx.Unscoped().Delete(&subModule).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete sub-module!", nil)
	}

	if err := tx.Commit().Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete sub-module!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Sub-module deleted successfully!", nil)
}
