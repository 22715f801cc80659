package controllers_test

import (
	"encoding/json"
	"fmt"
	"testing"

	"lms/models"
	courseModels "lms/models/course"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminRoutesRejectLearner(t *testing.T) {
	app, db := setupApp(t)
	_, token := createUser(t, db, "learner@example.com", models.RoleLearner)

	status, env, _ := doRequest(t, app, "POST", "/admin/course/create", token, fiber.Map{
		"title": "Sneaky Course",
	})
	mustStatus(t, status, fiber.StatusForbidden, env)

	status, env, _ = doRequest(t, app, "GET", "/admin/course/list", token, nil)
	mustStatus(t, status, fiber.StatusForbidden, env)
}

func TestAdminCreateCourseValidation(t *testing.T) {
	app, db := setupApp(t)
	_, token := createUser(t, db, "admin@example.com", models.RoleAdmin)

	status, env, _ := doRequest(t, app, "POST", "/admin/course/create", token, fiber.Map{
		"description": "no title here",
	})
	mustStatus(t, status, fiber.StatusUnprocessableEntity, env)

	status, env, _ = doRequest(t, app, "POST", "/admin/course/create", token, fiber.Map{
		"title":      "Go Concurrency",
		"difficulty": "EXPERT",
	})
	mustStatus(t, status, fiber.StatusUnprocessableEntity, env)
}

func TestAdminCreateCourseDefaults(t *testing.T) {
	app, db := setupApp(t)
	admin, token := createUser(t, db, "admin@example.com", models.RoleAdmin)

	status, env, _ := doRequest(t, app, "POST", "/admin/course/create", token, fiber.Map{
		"title":    "Go Concurrency",
		"category": "go",
	})
	mustStatus(t, status, fiber.StatusCreated, env)

	var resp struct {
		ID         uint   `json:"id"`
		Difficulty string `json:"difficulty"`
		Published  bool   `json:"published"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &resp))
	assert.Equal(t, courseModels.DifficultyBeginner, resp.Difficulty)
	assert.False(t, resp.Published)

	var stored courseModels.Course
	require.NoError(t, db.First(&stored, resp.ID).Error)
	assert.Equal(t, admin.ID, stored.CreatedByID)
}

func TestAdminPublishUnpublishCourse(t *testing.T) {
	app, db := setupApp(t)
	_, adminToken := createUser(t, db, "admin@example.com", models.RoleAdmin)
	_, learnerToken := createUser(t, db, "learner@example.com", models.RoleLearner)
	course := createCourse(t, db, "Draft", false, 0)

	status, env, _ := doRequest(t, app, "PUT", fmt.Sprintf("/admin/course/%d/publish", course.ID), adminToken, nil)
	mustStatus(t, status, fiber.StatusOK, env)

	status, env, _ = doRequest(t, app, "GET", fmt.Sprintf("/course/%d", course.ID), learnerToken, nil)
	mustStatus(t, status, fiber.StatusOK, env)

	status, env, _ = doRequest(t, app, "PUT", fmt.Sprintf("/admin/course/%d/unpublish", course.ID), adminToken, nil)
	mustStatus(t, status, fiber.StatusOK, env)

	var stored courseModels.Course
	require.NoError(t, db.First(&stored, course.ID).Error)
	assert.False(t, stored.Published)
}

func TestAdminCreateSubModuleWithQuestions(t *testing.T) {
	app, db := setupApp(t)
	_, token := createUser(t, db, "admin@example.com", models.RoleAdmin)
	course := createCourse(t, db, "Go Basics", true, 0)
	module := createModule(t, db, course.ID, "Module 1", 0)

	status, env, _ := doRequest(t, app, "POST", fmt.Sprintf("/admin/module/%d/submodule", module.ID), token, fiber.Map{
		"title":       "Lesson A",
		"order_index": 0,
		"mcq_questions": []fiber.Map{{
			"question":       "Pick B",
			"option_a":       "a",
			"option_b":       "b",
			"option_c":       "c",
			"option_d":       "d",
			"correct_option": "B",
		}},
		"coding_questions": []fiber.Map{{
			"question":     "Write it",
			"starter_code": "func f() {}",
			"solution":     "func f() { return }",
		}},
	})
	mustStatus(t, status, fiber.StatusCreated, env)

	var resp struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &resp))

	var mcqCount, codingCount int64
	require.NoError(t, db.Model(&courseModels.McqQuestion{}).Where("sub_module_id = ?", resp.ID).Count(&mcqCount).Error)
	require.NoError(t, db.Model(&courseModels.CodingQuestion{}).Where("sub_module_id = ?", resp.ID).Count(&codingCount).Error)
	assert.Equal(t, int64(1), mcqCount)
	assert.Equal(t, int64(1), codingCount)
}

func TestAdminCreateSubModuleRejectsBadCorrectOption(t *testing.T) {
	app, db := setupApp(t)
	_, token := createUser(t, db, "admin@example.com", models.RoleAdmin)
	course := createCourse(t, db, "Go Basics", true, 0)
	module := createModule(t, db, course.ID, "Module 1", 0)

	status, env, _ := doRequest(t, app, "POST", fmt.Sprintf("/admin/module/%d/submodule", module.ID), token, fiber.Map{
		"title":       "Lesson A",
		"order_index": 0,
		"mcq_questions": []fiber.Map{{
			"question":       "Pick E",
			"option_a":       "a",
			"option_b":       "b",
			"option_c":       "c",
			"option_d":       "d",
			"correct_option": "E",
		}},
	})
	mustStatus(t, status, fiber.StatusUnprocessableEntity, env)
}

func TestAdminDeleteModuleCascades(t *testing.T) {
	app, db := setupApp(t)
	_, adminToken := createUser(t, db, "admin@example.com", models.RoleAdmin)
	learner, learnerToken := createUser(t, db, "learner@example.com", models.RoleLearner)
	course := createCourse(t, db, "Go Basics", true, 0)
	module := createModule(t, db, course.ID, "Module 1", 0)
	sub := createSubModule(t, db, module.ID, "Lesson A", 0)
	keptModule := createModule(t, db, course.ID, "Module 2", 1)
	keptSub := createSubModule(t, db, keptModule.ID, "Lesson B", 0)

	require.NoError(t, db.Create(&courseModels.McqQuestion{
		SubModuleID: sub.ID, Question: "q", OptionA: "a", OptionB: "b",
		OptionC: "c", OptionD: "d", CorrectOption: "A",
	}).Error)

	status, env, _ := doRequest(t, app, "POST", fmt.Sprintf("/course/%d/enroll", course.ID), learnerToken, nil)
	mustStatus(t, status, fiber.StatusCreated, env)
	status, env, _ = doRequest(t, app, "POST", fmt.Sprintf("/submodule/%d/complete", sub.ID), learnerToken, nil)
	mustStatus(t, status, fiber.StatusOK, env)
	status, env, _ = doRequest(t, app, "POST", fmt.Sprintf("/submodule/%d/complete", keptSub.ID), learnerToken, nil)
	mustStatus(t, status, fiber.StatusOK, env)

	status, env, _ = doRequest(t, app, "DELETE", fmt.Sprintf("/admin/module/%d", module.ID), adminToken, nil)
	mustStatus(t, status, fiber.StatusOK, env)

	var subCount, mcqCount, progressCount int64
	require.NoError(t, db.Model(&courseModels.SubModule{}).Where("module_id = ?", module.ID).Count(&subCount).Error)
	require.NoError(t, db.Model(&courseModels.McqQuestion{}).Where("sub_module_id = ?", sub.ID).Count(&mcqCount).Error)
	require.NoError(t, db.Model(&courseModels.Progress{}).Where("user_id = ?", learner.ID).Count(&progressCount).Error)
	assert.Zero(t, subCount)
	assert.Zero(t, mcqCount)
	assert.Equal(t, int64(1), progressCount, "progress for the surviving module stays")

	// the course now has one sub-module, all of it completed
	status, env, _ = doRequest(t, app, "GET", fmt.Sprintf("/course/%d/progress", course.ID), learnerToken, nil)
	mustStatus(t, status, fiber.StatusOK, env)
	var progress struct {
		Percentage int `json:"progress_percentage"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &progress))
	assert.Equal(t, 100, progress.Percentage)
}

func TestAdminDeleteCourseCascades(t *testing.T) {
	app, db := setupApp(t)
	_, adminToken := createUser(t, db, "admin@example.com", models.RoleAdmin)
	_, learnerToken := createUser(t, db, "learner@example.com", models.RoleLearner)
	course := createCourse(t, db, "Go Basics", true, 0)
	module := createModule(t, db, course.ID, "Module 1", 0)
	createSubModule(t, db, module.ID, "Lesson A", 0)

	status, env, _ := doRequest(t, app, "POST", fmt.Sprintf("/course/%d/enroll", course.ID), learnerToken, nil)
	mustStatus(t, status, fiber.StatusCreated, env)

	status, env, _ = doRequest(t, app, "DELETE", fmt.Sprintf("/admin/course/%d", course.ID), adminToken, nil)
	mustStatus(t, status, fiber.StatusOK, env)

	var courseCount, moduleCount, enrollCount int64
	require.NoError(t, db.Model(&courseModels.Course{}).Where("id = ?", course.ID).Count(&courseCount).Error)
	require.NoError(t, db.Model(&courseModels.Module{}).Where("course_id = ?", course.ID).Count(&moduleCount).Error)
	require.NoError(t, db.Model(&courseModels.Enrollment{}).Where("course_id = ?", course.ID).Count(&enrollCount).Error)
	assert.Zero(t, courseCount)
	assert.Zero(t, moduleCount)
	assert.Zero(t, enrollCount)
}

func TestAdminUpdateModuleReorders(t *testing.T) {
	app, db := setupApp(t)
	_, token := createUser(t, db, "admin@example.com", models.RoleAdmin)
	course := createCourse(t, db, "Go Basics", true, 0)
	module := createModule(t, db, course.ID, "Module 1", 0)

	status, env, _ := doRequest(t, app, "PUT", fmt.Sprintf("/admin/module/%d", module.ID), token, fiber.Map{
		"title":       "Module 1 renamed",
		"order_index": 5,
	})
	mustStatus(t, status, fiber.StatusOK, env)

	var stored courseModels.Module
	require.NoError(t, db.First(&stored, module.ID).Error)
	assert.Equal(t, "Module 1 renamed", stored.Title)
	assert.Equal(t, 5, stored.OrderIndex)
}
