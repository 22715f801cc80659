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

func TestCourseListOnlyPublished(t *testing.T) {
	app, db := setupApp(t)
	_, token := createUser(t, db, "learner@example.com", models.RoleLearner)
	createCourse(t, db, "Published Course", true, 0)
	createCourse(t, db, "Draft Course", false, 0)

	status, env, _ := doRequest(t, app, "GET", "/course/list", token, nil)
	mustStatus(t, status, fiber.StatusOK, env)

	var list []struct {
		Title     string `json:"title"`
		Published bool   `json:"published"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &list))
	require.Len(t, list, 1)
	assert.Equal(t, "Published Course", list[0].Title)
}

func TestCourseDetailTreeOrdering(t *testing.T) {
	app, db := setupApp(t)
	_, token := createUser(t, db, "learner@example.com", models.RoleLearner)
	course := createCourse(t, db, "Go Basics", true, 0)

	// Inserted out of display order; the second and third share an index so
	// the primary key breaks the tie
	createModule(t, db, course.ID, "Second", 1)
	tieA := createModule(t, db, course.ID, "Tie A", 2)
	tieB := createModule(t, db, course.ID, "Tie B", 2)
	first := createModule(t, db, course.ID, "First", 0)

	createSubModule(t, db, first.ID, "Lesson 2", 1)
	createSubModule(t, db, first.ID, "Lesson 1", 0)

	status, env, _ := doRequest(t, app, "GET", fmt.Sprintf("/course/%d", course.ID), token, nil)
	mustStatus(t, status, fiber.StatusOK, env)

	var resp struct {
		ModuleCount     int `json:"module_count"`
		TotalSubModules int `json:"total_sub_modules"`
		Modules         []struct {
			ID             uint   `json:"id"`
			Title          string `json:"title"`
			SubModuleCount int    `json:"sub_module_count"`
			SubModules     []struct {
				Title string `json:"title"`
			} `json:"sub_modules"`
		} `json:"modules"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &resp))

	assert.Equal(t, 4, resp.ModuleCount)
	assert.Equal(t, 2, resp.TotalSubModules)
	require.Len(t, resp.Modules, 4)
	assert.Equal(t, "First", resp.Modules[0].Title)
	assert.Equal(t, "Second", resp.Modules[1].Title)
	assert.Equal(t, tieA.ID, resp.Modules[2].ID)
	assert.Equal(t, tieB.ID, resp.Modules[3].ID)

	require.Len(t, resp.Modules[0].SubModules, 2)
	assert.Equal(t, "Lesson 1", resp.Modules[0].SubModules[0].Title)
	assert.Equal(t, "Lesson 2", resp.Modules[0].SubModules[1].Title)
}

func TestSubModuleDetailHidesAnswers(t *testing.T) {
	app, db := setupApp(t)
	_, token := createUser(t, db, "learner@example.com", models.RoleLearner)
	course := createCourse(t, db, "Go Basics", true, 0)
	module := createModule(t, db, course.ID, "Module 1", 0)
	sub := createSubModule(t, db, module.ID, "Lesson A", 0)

	require.NoError(t, db.Create(&courseModels.McqQuestion{
		SubModuleID:   sub.ID,
		Question:      "What does go vet do?",
		OptionA:       "Formats code",
		OptionB:       "Reports suspicious constructs",
		OptionC:       "Runs tests",
		OptionD:       "Builds binaries",
		CorrectOption: "B",
	}).Error)
	require.NoError(t, db.Create(&courseModels.CodingQuestion{
		SubModuleID: sub.ID,
		Question:    "Reverse a string",
		StarterCode: "func reverse(s string) string {\n}",
		Solution:    "the-secret-solution",
		Hint:        "iterate runes",
	}).Error)

	status, env, raw := doRequest(t, app, "GET", fmt.Sprintf("/submodule/%d", sub.ID), token, nil)
	mustStatus(t, status, fiber.StatusOK, env)

	assert.NotContains(t, raw, "correct_option")
	assert.NotContains(t, raw, "the-secret-solution")
	assert.NotContains(t, raw, "solution")

	var resp struct {
		McqQuestions []struct {
			Question string `json:"question"`
			OptionB  string `json:"option_b"`
		} `json:"mcq_questions"`
		CodingQuestions []struct {
			Question    string `json:"question"`
			StarterCode string `json:"starter_code"`
			Hint        string `json:"hint"`
		} `json:"coding_questions"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &resp))
	require.Len(t, resp.McqQuestions, 1)
	assert.Equal(t, "Reports suspicious constructs", resp.McqQuestions[0].OptionB)
	require.Len(t, resp.CodingQuestions, 1)
	assert.Equal(t, "iterate runes", resp.CodingQuestions[0].Hint)
}

func TestModuleDetailIncludesContentFields(t *testing.T) {
	app, db := setupApp(t)
	_, token := createUser(t, db, "learner@example.com", models.RoleLearner)
	course := createCourse(t, db, "Go Basics", true, 0)
	module := createModule(t, db, course.ID, "Module 1", 0)
	createSubModule(t, db, module.ID, "Lesson A", 0)

	status, env, _ := doRequest(t, app, "GET", fmt.Sprintf("/module/%d", module.ID), token, nil)
	mustStatus(t, status, fiber.StatusOK, env)

	var resp struct {
		SubModuleCount int `json:"sub_module_count"`
		SubModules     []struct {
			IntroContent string `json:"intro_content"`
			BodyContent  string `json:"body_content"`
		} `json:"sub_modules"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &resp))
	assert.Equal(t, 1, resp.SubModuleCount)
	require.Len(t, resp.SubModules, 1)
	assert.Equal(t, "intro", resp.SubModules[0].IntroContent)
	assert.Equal(t, "body", resp.SubModules[0].BodyContent)
}

func TestCategoriesDeduplicated(t *testing.T) {
	app, db := setupApp(t)
	_, token := createUser(t, db, "learner@example.com", models.RoleLearner)

	for _, category := range []string{"go", "go", "databases", ""} {
		course := courseModels.Course{Title: "Course " + category, Category: category, Published: true}
		require.NoError(t, db.Create(&course).Error)
	}

	status, env, _ := doRequest(t, app, "GET", "/course/categories", token, nil)
	mustStatus(t, status, fiber.StatusOK, env)

	var categories []string
	require.NoError(t, json.Unmarshal(env.Data, &categories))
	assert.ElementsMatch(t, []string{"go", "databases"}, categories)
}
