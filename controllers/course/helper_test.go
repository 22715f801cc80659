package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"lms/config"
	"lms/database"
	"lms/middleware"
	"lms/models"
	courseModels "lms/models/course"
	authRoutes "lms/routers/authRoutes"
	courseRoutes "lms/routers/courseRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDBCounter int64

// envelope mirrors the standard response shape
type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// setupApp builds the full route tree against a fresh in-memory database
func setupApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	config.AppConfig = &config.Config{
		Port:      "0",
		JWTKey:    "test-secret",
		SaltRound: bcrypt.MinCost,
		UploadDir: t.TempDir(),
	}

	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", atomic.AddInt64(&testDBCounter, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	authRoutes.SetupAuthRoutes(app)
	courseRoutes.SetupCourseRoutes(app)
	courseRoutes.SetupAdminCourseRoutes(app)

	return app, db
}

// createUser inserts a user and returns it with a bearer token
func createUser(t *testing.T, db *gorm.DB, email, role string) (models.User, string) {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	user := models.User{
		Name:     "Test User",
		Email:    email,
		Password: string(hashed),
		Role:     role,
	}
	require.NoError(t, db.Create(&user).Error)

	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Role, user.Email)
	require.NoError(t, err)

	return user, token
}

// createCourse inserts a course row directly
func createCourse(t *testing.T, db *gorm.DB, title string, published bool, authorID uint) courseModels.Course {
	t.Helper()

	course := courseModels.Course{
		Title:       title,
		Description: "about " + title,
		Category:    "general",
		Difficulty:  courseModels.DifficultyBeginner,
		Published:   published,
		CreatedByID: authorID,
	}
	require.NoError(t, db.Create(&course).Error)
	return course
}

// createModule inserts a module row directly
func createModule(t *testing.T, db *gorm.DB, courseID uint, title string, orderIndex int) courseModels.Module {
	t.Helper()

	module := courseModels.Module{CourseID: courseID, Title: title, OrderIndex: orderIndex}
	require.NoError(t, db.Create(&module).Error)
	return module
}

// createSubModule inserts a sub-module row directly
func createSubModule(t *testing.T, db *gorm.DB, moduleID uint, title string, orderIndex int) courseModels.SubModule {
	t.Helper()

	sub := courseModels.SubModule{
		ModuleID:     moduleID,
		Title:        title,
		OrderIndex:   orderIndex,
		IntroContent: "intro",
		BodyContent:  "body",
	}
	require.NoError(t, db.Create(&sub).Error)
	return sub
}

// doRequest performs an authenticated JSON request and decodes the envelope
func doRequest(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (int, envelope, string) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(buf)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var env envelope
	require.NoError(t, json.Unmarshal(raw, &env), "body: %s", string(raw))

	return resp.StatusCode, env, string(raw)
}

func mustStatus(t *testing.T, got int, want int, env envelope) {
	t.Helper()
	require.Equal(t, want, got, "message: %s", env.Message)
}
