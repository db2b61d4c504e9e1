package controllers_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"khelkhatm/backend/activity"
	"khelkhatm/backend/config"
	"khelkhatm/backend/models"
	"khelkhatm/backend/repository"
	"khelkhatm/backend/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type testEnv struct {
	app  *fiber.App
	repo *repository.Repository
	cfg  *config.Config
}

func testConfig() *config.Config {
	return &config.Config{
		DBDriver:    config.DriverSQLite,
		ServerPort:  "8080",
		TimeZone:    "UTC",
		Location:    time.UTC,
		DailyTarget: 3,
	}
}

func newTestRepository(t *testing.T) *repository.Repository {
	t.Helper()

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(models.All()...))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	return repository.New(db)
}

// newTestEnv wires the full route table. backendURL may be empty.
func newTestEnv(t *testing.T, backendURL string) *testEnv {
	t.Helper()

	env := &testEnv{
		app:  fiber.New(),
		repo: newTestRepository(t),
		cfg:  testConfig(),
	}
	client := activity.NewClient(backendURL, "secret")
	routes.SetupRoutes(env.app, env.repo, env.cfg, client, nil, nil)
	return env
}

func (e *testEnv) seed(t *testing.T) []models.Question {
	t.Helper()

	questions := []models.Question{
		{Title: "#1 Two Sum", Phase: "PHASE 0", Topic: "Arrays", Status: models.StatusTodo},
		{Title: "#344 Reverse String", Phase: "PHASE 0", Topic: "Strings", Status: models.StatusTodo},
		{Title: "#200 Number of Islands", Phase: "PHASE 2", Topic: "Graphs", Status: models.StatusTodo},
	}
	concepts := []models.Concept{
		{Subject: "OS", Topic: "Threads", Status: models.StatusTodo},
		{Subject: "DBMS", Topic: "Indexing", Status: models.StatusDone},
	}
	ctx := context.Background()
	require.NoError(t, e.repo.CreateQuestions(ctx, questions))
	require.NoError(t, e.repo.CreateConcepts(ctx, concepts))
	return questions
}

func request(t *testing.T, app *fiber.App, method, target string, body interface{}) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = strings.NewReader(string(raw))
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, dest interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dest))
}
