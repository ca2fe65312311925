package projects_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sceneflow/sceneflow-api/api/projects"
	"github.com/sceneflow/sceneflow-api/api/types"
	"github.com/sceneflow/sceneflow-api/internal/database"
	"github.com/sceneflow/sceneflow-api/internal/models"
	"github.com/sceneflow/sceneflow-api/internal/services/scenes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type ProjectTestSuite struct {
	t      *testing.T
	db     *gorm.DB
	deps   *types.Dependencies
	router *gin.Engine
}

func setupProjectTestSuite(t *testing.T) *ProjectTestSuite {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "Failed to connect to test database")

	err = db.AutoMigrate(&models.Project{}, &models.Scene{}, &models.Clip{}, &models.DialogueCue{})
	require.NoError(t, err, "Failed to migrate test database")

	deps := &types.Dependencies{
		DB:           &database.DB{DB: db},
		SceneService: scenes.NewService(scenes.NewRepository(db)),
	}

	router := gin.New()
	group := router.Group("/projects")
	projects.RegisterRoutes(group, deps)

	return &ProjectTestSuite{
		t:      t,
		db:     db,
		deps:   deps,
		router: router,
	}
}

func (suite *ProjectTestSuite) createTestProject(title string) uint {
	project := models.Project{Title: title, Resolution: "1080p", FPS: 24}
	result := suite.db.Create(&project)
	require.NoError(suite.t, result.Error, "Failed to create test project")
	return project.ID
}

func (suite *ProjectTestSuite) request(method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(suite.t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func TestCreateProject(t *testing.T) {
	suite := setupProjectTestSuite(t)

	tests := []struct {
		name           string
		payload        map[string]any
		expectedStatus int
		validateFunc   func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name: "successful creation",
			payload: map[string]any{
				"title": "Launch Teaser",
			},
			expectedStatus: http.StatusCreated,
			validateFunc: func(t *testing.T, w *httptest.ResponseRecorder) {
				var project models.Project
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &project))
				assert.Equal(t, "Launch Teaser", project.Title)
				assert.Equal(t, "1080p", project.Resolution)
				assert.Equal(t, 24, project.FPS)
				assert.NotZero(t, project.ID)
			},
		},
		{
			name: "custom output settings",
			payload: map[string]any{
				"title":      "Square Cut",
				"resolution": "720p",
				"fps":        30,
			},
			expectedStatus: http.StatusCreated,
			validateFunc: func(t *testing.T, w *httptest.ResponseRecorder) {
				var project models.Project
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &project))
				assert.Equal(t, "720p", project.Resolution)
				assert.Equal(t, 30, project.FPS)
			},
		},
		{
			name:           "missing title",
			payload:        map[string]any{"resolution": "720p"},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := suite.request(http.MethodPost, "/projects", tt.payload)
			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.validateFunc != nil {
				tt.validateFunc(t, w)
			}
		})
	}
}

func TestListProjects(t *testing.T) {
	suite := setupProjectTestSuite(t)
	for i := 1; i <= 3; i++ {
		suite.createTestProject(fmt.Sprintf("Project %d", i))
	}

	w := suite.request(http.MethodGet, "/projects?page=1&limit=2", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var response types.ProjectsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, 2, response.Count)
	assert.Equal(t, int64(3), response.Total)
	assert.Equal(t, 1, response.Page)
}

func TestGetProject(t *testing.T) {
	suite := setupProjectTestSuite(t)
	id := suite.createTestProject("Documentary")

	w := suite.request(http.MethodGet, fmt.Sprintf("/projects/%d", id), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var project models.Project
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &project))
	assert.Equal(t, "Documentary", project.Title)

	w = suite.request(http.MethodGet, "/projects/9999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateProject(t *testing.T) {
	suite := setupProjectTestSuite(t)
	id := suite.createTestProject("Working Title")

	w := suite.request(http.MethodPatch, fmt.Sprintf("/projects/%d", id), map[string]any{
		"title": "Final Title",
		"fps":   30,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var project models.Project
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &project))
	assert.Equal(t, "Final Title", project.Title)
	assert.Equal(t, 30, project.FPS)
	assert.Equal(t, "1080p", project.Resolution, "absent fields stay unchanged")

	w = suite.request(http.MethodPatch, "/projects/9999", map[string]any{"title": "X"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteProject(t *testing.T) {
	suite := setupProjectTestSuite(t)
	id := suite.createTestProject("Disposable")

	w := suite.request(http.MethodDelete, fmt.Sprintf("/projects/%d", id), nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = suite.request(http.MethodGet, fmt.Sprintf("/projects/%d", id), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAddScene(t *testing.T) {
	suite := setupProjectTestSuite(t)
	id := suite.createTestProject("With Scenes")

	w := suite.request(http.MethodPost, fmt.Sprintf("/projects/%d/scenes", id), map[string]any{
		"heading":        "Opening",
		"storyboard_url": "https://cdn.example.com/boards/open.png",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var first models.Scene
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &first))
	assert.Equal(t, 0, first.Position)
	assert.Equal(t, "Opening", first.Heading)

	w = suite.request(http.MethodPost, fmt.Sprintf("/projects/%d/scenes", id), map[string]any{
		"heading": "Closing",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var second models.Scene
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &second))
	assert.Equal(t, 1, second.Position, "scenes append at the end")

	w = suite.request(http.MethodPost, "/projects/9999/scenes", map[string]any{"heading": "X"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}
