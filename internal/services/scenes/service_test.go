package scenes

import (
	"context"
	"testing"

	"github.com/sceneflow/sceneflow-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestService(t *testing.T) *Service {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.Project{}, &models.Scene{}, &models.Clip{}, &models.DialogueCue{}))

	return NewService(NewRepository(db))
}

func createProject(t *testing.T, service *Service, title string) *models.Project {
	t.Helper()
	project, err := service.CreateProject(context.Background(), CreateProjectParams{Title: title})
	require.NoError(t, err)
	return project
}

func TestCreateProject(t *testing.T) {
	service := setupTestService(t)

	project, err := service.CreateProject(context.Background(), CreateProjectParams{
		Title:      "Launch Teaser",
		Resolution: "1280x720",
		FPS:        30,
	})

	require.NoError(t, err)
	assert.NotZero(t, project.ID)
	assert.Equal(t, "Launch Teaser", project.Title)
	assert.Equal(t, "1280x720", project.Resolution)
	assert.Equal(t, 30, project.FPS)
}

func TestCreateProject_RequiresTitle(t *testing.T) {
	service := setupTestService(t)

	_, err := service.CreateProject(context.Background(), CreateProjectParams{})
	assert.Error(t, err)
}

func TestGetProject_NotFound(t *testing.T) {
	service := setupTestService(t)

	_, err := service.GetProject(context.Background(), 999)
	assert.ErrorIs(t, err, ErrProjectNotFound)
}

func TestGetProject_PreloadsScenesInOrder(t *testing.T) {
	service := setupTestService(t)
	project := createProject(t, service, "Ordered")

	for _, heading := range []string{"first", "second", "third"} {
		_, err := service.AddScene(context.Background(), project.ID, SceneParams{Heading: heading})
		require.NoError(t, err)
	}

	loaded, err := service.GetProject(context.Background(), project.ID)
	require.NoError(t, err)
	require.Len(t, loaded.Scenes, 3)
	assert.Equal(t, "first", loaded.Scenes[0].Heading)
	assert.Equal(t, "third", loaded.Scenes[2].Heading)
	assert.Equal(t, 2, loaded.Scenes[2].Position)
}

func TestListProjects_Pagination(t *testing.T) {
	service := setupTestService(t)
	for i := 0; i < 5; i++ {
		createProject(t, service, "Project")
	}

	projects, total, err := service.ListProjects(context.Background(), 1, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Len(t, projects, 3)

	projects, _, err = service.ListProjects(context.Background(), 2, 3)
	require.NoError(t, err)
	assert.Len(t, projects, 2)
}

func TestUpdateProject_PartialUpdate(t *testing.T) {
	service := setupTestService(t)
	project := createProject(t, service, "Before")

	title := "After"
	updated, err := service.UpdateProject(context.Background(), project.ID, UpdateProjectParams{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "After", updated.Title)
	assert.Equal(t, project.Resolution, updated.Resolution)
}

func TestDeleteProject(t *testing.T) {
	service := setupTestService(t)
	project := createProject(t, service, "Doomed")

	require.NoError(t, service.DeleteProject(context.Background(), project.ID))

	_, err := service.GetProject(context.Background(), project.ID)
	assert.ErrorIs(t, err, ErrProjectNotFound)

	assert.ErrorIs(t, service.DeleteProject(context.Background(), project.ID), ErrProjectNotFound)
}

func TestAddScene_AssignsNextPosition(t *testing.T) {
	service := setupTestService(t)
	project := createProject(t, service, "Positions")

	first, err := service.AddScene(context.Background(), project.ID, SceneParams{Heading: "a"})
	require.NoError(t, err)
	second, err := service.AddScene(context.Background(), project.ID, SceneParams{Heading: "b"})
	require.NoError(t, err)

	assert.Equal(t, 0, first.Position)
	assert.Equal(t, 1, second.Position)
}

func TestAddScene_UnknownProject(t *testing.T) {
	service := setupTestService(t)

	_, err := service.AddScene(context.Background(), 42, SceneParams{Heading: "orphan"})
	assert.ErrorIs(t, err, ErrProjectNotFound)
}

func TestUpdateScene(t *testing.T) {
	service := setupTestService(t)
	project := createProject(t, service, "Audio")
	scene, err := service.AddScene(context.Background(), project.ID, SceneParams{Heading: "quiet"})
	require.NoError(t, err)

	updated, err := service.UpdateScene(context.Background(), scene.ID, SceneParams{
		Heading:       "loud",
		NarrationURL:  "narration.mp3",
		MusicURL:      "music.mp3",
		StoryboardURL: "board.png",
	})
	require.NoError(t, err)
	assert.Equal(t, "loud", updated.Heading)
	assert.Equal(t, "narration.mp3", updated.NarrationURL)

	reloaded, err := service.GetScene(context.Background(), scene.ID)
	require.NoError(t, err)
	assert.Equal(t, "music.mp3", reloaded.MusicURL)
}

func TestDeleteScene_RenumbersRemaining(t *testing.T) {
	service := setupTestService(t)
	project := createProject(t, service, "Renumber")

	var ids []uint
	for _, heading := range []string{"a", "b", "c"} {
		scene, err := service.AddScene(context.Background(), project.ID, SceneParams{Heading: heading})
		require.NoError(t, err)
		ids = append(ids, scene.ID)
	}

	require.NoError(t, service.DeleteScene(context.Background(), ids[0]))

	loaded, err := service.GetProject(context.Background(), project.ID)
	require.NoError(t, err)
	require.Len(t, loaded.Scenes, 2)
	assert.Equal(t, "b", loaded.Scenes[0].Heading)
	assert.Equal(t, 0, loaded.Scenes[0].Position)
	assert.Equal(t, "c", loaded.Scenes[1].Heading)
	assert.Equal(t, 1, loaded.Scenes[1].Position)
}

func TestDeleteScene_NotFound(t *testing.T) {
	service := setupTestService(t)
	assert.ErrorIs(t, service.DeleteScene(context.Background(), 7), ErrSceneNotFound)
}
