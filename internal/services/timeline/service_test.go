package timeline

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

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.Project{}, &models.Scene{}, &models.Clip{}))

	return db
}

func seedScene(t *testing.T, db *gorm.DB, clips ...models.Clip) uint {
	t.Helper()

	project := models.Project{Title: "Test Project"}
	require.NoError(t, db.Create(&project).Error)

	scene := models.Scene{ProjectID: project.ID, Position: 0, Heading: "Scene 1"}
	require.NoError(t, db.Create(&scene).Error)

	for i := range clips {
		clips[i].SceneID = scene.ID
		clips[i].Position = i
	}
	if len(clips) > 0 {
		require.NoError(t, db.Create(&clips).Error)
	}

	return scene.ID
}

func TestService_GetTimeline(t *testing.T) {
	db := setupTestDB(t)
	sceneID := seedScene(t, db,
		clipWithRange("a", 0, 5),
		clipWithRange("b", 2, 4),
	)

	service := NewService(db)

	clips, err := service.GetTimeline(context.Background(), sceneID)
	require.NoError(t, err)
	require.Len(t, clips, 2)
	assert.InDelta(t, 0, clips[0].StartTime, 0.001)
	assert.InDelta(t, 5, clips[1].StartTime, 0.001)
}

func TestService_GetTimeline_SceneNotFound(t *testing.T) {
	db := setupTestDB(t)
	service := NewService(db)

	_, err := service.GetTimeline(context.Background(), 999)
	assert.ErrorIs(t, err, ErrSceneNotFound)
}

func TestService_AppendClip(t *testing.T) {
	db := setupTestDB(t)
	sceneID := seedScene(t, db, clipWithRange("a", 0, 5))
	service := NewService(db)

	clips, err := service.AppendClip(context.Background(), sceneID, AppendClipParams{
		SourceURL:      "https://cdn.example.com/b.mp4",
		SourceInPoint:  2,
		SourceOutPoint: 6,
		Label:          "B-roll",
	})
	require.NoError(t, err)
	require.Len(t, clips, 2)

	assert.NotEmpty(t, clips[1].AssetID, "appended clip gets an asset ID")
	assert.InDelta(t, 5, clips[1].StartTime, 0.001)
	assert.InDelta(t, 4, clips[1].TimelineDuration, 0.001)

	// Persisted
	var stored []models.Clip
	require.NoError(t, db.Where("scene_id = ?", sceneID).Order("position ASC").Find(&stored).Error)
	require.Len(t, stored, 2)
	assert.Equal(t, "B-roll", stored[1].Label)
}

func TestService_AppendClip_RequiresSourceURL(t *testing.T) {
	db := setupTestDB(t)
	sceneID := seedScene(t, db)
	service := NewService(db)

	_, err := service.AppendClip(context.Background(), sceneID, AppendClipParams{})
	assert.Error(t, err)
}

func TestService_ReorderClip_RoundTrip(t *testing.T) {
	db := setupTestDB(t)
	sceneID := seedScene(t, db,
		clipWithRange("a", 0, 5),
		clipWithRange("b", 2, 4),
		clipWithRange("c", 10, 20),
	)
	service := NewService(db)

	clips, err := service.ReorderClip(context.Background(), sceneID, "c", 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "a", "b"}, assetIDs(clips))

	// Reload from storage and confirm order survived
	reloaded, err := service.GetTimeline(context.Background(), sceneID)
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "a", "b"}, assetIDs(reloaded))
	assert.InDelta(t, 0, reloaded[0].StartTime, 0.001)
	assert.InDelta(t, 10, reloaded[1].StartTime, 0.001)
	assert.InDelta(t, 15, reloaded[2].StartTime, 0.001)
}

func TestService_TrimClip(t *testing.T) {
	db := setupTestDB(t)
	sceneID := seedScene(t, db, clipWithRange("a", 0, 5), clipWithRange("b", 0, 3))
	service := NewService(db)

	clips, err := service.TrimClip(context.Background(), sceneID, "a", TrimFieldOut, 8)
	require.NoError(t, err)
	assert.InDelta(t, 8, clips[0].SourceOutPoint, 0.001)
	assert.InDelta(t, 8, clips[1].StartTime, 0.001)
}

func TestService_TrimClip_UnknownField(t *testing.T) {
	db := setupTestDB(t)
	sceneID := seedScene(t, db, clipWithRange("a", 0, 5))
	service := NewService(db)

	_, err := service.TrimClip(context.Background(), sceneID, "a", "bogus", 1)
	assert.Error(t, err)
}

func TestService_RemoveClip(t *testing.T) {
	db := setupTestDB(t)
	sceneID := seedScene(t, db,
		clipWithRange("a", 0, 5),
		clipWithRange("b", 2, 4),
	)
	service := NewService(db)

	clips, err := service.RemoveClip(context.Background(), sceneID, "a")
	require.NoError(t, err)
	require.Len(t, clips, 1)
	assert.Equal(t, "b", clips[0].AssetID)
	assert.InDelta(t, 0, clips[0].StartTime, 0.001)

	var count int64
	require.NoError(t, db.Model(&models.Clip{}).Where("scene_id = ?", sceneID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestService_RemoveClip_NotFound(t *testing.T) {
	db := setupTestDB(t)
	sceneID := seedScene(t, db, clipWithRange("a", 0, 5))
	service := NewService(db)

	_, err := service.RemoveClip(context.Background(), sceneID, "missing")
	assert.ErrorIs(t, err, ErrClipNotFound)
}
