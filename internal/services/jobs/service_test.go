package jobs

import (
	"context"
	"errors"
	"testing"

	"github.com/sceneflow/sceneflow-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupJobService(t *testing.T) Service {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Job{}))

	return NewService(NewRepository(db))
}

func TestEnqueueAndClaimJob(t *testing.T) {
	service := setupJobService(t)
	ctx := context.Background()

	job, err := service.EnqueueJob(ctx, models.JobTypeRenderSpecExport, models.JobPayload{"project_id": 1})
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusPending, job.Status)
	assert.Equal(t, DefaultMaxRetries, job.MaxRetries)

	claimed, err := service.ClaimNextJob(ctx, "worker-1", []models.JobType{models.JobTypeRenderSpecExport})
	require.NoError(t, err)
	assert.Equal(t, job.ID, claimed.ID)
	assert.Equal(t, models.JobStatusProcessing, claimed.Status)
	assert.Equal(t, "worker-1", claimed.WorkerID)
	assert.NotNil(t, claimed.StartedAt)

	// Nothing left to claim
	_, err = service.ClaimNextJob(ctx, "worker-2", nil)
	assert.ErrorIs(t, err, ErrNoJobsAvailable)
}

func TestClaimRespectsPriority(t *testing.T) {
	service := setupJobService(t)
	ctx := context.Background()

	low, err := service.EnqueueJob(ctx, models.JobTypeRenderSpecExport, models.JobPayload{"project_id": 1})
	require.NoError(t, err)
	high, err := service.EnqueueJob(ctx, models.JobTypeRenderSpecExport, models.JobPayload{"project_id": 2}, WithPriority(5))
	require.NoError(t, err)

	claimed, err := service.ClaimNextJob(ctx, "worker-1", nil)
	require.NoError(t, err)
	assert.Equal(t, high.ID, claimed.ID)

	claimed, err = service.ClaimNextJob(ctx, "worker-1", nil)
	require.NoError(t, err)
	assert.Equal(t, low.ID, claimed.ID)
}

func TestEnqueueUniqueJob_ReusesActiveJob(t *testing.T) {
	service := setupJobService(t)
	ctx := context.Background()

	payload := models.JobPayload{"project_id": 9}
	first, err := service.EnqueueUniqueJob(ctx, models.JobTypeRenderSpecExport, payload, "project_id")
	require.NoError(t, err)

	second, err := service.EnqueueUniqueJob(ctx, models.JobTypeRenderSpecExport, payload, "project_id")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	// A terminal job no longer blocks a fresh enqueue
	require.NoError(t, service.CompleteJob(ctx, first.ID, models.JobResult{"path": "out.json"}))
	third, err := service.EnqueueUniqueJob(ctx, models.JobTypeRenderSpecExport, payload, "project_id")
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, third.ID)
}

func TestCompleteJob(t *testing.T) {
	service := setupJobService(t)
	ctx := context.Background()

	job, err := service.EnqueueJob(ctx, models.JobTypeRenderSpecExport, models.JobPayload{"project_id": 3})
	require.NoError(t, err)
	_, err = service.ClaimNextJob(ctx, "worker-1", nil)
	require.NoError(t, err)

	require.NoError(t, service.CompleteJob(ctx, job.ID, models.JobResult{"spec_path": "renders/3.json"}))

	done, err := service.GetJob(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusCompleted, done.Status)
	assert.Equal(t, 100, done.Progress)
	assert.Equal(t, "renders/3.json", done.Result["spec_path"])
	assert.NotNil(t, done.CompletedAt)
}

func TestFailJob_RetriesThenPermanentFailure(t *testing.T) {
	service := setupJobService(t)
	ctx := context.Background()

	job, err := service.EnqueueJob(ctx, models.JobTypeRenderSpecExport, models.JobPayload{"project_id": 4}, WithMaxRetries(1))
	require.NoError(t, err)

	_, err = service.ClaimNextJob(ctx, "worker-1", nil)
	require.NoError(t, err)
	require.NoError(t, service.FailJob(ctx, job.ID, errors.New("transient failure")))

	status, err := service.GetJobStatus(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusFailed, status)

	// The retry claim bumps retry_count to max; the next failure is final
	_, err = service.ClaimNextJob(ctx, "worker-1", nil)
	require.NoError(t, err)
	require.NoError(t, service.FailJob(ctx, job.ID, errors.New("still failing")))

	failed, err := service.GetJob(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusPermanentlyFailed, failed.Status)
	assert.Equal(t, "still failing", failed.Error)

	_, err = service.ClaimNextJob(ctx, "worker-1", nil)
	assert.ErrorIs(t, err, ErrNoJobsAvailable)
}

func TestReleaseJob(t *testing.T) {
	service := setupJobService(t)
	ctx := context.Background()

	job, err := service.EnqueueJob(ctx, models.JobTypeRenderSpecExport, models.JobPayload{"project_id": 5})
	require.NoError(t, err)
	_, err = service.ClaimNextJob(ctx, "worker-1", nil)
	require.NoError(t, err)

	require.NoError(t, service.ReleaseJob(ctx, job.ID))

	status, err := service.GetJobStatus(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusPending, status)
}

func TestGetJobForProject(t *testing.T) {
	service := setupJobService(t)
	ctx := context.Background()

	_, err := service.GetJobForProject(ctx, models.JobTypeRenderSpecExport, 12)
	assert.ErrorIs(t, err, ErrJobNotFound)

	job, err := service.EnqueueJob(ctx, models.JobTypeRenderSpecExport, models.JobPayload{"project_id": 12})
	require.NoError(t, err)

	found, err := service.GetJobForProject(ctx, models.JobTypeRenderSpecExport, 12)
	require.NoError(t, err)
	assert.Equal(t, job.ID, found.ID)
}
