package workers

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/sceneflow/sceneflow-api/internal/models"
	"github.com/sceneflow/sceneflow-api/internal/services/jobs"
	"github.com/sceneflow/sceneflow-api/internal/services/render"
	"github.com/sceneflow/sceneflow-api/internal/services/scenes"
)

// RenderSpecProcessor handles render spec export jobs: it assembles the
// renderer job spec for a project and writes it to the export directory
// for the external renderer to pick up.
type RenderSpecProcessor struct {
	jobService   jobs.Service
	sceneService scenes.SceneService
	builder      *render.Builder
	exportDir    string
}

// NewRenderSpecProcessor creates a render spec processor
func NewRenderSpecProcessor(jobService jobs.Service, sceneService scenes.SceneService, builder *render.Builder, exportDir string) *RenderSpecProcessor {
	return &RenderSpecProcessor{
		jobService:   jobService,
		sceneService: sceneService,
		builder:      builder,
		exportDir:    exportDir,
	}
}

// CanProcess returns true for render spec export jobs
func (p *RenderSpecProcessor) CanProcess(jobType models.JobType) bool {
	return jobType == models.JobTypeRenderSpecExport
}

// ProcessJob builds and exports the render spec described by the job
// payload
func (p *RenderSpecProcessor) ProcessJob(ctx context.Context, job *models.Job) error {
	projectID, ok := job.GetPayloadUint("project_id")
	if !ok {
		return fmt.Errorf("job %d has no project_id in payload", job.ID)
	}

	log.Printf("[DEBUG] Exporting render spec for project %d (job %d)", projectID, job.ID)

	if err := p.jobService.UpdateProgress(ctx, job.ID, 10); err != nil {
		log.Printf("[DEBUG] Failed to update progress for job %d: %v", job.ID, err)
	}

	project, err := p.sceneService.GetProject(ctx, projectID)
	if err != nil {
		return fmt.Errorf("loading project %d: %w", projectID, err)
	}

	if err := p.jobService.UpdateProgress(ctx, job.ID, 40); err != nil {
		log.Printf("[DEBUG] Failed to update progress for job %d: %v", job.ID, err)
	}

	jobID := fmt.Sprintf("%d", job.ID)
	spec, err := p.builder.BuildJobSpec(project, jobID)
	if err != nil {
		return fmt.Errorf("building render spec: %w", err)
	}

	if err := p.jobService.UpdateProgress(ctx, job.ID, 70); err != nil {
		log.Printf("[DEBUG] Failed to update progress for job %d: %v", job.ID, err)
	}

	specPath, err := p.writeSpec(spec, jobID)
	if err != nil {
		return err
	}

	result := models.JobResult{
		"spec_path":      specPath,
		"render_mode":    string(spec.RenderMode),
		"output_path":    spec.OutputPath,
		"video_segments": len(spec.VideoSegments),
		"image_segments": len(spec.Segments),
		"audio_clips":    len(spec.AudioClips),
		"duration":       spec.TotalDuration(),
	}

	if err := p.jobService.CompleteJob(ctx, job.ID, result); err != nil {
		return fmt.Errorf("completing job %d: %w", job.ID, err)
	}

	log.Printf("[DEBUG] Render spec for project %d written to %s", projectID, specPath)
	return nil
}

// writeSpec serializes the job spec to <exportDir>/<jobID>.json
func (p *RenderSpecProcessor) writeSpec(spec *render.JobSpec, jobID string) (string, error) {
	if err := os.MkdirAll(p.exportDir, 0o755); err != nil {
		return "", fmt.Errorf("creating export directory: %w", err)
	}

	data, err := json.MarshalIndent(spec, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding render spec: %w", err)
	}

	specPath := filepath.Join(p.exportDir, jobID+".json")
	if err := os.WriteFile(specPath, data, 0o644); err != nil {
		return "", fmt.Errorf("writing render spec: %w", err)
	}

	return specPath, nil
}
