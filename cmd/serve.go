package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/sceneflow/sceneflow-api/api"
	"github.com/sceneflow/sceneflow-api/api/types"
	"github.com/sceneflow/sceneflow-api/internal/database"
	"github.com/sceneflow/sceneflow-api/internal/models"
	"github.com/sceneflow/sceneflow-api/internal/services/jobs"
	"github.com/sceneflow/sceneflow-api/internal/services/playback"
	"github.com/sceneflow/sceneflow-api/internal/services/render"
	"github.com/sceneflow/sceneflow-api/internal/services/scenes"
	"github.com/sceneflow/sceneflow-api/internal/services/timeline"
	"github.com/sceneflow/sceneflow-api/internal/services/workers"
	"github.com/sceneflow/sceneflow-api/pkg/config"
)

var (
	serverHost string
	serverPort int
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long: `Start the SceneFlow API server with the configured settings.

The server handles project and scene management, timeline editing,
playback plan resolution, and render spec export jobs.

Example:
  sceneflow-api serve
  sceneflow-api serve --port 9090
  sceneflow-api serve --host 0.0.0.0 --port 8080`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serverHost, "host", "", "server host (overrides config)")
	serveCmd.Flags().IntVar(&serverPort, "port", 0, "server port (overrides config)")
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if serverHost == "" {
		serverHost = cfg.Server.Host
	}
	if serverPort == 0 {
		serverPort = cfg.Server.Port
	}

	db, err := database.Initialize(cfg.Database)
	if err != nil {
		return fmt.Errorf("initializing database: %w", err)
	}
	defer func() { _ = db.Close() }()

	if err := db.AutoMigrate(models.AllModels()...); err != nil {
		return fmt.Errorf("migrating database: %w", err)
	}

	sceneService := scenes.NewService(scenes.NewRepository(db.DB))
	timelineService := timeline.NewService(db.DB)
	jobService := jobs.NewService(jobs.NewRepository(db.DB))
	planBuilder := playback.NewPlanBuilder(cfg.Playback.ImageSegmentDuration)
	specBuilder := render.NewBuilder(planBuilder, cfg.Render.Resolution, cfg.Render.FPS)

	workerPool := workers.NewWorkerPool(jobService, cfg.Processing.Workers, cfg.Processing.PollInterval)
	workerPool.RegisterProcessor(workers.NewRenderSpecProcessor(jobService, sceneService, specBuilder, cfg.Storage.ExportDir))

	workerCtx, cancelWorkers := context.WithCancel(context.Background())
	defer cancelWorkers()

	if err := workerPool.Start(workerCtx); err != nil {
		return fmt.Errorf("starting worker pool: %w", err)
	}
	defer workerPool.Stop()

	server := api.NewServer(fmt.Sprintf("%s:%d", serverHost, serverPort))
	server.SetDependencies(&types.Dependencies{
		DB:              db,
		SceneService:    sceneService,
		TimelineService: timelineService,
		JobService:      jobService,
		WorkerPool:      workerPool,
		PlanBuilder:     planBuilder,
	})

	if err := server.Initialize(); err != nil {
		return fmt.Errorf("initializing server: %w", err)
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			serverErr <- fmt.Errorf("server error: %w", err)
		}
	}()

	fmt.Printf("SceneFlow API listening on %s:%d\n", serverHost, serverPort)

	select {
	case <-stop:
		fmt.Println("\nShutting down server...")
	case err := <-serverErr:
		fmt.Fprintf(os.Stderr, "\n%v\n", err)
		fmt.Println("Shutting down server...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Server forced to shutdown: %v\n", err)
		return err
	}

	fmt.Println("Server gracefully stopped")
	return nil
}
