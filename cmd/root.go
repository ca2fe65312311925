package cmd

import (
	"fmt"
	"os"

	"github.com/sceneflow/sceneflow-api/pkg/config"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "sceneflow-api",
	Short: "SceneFlow API server",
	Long: `SceneFlow API - A scene timeline editing and playback planning API

This API manages video projects as ordered scene lists, each scene
carrying a clip timeline plus narration, music, and dialogue audio.

Features:
  • Project and scene management
  • Contiguous clip timeline editing (append, reorder, trim, remove)
  • Playback plan resolution with storyboard fallback
  • Render spec export for the ffmpeg render pipeline`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// NewRootCmd creates a new root command (exported for testing)
func NewRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	cobra.OnInitialize(loadConfig)

	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("json-logs", false, "enable JSON formatted logs")
}

// loadConfig loads the configuration when a command needs it.
// Version and help don't touch config, so they skip it.
func loadConfig() {
	cmd, _, _ := rootCmd.Find(os.Args[1:])
	if cmd != nil && (cmd.Name() == "version" || cmd.Name() == "help") {
		return
	}

	if err := config.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing config: %v\n", err)
		os.Exit(1)
	}
}
