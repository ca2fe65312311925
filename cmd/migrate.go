package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sceneflow/sceneflow-api/internal/database"
	"github.com/sceneflow/sceneflow-api/internal/models"
	"github.com/sceneflow/sceneflow-api/pkg/config"
)

// migrateCmd represents the migrate command
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations",
	Long: `Manage the SceneFlow API database schema.

Schema changes are applied with GORM's auto-migration: tables and
columns for every registered model are created or extended in place.
Columns are never dropped.

Available subcommands:
  up      - Apply the schema for all registered models
  status  - Show which model tables exist`,
}

// migrateUpCmd applies the schema
var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply the schema for all registered models",
	Long: `Create or extend tables for every registered model.

This brings the database schema up to date with the current build.
It is safe to run repeatedly.`,
	RunE: runMigrateUp,
}

// migrateStatusCmd shows which model tables exist
var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show migration status",
	Long:  `Display which model tables exist in the configured database.`,
	RunE:  runMigrateStatus,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.AddCommand(migrateUpCmd)
	migrateCmd.AddCommand(migrateStatusCmd)
}

func runMigrateUp(cmd *cobra.Command, args []string) error {
	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	db, err := database.Initialize(cfg.Database)
	if err != nil {
		return fmt.Errorf("initializing database: %w", err)
	}
	defer func() { _ = db.Close() }()

	fmt.Fprintf(cmd.OutOrStdout(), "Migrating %s\n", cfg.Database.Path)

	if err := db.AutoMigrate(models.AllModels()...); err != nil {
		return fmt.Errorf("migrating database: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Migration complete")
	return nil
}

func runMigrateStatus(cmd *cobra.Command, args []string) error {
	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	db, err := database.Initialize(cfg.Database)
	if err != nil {
		return fmt.Errorf("initializing database: %w", err)
	}
	defer func() { _ = db.Close() }()

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Database Migration Status")
	fmt.Fprintln(out, strings.Repeat("=", 40))
	fmt.Fprintf(out, "Database: %s\n\n", cfg.Database.Path)

	for _, model := range models.AllModels() {
		exists := db.DB.Migrator().HasTable(model)
		state := "missing"
		if exists {
			state = "present"
		}
		stmt := db.DB.Model(model).Statement
		if err := stmt.Parse(model); err != nil {
			return fmt.Errorf("parsing model: %w", err)
		}
		fmt.Fprintf(out, "  %-16s %s\n", stmt.Schema.Table, state)
	}

	return nil
}
