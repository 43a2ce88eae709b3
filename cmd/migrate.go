package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/JohnPitter/church-management-sub013/internal/legacy"
	"github.com/JohnPitter/church-management-sub013/internal/migration"
	"github.com/JohnPitter/church-management-sub013/internal/store"
)

var (
	inputFile    string
	mongoURI     string
	mongoDB      string
	dryRun       bool
	reportFile   string
	reportFormat string
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Migrate a legacy export into the current database",
	Long: `Migrate a legacy church-management export into the current database.

This command will:
- Validate the payload structure before starting
- Transform assistidos, membros and eventos to the current schema
- Deduplicate assistidos by CPF and membros by e-mail
- Continue past individual record failures and report them at the end`,
	Example: `  # Migrate a payload into MongoDB
  igreja-migrate migrate --input export.json --uri mongodb://localhost:27017 --database igreja

  # Dry run against an in-memory store
  igreja-migrate migrate --input export.json --dry-run

  # Save an audit report
  igreja-migrate migrate --input export.json --dry-run --report run.yaml --format yaml`,
	RunE: runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)

	migrateCmd.Flags().StringVarP(&inputFile, "input", "i", "", "Legacy export JSON file")
	migrateCmd.Flags().StringVar(&mongoURI, "uri", "", "MongoDB connection URI (or MONGODB_URI)")
	migrateCmd.Flags().StringVar(&mongoDB, "database", "", "MongoDB database name (or MONGODB_DATABASE)")
	migrateCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Run against an in-memory store without touching MongoDB")
	migrateCmd.Flags().StringVar(&reportFile, "report", "", "Write an audit report to this file")
	migrateCmd.Flags().StringVarP(&reportFormat, "format", "f", "json", "Report format (json, yaml)")

	migrateCmd.MarkFlagRequired("input")
}

func runMigrate(cmd *cobra.Command, args []string) error {
	payload, err := loadPayload(inputFile)
	if err != nil {
		return err
	}

	if validation := migration.ValidatePayload(payload); !validation.Valid {
		var msgs []string
		for _, e := range validation.Errors {
			msgs = append(msgs, e.Message)
		}
		return fmt.Errorf("invalid payload: %s", strings.Join(msgs, "; "))
	}

	ctx := context.Background()

	var st store.DocumentStore
	if dryRun {
		log.Info("Dry run: using in-memory store")
		st = store.NewMemory()
	} else {
		uri := mongoURI
		if uri == "" {
			uri = viper.GetString("MONGODB_URI")
		}
		database := mongoDB
		if database == "" {
			database = viper.GetString("MONGODB_DATABASE")
		}
		if uri == "" || database == "" {
			return fmt.Errorf("MongoDB URI and database are required (flags or MONGODB_URI / MONGODB_DATABASE)")
		}

		connectCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
		defer cancel()

		mongoStore, err := store.Connect(connectCtx, uri, database)
		if err != nil {
			return fmt.Errorf("failed to connect to store: %w", err)
		}
		defer func() {
			if err := mongoStore.Disconnect(ctx); err != nil {
				log.Warn("Failed to disconnect from store", "error", err)
			}
		}()
		st = mongoStore
	}

	log.Info("Starting legacy migration", "input", inputFile, "dryRun", dryRun)

	engine := migration.NewEngine(st)
	result, err := engine.Migrate(ctx, payload, logProgress)
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	reporter := migration.NewReporter(reportFormat)
	reporter.PrintSummary(result)

	if reportFile != "" {
		report := reporter.BuildReport(result)
		if err := reporter.SaveReport(report, reportFile); err != nil {
			return fmt.Errorf("failed to save report: %w", err)
		}
		log.Info("Saved migration report", "file", reportFile)
	}

	return nil
}

// logProgress streams collection progress to the log as the engine reports it.
func logProgress(progress []migration.Progress) {
	for _, p := range progress {
		if p.Status == migration.StatusProcessing {
			log.Info("Migrating collection",
				"collection", p.Collection,
				"processed", p.Processed,
				"total", p.Total,
				"errors", p.Errors)
		}
	}
}

// loadPayload reads and parses a legacy export file.
func loadPayload(path string) (*legacy.Payload, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read payload file: %w", err)
	}

	payload, err := legacy.ParsePayload(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse payload file %s: %w", path, err)
	}
	return payload, nil
}
