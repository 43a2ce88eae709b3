package cmd

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/JohnPitter/church-management-sub013/internal/analyzer"
)

var (
	analyzeInput  string
	analyzeFormat string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a legacy export before migrating",
	Long: `Analyze a legacy church-management export to understand what a
migration run would do.

This command will report:
- Record counts per collection
- Records without a natural key (CPF / e-mail) that always insert
- Dates that will not parse and migrate without a date`,
	Example: `  # Analyze a payload
  igreja-migrate analyze --input export.json

  # Analyze with JSON output
  igreja-migrate analyze --input export.json --format json`,
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVarP(&analyzeInput, "input", "i", "", "Legacy export JSON file")
	analyzeCmd.Flags().StringVarP(&analyzeFormat, "format", "f", "table", "Output format (table, json, yaml)")

	analyzeCmd.MarkFlagRequired("input")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	log.Info("Starting legacy payload analysis", "input", analyzeInput)

	payload, err := loadPayload(analyzeInput)
	if err != nil {
		return err
	}

	result, err := analyzer.New().Analyze(payload)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	switch analyzeFormat {
	case "json":
		return result.OutputJSON()
	case "yaml":
		return result.OutputYAML()
	default:
		return result.OutputTable()
	}
}
