package migration

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// Reporter renders migration results for the console and for audit files.
type Reporter struct {
	outputFormat string // json or yaml
}

// NewReporter creates a reporter for the given output format.
func NewReporter(format string) *Reporter {
	return &Reporter{outputFormat: format}
}

// Report is the persisted audit record of one migration run.
type Report struct {
	GeneratedAt time.Time  `json:"generatedAt" yaml:"generatedAt"`
	Success     bool       `json:"success" yaml:"success"`
	Total       int        `json:"totalRecords" yaml:"totalRecords"`
	Migrated    int        `json:"migratedRecords" yaml:"migratedRecords"`
	Errors      int        `json:"errors" yaml:"errors"`
	Duration    string     `json:"duration" yaml:"duration"`
	Collections []Progress `json:"collections" yaml:"collections"`
}

// BuildReport converts a run result into its audit report.
func (r *Reporter) BuildReport(result *Result) *Report {
	return &Report{
		GeneratedAt: time.Now(),
		Success:     result.Success,
		Total:       result.TotalRecords,
		Migrated:    result.MigratedRecords,
		Errors:      result.Errors,
		Duration:    result.Duration.String(),
		Collections: result.Collections,
	}
}

// SaveReport writes the report to a file in the configured format.
func (r *Reporter) SaveReport(report *Report, outputPath string) error {
	var data []byte
	var err error

	switch r.outputFormat {
	case "json":
		data, err = json.MarshalIndent(report, "", "  ")
	case "yaml":
		data, err = yaml.Marshal(report)
	default:
		return fmt.Errorf("unsupported output format: %s", r.outputFormat)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	dir := filepath.Dir(outputPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	if err := os.WriteFile(outputPath, data, 0o600); err != nil {
		return fmt.Errorf("failed to write report file: %w", err)
	}
	return nil
}

// PrintSummary prints a colorful run summary to the console.
func (r *Reporter) PrintSummary(result *Result) {
	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#7D56F4"))

	successStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#50FA7B"))

	errorStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FF5F87"))

	fmt.Println()
	fmt.Println(headerStyle.Render("📦 Migração de Dados Legados"))
	fmt.Println("==========================")

	fmt.Printf("Duration: %s\n", result.Duration)
	fmt.Printf("Total Records: %d\n", result.TotalRecords)
	fmt.Printf("%s Migrated: %d\n", successStyle.Render("✅"), result.MigratedRecords)
	if result.Errors > 0 {
		fmt.Printf("%s Errors: %d\n", errorStyle.Render("❌"), result.Errors)
	}

	for _, p := range result.Collections {
		fmt.Println()
		fmt.Printf("%s (%s)\n", headerStyle.Render(p.Collection), p.Status)
		fmt.Printf("  Processed: %d/%d\n", p.Processed, p.Total)
		for _, msg := range p.ErrorMessages {
			fmt.Printf("  • %s\n", msg)
		}
	}
}
