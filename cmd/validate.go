package cmd

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/JohnPitter/church-management-sub013/internal/migration"
)

var validateInput string

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a legacy export file",
	Long: `Check that a legacy export is structurally usable before migrating:
the payload must be a JSON object containing at least one of the recognized
collections (assistidos, membros, eventos).

Individual record shapes are not checked; missing record fields default
during migration instead of failing it.`,
	Example: `  igreja-migrate validate --input export.json`,
	RunE:    runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringVarP(&validateInput, "input", "i", "", "Legacy export JSON file")
	validateCmd.MarkFlagRequired("input")
}

func runValidate(cmd *cobra.Command, args []string) error {
	payload, err := loadPayload(validateInput)
	if err != nil {
		return err
	}

	result := migration.ValidatePayload(payload)
	if !result.Valid {
		for _, e := range result.Errors {
			log.Error("Validation error", "field", e.Field, "message", e.Message)
		}
		return fmt.Errorf("payload is not valid")
	}

	log.Info("Payload is valid", "file", validateInput)
	return nil
}
