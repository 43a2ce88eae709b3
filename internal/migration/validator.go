package migration

import (
	"fmt"
	"strings"

	"github.com/JohnPitter/church-management-sub013/internal/legacy"
)

// ValidationResult contains the results of the pre-flight payload check.
type ValidationResult struct {
	Valid  bool
	Errors []ValidationError
}

// ValidationError represents a single structural problem with the payload.
type ValidationError struct {
	Field   string
	Message string
}

// ValidatePayload performs the structural pre-flight check: the payload must
// exist and contain at least one recognized legacy collection. Record shapes
// are not checked here; transform-time defaulting handles those.
func ValidatePayload(payload *legacy.Payload) *ValidationResult {
	result := &ValidationResult{Valid: true}

	if payload == nil {
		result.addError("", "payload must be a non-null object")
		return result
	}

	if payload.Assistidos == nil && payload.Membros == nil && payload.Eventos == nil {
		result.addError("", fmt.Sprintf(
			"payload contains none of the recognized collections (%s)",
			strings.Join([]string{legacy.KeyAssistidos, legacy.KeyMembros, legacy.KeyEventos}, ", ")))
	}

	return result
}

func (r *ValidationResult) addError(field, message string) {
	r.Errors = append(r.Errors, ValidationError{Field: field, Message: message})
	r.Valid = false
}
