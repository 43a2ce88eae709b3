package analyzer

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/JohnPitter/church-management-sub013/internal/legacy"
	"github.com/JohnPitter/church-management-sub013/internal/migration"
)

// Analyzer inspects a legacy export before migration and reports what a run
// would do: how many records each collection holds, which records lack their
// natural key (and will therefore always insert), and which dates will not
// parse.
type Analyzer struct{}

// Result is the outcome of a payload pre-flight analysis.
type Result struct {
	Collections []CollectionInfo `json:"collections" yaml:"collections"`
	Issues      []string         `json:"issues,omitempty" yaml:"issues,omitempty"`
}

// CollectionInfo summarizes one legacy collection.
type CollectionInfo struct {
	Name              string `json:"name" yaml:"name"`
	Records           int    `json:"records" yaml:"records"`
	MissingNaturalKey int    `json:"missingNaturalKey" yaml:"missingNaturalKey"`
	UnparseableDates  int    `json:"unparseableDates" yaml:"unparseableDates"`
}

// New creates a payload analyzer.
func New() *Analyzer {
	return &Analyzer{}
}

// Analyze builds the pre-flight report for a parsed payload.
func (a *Analyzer) Analyze(payload *legacy.Payload) (*Result, error) {
	if payload == nil {
		return nil, fmt.Errorf("payload is nil")
	}

	log.Debug("Analyzing legacy payload")

	result := &Result{Collections: []CollectionInfo{}}

	if payload.Assistidos != nil {
		info := analyzeCollection(legacy.KeyAssistidos, payload.Assistidos, "cpf", "dataNascimento")
		result.Collections = append(result.Collections, info)
	}
	if payload.Membros != nil {
		info := analyzeCollection(legacy.KeyMembros, payload.Membros, "email", "dataNascimento")
		result.Collections = append(result.Collections, info)
	}
	if payload.Eventos != nil {
		// Events have no natural key: every record inserts.
		info := analyzeCollection(legacy.KeyEventos, payload.Eventos, "", "dataEvento")
		result.Collections = append(result.Collections, info)
	}

	if len(result.Collections) == 0 {
		result.Issues = append(result.Issues, "payload contains no recognized legacy collections")
	}
	for _, info := range result.Collections {
		if info.MissingNaturalKey > 0 {
			result.Issues = append(result.Issues, fmt.Sprintf(
				"%d %s record(s) lack their natural key and will always create new documents on re-runs",
				info.MissingNaturalKey, info.Name))
		}
		if info.UnparseableDates > 0 {
			result.Issues = append(result.Issues, fmt.Sprintf(
				"%d %s record(s) have dates that will not parse and migrate without a date",
				info.UnparseableDates, info.Name))
		}
	}

	return result, nil
}

func analyzeCollection(name string, col *legacy.Collection, keyField, dateField string) CollectionInfo {
	info := CollectionInfo{Name: name, Records: col.Len()}

	for _, entry := range col.Entries() {
		if keyField != "" && entry.Record.String(keyField) == "" {
			info.MissingNaturalKey++
		}
		if raw := entry.Record.String(dateField); raw != "" {
			if _, ok := migration.ParseLegacyDate(raw); !ok {
				info.UnparseableDates++
			}
		}
	}
	return info
}

// OutputTable prints the analysis as a styled console table.
func (r *Result) OutputTable() error {
	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#7D56F4"))

	warningStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FFB86C"))

	fmt.Println(headerStyle.Render("🔍 Legacy Payload Analysis"))
	fmt.Println(strings.Repeat("=", 50))
	fmt.Println()

	for _, info := range r.Collections {
		fmt.Printf("%s\n", headerStyle.Render(info.Name))
		fmt.Printf("  • %d records\n", info.Records)
		if info.MissingNaturalKey > 0 {
			fmt.Printf("  • %d without natural key\n", info.MissingNaturalKey)
		}
		if info.UnparseableDates > 0 {
			fmt.Printf("  • %d with unparseable dates\n", info.UnparseableDates)
		}
		fmt.Println()
	}

	if len(r.Issues) > 0 {
		fmt.Println(warningStyle.Render("⚠️  Issues"))
		for _, issue := range r.Issues {
			fmt.Printf("  • %s\n", issue)
		}
	}

	return nil
}

// OutputJSON prints the analysis as JSON.
func (r *Result) OutputJSON() error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("failed to encode analysis: %w", err)
	}
	return nil
}

// OutputYAML prints the analysis as YAML.
func (r *Result) OutputYAML() error {
	data, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to encode analysis: %w", err)
	}
	fmt.Print(string(data))
	return nil
}
