package migration

import "time"

// Status is the lifecycle state of one collection's migration.
type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusError      Status = "error"
)

// Progress tracks one legacy collection through a run. It is mutated only by
// the engine while that collection is being processed; callbacks and results
// receive copies.
type Progress struct {
	Collection    string   `json:"collection" yaml:"collection"`
	Total         int      `json:"total" yaml:"total"`
	Processed     int      `json:"processed" yaml:"processed"`
	Errors        int      `json:"errors" yaml:"errors"`
	Status        Status   `json:"status" yaml:"status"`
	ErrorMessages []string `json:"errorMessages,omitempty" yaml:"errorMessages,omitempty"`
}

// Result is the aggregate outcome of a whole migration run.
type Result struct {
	Success         bool          `json:"success" yaml:"success"`
	TotalRecords    int           `json:"totalRecords" yaml:"totalRecords"`
	MigratedRecords int           `json:"migratedRecords" yaml:"migratedRecords"`
	Errors          int           `json:"errors" yaml:"errors"`
	Collections     []Progress    `json:"collections" yaml:"collections"`
	Duration        time.Duration `json:"duration" yaml:"duration"`
}

// ProgressFunc receives a snapshot of all collection progress: at collection
// start, every progressInterval processed records, and at collection end.
// The slice and its contents are copies the callback may retain.
type ProgressFunc func([]Progress)

// outcome is the result of migrating a single record.
type outcome int

const (
	outcomeCreated outcome = iota
	outcomeUpdated
)
