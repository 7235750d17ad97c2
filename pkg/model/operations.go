// pkg/model/operations.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Operation represents a single data cleaning action
type Operation struct {
	Stage     string // Pipeline stage that performed the action
	Column    string // Column that was changed
	Action    string // Type of cleaning performed (e.g., "median_imputation")
	Detail    string // Human-readable detail (e.g., the fill value)
	CellCount int    // Number of cells affected
}

// Report summarizes a single pipeline run
type Report struct {
	RunID       string         // Unique run identifier
	Rows        int            // Row count of the input table
	Columns     int            // Column count of the input table
	NullsBefore map[string]int // Per-column null counts before any mutation
	Operations  []Operation    // Cleaning actions in the order performed
	StartTime   time.Time
	EndTime     time.Time
}

// NewReport creates a report for a new pipeline run
func NewReport() *Report {
	return &Report{
		RunID:       uuid.New().String(),
		NullsBefore: make(map[string]int),
		Operations:  make([]Operation, 0),
		StartTime:   time.Now(),
	}
}

// Record appends an operation to the report
func (r *Report) Record(op Operation) {
	r.Operations = append(r.Operations, op)
}

// Complete marks the run as finished
func (r *Report) Complete() {
	r.EndTime = time.Now()
}

// Duration returns the total duration of the run
func (r *Report) Duration() time.Duration {
	if r.EndTime.IsZero() {
		return time.Since(r.StartTime)
	}
	return r.EndTime.Sub(r.StartTime)
}

// CellsChanged returns the total number of cells touched across all operations
func (r *Report) CellsChanged() int {
	total := 0
	for _, op := range r.Operations {
		total += op.CellCount
	}
	return total
}
