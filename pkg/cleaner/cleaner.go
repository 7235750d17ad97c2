// pkg/cleaner/cleaner.go
package cleaner

import (
	"errors"
	"fmt"

	"github.com/go-gota/gota/dataframe"
	"go.uber.org/zap"

	"hrprep/pkg/diag"
	"hrprep/pkg/loader"
	"hrprep/pkg/model"
)

// Options configures a TableCleaner
type Options struct {
	// NullMarkers are the raw cell values treated as absent.
	// Empty falls back to model.DefaultNullMarkers.
	NullMarkers []string
}

// TableCleaner runs the cleaning pipeline over an HR employee dataset:
// load, impute, retype, encode, in that order, on a working copy of the
// input. The caller either gets a fully cleaned table or a typed error,
// never a partially cleaned one.
type TableCleaner struct {
	schema *model.Schema
	logger *zap.Logger
	sink   diag.Sink
	loader *loader.Loader
	nulls  model.NullSet
}

// New creates a new TableCleaner instance
func New(schema *model.Schema, logger *zap.Logger, sink diag.Sink, opts Options) (*TableCleaner, error) {
	if schema == nil {
		return nil, errors.New("schema cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if sink == nil {
		sink = diag.NewZapSink(logger)
	}

	ld, err := loader.NewLoader(schema, logger, sink, loader.Options{NullMarkers: opts.NullMarkers})
	if err != nil {
		return nil, fmt.Errorf("failed to create loader: %w", err)
	}

	return &TableCleaner{
		schema: schema,
		logger: logger,
		sink:   sink,
		loader: ld,
		nulls:  model.NewNullSet(opts.NullMarkers),
	}, nil
}

// Result is the outcome of a successful pipeline run
type Result struct {
	Table  dataframe.DataFrame // The cleaned table
	Report *model.Report       // What was done to produce it
}

// Clean loads the file at path and runs the full pipeline over it
func (tc *TableCleaner) Clean(path string) (*Result, error) {
	df, summary, err := tc.loader.Load(path)
	if err != nil {
		tc.logger.Error("Failed to load input table",
			zap.String("path", path),
			zap.Error(err))
		return nil, err
	}
	return tc.run(df, summary)
}

// CleanFrame runs the pipeline over a table the caller already holds.
// The input frame is never mutated: every stage rebuilds fresh columns,
// so the original stays observably unchanged.
func (tc *TableCleaner) CleanFrame(df dataframe.DataFrame) (*Result, error) {
	if df.Err != nil {
		return nil, &model.Error{Kind: model.KindMalformedInput, Stage: "load", Err: df.Err}
	}
	if df.Nrow() == 0 {
		return nil, &model.Error{
			Kind:  model.KindMalformedInput,
			Stage: "load",
			Err:   errors.New("table has no data rows"),
		}
	}
	if err := tc.schema.Validate(df.Names()); err != nil {
		return nil, &model.Error{Kind: model.KindMalformedInput, Stage: "load", Err: err}
	}
	return tc.run(df, tc.loader.Summarize(df))
}

func (tc *TableCleaner) run(df dataframe.DataFrame, summary *loader.Summary) (*Result, error) {
	report := model.NewReport()
	report.Rows = summary.Rows
	report.Columns = summary.Columns
	for name, count := range summary.NullCells {
		report.NullsBefore[name] = count
	}

	working := newWorkingTable(df)

	if err := tc.impute(working, report); err != nil {
		tc.logger.Error("Imputation failed", zap.Error(err))
		return nil, err
	}
	if err := tc.retype(working, report); err != nil {
		tc.logger.Error("Type coercion failed", zap.Error(err))
		return nil, err
	}
	tc.encode(working, report)

	out, err := working.frame()
	if err != nil {
		tc.logger.Error("Failed to assemble cleaned table", zap.Error(err))
		return nil, &model.Error{Kind: model.KindMalformedInput, Stage: "assemble", Err: err}
	}
	if err := tc.verify(out, report.Rows); err != nil {
		tc.logger.Error("Output verification failed", zap.Error(err))
		return nil, err
	}

	report.Complete()
	tc.sink.Emit(diag.Event{
		Stage:   "complete",
		Message: "pipeline complete",
		Fields: map[string]interface{}{
			"runID":      report.RunID,
			"rows":       out.Nrow(),
			"columns":    out.Ncol(),
			"operations": len(report.Operations),
			"duration":   report.Duration().String(),
		},
	})

	return &Result{Table: out, Report: report}, nil
}

func (tc *TableCleaner) countNulls(records []string) int {
	count := 0
	for _, rec := range records {
		if tc.nulls.Has(rec) {
			count++
		}
	}
	return count
}

func (tc *TableCleaner) fillNulls(c *column, fill string) {
	for i, rec := range c.records {
		if tc.nulls.Has(rec) {
			c.records[i] = fill
		}
	}
}
