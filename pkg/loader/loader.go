// pkg/loader/loader.go
package loader

import (
	"errors"
	"os"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"go.uber.org/zap"

	"hrprep/pkg/diag"
	"hrprep/pkg/model"
)

// Options controls how the input file is interpreted
type Options struct {
	// NullMarkers are the raw cell values treated as absent.
	// Empty falls back to model.DefaultNullMarkers.
	NullMarkers []string
}

// Summary describes the table before any mutation
type Summary struct {
	Rows      int
	Columns   int
	NullCells map[string]int // column name -> null cell count
}

// TotalNulls returns the number of null cells across all columns
func (s *Summary) TotalNulls() int {
	total := 0
	for _, count := range s.NullCells {
		total += count
	}
	return total
}

// Loader reads delimited-text files into raw dataframes
type Loader struct {
	schema *model.Schema
	logger *zap.Logger
	sink   diag.Sink
	nulls  model.NullSet
}

// NewLoader creates a new Loader instance
func NewLoader(schema *model.Schema, logger *zap.Logger, sink diag.Sink, opts Options) (*Loader, error) {
	if schema == nil {
		return nil, errors.New("schema cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if sink == nil {
		sink = diag.Nop()
	}

	return &Loader{
		schema: schema,
		logger: logger,
		sink:   sink,
		nulls:  model.NewNullSet(opts.NullMarkers),
	}, nil
}

// Load reads the comma-separated file at path into a raw dataframe and
// emits a pre-mutation summary. Every column is loaded as raw text;
// nullness is judged against the configured null markers rather than
// the dataframe's own NaN handling, so original cell values survive
// verbatim until a later stage retypes them. The file handle is
// released as soon as parsing finishes, on every exit path.
func (l *Loader) Load(path string) (dataframe.DataFrame, *Summary, error) {
	var empty dataframe.DataFrame

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return empty, nil, &model.Error{Kind: model.KindNotFound, Stage: "load", Err: err}
		}
		// Exists but unreadable
		return empty, nil, &model.Error{Kind: model.KindMalformedInput, Stage: "load", Err: err}
	}
	defer f.Close()

	df := dataframe.ReadCSV(f,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
	)
	if df.Err != nil {
		return empty, nil, &model.Error{Kind: model.KindMalformedInput, Stage: "load", Err: df.Err}
	}
	if df.Nrow() == 0 {
		return empty, nil, &model.Error{
			Kind:  model.KindMalformedInput,
			Stage: "load",
			Err:   errors.New("file produced no data rows"),
		}
	}

	if err := l.schema.Validate(df.Names()); err != nil {
		return empty, nil, &model.Error{Kind: model.KindMalformedInput, Stage: "load", Err: err}
	}

	summary := l.Summarize(df)
	l.sink.Emit(diag.Event{
		Stage:   "load",
		Message: "table loaded",
		Fields: map[string]interface{}{
			"path":    path,
			"rows":    summary.Rows,
			"columns": summary.Columns,
			"nulls":   summary.NullCells,
		},
	})
	l.logger.Debug("Loaded input table",
		zap.String("path", path),
		zap.Int("rows", summary.Rows),
		zap.Int("columns", summary.Columns),
		zap.Int("nullCells", summary.TotalNulls()))

	return df, summary, nil
}

// Summarize computes row/column counts and per-column null counts for a
// raw dataframe
func (l *Loader) Summarize(df dataframe.DataFrame) *Summary {
	summary := &Summary{
		Rows:      df.Nrow(),
		Columns:   df.Ncol(),
		NullCells: make(map[string]int, df.Ncol()),
	}
	for _, name := range df.Names() {
		count := 0
		for _, rec := range df.Col(name).Records() {
			if l.nulls.Has(rec) {
				count++
			}
		}
		summary.NullCells[name] = count
	}
	return summary
}
