// pkg/cleaner/encode.go
package cleaner

import (
	"fmt"
	"sort"

	"github.com/go-gota/gota/series"

	"hrprep/pkg/diag"
	"hrprep/pkg/model"
)

// encode replaces each categorical column with one-hot indicator
// columns named <column>_<value>, one per distinct value in ascending
// lexicographic order minus the first. The first value is the dropped
// reference level: rows holding it get all-zero indicators. Passthrough
// columns keep their original positions; indicator columns are appended
// after them, grouped by source column in schema order. This stage is
// pure and cannot fail on a fully imputed input.
func (tc *TableCleaner) encode(wt *workingTable, report *model.Report) {
	for _, name := range tc.schema.CategoricalColumns() {
		c := wt.col(name)
		levels := distinctSorted(c.records)

		for _, level := range levels[1:] {
			indicator := make([]int, len(c.records))
			for i, rec := range c.records {
				if rec == level {
					indicator[i] = 1
				}
			}
			wt.appendSeries(series.New(indicator, series.Int, name+"_"+level))
		}
		wt.remove(name)

		report.Record(model.Operation{
			Stage:     "encode",
			Column:    name,
			Action:    "one_hot_encoding",
			Detail:    fmt.Sprintf("reference level %q", levels[0]),
			CellCount: len(c.records),
		})
		tc.sink.Emit(diag.Event{
			Stage:   "encode",
			Column:  name,
			Message: "encoded categorical column",
			Fields: map[string]interface{}{
				"levels":     len(levels),
				"indicators": len(levels) - 1,
				"reference":  levels[0],
			},
		})
	}
}

// distinctSorted returns the distinct values of the column in ascending
// lexicographic order
func distinctSorted(records []string) []string {
	seen := make(map[string]struct{}, len(records))
	var distinct []string
	for _, rec := range records {
		if _, ok := seen[rec]; ok {
			continue
		}
		seen[rec] = struct{}{}
		distinct = append(distinct, rec)
	}
	sort.Strings(distinct)
	return distinct
}
