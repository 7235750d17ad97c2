// pkg/cleaner/retype.go
package cleaner

import (
	"fmt"
	"strings"

	"github.com/go-gota/gota/series"
	"github.com/spf13/cast"

	"hrprep/pkg/diag"
	"hrprep/pkg/model"
)

// retype coerces the numeric columns to integers and the identifier
// column to text. Imputation has already run, so no cell is null here;
// a non-coercible cell in a numeric column is an upstream contract
// violation and surfaces as a type coercion error.
func (tc *TableCleaner) retype(wt *workingTable, report *model.Report) error {
	for _, name := range tc.schema.NumericColumns() {
		c := wt.col(name)
		ints := make([]int, len(c.records))
		truncated := 0
		for i, rec := range c.records {
			f, err := cast.ToFloat64E(strings.TrimSpace(rec))
			if err != nil {
				return &model.Error{
					Kind:   model.KindTypeCoercion,
					Stage:  "retype",
					Column: name,
					Err:    fmt.Errorf("cannot coerce %q to integer", rec),
				}
			}
			// Fractional values truncate toward zero
			n := int(f)
			if float64(n) != f {
				truncated++
			}
			ints[i] = n
		}
		c.typed = series.New(ints, series.Int, name)
		c.hasType = true

		report.Record(model.Operation{
			Stage:     "retype",
			Column:    name,
			Action:    "integer_coercion",
			Detail:    fmt.Sprintf("%d fractional values truncated", truncated),
			CellCount: len(ints),
		})
		tc.sink.Emit(diag.Event{
			Stage:   "retype",
			Column:  name,
			Message: "converted column to integer",
			Fields: map[string]interface{}{
				"cells":     len(ints),
				"truncated": truncated,
			},
		})
	}

	id := tc.schema.Identifier()
	c := wt.col(id)
	c.typed = series.New(c.records, series.String, id)
	c.hasType = true

	report.Record(model.Operation{
		Stage:     "retype",
		Column:    id,
		Action:    "string_coercion",
		CellCount: len(c.records),
	})
	tc.sink.Emit(diag.Event{
		Stage:   "retype",
		Column:  id,
		Message: "converted identifier column to string",
		Fields: map[string]interface{}{
			"cells": len(c.records),
		},
	})

	return nil
}
