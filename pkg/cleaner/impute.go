// pkg/cleaner/impute.go
package cleaner

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cast"

	"hrprep/pkg/diag"
	"hrprep/pkg/model"
)

// impute replaces nulls in the schema's numeric columns with the column
// median and nulls in its categorical columns with the column mode.
// Columns without nulls are left untouched, so running impute over a
// null-free table is a no-op. Columns outside the schema are never
// imputed, even when they contain nulls.
func (tc *TableCleaner) impute(wt *workingTable, report *model.Report) error {
	for _, name := range tc.schema.NumericColumns() {
		c := wt.col(name)
		nullCount := tc.countNulls(c.records)
		if nullCount == 0 {
			continue
		}

		median, err := tc.columnMedian(name, c.records)
		if err != nil {
			return err
		}
		fill := strconv.FormatFloat(median, 'f', -1, 64)
		tc.fillNulls(c, fill)

		report.Record(model.Operation{
			Stage:     "impute",
			Column:    name,
			Action:    "median_imputation",
			Detail:    fill,
			CellCount: nullCount,
		})
		tc.sink.Emit(diag.Event{
			Stage:   "impute",
			Column:  name,
			Message: "filled missing values with median",
			Fields: map[string]interface{}{
				"median": median,
				"cells":  nullCount,
			},
		})
	}

	for _, name := range tc.schema.CategoricalColumns() {
		c := wt.col(name)
		nullCount := tc.countNulls(c.records)
		if nullCount == 0 {
			continue
		}

		mode, err := tc.columnMode(name, c.records)
		if err != nil {
			return err
		}
		tc.fillNulls(c, mode)

		report.Record(model.Operation{
			Stage:     "impute",
			Column:    name,
			Action:    "mode_imputation",
			Detail:    mode,
			CellCount: nullCount,
		})
		tc.sink.Emit(diag.Event{
			Stage:   "impute",
			Column:  name,
			Message: "filled missing values with mode",
			Fields: map[string]interface{}{
				"mode":  mode,
				"cells": nullCount,
			},
		})
	}

	return nil
}

// columnMedian computes the median of the column's non-null cells.
// Even-length columns take the mean of the two middle values.
func (tc *TableCleaner) columnMedian(name string, records []string) (float64, error) {
	values := make([]float64, 0, len(records))
	for _, rec := range records {
		if tc.nulls.Has(rec) {
			continue
		}
		f, err := cast.ToFloat64E(strings.TrimSpace(rec))
		if err != nil {
			return 0, &model.Error{
				Kind:   model.KindTypeCoercion,
				Stage:  "impute",
				Column: name,
				Err:    fmt.Errorf("non-numeric value %q", rec),
			}
		}
		values = append(values, f)
	}
	if len(values) == 0 {
		return 0, &model.Error{
			Kind:   model.KindEmptyColumn,
			Stage:  "impute",
			Column: name,
			Err:    errors.New("no non-null values to derive a median from"),
		}
	}

	sort.Float64s(values)
	mid := len(values) / 2
	if len(values)%2 == 1 {
		return values[mid], nil
	}
	return (values[mid-1] + values[mid]) / 2, nil
}

// columnMode returns the most frequent non-null value. Ties are broken
// by taking the first winner in ascending lexicographic order of the
// distinct values, so the result is stable regardless of row order.
func (tc *TableCleaner) columnMode(name string, records []string) (string, error) {
	counts := make(map[string]int)
	for _, rec := range records {
		if tc.nulls.Has(rec) {
			continue
		}
		counts[rec]++
	}
	if len(counts) == 0 {
		return "", &model.Error{
			Kind:   model.KindEmptyColumn,
			Stage:  "impute",
			Column: name,
			Err:    errors.New("no non-null values to derive a mode from"),
		}
	}

	distinct := make([]string, 0, len(counts))
	for v := range counts {
		distinct = append(distinct, v)
	}
	sort.Strings(distinct)

	mode := distinct[0]
	for _, v := range distinct[1:] {
		if counts[v] > counts[mode] {
			mode = v
		}
	}
	return mode, nil
}
