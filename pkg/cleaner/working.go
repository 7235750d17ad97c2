// pkg/cleaner/working.go
package cleaner

import (
	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// column is a single named column in the working copy. Cells stay raw
// strings until the retype or encode stage assigns the column its final
// typed series.
type column struct {
	name    string
	records []string
	typed   series.Series
	hasType bool
}

// workingTable is the mutable working copy of the input table. It holds
// its own copy of every cell, so mutating it never touches the frame it
// was built from.
type workingTable struct {
	cols []*column
}

func newWorkingTable(df dataframe.DataFrame) *workingTable {
	wt := &workingTable{cols: make([]*column, 0, df.Ncol())}
	for _, name := range df.Names() {
		recs := df.Col(name).Records()
		records := make([]string, len(recs))
		copy(records, recs)
		wt.cols = append(wt.cols, &column{name: name, records: records})
	}
	return wt
}

// col returns the column with the given name, or nil if absent
func (wt *workingTable) col(name string) *column {
	for _, c := range wt.cols {
		if c.name == name {
			return c
		}
	}
	return nil
}

// appendSeries adds a fully typed column at the end of the table
func (wt *workingTable) appendSeries(s series.Series) {
	wt.cols = append(wt.cols, &column{name: s.Name, typed: s, hasType: true})
}

// remove drops the column with the given name, preserving the order of
// the remaining columns
func (wt *workingTable) remove(name string) {
	for i, c := range wt.cols {
		if c.name == name {
			wt.cols = append(wt.cols[:i], wt.cols[i+1:]...)
			return
		}
	}
}

// frame assembles the working columns into a dataframe. Columns that
// were never retyped are emitted as raw string series.
func (wt *workingTable) frame() (dataframe.DataFrame, error) {
	ss := make([]series.Series, 0, len(wt.cols))
	for _, c := range wt.cols {
		if c.hasType {
			ss = append(ss, c.typed)
		} else {
			ss = append(ss, series.New(c.records, series.String, c.name))
		}
	}
	df := dataframe.New(ss...)
	if df.Err != nil {
		return df, df.Err
	}
	return df, nil
}
