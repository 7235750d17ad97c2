// pkg/loader/loader_test.go
package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"hrprep/pkg/diag"
	"hrprep/pkg/model"
)

const sampleCSV = `EmployeeID,Age,Department,Attrition,Salary,Experience,Education,Gender
1,30,HR,No,50000,5,Bachelors,Male
2,25,Sales,Yes,60000,2,Masters,Female
3,,IT,No,75000,10,PhD,Male
4,40,HR,No,,15,Bachelors,Female
5,35,,Yes,55000,,Masters,Male
6,28,IT,,70000,3,High School,
`

type captureSink struct {
	events []diag.Event
}

func (s *captureSink) Emit(e diag.Event) {
	s.events = append(s.events, e)
}

func testLoader(t *testing.T, sink diag.Sink) *Loader {
	t.Helper()
	if sink == nil {
		sink = diag.Nop()
	}
	l, err := NewLoader(model.DefaultSchema(), zap.NewNop(), sink, Options{})
	require.NoError(t, err)
	return l
}

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNewLoaderValidatesCollaborators(t *testing.T) {
	_, err := NewLoader(nil, zap.NewNop(), diag.Nop(), Options{})
	assert.Error(t, err)

	_, err = NewLoader(model.DefaultSchema(), nil, diag.Nop(), Options{})
	assert.Error(t, err)
}

func TestLoadSummary(t *testing.T) {
	sink := &captureSink{}
	l := testLoader(t, sink)

	df, summary, err := l.Load(writeTempCSV(t, sampleCSV))
	require.NoError(t, err)

	assert.Equal(t, 6, summary.Rows)
	assert.Equal(t, 8, summary.Columns)
	assert.Equal(t, 1, summary.NullCells["Age"])
	assert.Equal(t, 1, summary.NullCells["Salary"])
	assert.Equal(t, 1, summary.NullCells["Gender"])
	assert.Equal(t, 0, summary.NullCells["EmployeeID"])
	assert.Equal(t, 0, summary.NullCells["Education"])
	assert.Equal(t, 6, summary.TotalNulls())

	// Cells come back verbatim, nulls included
	assert.Equal(t, []string{"30", "25", "", "40", "35", "28"}, df.Col("Age").Records())

	// The summary was emitted before any mutation
	require.Len(t, sink.events, 1)
	assert.Equal(t, "load", sink.events[0].Stage)
	assert.Equal(t, 6, sink.events[0].Fields["rows"])
}

func TestLoadNotFound(t *testing.T) {
	l := testLoader(t, nil)

	_, _, err := l.Load(filepath.Join(t.TempDir(), "missing.csv"))
	require.Error(t, err)
	assert.True(t, model.IsNotFound(err))
	assert.False(t, model.IsMalformedInput(err))
}

func TestLoadMalformedInput(t *testing.T) {
	l := testLoader(t, nil)

	ragged := "EmployeeID,Age,Department,Attrition,Salary,Experience,Education,Gender\n1,30\n2,25,Sales,Yes,60000,2,Masters,Female\n"
	_, _, err := l.Load(writeTempCSV(t, ragged))
	require.Error(t, err)
	assert.True(t, model.IsMalformedInput(err))
}

func TestLoadMissingExpectedColumn(t *testing.T) {
	l := testLoader(t, nil)

	noSalary := "EmployeeID,Age,Department,Attrition,Experience,Education,Gender\n1,30,HR,No,5,Bachelors,Male\n"
	_, _, err := l.Load(writeTempCSV(t, noSalary))
	require.Error(t, err)
	assert.True(t, model.IsMalformedInput(err))
	assert.Contains(t, err.Error(), "Salary")
}

func TestLoadHeaderOnlyFile(t *testing.T) {
	l := testLoader(t, nil)

	header := "EmployeeID,Age,Department,Attrition,Salary,Experience,Education,Gender\n"
	_, _, err := l.Load(writeTempCSV(t, header))
	require.Error(t, err)
	assert.True(t, model.IsMalformedInput(err))
}

func TestLoadCustomNullMarkers(t *testing.T) {
	l, err := NewLoader(model.DefaultSchema(), zap.NewNop(), diag.Nop(),
		Options{NullMarkers: []string{"-", "missing"}})
	require.NoError(t, err)

	csv := `EmployeeID,Age,Department,Attrition,Salary,Experience,Education,Gender
1,-,HR,missing,50000,5,Bachelors,Male
2,25,Sales,Yes,60000,2,Masters,
`
	_, summary, err := l.Load(writeTempCSV(t, csv))
	require.NoError(t, err)
	assert.Equal(t, 1, summary.NullCells["Age"])
	assert.Equal(t, 1, summary.NullCells["Attrition"])
	// The empty string is not a marker in this configuration
	assert.Equal(t, 0, summary.NullCells["Gender"])
}
