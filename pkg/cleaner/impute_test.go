// pkg/cleaner/impute_test.go
package cleaner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hrprep/pkg/model"
)

func TestImputeMedianOddCount(t *testing.T) {
	tc := testCleaner(t, nil)
	wt := newWorkingTable(frameFromCSV(t, sampleCSV))

	err := tc.impute(wt, model.NewReport())
	require.NoError(t, err)

	assert.Equal(t, []string{"30", "25", "30", "40", "35", "28"}, wt.col("Age").records)
}

func TestImputeMedianEvenCount(t *testing.T) {
	tc := testCleaner(t, nil)

	csv := `EmployeeID,Age,Department,Attrition,Salary,Experience,Education,Gender
1,1,HR,No,50000,5,Bachelors,Male
2,2,HR,No,50000,5,Bachelors,Male
3,3,HR,No,50000,5,Bachelors,Male
4,4,HR,No,50000,5,Bachelors,Male
5,,HR,No,50000,5,Bachelors,Male
`
	wt := newWorkingTable(frameFromCSV(t, csv))
	err := tc.impute(wt, model.NewReport())
	require.NoError(t, err)

	// Mean of the two middle values of [1 2 3 4]
	assert.Equal(t, "2.5", wt.col("Age").records[4])
}

func TestImputeModeTieBreak(t *testing.T) {
	tc := testCleaner(t, nil)

	// beta and alpha both occur twice; the ascending sort of distinct
	// values puts alpha first, so alpha wins the tie
	csv := `EmployeeID,Age,Department,Attrition,Salary,Experience,Education,Gender
1,30,beta,No,50000,5,Bachelors,Male
2,30,alpha,No,50000,5,Bachelors,Male
3,30,beta,No,50000,5,Bachelors,Male
4,30,alpha,No,50000,5,Bachelors,Male
5,30,,No,50000,5,Bachelors,Male
`
	wt := newWorkingTable(frameFromCSV(t, csv))
	err := tc.impute(wt, model.NewReport())
	require.NoError(t, err)

	assert.Equal(t, "alpha", wt.col("Department").records[4])
}

func TestImputeIdempotentOnNullFreeTable(t *testing.T) {
	tc := testCleaner(t, nil)

	csv := `EmployeeID,Age,Department,Attrition,Salary,Experience,Education,Gender
1,30,HR,No,50000,5,Bachelors,Male
2,25,Sales,Yes,60000,2,Masters,Female
`
	wt := newWorkingTable(frameFromCSV(t, csv))
	report := model.NewReport()
	err := tc.impute(wt, report)
	require.NoError(t, err)

	assert.Empty(t, report.Operations)
	assert.Equal(t, []string{"30", "25"}, wt.col("Age").records)
	assert.Equal(t, []string{"HR", "Sales"}, wt.col("Department").records)
}

func TestImputeEmptyNumericColumn(t *testing.T) {
	tc := testCleaner(t, nil)

	csv := `EmployeeID,Age,Department,Attrition,Salary,Experience,Education,Gender
1,,HR,No,50000,5,Bachelors,Male
2,,Sales,Yes,60000,2,Masters,Female
`
	wt := newWorkingTable(frameFromCSV(t, csv))
	err := tc.impute(wt, model.NewReport())
	require.Error(t, err)
	assert.True(t, model.IsEmptyColumn(err))
}

func TestImputeEmptyCategoricalColumn(t *testing.T) {
	tc := testCleaner(t, nil)

	csv := `EmployeeID,Age,Department,Attrition,Salary,Experience,Education,Gender
1,30,,No,50000,5,Bachelors,Male
2,25,,Yes,60000,2,Masters,Female
`
	wt := newWorkingTable(frameFromCSV(t, csv))
	err := tc.impute(wt, model.NewReport())
	require.Error(t, err)
	assert.True(t, model.IsEmptyColumn(err))
}

func TestImputeIgnoresColumnsOutsideSchema(t *testing.T) {
	tc := testCleaner(t, nil)

	csv := `EmployeeID,Age,Department,Attrition,Salary,Experience,Education,Gender,Notes
1,30,HR,No,50000,5,Bachelors,Male,
2,25,Sales,Yes,60000,2,Masters,Female,fine
`
	wt := newWorkingTable(frameFromCSV(t, csv))
	err := tc.impute(wt, model.NewReport())
	require.NoError(t, err)

	assert.Equal(t, []string{"", "fine"}, wt.col("Notes").records)
}

func TestImputeRecordsOperations(t *testing.T) {
	tc := testCleaner(t, nil)
	wt := newWorkingTable(frameFromCSV(t, sampleCSV))
	report := model.NewReport()

	err := tc.impute(wt, report)
	require.NoError(t, err)

	// Age, Salary, Experience medians plus Department, Attrition, Gender
	// modes; Education has no nulls and records nothing
	require.Len(t, report.Operations, 6)
	byColumn := make(map[string]model.Operation)
	for _, op := range report.Operations {
		byColumn[op.Column] = op
	}
	assert.Equal(t, "median_imputation", byColumn["Age"].Action)
	assert.Equal(t, "30", byColumn["Age"].Detail)
	assert.Equal(t, "mode_imputation", byColumn["Gender"].Action)
	assert.Equal(t, "Male", byColumn["Gender"].Detail)
	assert.NotContains(t, byColumn, "Education")
}
