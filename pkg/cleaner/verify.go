// pkg/cleaner/verify.go
package cleaner

import (
	"errors"
	"fmt"

	"github.com/go-gota/gota/dataframe"

	"hrprep/pkg/diag"
	"hrprep/pkg/model"
)

// verify checks the output invariants after encoding: the row count is
// preserved, no categorical column survives, and no null cell remains
// in any schema column. Columns outside the schema carry no guarantee
// and are not checked. A violation here is an internal contract failure
// between stages, not a property of the input.
func (tc *TableCleaner) verify(df dataframe.DataFrame, wantRows int) error {
	if df.Nrow() != wantRows {
		return &model.Error{
			Kind:  model.KindMalformedInput,
			Stage: "verify",
			Err:   fmt.Errorf("row count changed from %d to %d", wantRows, df.Nrow()),
		}
	}

	for _, name := range df.Names() {
		role, ok := tc.schema.Role(name)
		if !ok {
			continue
		}
		if role == model.RoleCategorical {
			return &model.Error{
				Kind:   model.KindTypeCoercion,
				Stage:  "verify",
				Column: name,
				Err:    errors.New("categorical column survived encoding"),
			}
		}
		for _, rec := range df.Col(name).Records() {
			if tc.nulls.Has(rec) {
				return &model.Error{
					Kind:   model.KindTypeCoercion,
					Stage:  "verify",
					Column: name,
					Err:    errors.New("null cell survived imputation"),
				}
			}
		}
	}

	tc.sink.Emit(diag.Event{
		Stage:   "verify",
		Message: "output invariants verified",
		Fields: map[string]interface{}{
			"rows":    df.Nrow(),
			"columns": df.Ncol(),
		},
	})
	return nil
}
