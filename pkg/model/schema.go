// pkg/model/schema.go
package model

import "fmt"

// ColumnRole classifies how the pipeline treats a column
type ColumnRole int

const (
	// RoleIdentifier columns are coerced to text, never imputed, never encoded
	RoleIdentifier ColumnRole = iota
	// RoleNumeric columns are median-imputed and coerced to integer
	RoleNumeric
	// RoleCategorical columns are mode-imputed and one-hot encoded
	RoleCategorical
)

// String returns a string representation of the column role
func (r ColumnRole) String() string {
	switch r {
	case RoleIdentifier:
		return "identifier"
	case RoleNumeric:
		return "numeric"
	case RoleCategorical:
		return "categorical"
	default:
		return fmt.Sprintf("Unknown(%d)", int(r))
	}
}

// Schema maps the fixed set of expected columns to their roles.
// Roles are declared once here and reused by every pipeline stage, so a
// column never changes classification between stages.
type Schema struct {
	order []string
	roles map[string]ColumnRole
}

// DefaultSchema returns the schema for the HR employee dataset
func DefaultSchema() *Schema {
	s := &Schema{roles: make(map[string]ColumnRole)}
	s.add("EmployeeID", RoleIdentifier)
	s.add("Age", RoleNumeric)
	s.add("Department", RoleCategorical)
	s.add("Attrition", RoleCategorical)
	s.add("Salary", RoleNumeric)
	s.add("Experience", RoleNumeric)
	s.add("Education", RoleCategorical)
	s.add("Gender", RoleCategorical)
	return s
}

func (s *Schema) add(name string, role ColumnRole) {
	if _, exists := s.roles[name]; exists {
		return
	}
	s.order = append(s.order, name)
	s.roles[name] = role
}

// Role returns the role for a column name.
// ok is false for columns outside the schema.
func (s *Schema) Role(name string) (ColumnRole, bool) {
	role, ok := s.roles[name]
	return role, ok
}

// ExpectedColumns returns the expected column names in declaration order
func (s *Schema) ExpectedColumns() []string {
	cols := make([]string, len(s.order))
	copy(cols, s.order)
	return cols
}

// NumericColumns returns the numeric column names in declaration order
func (s *Schema) NumericColumns() []string {
	return s.columnsWithRole(RoleNumeric)
}

// CategoricalColumns returns the categorical column names in declaration order
func (s *Schema) CategoricalColumns() []string {
	return s.columnsWithRole(RoleCategorical)
}

// Identifier returns the identifier column name
func (s *Schema) Identifier() string {
	for _, name := range s.order {
		if s.roles[name] == RoleIdentifier {
			return name
		}
	}
	return ""
}

func (s *Schema) columnsWithRole(role ColumnRole) []string {
	var cols []string
	for _, name := range s.order {
		if s.roles[name] == role {
			cols = append(cols, name)
		}
	}
	return cols
}

// Validate checks that every expected column is present in the given
// header. Extra columns are allowed; they pass through the pipeline
// untouched.
func (s *Schema) Validate(present []string) error {
	seen := make(map[string]bool, len(present))
	for _, name := range present {
		seen[name] = true
	}
	for _, name := range s.order {
		if !seen[name] {
			return fmt.Errorf("missing expected column %q", name)
		}
	}
	return nil
}
