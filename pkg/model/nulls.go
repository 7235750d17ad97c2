// pkg/model/nulls.go
package model

import "strings"

// DefaultNullMarkers are the raw cell values treated as absent
var DefaultNullMarkers = []string{"", "NA", "NaN", "null"}

// NullSet decides whether a raw cell value counts as null/absent
type NullSet map[string]struct{}

// NewNullSet builds a NullSet from the given markers.
// An empty marker list falls back to DefaultNullMarkers.
func NewNullSet(markers []string) NullSet {
	if len(markers) == 0 {
		markers = DefaultNullMarkers
	}
	ns := make(NullSet, len(markers))
	for _, m := range markers {
		ns[m] = struct{}{}
	}
	return ns
}

// Has reports whether the value counts as null.
// Surrounding whitespace is ignored.
func (ns NullSet) Has(value string) bool {
	_, ok := ns[strings.TrimSpace(value)]
	return ok
}
