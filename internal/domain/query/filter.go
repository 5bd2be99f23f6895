// Package query is the in-memory read-side filter over entity
// collections. Filtering is stable: survivors keep their original
// relative order, and a blank query matches everything.
package query

import "strings"

// Spec is a filter specification. Zero-value fields are not applied.
type Spec struct {
	Query      string
	Status     string
	Visibility string
}

// Entity is what a collection element must expose to be filterable.
type Entity interface {
	// SearchFields returns the fields free-text search runs over.
	SearchFields() []string
	// StatusValue returns the current status as a plain string.
	StatusValue() string
}

// visible is implemented by entities with a visibility toggle.
type visible interface {
	VisibilityValue() string
}

// Filter returns the elements matching all supplied predicates.
func Filter[E Entity](items []E, spec Spec) []E {
	q := strings.ToLower(strings.TrimSpace(spec.Query))

	out := make([]E, 0, len(items))
	for _, it := range items {
		if spec.Status != "" && it.StatusValue() != spec.Status {
			continue
		}
		if spec.Visibility != "" {
			v, ok := any(it).(visible)
			if !ok || v.VisibilityValue() != spec.Visibility {
				continue
			}
		}
		if q != "" && !matches(it.SearchFields(), q) {
			continue
		}
		out = append(out, it)
	}
	return out
}

func matches(fields []string, q string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}
