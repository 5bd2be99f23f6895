// Package validate carries the shared vocabulary of the per-entity
// validation functions. Validation is pure: a draft goes in, an ordered
// list of human-readable violations comes out, and an empty list means
// the draft is acceptable for the requested operation.
package validate

// Mode selects which required-field set applies. Update drafts may omit
// fields that are already persisted.
type Mode string

const (
	Create Mode = "create"
	Update Mode = "update"
)
