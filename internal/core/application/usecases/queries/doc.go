// Package queries contains read-only operations. Handlers run raw SQL
// against the database and return flat view structs; they never load
// aggregates.
package queries

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

func clampLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultLimit
	case limit > MaxLimit:
		return MaxLimit
	default:
		return limit
	}
}
