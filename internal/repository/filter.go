package repository

import "github.com/prodcat/product-api/internal/domain"

const (
	// DefaultSearchLimit is the page size used when the caller does not ask
	// for one.
	DefaultSearchLimit = 100

	maxSearchLimit = 1000
)

// SearchFilter describes a product search. Nil price bounds mean "no bound";
// an empty NameContains means "any name". Filters are AND-combined. Results
// are ordered by ID ascending so offset pagination stays deterministic.
type SearchFilter struct {
	NameContains string
	MinPrice     *int64
	MaxPrice     *int64

	Skip  int
	Limit int
}

// Normalize clamps pagination to sane bounds: negative skip becomes zero,
// a missing or negative limit becomes DefaultSearchLimit, and oversized
// limits are capped at maxSearchLimit.
func (f SearchFilter) Normalize() SearchFilter {
	if f.Skip < 0 {
		f.Skip = 0
	}
	if f.Limit <= 0 {
		f.Limit = DefaultSearchLimit
	}
	f.Limit = min(maxSearchLimit, f.Limit)
	return f
}

// Matches reports whether a product satisfies the filter predicates. The SQL
// adapter pushes these into the query; the in-memory adapter uses this
// directly.
func (f SearchFilter) Matches(p domain.Product) bool {
	if f.NameContains != "" && !p.Name.Contains(f.NameContains) {
		return false
	}
	if f.MinPrice != nil && p.Price.Int64() < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && p.Price.Int64() > *f.MaxPrice {
		return false
	}
	return true
}
