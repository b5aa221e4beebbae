package types

import (
	"sort"

	"github.com/samber/lo"
)

// Filter selects rows by exact column match. Nil values in Eq are ignored so
// callers can pass sparse maps built from optional request fields. The zero
// value matches all non-deleted rows.
type Filter struct {
	// Eq is a sparse column -> value equality map combined with AND.
	Eq map[string]any
	// IncludeDeleted disables the default deleted_at IS NULL predicate on
	// list, find-one and count queries. Get-by-id always includes
	// soft-deleted rows regardless of this flag.
	IncludeDeleted bool
}

// NewFilter builds a filter from a sparse equality map.
func NewFilter(eq map[string]any) Filter {
	return Filter{Eq: eq}
}

// ByID builds a primary-key filter.
func ByID(id string) Filter {
	return Filter{Eq: map[string]any{"id": id}}
}

// WithDeleted returns a copy of the filter that also matches soft-deleted rows.
func (f Filter) WithDeleted() Filter {
	f.IncludeDeleted = true
	return f
}

// IsEmpty reports whether the filter carries no equality predicates.
func (f Filter) IsEmpty() bool {
	for _, v := range f.Eq {
		if v != nil {
			return false
		}
	}
	return true
}

// Keys returns the non-nil predicate columns in deterministic order.
func (f Filter) Keys() []string {
	keys := make([]string, 0, len(f.Eq))
	for k, v := range f.Eq {
		if v == nil {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// QueryFilter represents a generic list-endpoint filter with optional fields
type QueryFilter struct {
	Limit  *int    `json:"limit,omitempty" form:"limit" validate:"omitempty,min=1,max=1000"`
	Offset *int    `json:"offset,omitempty" form:"offset" validate:"omitempty,min=0"`
	Status *Status `json:"status,omitempty" form:"status"`
	Sort   *string `json:"sort,omitempty" form:"sort"`
	Order  *string `json:"order,omitempty" form:"order" validate:"omitempty,oneof=asc desc"`
}

// NewDefaultQueryFilter returns a query filter with default pagination values
func NewDefaultQueryFilter() *QueryFilter {
	return &QueryFilter{
		Limit:  lo.ToPtr(50),
		Offset: lo.ToPtr(0),
		Sort:   lo.ToPtr("created_at"),
		Order:  lo.ToPtr("desc"),
	}
}

// GetLimit returns the limit value or the default if not set
func (f *QueryFilter) GetLimit() int {
	if f == nil || f.Limit == nil {
		return 50
	}
	return *f.Limit
}

// GetOffset returns the offset value or the default if not set
func (f *QueryFilter) GetOffset() int {
	if f == nil || f.Offset == nil {
		return 0
	}
	return *f.Offset
}

// GetSort returns the sort column or the default if not set
func (f *QueryFilter) GetSort() string {
	if f == nil || f.Sort == nil {
		return "created_at"
	}
	return *f.Sort
}

// GetOrder returns the sort direction or the default if not set
func (f *QueryFilter) GetOrder() string {
	if f == nil || f.Order == nil {
		return "desc"
	}
	return *f.Order
}

// Pagination converts the filter offsets into 1-indexed page terms.
func (f *QueryFilter) Pagination() Pagination {
	limit := f.GetLimit()
	return Pagination{
		Page:     f.GetOffset()/limit + 1,
		PageSize: limit,
		Sort:     f.GetSort(),
		Order:    f.GetOrder(),
	}
}
