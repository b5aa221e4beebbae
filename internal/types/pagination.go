package types

// Pagination is a 1-indexed page request. Sort and Order are optional; the
// repository falls back to created_at desc so page concatenation stays
// deterministic.
type Pagination struct {
	Page     int    `json:"page" form:"page" validate:"min=1"`
	PageSize int    `json:"page_size" form:"page_size" validate:"min=1,max=1000"`
	Sort     string `json:"sort,omitempty" form:"sort"`
	Order    string `json:"order,omitempty" form:"order" validate:"omitempty,oneof=asc desc"`
}

// Offset returns the row offset for the page.
func (p Pagination) Offset() int {
	if p.Page <= 1 {
		return 0
	}
	return (p.Page - 1) * p.PageSize
}

// Limit returns the page size.
func (p Pagination) Limit() int {
	return p.PageSize
}

// GetSort returns the sort column or the default.
func (p Pagination) GetSort() string {
	if p.Sort == "" {
		return "created_at"
	}
	return p.Sort
}

// GetOrder returns the sort direction or the default.
func (p Pagination) GetOrder() string {
	if p.Order == "" {
		return "desc"
	}
	return p.Order
}

// ListResult is a page slice plus the full matching count. The count is
// computed by an independent query run concurrently with the page query.
type ListResult[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}

// ListResponse represents a paginated API response
type ListResponse[T any] struct {
	Items      []T                `json:"items"`
	Pagination PaginationResponse `json:"pagination"`
}

// PaginationResponse represents standardized pagination metadata
type PaginationResponse struct {
	Total    int `json:"total"`
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
}

// NewListResponse creates a new list response with pagination metadata
func NewListResponse[T any](items []T, total int, p Pagination) ListResponse[T] {
	return ListResponse[T]{
		Items: items,
		Pagination: PaginationResponse{
			Total:    total,
			Page:     p.Page,
			PageSize: p.PageSize,
		},
	}
}
