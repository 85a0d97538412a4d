package baserow

import (
	"fmt"
	"net/url"
	"strconv"
)

// Comparison selects the server-side filter operator applied to a field.
type Comparison string

const (
	// CompareContains is a substring match on the rendered cell.
	CompareContains Comparison = "contains"
	// CompareEqual is an exact match on the rendered cell.
	CompareEqual Comparison = "equal"
	// CompareOptionEqual is an exact match on the unwrapped single-select value.
	CompareOptionEqual Comparison = "value__equal"
)

// Filter is a single (field, operator, value) condition on a list request.
type Filter struct {
	Field      string
	Comparison Comparison
	Value      string
}

// ListParams are the query parameters for the paginated row list endpoint.
type ListParams struct {
	Page     int
	Size     int
	Search   string
	Filters  []Filter
	SortBy   string
	SortDesc bool
}

// Values encodes the parameters the way the row API expects them: one
// filter__<field>__<operator> pair per filter and a sign prefix on the
// order_by field for descending sorts.
func (p ListParams) Values() url.Values {
	q := url.Values{}
	if p.Page > 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	if p.Size > 0 {
		q.Set("size", strconv.Itoa(p.Size))
	}
	if p.Search != "" {
		q.Set("search", p.Search)
	}
	for _, f := range p.Filters {
		if f.Field == "" || f.Value == "" {
			continue
		}
		cmp := f.Comparison
		if cmp == "" {
			cmp = CompareContains
		}
		q.Set(fmt.Sprintf("filter__%s__%s", f.Field, cmp), f.Value)
	}
	if p.SortBy != "" {
		orderBy := p.SortBy
		if p.SortDesc {
			orderBy = "-" + orderBy
		}
		q.Set("order_by", orderBy)
	}
	return q
}
