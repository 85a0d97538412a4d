package baserow

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListParamsValues(t *testing.T) {
	p := ListParams{
		Page:   3,
		Size:   25,
		Search: "mug",
		Filters: []Filter{
			{Field: "field_5305", Comparison: CompareContains, Value: "ceramic"},
			{Field: "field_5325", Comparison: CompareOptionEqual, Value: "1"},
		},
		SortBy:   "field_5248",
		SortDesc: true,
	}

	q := p.Values()

	assert.Equal(t, "3", q.Get("page"))
	assert.Equal(t, "25", q.Get("size"))
	assert.Equal(t, "mug", q.Get("search"))
	assert.Equal(t, "ceramic", q.Get("filter__field_5305__contains"))
	assert.Equal(t, "1", q.Get("filter__field_5325__value__equal"))
	assert.Equal(t, "-field_5248", q.Get("order_by"))
}

func TestListParamsOmitsEmpty(t *testing.T) {
	p := ListParams{Page: 1, Size: 10}
	q := p.Values()

	assert.Equal(t, "1", q.Get("page"))
	assert.Equal(t, "10", q.Get("size"))
	assert.False(t, q.Has("search"))
	assert.False(t, q.Has("order_by"))
}

// A filter whose value was cleared must not reach the wire at all.
func TestListParamsSkipsEmptyFilter(t *testing.T) {
	p := ListParams{
		Page: 1,
		Size: 10,
		Filters: []Filter{
			{Field: "field_5305", Comparison: CompareContains, Value: ""},
			{Field: "", Comparison: CompareContains, Value: "orphan"},
		},
	}

	q := p.Values()
	assert.Len(t, q, 2)
}

func TestListParamsDefaultComparison(t *testing.T) {
	p := ListParams{Filters: []Filter{{Field: "field_5001", Value: "Acme"}}}
	q := p.Values()
	assert.Equal(t, "Acme", q.Get("filter__field_5001__contains"))
}

func TestListParamsAscendingSort(t *testing.T) {
	p := ListParams{SortBy: "field_5305"}
	assert.Equal(t, "field_5305", p.Values().Get("order_by"))
}
