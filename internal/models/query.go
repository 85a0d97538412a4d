package models

// SortDirection is the order applied to a sorted column.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// SortSpec is an optional (field, direction) pair. The zero value means no
// sort is active.
type SortSpec struct {
	Field     string
	Direction SortDirection
}

// IsActive reports whether a sort is in effect.
func (s SortSpec) IsActive() bool {
	return s.Field != "" && s.Direction != ""
}

// Cycle advances the sort state for a column click: ascending, then
// descending, then none. Selecting a different column starts at ascending and
// drops the previous sort.
func (s SortSpec) Cycle(field string) SortSpec {
	if s.Field == field {
		switch s.Direction {
		case SortAsc:
			return SortSpec{Field: field, Direction: SortDesc}
		case SortDesc:
			return SortSpec{}
		}
	}
	return SortSpec{Field: field, Direction: SortAsc}
}

// FilterSet keys active column filters by field name, holding at most one
// filter per field.
type FilterSet map[string]string

// Set stores a filter value for a field; an empty value removes the filter.
func (f FilterSet) Set(field, value string) {
	if value == "" {
		delete(f, field)
		return
	}
	f[field] = value
}

// ListQuery is the full catalog request state sent to the listing operation.
type ListQuery struct {
	Page     int
	Size     int
	Search   string
	Category string
	Filters  FilterSet
	Sort     SortSpec
}
