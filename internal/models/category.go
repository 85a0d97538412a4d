package models

// Category is one row of the category table with its derived children. The
// tree is limited to one level of nesting.
type Category struct {
	ID            int64      `json:"id"`
	Code          string     `json:"code"`
	Name          string     `json:"name"`
	ParentCode    string     `json:"parentCode"`
	IsActive      bool       `json:"isActive"`
	Subcategories []Category `json:"subcategories,omitempty"`
}
