package baserow

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Kind identifies the shape of a raw cell value. The shape is decided once,
// while decoding the row, so callers never re-inspect JSON structure.
type Kind int

const (
	// KindNull is an absent or explicit null cell.
	KindNull Kind = iota
	// KindText is a plain string cell.
	KindText
	// KindNumber is a numeric cell.
	KindNumber
	// KindBool is a boolean cell.
	KindBool
	// KindOption is a single-select cell wrapped as {"value": "..."}.
	KindOption
	// KindLink is an array of references into another table.
	KindLink
	// KindFile is an array of uploaded file descriptors.
	KindFile
)

// Value is a tagged union over the possible shapes of a Baserow cell.
type Value struct {
	kind  Kind
	text  string
	num   float64
	b     bool
	links []string
	urls  []string
}

// Kind reports the decoded shape of the value.
func (v Value) Kind() Kind { return v.kind }

// Text returns the plain string content, or "" for any other shape.
func (v Value) Text() string {
	if v.kind == KindText {
		return v.text
	}
	return ""
}

// Option returns the unwrapped single-select label. Plain strings are
// accepted as-is; every other shape yields "".
func (v Value) Option() string {
	switch v.kind {
	case KindOption, KindText:
		return v.text
	}
	return ""
}

// Float returns the numeric content. Text cells are parsed; anything that is
// not a number yields 0.
func (v Value) Float() float64 {
	switch v.kind {
	case KindNumber:
		return v.num
	case KindText:
		f, err := strconv.ParseFloat(strings.TrimSpace(v.text), 64)
		if err != nil {
			return 0
		}
		return f
	}
	return 0
}

// Bool returns the boolean content, false for any other shape.
func (v Value) Bool() bool {
	return v.kind == KindBool && v.b
}

// Linked returns the referenced row labels in source order.
func (v Value) Linked() []string {
	return v.links
}

// JoinedLinks returns the linked labels joined by ", ", preserving order.
func (v Value) JoinedLinks() string {
	return strings.Join(v.links, ", ")
}

// FirstURL returns the URL of the first file in a file cell, or the raw text
// when the cell already holds a URL string.
func (v Value) FirstURL() string {
	if len(v.urls) > 0 {
		return v.urls[0]
	}
	if v.kind == KindText {
		return v.text
	}
	return ""
}

// IsZero reports whether the cell was absent or null.
func (v Value) IsZero() bool { return v.kind == KindNull }

// optionObject covers both single-select wrappers and file descriptors.
type optionObject struct {
	Value *string `json:"value"`
	URL   string  `json:"url"`
	File  string  `json:"file"`
}

// UnmarshalJSON decodes a raw cell into the matching union arm.
func (v *Value) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		*v = Value{}
		return nil
	}
	switch data[0] {
	case 'n':
		*v = Value{}
		return nil
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = Value{kind: KindText, text: s}
		return nil
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(data, &b); err != nil {
			return err
		}
		*v = Value{kind: KindBool, b: b}
		return nil
	case '{':
		var obj optionObject
		if err := json.Unmarshal(data, &obj); err != nil {
			return err
		}
		if obj.Value != nil {
			*v = Value{kind: KindOption, text: *obj.Value}
			return nil
		}
		if obj.URL != "" || obj.File != "" {
			url := obj.URL
			if url == "" {
				url = obj.File
			}
			*v = Value{kind: KindFile, urls: []string{url}}
			return nil
		}
		// Unknown object shape: treat as empty rather than failing the row.
		*v = Value{}
		return nil
	case '[':
		var objs []optionObject
		if err := json.Unmarshal(data, &objs); err != nil {
			return err
		}
		val := Value{kind: KindLink}
		for _, o := range objs {
			if o.URL != "" || o.File != "" {
				url := o.URL
				if url == "" {
					url = o.File
				}
				val.kind = KindFile
				val.urls = append(val.urls, url)
				continue
			}
			if o.Value != nil {
				val.links = append(val.links, *o.Value)
			} else {
				val.links = append(val.links, "")
			}
		}
		*v = val
		return nil
	default:
		var f float64
		if err := json.Unmarshal(data, &f); err != nil {
			return fmt.Errorf("unsupported cell value %q: %w", data, err)
		}
		*v = Value{kind: KindNumber, num: f}
		return nil
	}
}

// Row is one record as returned by the row API: a numeric identifier plus a
// map from opaque field identifier to decoded cell value.
type Row struct {
	ID     int64
	Order  string
	Fields map[string]Value
}

// Field returns the cell for the given opaque field identifier. Absent fields
// come back as the null value.
func (r Row) Field(id string) Value {
	return r.Fields[id]
}

// UnmarshalJSON splits the flat row object into identifier, order and cells.
func (r *Row) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	r.Fields = make(map[string]Value, len(raw))
	for key, msg := range raw {
		switch key {
		case "id":
			if err := json.Unmarshal(msg, &r.ID); err != nil {
				return fmt.Errorf("row id: %w", err)
			}
		case "order":
			var order string
			if err := json.Unmarshal(msg, &order); err == nil {
				r.Order = order
			}
		default:
			var v Value
			if err := v.UnmarshalJSON(msg); err != nil {
				return fmt.Errorf("field %s: %w", key, err)
			}
			r.Fields[key] = v
		}
	}
	return nil
}

// RowPage is one page of rows from the paginated list endpoint.
type RowPage struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []Row   `json:"results"`
}
