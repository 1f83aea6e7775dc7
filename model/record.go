package model

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Record is the schema-driven representation of an admin record: the raw JSON
// object exactly as the tracker API returned it. The typed structs in this
// package are used by the public viewer; the admin CRUD path works on Records
// so that one table/form engine can drive all five entity kinds.
type Record map[string]any

// ID returns the record's opaque identifier as a string. The API emits both
// string and numeric ids.
func (r Record) ID() string {
	switch v := r["id"].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case json.Number:
		return v.String()
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", v)
	}
}

func (r Record) Archived() bool {
	b, _ := r["archived"].(bool)
	return b
}

// Display renders the named property for a table cell, with "-" standing in
// for absent or null optional fields.
func (r Record) Display(name string) string {
	v, ok := r[name]
	if !ok || v == nil {
		return "-"
	}
	switch t := v.(type) {
	case string:
		if t == "" {
			return "-"
		}
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		if t {
			return "Yes"
		}
		return "No"
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return "-"
		}
		return string(b)
	}
}
