package schema

import (
	"encoding/json"
	"strings"

	"github.com/Turf-FC/website/model"
)

// Filter returns the records whose JSON serialization contains the query,
// case-insensitively. The match is over the whole serialized record so every
// property is searchable without per-entity configuration.
func Filter(records []model.Record, query string) []model.Record {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return records
	}
	var out []model.Record
	for _, r := range records {
		b, err := json.Marshal(r)
		if err != nil {
			continue
		}
		if strings.Contains(strings.ToLower(string(b)), query) {
			out = append(out, r)
		}
	}
	return out
}
