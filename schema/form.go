package schema

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Turf-FC/website/model"
)

// LocalDateTimeLayout is the value format of an HTML datetime-local input.
const LocalDateTimeLayout = "2006-01-02T15:04"

// LocalToInstant converts a datetime-local input value to an instant. Values
// are interpreted as UTC so that a round trip through the form is stable.
func LocalToInstant(value string) (model.Instant, error) {
	t, err := time.Parse(LocalDateTimeLayout, value)
	if err != nil {
		return model.Instant{}, fmt.Errorf("error parsing date/time %q: %w", value, err)
	}
	return model.NewInstant(t), nil
}

// InstantToLocal converts an instant back into the datetime-local format.
func InstantToLocal(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(LocalDateTimeLayout)
}

func valueString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case json.Number:
		return t.String()
	default:
		return fmt.Sprintf("%v", t)
	}
}

// parseScore turns a hand-entered score like "2-1" or "2 - 1" into the API's
// two-element array. An empty string means no score yet.
func parseScore(value string) (any, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	parts := strings.Split(value, "-")
	if len(parts) != 2 {
		return nil, fmt.Errorf("final score must look like 2-1, got %q", value)
	}
	home, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return nil, fmt.Errorf("error parsing home score: %w", err)
	}
	away, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return nil, fmt.Errorf("error parsing away score: %w", err)
	}
	if home < 0 || away < 0 {
		return nil, fmt.Errorf("scores cannot be negative")
	}
	return []int{home, away}, nil
}

// DecodeForm turns submitted form values into a record in the API's JSON
// representation: datetimes become RFC3339 strings, empty numbers become
// null, checkboxes become booleans, and multi-select values become arrays
// capped at the field's limit.
func (e Entity) DecodeForm(form url.Values) (model.Record, error) {
	rec := model.Record{}
	for _, field := range e.Fields {
		switch field.Type {
		case TypeNumber:
			value := strings.TrimSpace(form.Get(field.Name))
			if value == "" {
				if field.Required {
					return nil, fmt.Errorf("%s is required", field.Label)
				}
				rec[field.Name] = nil
				continue
			}
			n, err := strconv.Atoi(value)
			if err != nil {
				return nil, fmt.Errorf("%s must be a number: %w", field.Label, err)
			}
			rec[field.Name] = n

		case TypeDatetime:
			value := form.Get(field.Name)
			if value == "" {
				if field.Required {
					return nil, fmt.Errorf("%s is required", field.Label)
				}
				rec[field.Name] = nil
				continue
			}
			instant, err := LocalToInstant(value)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", field.Label, err)
			}
			rec[field.Name] = instant.UTC().Format(time.RFC3339)

		case TypeCheckbox:
			rec[field.Name] = form.Get(field.Name) != ""

		case TypeMultiSelect:
			selection := NewMultiSelect(field.MaxSelections)
			for _, value := range form[field.Name] {
				if err := selection.Add(value); err != nil {
					return nil, fmt.Errorf("%s: %w", field.Label, err)
				}
			}
			rec[field.Name] = selection.Values()

		default:
			value := form.Get(field.Name)
			if field.Required && strings.TrimSpace(value) == "" {
				return nil, fmt.Errorf("%s is required", field.Label)
			}
			rec[field.Name] = value
		}
	}

	if e.Kind == model.KindFixture {
		if err := normalizeFixture(rec); err != nil {
			return nil, err
		}
	}
	return rec, nil
}

// normalizeFixture maps the form's named team fields onto the API's ordered
// participants array, home side first, and parses the score text.
func normalizeFixture(rec model.Record) error {
	home := valueString(rec["homeTeam"])
	away := valueString(rec["awayTeam"])
	delete(rec, "homeTeam")
	delete(rec, "awayTeam")
	if home != "" && home == away {
		return fmt.Errorf("a team cannot play itself")
	}
	rec["participants"] = []string{home, away}

	score, err := parseScore(valueString(rec["finalScore"]))
	if err != nil {
		return err
	}
	rec["finalScore"] = score
	return nil
}

// participantID extracts a team id from a participants array entry, which is
// either a plain id or a full embedded record.
func participantID(v any) string {
	if obj, ok := v.(map[string]any); ok {
		return model.Record(obj).ID()
	}
	return valueString(v)
}

// FillForm produces per-field input values for editing an existing record,
// reversing the conversions DecodeForm applies.
func (e Entity) FillForm(r model.Record) map[string]any {
	values := make(map[string]any, len(e.Fields))
	for _, field := range e.Fields {
		switch field.Type {
		case TypeDatetime:
			name := field.Name
			t, ok := recordInstant(r, name)
			if !ok && name == "kickoffTime" {
				t, ok = recordInstant(r, "starts")
			}
			if !ok {
				values[name] = ""
				continue
			}
			values[name] = InstantToLocal(t)

		case TypeCheckbox:
			b, _ := r[field.Name].(bool)
			values[field.Name] = b

		case TypeMultiSelect:
			var selected []string
			if raw, ok := r[field.Name].([]any); ok {
				for _, v := range raw {
					selected = append(selected, participantID(v))
				}
			}
			values[field.Name] = selected

		default:
			values[field.Name] = valueString(r[field.Name])
		}
	}

	if e.Kind == model.KindFixture {
		if raw, ok := r["participants"].([]any); ok {
			if len(raw) > 0 {
				values["homeTeam"] = participantID(raw[0])
			}
			if len(raw) > 1 {
				values["awayTeam"] = participantID(raw[1])
			}
		}
		if score, ok := r["finalScore"].([]any); ok && len(score) == 2 {
			values["finalScore"] = fmt.Sprintf("%s-%s", valueString(score[0]), valueString(score[1]))
		}
	}
	return values
}

// Defaults produces the initial input values for a blank form.
func (e Entity) Defaults() map[string]any {
	values := make(map[string]any, len(e.Fields))
	for _, field := range e.Fields {
		switch field.Type {
		case TypeCheckbox:
			values[field.Name] = false
		case TypeMultiSelect:
			values[field.Name] = []string(nil)
		default:
			values[field.Name] = field.Default
		}
	}
	return values
}
