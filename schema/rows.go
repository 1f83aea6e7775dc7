package schema

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/Turf-FC/website/model"
)

const (
	dateLayout     = "Jan 2, 2006"
	dateTimeLayout = "Jan 2, 2006, 03:04 PM"
)

// FormatDate renders an instant as a short date, e.g. "Mar 8, 2025".
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}

// FormatDateTime renders an instant with its time of day, e.g.
// "Mar 8, 2025, 06:30 PM".
func FormatDateTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateTimeLayout)
}

// recordInstant pulls a timestamp property out of a raw record. The API emits
// both RFC3339 strings and epoch milliseconds, so decode through the shared
// instant codec.
func recordInstant(r model.Record, name string) (time.Time, bool) {
	v, ok := r[name]
	if !ok || v == nil {
		return time.Time{}, false
	}
	b, err := json.Marshal(v)
	if err != nil {
		return time.Time{}, false
	}
	var i model.Instant
	if err := json.Unmarshal(b, &i); err != nil || i.IsZero() {
		return time.Time{}, false
	}
	return i.Time, true
}

func displayInstant(r model.Record, name, layout string) string {
	t, ok := recordInstant(r, name)
	if !ok {
		return "-"
	}
	return t.Format(layout)
}

// displayScore renders a final score cell. Scores arrive as a two-element
// array from the API but may also be a plain string on hand-entered records.
func displayScore(v any) string {
	switch t := v.(type) {
	case nil:
		return "-"
	case string:
		if t == "" {
			return "-"
		}
		return t
	case []any:
		if len(t) != 2 {
			return "-"
		}
		return fmt.Sprintf("%v - %v", t[0], t[1])
	default:
		return "-"
	}
}

// Row projects a record onto the entity's table columns, one cell per column
// except the trailing actions column.
func (e Entity) Row(r model.Record) []string {
	switch e.Kind {
	case model.KindCompetition:
		return []string{
			r.ID(),
			r.Display("year"),
			displayInstant(r, "starts", dateLayout),
			r.Display("format"),
		}
	case model.KindTeam:
		return []string{
			r.ID(),
			r.Display("letter"),
			r.Display("alias"),
			r.Display("color"),
		}
	case model.KindPlayer:
		return []string{
			r.ID(),
			r.Display("firstName"),
			r.Display("lastName"),
			r.Display("alias"),
			r.Display("primaryPosition"),
		}
	case model.KindFixture:
		kickoff := displayInstant(r, "kickoffTime", dateTimeLayout)
		if kickoff == "-" {
			kickoff = displayInstant(r, "starts", dateTimeLayout)
		}
		return []string{
			r.ID(),
			kickoff,
			r.Display("venue"),
			r.Display("referee"),
			displayScore(r["finalScore"]),
		}
	case model.KindEvent:
		return []string{
			r.ID(),
			r.Display("eventTitle"),
			r.Display("description"),
		}
	default:
		return []string{r.ID()}
	}
}
