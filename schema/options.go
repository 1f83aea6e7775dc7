package schema

import (
	"fmt"

	"github.com/Turf-FC/website/model"
)

// OptionFor derives the {value, label} choice a record contributes to a
// data-sourced field. Labels follow per-kind rules so pickers read naturally:
// teams show "A - Virgins FC", players their full name, fixtures their id and
// kick-off time.
func OptionFor(kind model.EntityKind, r model.Record) Option {
	id := r.ID()
	switch kind {
	case model.KindTeam:
		return Option{Value: id, Label: fmt.Sprintf("%s - %s", r.Display("letter"), r.Display("alias"))}
	case model.KindPlayer:
		return Option{Value: id, Label: fmt.Sprintf("%s %s", r.Display("firstName"), r.Display("lastName"))}
	case model.KindFixture:
		kickoff := displayInstant(r, "kickoffTime", dateTimeLayout)
		if kickoff == "-" {
			kickoff = displayInstant(r, "starts", dateTimeLayout)
		}
		return Option{Value: id, Label: fmt.Sprintf("Fixture %s - %s", id, kickoff)}
	default:
		if name, ok := r["name"].(string); ok && name != "" {
			return Option{Value: id, Label: name}
		}
		if title, ok := r["title"].(string); ok && title != "" {
			return Option{Value: id, Label: title}
		}
		return Option{Value: id, Label: "Item " + id}
	}
}
