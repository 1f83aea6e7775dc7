// Package schema declares the admin dashboard's five entity kinds as data:
// table columns, typed form fields, and the marshalling rules between HTML
// form values and the tracker API's JSON representation. Adding an entity
// kind means adding one descriptor here.
package schema

import "github.com/Turf-FC/website/model"

type FieldType int

const (
	TypeText FieldType = iota
	TypeNumber
	TypeDatetime
	TypeSelect
	TypeMultiSelect
	TypeCheckbox
	TypeTextarea
	TypeColor
)

// String names the field type the way templates dispatch on it.
func (t FieldType) String() string {
	switch t {
	case TypeText:
		return "text"
	case TypeNumber:
		return "number"
	case TypeDatetime:
		return "datetime"
	case TypeSelect:
		return "select"
	case TypeMultiSelect:
		return "multi-select"
	case TypeCheckbox:
		return "checkbox"
	case TypeTextarea:
		return "textarea"
	case TypeColor:
		return "color"
	default:
		return "unknown"
	}
}

// Option is a single selectable choice in a select or multi-select field.
type Option struct {
	Value string
	Label string
}

// Field describes one form input. Options holds static choices; fields whose
// choices come from another entity kind's live record list set HasDataSource
// and DataSource instead, and are resolved fresh on every form render.
type Field struct {
	Name          string
	Type          FieldType
	Label         string
	Required      bool
	Placeholder   string
	Default       string
	Rows          int
	Options       []Option
	DataSource    model.EntityKind
	HasDataSource bool
	MaxSelections int
}

// Entity is the full descriptor for one entity kind. Columns are the record
// table headers, ending with the actions column.
type Entity struct {
	Kind        model.EntityKind
	Title       string
	Description string
	Columns     []string
	Fields      []Field
}

// Field looks up a field descriptor by name.
func (e Entity) Field(name string) (Field, bool) {
	for _, f := range e.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

func positionOptions() []Option {
	positions := model.Positions()
	options := make([]Option, 0, len(positions))
	for _, p := range positions {
		options = append(options, Option{Value: string(p), Label: p.Label()})
	}
	return options
}

func formatOptions() []Option {
	formats := model.Formats()
	options := make([]Option, 0, len(formats))
	for _, f := range formats {
		options = append(options, Option{Value: string(f), Label: string(f)})
	}
	return options
}

var entities = map[model.EntityKind]Entity{
	model.KindCompetition: {
		Kind:        model.KindCompetition,
		Title:       "Competitions",
		Description: "Manage your sports competitions",
		Columns:     []string{"ID", "Year", "Start Date", "Format", "Actions"},
		Fields: []Field{
			{Name: "year", Type: TypeNumber, Label: "Year", Required: true},
			{Name: "starts", Type: TypeDatetime, Label: "Start Date", Required: true},
			{Name: "format", Type: TypeSelect, Label: "Format", Required: true, Options: formatOptions()},
			{Name: "teams", Type: TypeMultiSelect, Label: "Teams", DataSource: model.KindTeam, HasDataSource: true, MaxSelections: 100},
		},
	},
	model.KindTeam: {
		Kind:        model.KindTeam,
		Title:       "Teams",
		Description: "Manage your teams",
		Columns:     []string{"ID", "Letter", "Name", "Color", "Actions"},
		Fields: []Field{
			{Name: "letter", Type: TypeText, Label: "Team Letter", Required: true, Placeholder: "e.g., A"},
			{Name: "alias", Type: TypeText, Label: "Team Name", Required: true, Placeholder: "e.g., Virgins FC"},
			{Name: "color", Type: TypeColor, Label: "Team Color", Required: true, Default: "#3B82F6"},
		},
	},
	model.KindPlayer: {
		Kind:        model.KindPlayer,
		Title:       "Players",
		Description: "Manage your players",
		Columns:     []string{"ID", "First Name", "Last Name", "Alias", "Primary Position", "Actions"},
		Fields: []Field{
			{Name: "firstName", Type: TypeText, Label: "First Name", Required: true},
			{Name: "lastName", Type: TypeText, Label: "Last Name", Required: true},
			{Name: "alias", Type: TypeText, Label: "Alias/Nickname"},
			{Name: "primaryPosition", Type: TypeSelect, Label: "Primary Position", Required: true, Options: positionOptions()},
			{Name: "alternatePositions", Type: TypeMultiSelect, Label: "Alternate Positions", Options: positionOptions(), MaxSelections: 4},
			{Name: "imageUrl", Type: TypeText, Label: "Image URL", Placeholder: "https://example.com/image.jpg"},
		},
	},
	model.KindFixture: {
		Kind:        model.KindFixture,
		Title:       "Fixtures",
		Description: "Manage your fixtures",
		Columns:     []string{"ID", "Kick-off Time", "Venue", "Referee", "Final Score", "Actions"},
		Fields: []Field{
			{Name: "homeTeam", Type: TypeSelect, Label: "Home Team", Required: true, DataSource: model.KindTeam, HasDataSource: true},
			{Name: "awayTeam", Type: TypeSelect, Label: "Away Team", Required: true, DataSource: model.KindTeam, HasDataSource: true},
			{Name: "kickoffTime", Type: TypeDatetime, Label: "Kick-off Time", Required: true},
			{Name: "referee", Type: TypeText, Label: "Referee"},
			{Name: "hasHalves", Type: TypeCheckbox, Label: "Has Halves?"},
			{Name: "venue", Type: TypeText, Label: "Venue", Default: "Mo Arena"},
			{Name: "finalScore", Type: TypeText, Label: "Final Score", Placeholder: "e.g., 2-1"},
		},
	},
	model.KindEvent: {
		Kind:        model.KindEvent,
		Title:       "Events",
		Description: "Manage match events",
		Columns:     []string{"ID", "Title", "Description", "Actions"},
		Fields: []Field{
			{Name: "fixture", Type: TypeSelect, Label: "Fixture", Required: true, DataSource: model.KindFixture, HasDataSource: true},
			{Name: "eventTitle", Type: TypeText, Label: "Event Title", Required: true, Placeholder: "e.g., Goal, Yellow Card"},
			{Name: "description", Type: TypeTextarea, Label: "Description", Rows: 3},
			{Name: "participants", Type: TypeMultiSelect, Label: "Participants", DataSource: model.KindPlayer, HasDataSource: true},
		},
	},
}

// For returns the descriptor for an entity kind. Every kind returned by
// model.Kinds has a descriptor.
func For(kind model.EntityKind) Entity {
	return entities[kind]
}
