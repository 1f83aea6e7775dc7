package model

import "fmt"

// EntityKind identifies one of the five resource kinds managed through the
// admin dashboard. Adding a kind means adding a constant here plus one schema
// entry; everything else is driven from those tables.
type EntityKind int

const (
	KindCompetition EntityKind = iota
	KindTeam
	KindPlayer
	KindFixture
	KindEvent
)

// String returns the URL path slug for the kind, which is also the upstream
// API collection name.
func (k EntityKind) String() string {
	switch k {
	case KindCompetition:
		return "competitions"
	case KindTeam:
		return "teams"
	case KindPlayer:
		return "players"
	case KindFixture:
		return "fixtures"
	case KindEvent:
		return "events"
	default:
		return "unknown"
	}
}

// Kinds lists every entity kind in navigation order.
func Kinds() []EntityKind {
	return []EntityKind{KindCompetition, KindTeam, KindPlayer, KindFixture, KindEvent}
}

func ParseEntityKind(s string) (EntityKind, error) {
	for _, k := range Kinds() {
		if k.String() == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%s is not a known entity kind", s)
}
